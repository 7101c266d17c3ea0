package types

import (
	"math"
	"strconv"
	"strings"
)

// Parameter keys recognized by the resolution engine. Callers may send
// extra keys; the engine ignores anything a rule does not ask for.
const (
	ParamTerm     = "term"
	ParamTier     = "tier"
	ParamType     = "type"
	ParamTags     = "numberOfTags"
	ParamWords    = "numberOfWords"
	ParamHours    = "numberOfHours"
	ParamMinutes  = "numberOfMinutes"
	ParamSpots    = "numberOfSpots"
	ParamPrompts  = "numberOfPrompts"
	ParamVoices   = "numberOfVoices"
	ParamEpisodes = "numberOfEpisodes"
)

// Params is the open bag of user-supplied usage parameters. Values come
// from JSON bodies, CLI flags, or interactive prompts, so numeric fields
// may arrive as float64, int, or string.
type Params map[string]any

// String returns the string value for key, or "" when absent or not a
// string.
func (p Params) String(key string) string {
	v, ok := p[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// Number returns the numeric value for key. The second return is false
// when the key is absent or the value cannot be read as a number;
// callers apply their own rule-specific floor in that case.
func (p Params) Number(key string) (float64, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	default:
		return 0, false
	}
}

// finite rejects NaN and the infinities, which ParseFloat accepts but
// no rule can price. Decimal construction requires a finite value.
func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Positive reports whether key holds a numeric value greater than zero.
// Used when composing descriptions: only set, nonzero parameters appear.
func (p Params) Positive(key string) (float64, bool) {
	n, ok := p.Number(key)
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}
