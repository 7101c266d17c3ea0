// Package rate resolves quotes against the rate catalog.
// The engine is a pure function of (category, sub-type, params): it
// holds no state between calls, performs no I/O, and never panics. A
// nil result is the only failure signal - missing selectors and unknown
// pairs decline rather than error.
package rate

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"vo-quote/core/catalog"
	"vo-quote/core/types"
)

// Engine resolves (category, sub-type, params) selections into rate
// entries using a catalog.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates an engine over the given catalog.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Catalog returns the card the engine resolves against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Resolve computes the rate entry for a selection. It returns nil when
// the pair is unknown or a required selector is missing or has no card
// entry; callers keep their prior display state in that case.
func (e *Engine) Resolve(category, subType string, params types.Params) *types.RateEntry {
	if e == nil || e.catalog == nil {
		return nil
	}
	cat, ok := catalog.ParseCategory(category)
	if !ok {
		return nil
	}
	entry, ok := e.catalog.Get(cat, subType)
	if !ok {
		return nil
	}

	result, ok := resolveRule(entry.Rule, params)
	if !ok {
		return nil
	}
	result.Description = describe(entry, params)
	return result
}

func resolveRule(rule catalog.RuleSpec, params types.Params) (*types.RateEntry, bool) {
	switch rule.Kind {
	case catalog.KindLookup:
		return resolveLookup(rule, params)
	case catalog.KindPerUnit:
		return resolvePerUnit(rule, params)
	case catalog.KindBracket:
		return resolveBracket(rule, params)
	case catalog.KindStepped:
		return resolveStepped(rule, params)
	case catalog.KindComposite:
		return resolveComposite(rule, params)
	case catalog.KindNote:
		return types.NewInformational(rule.Note), true
	default:
		return nil, false
	}
}

func resolveLookup(rule catalog.RuleSpec, params types.Params) (*types.RateEntry, bool) {
	selector := params.String(rule.Selector)
	if rule.Selector == types.ParamTerm {
		selector = catalog.CanonicalTerm(selector)
	}
	if selector == "" {
		return nil, false
	}
	raw, ok := rule.Table[selector]
	if !ok {
		return nil, false
	}

	low, high, numeric := ParseRange(raw)
	if !numeric {
		// Malformed or non-numeric cells degrade to guidance text.
		return types.NewInformational(raw), true
	}
	return types.NewRateEntry(low, high), true
}

func resolvePerUnit(rule catalog.RuleSpec, params types.Params) (*types.RateEntry, bool) {
	q := quantity(params, rule.Quantity, rule.MinQty)
	qd := decimal.NewFromFloat(q)
	return types.NewRateEntry(rule.UnitLow.Mul(qd), rule.UnitHigh.Mul(qd)), true
}

func resolveBracket(rule catalog.RuleSpec, params types.Params) (*types.RateEntry, bool) {
	q := quantity(params, rule.Quantity, rule.MinQty)

	for _, b := range rule.Brackets {
		if q <= b.Min || q > b.Max {
			continue
		}
		if !b.Interpolate {
			return types.NewRateEntry(b.Low, b.High), true
		}
		ratio := decimal.NewFromFloat((q - b.Min) / (b.Max - b.Min))
		low := b.Low.Add(b.EndLow.Sub(b.Low).Mul(ratio))
		high := b.High.Add(b.EndHigh.Sub(b.High).Mul(ratio))
		return types.NewRateEntry(low, high), true
	}

	// Past the last bracket the card publishes a flat per-unit figure
	// with no spread.
	if rule.OverflowRate.Sign() > 0 {
		v := rule.OverflowRate.Mul(decimal.NewFromFloat(q))
		return types.NewRateEntry(v, v), true
	}
	return nil, false
}

func resolveStepped(rule catalog.RuleSpec, params types.Params) (*types.RateEntry, bool) {
	q := quantity(params, rule.Quantity, rule.MinQty)
	if q <= 1 {
		return types.NewRateEntry(rule.FirstLow, rule.FirstHigh), true
	}

	extra := q - 1
	var blocks decimal.Decimal
	if rule.HalfUnitSteps {
		blocks = decimal.NewFromFloat(math.Ceil(extra * 2))
	} else {
		blocks = decimal.NewFromFloat(extra)
	}
	low := rule.FirstLow.Add(rule.AddLow.Mul(blocks))
	high := rule.FirstHigh.Add(rule.AddHigh.Mul(blocks))
	return types.NewRateEntry(low, high), true
}

func resolveComposite(rule catalog.RuleSpec, params types.Params) (*types.RateEntry, bool) {
	low, high := decimal.Zero, decimal.Zero
	for _, part := range rule.Parts {
		r, ok := resolveRule(part, params)
		if !ok {
			return nil, false
		}
		low = low.Add(r.Low)
		high = high.Add(r.High)
	}
	return types.NewRateEntry(low, high), true
}

// quantity reads a numeric parameter and applies the rule floor. An
// absent value defaults to one unit, except for optional parts (min 0),
// which contribute nothing. A value that is present but unreadable
// coerces to the floor itself, so half-hour rules price half an hour.
func quantity(params types.Params, key string, min float64) float64 {
	q, ok := params.Number(key)
	if !ok {
		if _, present := params[key]; present {
			return min
		}
		if min == 0 {
			return 0
		}
		q = 1
	}
	if q < min {
		q = min
	}
	return q
}

// describe composes the entry label: sub-type first, then term, then
// the disambiguating quantities that are set and nonzero, in the fixed
// order the published calculator used.
func describe(entry *catalog.Entry, params types.Params) string {
	parts := []string{entry.SubType}

	if term := params.String(types.ParamTerm); term != "" {
		parts = append(parts, catalog.CanonicalTerm(term))
	}
	if tier := params.String(types.ParamTier); tier != "" {
		parts = append(parts, tier)
	}
	if typ := params.String(types.ParamType); typ != "" {
		parts = append(parts, typ)
	}

	appendCount(&parts, params, types.ParamMinutes, "minute")
	appendCount(&parts, params, types.ParamWords, "word")
	appendCount(&parts, params, types.ParamHours, "hour")
	appendCount(&parts, params, types.ParamSpots, "spot")
	appendCount(&parts, params, types.ParamTags, "tag")
	appendCount(&parts, params, types.ParamPrompts, "prompt")
	appendCount(&parts, params, types.ParamVoices, "voice")
	appendCount(&parts, params, types.ParamEpisodes, "episode")

	return strings.Join(parts, " - ")
}

func appendCount(parts *[]string, params types.Params, key, noun string) {
	n, ok := params.Positive(key)
	if !ok {
		return
	}
	var count string
	if n == math.Trunc(n) {
		count = types.FormatCount(int64(n))
	} else {
		count = strconv.FormatFloat(n, 'f', -1, 64)
	}
	if n != 1 {
		noun += "s"
	}
	*parts = append(*parts, count+" "+noun)
}
