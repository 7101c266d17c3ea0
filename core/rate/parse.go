// Package rate - published range string parsing
package rate

import (
	"strings"

	"github.com/shopspring/decimal"
)

// rangeSeparators in the order the card uses them. The plain hyphen is
// last so dashed words ("SAG-AFTRA") only matter once the numeric
// separators have been ruled out.
var rangeSeparators = []string{"–", "—", "-"}

// ParseRange parses a published display string into bounds. A string
// split by a dash yields (low, high); a separatorless numeric string
// yields equal bounds; anything else is informational text and reports
// ok = false.
func ParseRange(s string) (low, high decimal.Decimal, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, decimal.Zero, false
	}

	for _, sep := range rangeSeparators {
		i := strings.Index(s, sep)
		if i <= 0 {
			continue
		}
		l, okLow := parseMoney(s[:i])
		h, okHigh := parseMoney(s[i+len(sep):])
		if okLow && okHigh {
			return l, h, true
		}
		// A separator without two parseable sides means the string is
		// guidance text, not a malformed range.
		return decimal.Zero, decimal.Zero, false
	}

	if v, okOne := parseMoney(s); okOne {
		return v, v, true
	}
	return decimal.Zero, decimal.Zero, false
}

// parseMoney strips currency symbols and grouping commas and parses
// what remains as a decimal.
func parseMoney(s string) (decimal.Decimal, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}
