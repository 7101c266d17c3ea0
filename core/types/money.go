package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RangeSeparator joins the two bounds of a displayed range. The rate
// guide publishes ranges with an en dash, so parsing and formatting both
// use it.
const RangeSeparator = "–"

// FormatUSD renders a decimal amount as a dollar string with thousands
// separators. Whole amounts drop the cents ("$1,425"); fractional
// amounts keep two places ("$0.30").
func FormatUSD(d decimal.Decimal) string {
	neg := d.IsNegative()
	fixed := d.Abs().StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(whole[i])
	}
	if cents != "00" {
		b.WriteByte('.')
		b.WriteString(cents)
	}
	return b.String()
}

// FormatRange renders a low/high pair. Equal bounds collapse to a
// single amount.
func FormatRange(low, high decimal.Decimal) string {
	if low.Equal(high) {
		return FormatUSD(low)
	}
	return FormatUSD(low) + RangeSeparator + FormatUSD(high)
}

// FormatCount renders an integer quantity with thousands separators for
// descriptions ("1,500 words").
func FormatCount(n int64) string {
	s := decimal.NewFromInt(n).String()
	var b strings.Builder
	start := 0
	if strings.HasPrefix(s, "-") {
		b.WriteByte('-')
		start = 1
	}
	digits := s[start:]
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}
