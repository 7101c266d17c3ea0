// Package types defines the core domain types shared across all layers.
// This package contains NO pricing logic - only type definitions and
// display formatting for them.
package types

import (
	"github.com/shopspring/decimal"
)

// RateEntry is a resolved price quotation.
// Low and High are both zero for informational entries (union scale,
// negotiated retainers) that carry guidance text but no addable amount.
type RateEntry struct {
	// Text is the display string, e.g. "$900–$1,500" or "Union Rate"
	Text string `json:"text"`

	// Low is the lower bound of the quoted range
	Low decimal.Decimal `json:"low"`

	// High is the upper bound of the quoted range
	High decimal.Decimal `json:"high"`

	// Description labels the sub-type and the parameters that produced
	// this entry, e.g. "Local – Regional (Terrestrial) - 1 Year"
	Description string `json:"description"`
}

// Informational reports whether the entry carries guidance text only.
// Informational entries are never accepted by the cart.
func (e *RateEntry) Informational() bool {
	return e.Low.IsZero() && e.High.IsZero()
}

// NewRateEntry builds a numeric entry with display text derived from
// the bounds.
func NewRateEntry(low, high decimal.Decimal) *RateEntry {
	return &RateEntry{
		Text: FormatRange(low, high),
		Low:  low,
		High: high,
	}
}

// NewInformational builds a guidance-only entry.
func NewInformational(text string) *RateEntry {
	return &RateEntry{Text: text}
}
