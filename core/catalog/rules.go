// Package catalog - pricing rule definitions
// A rule is pure data: the resolution engine in core/rate interprets it.
// The closed RuleKind set replaces the string-keyed conditional chain of
// the published calculator with an exhaustively checkable dispatch.
package catalog

import (
	"github.com/shopspring/decimal"
)

// RuleKind discriminates the rule variants.
type RuleKind string

const (
	// KindLookup selects a display string from a table by a categorical
	// selector (term, tier, type).
	KindLookup RuleKind = "lookup"

	// KindPerUnit multiplies a per-unit low/high by a user quantity.
	KindPerUnit RuleKind = "per_unit"

	// KindBracket selects the bucket containing the quantity; one
	// bracket may interpolate linearly, and quantities past the last
	// bracket extrapolate at a flat per-unit rate.
	KindBracket RuleKind = "bracket"

	// KindStepped charges a first-unit price plus an additional-unit
	// price per unit (or half-unit block) beyond the first.
	KindStepped RuleKind = "stepped"

	// KindComposite sums the results of independent sub-rules.
	KindComposite RuleKind = "composite"

	// KindNote is terminal guidance text with no numeric bounds.
	KindNote RuleKind = "note"
)

// Bracket is one bucket of a KindBracket rule, covering quantities in
// (Min, Max]. When Interpolate is set the bounds slide linearly from
// (Low, High) at Min to (EndLow, EndHigh) at Max instead of being flat.
type Bracket struct {
	Min, Max float64
	Low      decimal.Decimal
	High     decimal.Decimal
	EndLow   decimal.Decimal
	EndHigh  decimal.Decimal

	Interpolate bool
}

// RuleSpec describes one pricing rule. Kind selects which field group
// applies; the rest stay zero.
type RuleSpec struct {
	Kind RuleKind

	// Lookup fields
	Selector string            // param key holding the selector value
	Table    map[string]string // selector value -> display string

	// Quantity fields, shared by per-unit, bracket and stepped rules
	Quantity string  // param key holding the quantity
	MinQty   float64 // rule-specific floor; 0 means the part is optional
	Unit     string  // noun for descriptions ("tag", "finished hour")

	// Per-unit fields
	UnitLow  decimal.Decimal
	UnitHigh decimal.Decimal

	// Bracket fields
	Brackets     []Bracket
	OverflowRate decimal.Decimal // flat per-unit rate past the last bracket

	// Stepped fields
	FirstLow      decimal.Decimal
	FirstHigh     decimal.Decimal
	AddLow        decimal.Decimal
	AddHigh       decimal.Decimal
	HalfUnitSteps bool // additional units counted as ceil((q-1)*2) half-unit blocks

	// Composite fields
	Parts []RuleSpec

	// Note fields
	Note string
}

// d is shorthand for building rate constants in the card files.
func d(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// lookup builds a KindLookup rule.
func lookup(selector string, table map[string]string) RuleSpec {
	return RuleSpec{Kind: KindLookup, Selector: selector, Table: table}
}

// perUnit builds a KindPerUnit rule with a minimum quantity of 1.
func perUnit(quantity string, low, high float64, unit string) RuleSpec {
	return RuleSpec{
		Kind:     KindPerUnit,
		Quantity: quantity,
		MinQty:   1,
		Unit:     unit,
		UnitLow:  d(low),
		UnitHigh: d(high),
	}
}

// note builds a KindNote rule.
func note(text string) RuleSpec {
	return RuleSpec{Kind: KindNote, Note: text}
}
