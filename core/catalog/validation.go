// Package catalog - card consistency checks
package catalog

import (
	"fmt"
	"strings"
)

// Validate checks every entry for internal consistency: bounds ordered,
// brackets ascending, composites non-empty. Run from tests and the CLI
// before trusting a card that has been patched by overrides.
func (c *Catalog) Validate() error {
	var problems []string

	for _, cat := range c.Categories() {
		for _, sub := range c.SubTypes(cat) {
			entry, _ := c.Get(cat, sub)
			for _, p := range validateRule(entry.Rule) {
				problems = append(problems, fmt.Sprintf("%s/%s: %s", cat, sub, p))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}

func validateRule(r RuleSpec) []string {
	var problems []string

	switch r.Kind {
	case KindLookup:
		if r.Selector == "" {
			problems = append(problems, "lookup rule without selector")
		}
		if len(r.Table) == 0 {
			problems = append(problems, "lookup rule with empty table")
		}
	case KindPerUnit:
		if r.Quantity == "" {
			problems = append(problems, "per-unit rule without quantity key")
		}
		if r.UnitLow.GreaterThan(r.UnitHigh) {
			problems = append(problems, "per-unit low exceeds high")
		}
		if r.UnitLow.Sign() <= 0 {
			problems = append(problems, "per-unit rate not positive")
		}
	case KindBracket:
		if r.Quantity == "" {
			problems = append(problems, "bracket rule without quantity key")
		}
		prev := 0.0
		for i, b := range r.Brackets {
			if b.Min >= b.Max {
				problems = append(problems, fmt.Sprintf("bracket %d has min >= max", i))
			}
			if i > 0 && b.Min != prev {
				problems = append(problems, fmt.Sprintf("bracket %d does not continue at %v", i, prev))
			}
			if b.Low.GreaterThan(b.High) {
				problems = append(problems, fmt.Sprintf("bracket %d low exceeds high", i))
			}
			if b.Interpolate && b.EndLow.GreaterThan(b.EndHigh) {
				problems = append(problems, fmt.Sprintf("bracket %d end low exceeds end high", i))
			}
			prev = b.Max
		}
		if len(r.Brackets) == 0 {
			problems = append(problems, "bracket rule without brackets")
		}
	case KindStepped:
		if r.Quantity == "" {
			problems = append(problems, "stepped rule without quantity key")
		}
		if r.FirstLow.GreaterThan(r.FirstHigh) || r.AddLow.GreaterThan(r.AddHigh) {
			problems = append(problems, "stepped low exceeds high")
		}
	case KindComposite:
		if len(r.Parts) == 0 {
			problems = append(problems, "composite rule without parts")
		}
		for i, part := range r.Parts {
			for _, p := range validateRule(part) {
				problems = append(problems, fmt.Sprintf("part %d: %s", i, p))
			}
		}
	case KindNote:
		if r.Note == "" {
			problems = append(problems, "note rule without text")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown rule kind %q", r.Kind))
	}

	return problems
}
