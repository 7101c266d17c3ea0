// Package catalog - descriptive term normalization
package catalog

import "strings"

// termAliases maps descriptive usage terms seen in briefs and order
// forms to the canonical term keys of the rate card. The "13 weeks" to
// "3 Months" mapping is a heuristic carried over from the published
// guide and has not been confirmed with the rate body; it lives here,
// isolated, and never inside rule logic.
var termAliases = map[string]string{
	"4 weeks":   "1 Month",
	"30 days":   "1 Month",
	"one month": "1 Month",

	"13 weeks":     "3 Months",
	"90 days":      "3 Months",
	"one quarter":  "3 Months",
	"three months": "3 Months",

	"52 weeks":  "1 Year",
	"12 months": "1 Year",
	"365 days":  "1 Year",
	"annual":    "1 Year",
	"one year":  "1 Year",
}

// CanonicalTerm normalizes a user-supplied term to a card key. Unknown
// terms pass through unchanged so lookup failure stays visible at the
// rule, not here.
func CanonicalTerm(term string) string {
	t := strings.TrimSpace(term)
	if t == "" {
		return ""
	}
	if canonical, ok := termAliases[strings.ToLower(t)]; ok {
		return canonical
	}
	// Accept canonical keys in any letter case.
	switch strings.ToLower(t) {
	case "1 month":
		return "1 Month"
	case "3 months":
		return "3 Months"
	case "1 year":
		return "1 Year"
	}
	return t
}
