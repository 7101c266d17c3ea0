// Package catalog - automotive rate card entries
// Automotive prices by tier (usage scope), not by time term: Tier 1 is
// the national manufacturer buy, Tier 2 the regional dealer group,
// Tier 3 the single local dealership.
package catalog

import "vo-quote/core/types"

func registerAutomotive(c *Catalog) {
	c.Register(Entry{
		Category: Automotive,
		SubType:  "Radio – Dealer Group",
		Rule: lookup(types.ParamTier, map[string]string{
			"Tier 1": "Union Rate",
			"Tier 2": "$1,500–$2,500",
			"Tier 3": "$750–$1,250",
		}),
	})

	c.Register(Entry{
		Category: Automotive,
		SubType:  "TV – Dealer Group",
		Rule: lookup(types.ParamTier, map[string]string{
			"Tier 1": "Union Rate",
			"Tier 2": "$2,000–$3,500",
			"Tier 3": "$1,000–$1,750",
		}),
	})
}
