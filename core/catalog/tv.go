// Package catalog - TV and broadcast rate card entries
package catalog

import "vo-quote/core/types"

func registerTV(c *Catalog) {
	c.Register(Entry{
		Category: TV,
		SubType:  "Local – Regional (Terrestrial)",
		Rule: lookup(types.ParamTerm, map[string]string{
			"1 Month":  "$450–$850",
			"3 Months": "$750–$1,250",
			"1 Year":   "$1,250–$2,250",
		}),
	})

	c.Register(Entry{
		Category: TV,
		SubType:  "National (Terrestrial)",
		Rule:     note("Union Rate – refer to SAG-AFTRA scale"),
	})

	c.Register(Entry{
		Category: TV,
		SubType:  "Streaming / OTT",
		Rule: lookup(types.ParamTerm, map[string]string{
			"1 Month":  "$600–$900",
			"3 Months": "$900–$1,500",
			"1 Year":   "$1,500–$2,750",
		}),
		Notes: "Hulu, Roku, network apps and other ad-supported OTT.",
	})

	// Mnemonics have no published range; everything depends on the
	// brand and the buyout asked for.
	c.Register(Entry{
		Category: TV,
		SubType:  "Mnemonics",
		Rule:     note("Varies greatly – negotiate based on brand and usage"),
	})

	c.Register(Entry{
		Category: TV,
		SubType:  "TV Tags",
		Rule:     perUnit(types.ParamTags, 150, 200, "tag"),
	})

	c.Register(Entry{
		Category: TV,
		SubType:  "Additional Cut-Downs / Lifts (Per Spot)",
		Rule:     perUnit(types.ParamSpots, 150, 250, "spot"),
	})
}
