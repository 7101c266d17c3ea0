// Package catalog - radio rate card entries
package catalog

import "vo-quote/core/types"

func registerRadio(c *Catalog) {
	c.Register(Entry{
		Category: Radio,
		SubType:  "Local – Regional (Terrestrial)",
		Rule: lookup(types.ParamTerm, map[string]string{
			"1 Month":  "$400–$750",
			"3 Months": "$600–$1,000",
			"1 Year":   "$900–$1,500",
		}),
	})

	c.Register(Entry{
		Category: Radio,
		SubType:  "National (Terrestrial)",
		Rule: lookup(types.ParamTerm, map[string]string{
			"1 Month":  "$800–$1,200",
			"3 Months": "$1,200–$2,000",
			"1 Year":   "$2,000–$3,500",
		}),
	})

	c.Register(Entry{
		Category: Radio,
		SubType:  "Digital – Streaming Audio",
		Rule: lookup(types.ParamTerm, map[string]string{
			"1 Month":  "$300–$500",
			"3 Months": "$450–$800",
			"1 Year":   "$750–$1,200",
		}),
		Notes: "Covers Spotify, Pandora and similar streaming-only buys.",
	})

	c.Register(Entry{
		Category: Radio,
		SubType:  "Radio Tags",
		Rule:     perUnit(types.ParamTags, 100, 150, "tag"),
	})

	c.Register(Entry{
		Category: Radio,
		SubType:  "PSA – Public Service Announcement",
		Rule: lookup(types.ParamTerm, map[string]string{
			"1 Year": "$400–$600",
		}),
	})

	c.Register(Entry{
		Category: Radio,
		SubType:  "Network Radio (Union)",
		Rule:     note("Union Rate – refer to SAG-AFTRA scale"),
	})
}
