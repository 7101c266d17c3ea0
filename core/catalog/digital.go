// Package catalog - digital / visual (web usage) rate card entries
package catalog

import "vo-quote/core/types"

func registerDigital(c *Catalog) {
	c.Register(Entry{
		Category: DigitalVisual,
		SubType:  "Web Usage – Organic Placement",
		Rule: lookup(types.ParamTerm, map[string]string{
			"1 Month":  "$350–$600",
			"3 Months": "$550–$950",
			"1 Year":   "$900–$1,600",
		}),
		Notes: "Client site and owned social channels, no paid push.",
	})

	c.Register(Entry{
		Category: DigitalVisual,
		SubType:  "Paid Placement – OLV / Pre-Roll",
		Rule: lookup(types.ParamTerm, map[string]string{
			"1 Month":  "$500–$850",
			"3 Months": "$850–$1,400",
			"1 Year":   "$1,400–$2,400",
		}),
	})

	c.Register(Entry{
		Category: DigitalVisual,
		SubType:  "Digital Tags",
		Rule:     perUnit(types.ParamTags, 175, 225, "tag"),
	})

	c.Register(Entry{
		Category: DigitalVisual,
		SubType:  "Social Media – Influencer Whitelisting",
		Rule: lookup(types.ParamTerm, map[string]string{
			"1 Month":  "$750–$1,250",
			"3 Months": "$1,250–$2,000",
			"1 Year":   "$2,250–$3,750",
		}),
	})

	c.Register(Entry{
		Category: DigitalVisual,
		SubType:  "Point of Sale",
		Rule:     note("Refer to TV rates"),
	})
}
