// Package catalog - promo, animation, tour and podcast entries
package catalog

import "vo-quote/core/types"

func registerMisc(c *Catalog) {
	c.Register(Entry{
		Category: Promo,
		SubType:  "Local / Regional News Promo",
		Rule: lookup(types.ParamTerm, map[string]string{
			"1 Month":  "$350–$600",
			"3 Months": "$550–$900",
			"1 Year":   "$900–$1,500",
		}),
	})

	c.Register(Entry{
		Category: Promo,
		SubType:  "Network Promo",
		Rule:     note("Union Rate – refer to SAG-AFTRA scale"),
	})

	c.Register(Entry{
		Category: Promo,
		SubType:  "Film Trailer",
		Rule:     note("Union Rate – refer to SAG-AFTRA scale"),
	})

	c.Register(Entry{
		Category: Animation,
		SubType:  "Original Animation – Non-Union (Per Episode)",
		Rule:     perUnit(types.ParamEpisodes, 300, 500, "episode"),
	})

	// Dubbing sessions bill in half-hour increments.
	dubbing := perUnit(types.ParamHours, 175, 275, "recording hour")
	dubbing.MinQty = 0.5
	c.Register(Entry{
		Category: Animation,
		SubType:  "Dubbing – Per Recording Hour",
		Rule:     dubbing,
	})

	// Tours: first hour plus half-hour blocks after that.
	c.Register(Entry{
		Category: MuseumTours,
		SubType:  "Audio Tour Narration",
		Rule: RuleSpec{
			Kind:          KindStepped,
			Quantity:      types.ParamHours,
			MinQty:        1,
			Unit:          "hour",
			FirstLow:      d(450),
			FirstHigh:     d(550),
			AddLow:        d(125),
			AddHigh:       d(165),
			HalfUnitSteps: true,
		},
	})

	c.Register(Entry{
		Category: Podcasts,
		SubType:  "Intro & Outro Package",
		Rule: lookup(types.ParamType, map[string]string{
			"Intro & Outro": "$200–$350",
			"Full Package":  "$350–$500",
		}),
	})

	c.Register(Entry{
		Category: Podcasts,
		SubType:  "Host-Read Ad – Per Spot",
		Rule:     perUnit(types.ParamSpots, 150, 250, "spot"),
	})
}
