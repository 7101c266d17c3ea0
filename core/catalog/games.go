// Package catalog - video game rate card entries
package catalog

import "vo-quote/core/types"

func registerVideoGames(c *Catalog) {
	c.Register(Entry{
		Category: VideoGames,
		SubType:  "Console / AAA – Per Session Hour",
		Rule:     perUnit(types.ParamHours, 200, 350, "session hour"),
	})

	c.Register(Entry{
		Category: VideoGames,
		SubType:  "Indie – Per Session Hour",
		Rule:     perUnit(types.ParamHours, 150, 250, "session hour"),
	})

	c.Register(Entry{
		Category: VideoGames,
		SubType:  "Mobile Game – Commercial (Per Session Hour)",
		Rule:     perUnit(types.ParamHours, 175, 300, "session hour"),
	})

	// Educational mobile content is priced by finished minute. Up to
	// five minutes the range is flat; from five to ten it slides
	// linearly; past ten the guide only publishes a flat $65/minute
	// figure with no spread.
	c.Register(Entry{
		Category: VideoGames,
		SubType:  "Mobile Game – Educational (Per Finished Minute)",
		Rule: RuleSpec{
			Kind:     KindBracket,
			Quantity: types.ParamMinutes,
			MinQty:   1,
			Unit:     "finished minute",
			Brackets: []Bracket{
				{Min: 0, Max: 5, Low: d(300), High: d(450)},
				{
					Min: 5, Max: 10,
					Low: d(450), High: d(650),
					EndLow: d(650), EndHigh: d(900),
					Interpolate: true,
				},
			},
			OverflowRate: d(65),
		},
	})

	c.Register(Entry{
		Category: VideoGames,
		SubType:  "Additional Voices – Per Voice",
		Rule:     perUnit(types.ParamVoices, 100, 150, "voice"),
	})
}
