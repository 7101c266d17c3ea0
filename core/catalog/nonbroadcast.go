// Package catalog - non-broadcast (corporate / industrial) entries
package catalog

import "vo-quote/core/types"

func registerNonBroadcast(c *Catalog) {
	// Recording time scale: flat first hour, flat price per additional
	// hour. The guide publishes single amounts here, not ranges.
	c.Register(Entry{
		Category: NonBroadcast,
		SubType:  "Corporate & Industrial Narration – Recording Time Scale",
		Rule: RuleSpec{
			Kind:      KindStepped,
			Quantity:  types.ParamHours,
			MinQty:    1,
			Unit:      "hour",
			FirstLow:  d(525),
			FirstHigh: d(525),
			AddLow:    d(262),
			AddHigh:   d(262),
		},
	})

	c.Register(Entry{
		Category: NonBroadcast,
		SubType:  "Corporate & Industrial Narration – Per Word",
		Rule:     perUnit(types.ParamWords, 0.25, 0.35, "word"),
	})

	// Per-word script fee plus directed-session time billed by the
	// hour. The hour part floors at zero: no session hours, no charge.
	sessionHours := perUnit(types.ParamHours, 125, 175, "session hour")
	sessionHours.MinQty = 0
	c.Register(Entry{
		Category: NonBroadcast,
		SubType:  "Corporate & Industrial Narration – Per Word Plus Directed Session",
		Rule: RuleSpec{
			Kind: KindComposite,
			Parts: []RuleSpec{
				perUnit(types.ParamWords, 0.25, 0.35, "word"),
				sessionHours,
			},
		},
	})

	c.Register(Entry{
		Category: NonBroadcast,
		SubType:  "Explainer Video (Web / Internal)",
		Rule:     perUnit(types.ParamMinutes, 350, 450, "finished minute"),
	})

	c.Register(Entry{
		Category: NonBroadcast,
		SubType:  "Medical Narration – Per Word",
		Rule:     perUnit(types.ParamWords, 0.35, 0.5, "word"),
		Notes:    "Specialized terminology; rates sit above standard corporate.",
	})
}
