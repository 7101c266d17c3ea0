// Package catalog - e-learning rate card entries
package catalog

import "vo-quote/core/types"

func registerELearning(c *Catalog) {
	c.Register(Entry{
		Category: ELearning,
		SubType:  "Per Word",
		Rule:     perUnit(types.ParamWords, 0.2, 0.3, "word"),
	})

	c.Register(Entry{
		Category: ELearning,
		SubType:  "Per Finished Hour",
		Rule:     perUnit(types.ParamHours, 1100, 1700, "finished hour"),
		Notes:    "Finished runtime, not raw studio time.",
	})

	// Raw studio time bills in half-hour increments, so the floor is
	// half an hour rather than one.
	studio := perUnit(types.ParamHours, 400, 500, "studio hour")
	studio.MinQty = 0.5
	c.Register(Entry{
		Category: ELearning,
		SubType:  "Per Raw Studio Hour",
		Rule:     studio,
	})
}
