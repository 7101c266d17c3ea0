// Package catalog - audiobook rate card entries
package catalog

import "vo-quote/core/types"

func registerAudiobooks(c *Catalog) {
	c.Register(Entry{
		Category: Audiobooks,
		SubType:  "Per Finished Hour – Indie / Non-Union",
		Rule:     perUnit(types.ParamHours, 200, 300, "finished hour"),
	})

	c.Register(Entry{
		Category: Audiobooks,
		SubType:  "Per Finished Hour – Publisher",
		Rule:     perUnit(types.ParamHours, 250, 400, "finished hour"),
	})

	c.Register(Entry{
		Category: Audiobooks,
		SubType:  "Royalty Share",
		Rule:     note("Royalty split in lieu of PFH – negotiate an escrowed minimum"),
	})

	c.Register(Entry{
		Category: Audiobooks,
		SubType:  "Hybrid – PFH Plus Royalty Share",
		Rule:     perUnit(types.ParamHours, 100, 150, "finished hour"),
		Notes:    "Reduced PFH paired with a royalty percentage.",
	})
}
