// Package catalog - telephony rate card entries
package catalog

import "vo-quote/core/types"

func registerTelephony(c *Catalog) {
	c.Register(Entry{
		Category: Telephony,
		SubType:  "IVR / Phone Prompts – Per Prompt",
		Rule:     perUnit(types.ParamPrompts, 10, 15, "prompt"),
	})

	c.Register(Entry{
		Category: Telephony,
		SubType:  "On-Hold Messaging",
		Rule: lookup(types.ParamTerm, map[string]string{
			"1 Month":  "$150–$250",
			"3 Months": "$225–$350",
			"1 Year":   "$300–$500",
		}),
	})

	c.Register(Entry{
		Category: Telephony,
		SubType:  "Voicemail Greeting",
		Rule: lookup(types.ParamType, map[string]string{
			"Personal": "$75",
			"Business": "$150",
		}),
	})
}
