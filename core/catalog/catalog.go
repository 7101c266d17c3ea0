// Package catalog - the authoritative VO rate card
// Defines the canonical categories and sub-types with their pricing
// rules. This is the source of truth the resolution engine queries; the
// catalog itself never computes a price.
package catalog

// Category identifies a service category of the rate guide.
type Category string

const (
	Radio         Category = "radio"
	TV            Category = "tv"
	DigitalVisual Category = "digital_visual"
	NonBroadcast  Category = "non_broadcast"
	ELearning     Category = "elearning"
	Audiobooks    Category = "audiobooks"
	VideoGames    Category = "video_games"
	Telephony     Category = "telephony"
	Automotive    Category = "automotive"
	Promo         Category = "promo"
	Animation     Category = "animation"
	MuseumTours   Category = "museum_tours"
	Podcasts      Category = "podcasts"
)

// categoryOrder fixes the enumeration order of the card.
var categoryOrder = []Category{
	Radio, TV, DigitalVisual, NonBroadcast, ELearning, Audiobooks,
	VideoGames, Telephony, Automotive, Promo, Animation, MuseumTours,
	Podcasts,
}

// categoryLabels maps category keys to display labels.
var categoryLabels = map[Category]string{
	Radio:         "Radio",
	TV:            "TV / Broadcast",
	DigitalVisual: "Digital / Visual",
	NonBroadcast:  "Non-Broadcast",
	ELearning:     "E-Learning",
	Audiobooks:    "Audiobooks",
	VideoGames:    "Video Games",
	Telephony:     "Telephony",
	Automotive:    "Automotive",
	Promo:         "Promo & Trailer",
	Animation:     "Animation & Dubbing",
	MuseumTours:   "Museum & Guided Tours",
	Podcasts:      "Podcasts",
}

// String returns the category key.
func (c Category) String() string {
	return string(c)
}

// Label returns the display label for the category.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// ParseCategory maps a key to a known category.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	_, ok := categoryLabels[c]
	return c, ok
}

// Entry is one card entry: a (category, sub-type) pair with its rule.
type Entry struct {
	Category Category
	SubType  string
	Rule     RuleSpec

	// Notes is optional guidance shown alongside the computed rate.
	Notes string
}

// Catalog holds the card entries keyed by category and sub-type.
type Catalog struct {
	entries map[string]*Entry
	order   map[Category][]string
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		entries: make(map[string]*Entry),
		order:   make(map[Category][]string),
	}
}

// Default returns the catalog pre-loaded with the published rate card.
func Default() *Catalog {
	c := New()
	registerRadio(c)
	registerTV(c)
	registerDigital(c)
	registerNonBroadcast(c)
	registerELearning(c)
	registerAudiobooks(c)
	registerVideoGames(c)
	registerTelephony(c)
	registerAutomotive(c)
	registerMisc(c)
	return c
}

func entryKey(cat Category, subType string) string {
	return string(cat) + ":" + subType
}

// Register adds an entry to the catalog, replacing any previous entry
// for the same (category, sub-type).
func (c *Catalog) Register(e Entry) {
	key := entryKey(e.Category, e.SubType)
	if _, exists := c.entries[key]; !exists {
		c.order[e.Category] = append(c.order[e.Category], e.SubType)
	}
	c.entries[key] = &e
}

// Get returns the entry for a (category, sub-type) pair.
func (c *Catalog) Get(cat Category, subType string) (*Entry, bool) {
	e, ok := c.entries[entryKey(cat, subType)]
	return e, ok
}

// Categories returns the categories that have at least one entry, in
// card order.
func (c *Catalog) Categories() []Category {
	var out []Category
	for _, cat := range categoryOrder {
		if len(c.order[cat]) > 0 {
			out = append(out, cat)
		}
	}
	return out
}

// SubTypes returns the sub-types of a category in registration order.
func (c *Catalog) SubTypes(cat Category) []string {
	src := c.order[cat]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
