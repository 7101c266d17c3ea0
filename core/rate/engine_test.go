// Package rate - resolution engine tests
// These exercise every rule variant against the shipped card plus the
// decline paths, since nil is the engine's only failure signal.
package rate

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"vo-quote/core/catalog"
	"vo-quote/core/types"
)

func newTestEngine() *Engine {
	return NewEngine(catalog.Default())
}

func assertBounds(t *testing.T, entry *types.RateEntry, low, high float64) {
	t.Helper()
	if entry == nil {
		t.Fatal("expected a resolved entry, got nil")
	}
	if !entry.Low.Equal(decimal.NewFromFloat(low)) {
		t.Errorf("low = %s, want %v", entry.Low, low)
	}
	if !entry.High.Equal(decimal.NewFromFloat(high)) {
		t.Errorf("high = %s, want %v", entry.High, high)
	}
}

// TestResolveTermLookup resolves a classic term-table entry.
func TestResolveTermLookup(t *testing.T) {
	engine := newTestEngine()

	entry := engine.Resolve("radio", "Local – Regional (Terrestrial)", types.Params{
		types.ParamTerm: "1 Year",
	})
	assertBounds(t, entry, 900, 1500)
	if entry.Text != "$900–$1,500" {
		t.Errorf("text = %q, want %q", entry.Text, "$900–$1,500")
	}
	if entry.Description != "Local – Regional (Terrestrial) - 1 Year" {
		t.Errorf("description = %q", entry.Description)
	}
}

// TestResolveTermAlias proves descriptive terms normalize to card keys.
func TestResolveTermAlias(t *testing.T) {
	engine := newTestEngine()

	entry := engine.Resolve("radio", "Local – Regional (Terrestrial)", types.Params{
		types.ParamTerm: "13 weeks",
	})
	assertBounds(t, entry, 600, 1000)
	if entry.Description != "Local – Regional (Terrestrial) - 3 Months" {
		t.Errorf("description = %q, want the canonical term", entry.Description)
	}
}

// TestResolveDeclines covers the nil cases: unknown category, unknown
// sub-type, and a lookup with no selector.
func TestResolveDeclines(t *testing.T) {
	engine := newTestEngine()

	if entry := engine.Resolve("podcast", "Host-Read Ad – Per Spot", nil); entry != nil {
		t.Errorf("unknown category resolved to %+v", entry)
	}
	if entry := engine.Resolve("radio", "No Such Service", nil); entry != nil {
		t.Errorf("unknown sub-type resolved to %+v", entry)
	}
	if entry := engine.Resolve("radio", "Local – Regional (Terrestrial)", nil); entry != nil {
		t.Errorf("missing term resolved to %+v", entry)
	}
	if entry := engine.Resolve("radio", "Local – Regional (Terrestrial)", types.Params{
		types.ParamTerm: "2 Years",
	}); entry != nil {
		t.Errorf("unlisted term resolved to %+v", entry)
	}
}

// TestResolveIsIdempotent proves resolution is a pure function of its
// inputs.
func TestResolveIsIdempotent(t *testing.T) {
	engine := newTestEngine()
	params := types.Params{types.ParamTags: 3}

	first := engine.Resolve("digital_visual", "Digital Tags", params)
	second := engine.Resolve("digital_visual", "Digital Tags", params)
	if first == nil || second == nil {
		t.Fatal("expected both calls to resolve")
	}
	if first.Text != second.Text || !first.Low.Equal(second.Low) || !first.High.Equal(second.High) {
		t.Errorf("repeated resolution diverged: %+v vs %+v", first, second)
	}
}

// TestResolvePerUnit multiplies the published per-tag range.
func TestResolvePerUnit(t *testing.T) {
	engine := newTestEngine()

	entry := engine.Resolve("digital_visual", "Digital Tags", types.Params{
		types.ParamTags: 3,
	})
	assertBounds(t, entry, 525, 675)
	if entry.Description != "Digital Tags - 3 tags" {
		t.Errorf("description = %q", entry.Description)
	}
}

// TestResolvePerUnitFloor proves zero, negative, absent and malformed
// quantities floor at one unit.
func TestResolvePerUnitFloor(t *testing.T) {
	engine := newTestEngine()

	for _, params := range []types.Params{
		{types.ParamTags: 0},
		{types.ParamTags: -2},
		{types.ParamTags: "several"},
		{},
	} {
		entry := engine.Resolve("digital_visual", "Digital Tags", params)
		assertBounds(t, entry, 175, 225)
	}
}

// TestResolveNonFiniteQuantity proves NaN and infinite quantities are
// treated as unreadable and floor instead of reaching decimal math.
func TestResolveNonFiniteQuantity(t *testing.T) {
	engine := newTestEngine()

	for _, params := range []types.Params{
		{types.ParamTags: "NaN"},
		{types.ParamTags: "Inf"},
		{types.ParamTags: "-Inf"},
		{types.ParamTags: math.NaN()},
		{types.ParamTags: math.Inf(1)},
	} {
		entry := engine.Resolve("digital_visual", "Digital Tags", params)
		assertBounds(t, entry, 175, 225)
	}

	// Bracket rules floor the same way instead of overflowing.
	entry := engine.Resolve("video_games",
		"Mobile Game – Educational (Per Finished Minute)",
		types.Params{types.ParamMinutes: math.Inf(1)})
	assertBounds(t, entry, 300, 450)
}

// TestResolvePerUnitHalfHourFloor proves the studio-hour floor is half
// an hour, not one, and that malformed input coerces to that floor
// rather than a full hour.
func TestResolvePerUnitHalfHourFloor(t *testing.T) {
	engine := newTestEngine()

	entry := engine.Resolve("elearning", "Per Raw Studio Hour", types.Params{
		types.ParamHours: 0.25,
	})
	assertBounds(t, entry, 200, 250)

	entry = engine.Resolve("animation", "Dubbing – Per Recording Hour", types.Params{
		types.ParamHours: "abc",
	})
	assertBounds(t, entry, 87.5, 137.5)

	// Absent is not malformed: no value at all still means one hour.
	entry = engine.Resolve("animation", "Dubbing – Per Recording Hour", types.Params{})
	assertBounds(t, entry, 175, 275)
}

// TestResolveStepped prices first hour plus additional hours as single
// amounts.
func TestResolveStepped(t *testing.T) {
	engine := newTestEngine()

	entry := engine.Resolve("non_broadcast",
		"Corporate & Industrial Narration – Recording Time Scale",
		types.Params{types.ParamHours: 3})
	assertBounds(t, entry, 1049, 1049)
	if entry.Text != "$1,049" {
		t.Errorf("text = %q, want collapsed single amount", entry.Text)
	}
}

// TestResolveSteppedHalfHourBlocks counts additional time in half-hour
// blocks, rounding partial blocks up.
func TestResolveSteppedHalfHourBlocks(t *testing.T) {
	engine := newTestEngine()

	// 2.5 hours: first hour plus three half-hour blocks.
	entry := engine.Resolve("museum_tours", "Audio Tour Narration", types.Params{
		types.ParamHours: 2.5,
	})
	assertBounds(t, entry, 825, 1045)

	// 2.75 hours rounds the fourth block up.
	entry = engine.Resolve("museum_tours", "Audio Tour Narration", types.Params{
		types.ParamHours: 2.75,
	})
	assertBounds(t, entry, 950, 1210)

	// One hour or less is just the first-hour price.
	entry = engine.Resolve("museum_tours", "Audio Tour Narration", types.Params{
		types.ParamHours: 1,
	})
	assertBounds(t, entry, 450, 550)
}

// TestResolveBracket covers flat buckets, the interpolating bucket and
// the flat overflow extrapolation.
func TestResolveBracket(t *testing.T) {
	engine := newTestEngine()
	const sub = "Mobile Game – Educational (Per Finished Minute)"

	// Flat bucket.
	entry := engine.Resolve("video_games", sub, types.Params{types.ParamMinutes: 4})
	assertBounds(t, entry, 300, 450)

	// Midpoint of the sliding bucket.
	entry = engine.Resolve("video_games", sub, types.Params{types.ParamMinutes: 7.5})
	assertBounds(t, entry, 550, 775)

	// Top of the sliding bucket.
	entry = engine.Resolve("video_games", sub, types.Params{types.ParamMinutes: 10})
	assertBounds(t, entry, 650, 900)

	// Past the last bucket the card publishes a flat figure, so the
	// bounds collapse.
	entry = engine.Resolve("video_games", sub, types.Params{types.ParamMinutes: 12})
	assertBounds(t, entry, 780, 780)
	if entry.Text != "$780" {
		t.Errorf("overflow text = %q, want single amount", entry.Text)
	}
}

// TestResolveComposite sums the word fee and the optional session time.
func TestResolveComposite(t *testing.T) {
	engine := newTestEngine()
	const sub = "Corporate & Industrial Narration – Per Word Plus Directed Session"

	entry := engine.Resolve("non_broadcast", sub, types.Params{
		types.ParamWords: 1500,
		types.ParamHours: 2,
	})
	assertBounds(t, entry, 625, 875)

	// The session part floors at zero: absent hours cost nothing.
	entry = engine.Resolve("non_broadcast", sub, types.Params{
		types.ParamWords: 1500,
	})
	assertBounds(t, entry, 375, 525)
	if entry.Description != "Corporate & Industrial Narration – Per Word Plus Directed Session - 1,500 words" {
		t.Errorf("description = %q", entry.Description)
	}
}

// TestResolveNote returns guidance with zero bounds.
func TestResolveNote(t *testing.T) {
	engine := newTestEngine()

	entry := engine.Resolve("tv", "Mnemonics", nil)
	if entry == nil {
		t.Fatal("expected an informational entry")
	}
	if !entry.Informational() {
		t.Errorf("expected informational, got bounds %s / %s", entry.Low, entry.High)
	}
	if entry.Text != "Varies greatly – negotiate based on brand and usage" {
		t.Errorf("text = %q", entry.Text)
	}
}

// TestResolveLookupNonNumericCell degrades union-scale cells to
// guidance instead of failing.
func TestResolveLookupNonNumericCell(t *testing.T) {
	engine := newTestEngine()

	entry := engine.Resolve("automotive", "Radio – Dealer Group", types.Params{
		types.ParamTier: "Tier 1",
	})
	if entry == nil {
		t.Fatal("expected an informational entry")
	}
	if !entry.Informational() || entry.Text != "Union Rate" {
		t.Errorf("entry = %+v, want informational Union Rate", entry)
	}

	// Numeric tiers still resolve normally.
	entry = engine.Resolve("automotive", "Radio – Dealer Group", types.Params{
		types.ParamTier: "Tier 3",
	})
	assertBounds(t, entry, 750, 1250)
}

// TestResolveSingleValueLookup collapses equal bounds in the display.
func TestResolveSingleValueLookup(t *testing.T) {
	engine := newTestEngine()

	entry := engine.Resolve("telephony", "Voicemail Greeting", types.Params{
		types.ParamType: "Business",
	})
	assertBounds(t, entry, 150, 150)
	if entry.Text != "$150" {
		t.Errorf("text = %q, want %q", entry.Text, "$150")
	}
}

// TestResolveNilEngine proves the nil guards hold.
func TestResolveNilEngine(t *testing.T) {
	var engine *Engine
	if entry := engine.Resolve("radio", "Radio Tags", nil); entry != nil {
		t.Errorf("nil engine resolved to %+v", entry)
	}
}
