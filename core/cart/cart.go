// Package cart accumulates resolved rate entries into a running quote.
// Items are frozen copies of the entry at the moment it was added; the
// cart never re-derives them from live calculator state.
package cart

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"vo-quote/core/types"
)

// Item is a frozen line of the quote.
type Item struct {
	// ID is a collision-resistant local identifier with no external
	// meaning
	ID string `json:"id"`

	// Description labels the sub-type and parameters of the line
	Description string `json:"description"`

	// Rate is the display text captured at add time
	Rate string `json:"rate"`

	// Low and High are the captured bounds
	Low  decimal.Decimal `json:"low"`
	High decimal.Decimal `json:"high"`
}

// Total is the elementwise sum over the cart, derived on demand.
type Total struct {
	Low   decimal.Decimal `json:"low"`
	High  decimal.Decimal `json:"high"`
	Items int             `json:"items"`
}

// Text renders the total. An empty cart always shows the zero range;
// otherwise equal bounds collapse to a single amount.
func (t Total) Text() string {
	if t.Items == 0 {
		return types.FormatUSD(decimal.Zero) + types.RangeSeparator + types.FormatUSD(decimal.Zero)
	}
	return types.FormatRange(t.Low, t.High)
}

// Cart is an ordered collection of quote lines. The mutex exists only
// because the HTTP server is concurrent; the quoting model itself is
// one user, one session.
type Cart struct {
	mu    sync.Mutex
	items []Item
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add freezes an entry into the cart. Nil entries and informational
// entries (both bounds zero) are refused; the second return reports
// whether a line was added.
func (c *Cart) Add(entry *types.RateEntry) (Item, bool) {
	if entry == nil || entry.Informational() {
		return Item{}, false
	}

	item := Item{
		ID:          uuid.NewString(),
		Description: entry.Description,
		Rate:        entry.Text,
		Low:         entry.Low,
		High:        entry.High,
	}

	c.mu.Lock()
	c.items = append(c.items, item)
	c.mu.Unlock()
	return item, true
}

// Remove deletes the item with the given id; it reports whether an
// item was found.
func (c *Cart) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns the lines in insertion order.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Total sums the lines elementwise.
func (c *Cart) Total() Total {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := Total{Low: decimal.Zero, High: decimal.Zero, Items: len(c.items)}
	for _, item := range c.items {
		t.Low = t.Low.Add(item.Low)
		t.High = t.High.Add(item.High)
	}
	return t
}
