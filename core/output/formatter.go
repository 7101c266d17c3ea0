// Package output provides output formatting for quotes.
// This package produces human and machine-readable renderings; it never
// computes prices.
package output

import (
	"io"
	"sync"

	"vo-quote/core/cart"
	"vo-quote/core/types"
	"vo-quote/internal/errors"
)

// Format represents an output format type
type Format string

const (
	// FormatCLI is a human-readable terminal rendering
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown quote sheet
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *QuoteResult) error
}

// QuoteResult is the complete quoting output: a freshly resolved entry,
// the accumulated quote lines, or both.
type QuoteResult struct {
	// Entry is the most recently resolved rate, if any
	Entry *types.RateEntry `json:"entry,omitempty"`

	// Notes is the card guidance for the resolved entry
	Notes string `json:"notes,omitempty"`

	// Items are the accumulated quote lines
	Items []cart.Item `json:"items,omitempty"`

	// Total is the running total over Items
	Total *cart.Total `json:"total,omitempty"`

	// Metadata carries execution context
	Metadata Metadata `json:"metadata"`
}

// Metadata carries execution context for a rendering.
type Metadata struct {
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// Registry holds the available formatters.
type Registry struct {
	mu         sync.RWMutex
	formatters map[Format]Formatter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[Format]Formatter)}
}

// Register adds a formatter, replacing any previous one for its format.
func (r *Registry) Register(f Formatter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formatters[f.Format()] = f
}

// Get returns the formatter for a format name.
func (r *Registry) Get(format Format) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formatters[format]
	if !ok {
		return nil, errors.Newf(errors.TypeInput, "unknown output format: %s", format)
	}
	return f, nil
}

// DefaultRegistry returns a registry with the built-in formatters.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CLIFormatter{})
	r.Register(&JSONFormatter{})
	r.Register(&MarkdownFormatter{})
	return r
}
