// Package output - JSON rendering
package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter renders a quote as indented JSON.
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render produces the JSON output
func (f *JSONFormatter) Render(w io.Writer, result *QuoteResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
