// Package output - markdown quote sheet rendering
package output

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownFormatter renders a quote as a markdown table.
type MarkdownFormatter struct{}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render produces the markdown output
func (f *MarkdownFormatter) Render(w io.Writer, result *QuoteResult) error {
	fmt.Fprintln(w, "## Voice-Over Quote")
	fmt.Fprintln(w)

	if result.Entry != nil {
		fmt.Fprintf(w, "**%s**: %s\n\n", escapePipes(result.Entry.Description), result.Entry.Text)
		if result.Notes != "" {
			fmt.Fprintf(w, "> %s\n\n", result.Notes)
		}
	}

	if len(result.Items) > 0 {
		fmt.Fprintln(w, "| Description | Rate |")
		fmt.Fprintln(w, "|---|---|")
		for _, item := range result.Items {
			fmt.Fprintf(w, "| %s | %s |\n", escapePipes(item.Description), item.Rate)
		}
		if result.Total != nil {
			fmt.Fprintf(w, "| **Total** | **%s** |\n", result.Total.Text())
		}
		fmt.Fprintln(w)
	}

	if result.Metadata.Timestamp != "" {
		fmt.Fprintf(w, "_Generated %s_\n", result.Metadata.Timestamp)
	}
	return nil
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
