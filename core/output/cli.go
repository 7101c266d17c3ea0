// Package output - terminal rendering
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

// CLIFormatter renders a quote for the terminal using pterm tables.
type CLIFormatter struct{}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render produces the terminal output
func (f *CLIFormatter) Render(w io.Writer, result *QuoteResult) error {
	if result.Entry != nil {
		desc := result.Entry.Description
		if desc == "" {
			desc = "Quoted rate"
		}
		fmt.Fprintln(w, desc)

		rate := color.New(color.FgGreen, color.Bold)
		if result.Entry.Informational() {
			rate = color.New(color.FgYellow)
		}
		rate.Fprintln(w, result.Entry.Text)

		if result.Notes != "" {
			color.New(color.Faint).Fprintln(w, result.Notes)
		}
	}

	if len(result.Items) > 0 {
		data := pterm.TableData{{"#", "Description", "Rate"}}
		for i, item := range result.Items {
			data = append(data, []string{fmt.Sprintf("%d", i+1), item.Description, item.Rate})
		}
		if result.Total != nil {
			data = append(data, []string{"", "Total", result.Total.Text()})
		}

		fmt.Fprintln(w)
		if err := pterm.DefaultTable.
			WithHasHeader().
			WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
			WithWriter(w).
			WithData(data).
			Render(); err != nil {
			return err
		}
	}

	return nil
}
