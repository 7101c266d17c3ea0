// Package cmd - catalog command
package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"vo-quote/core/catalog"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog [category]",
	Short: "List the rate card categories and services",
	Long: `List the rate card. With no arguments every category is shown;
with a category key its services are listed with their pricing shape.

Examples:
  voquote catalog
  voquote catalog radio`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	card, err := loadCatalog()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		data := pterm.TableData{{"Key", "Category", "Services"}}
		for _, cat := range card.Categories() {
			data = append(data, []string{
				cat.String(),
				cat.Label(),
				fmt.Sprintf("%d", len(card.SubTypes(cat))),
			})
		}
		return pterm.DefaultTable.
			WithHasHeader().
			WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
			WithData(data).
			Render()
	}

	cat, ok := catalog.ParseCategory(args[0])
	if !ok {
		return fmt.Errorf("unknown category: %s", args[0])
	}

	data := pterm.TableData{{"Service", "Pricing"}}
	for _, subType := range card.SubTypes(cat) {
		entry, _ := card.Get(cat, subType)
		data = append(data, []string{subType, ruleSummary(entry.Rule)})
	}
	pterm.DefaultSection.Println(cat.Label())
	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(data).
		Render()
}

func ruleSummary(rule catalog.RuleSpec) string {
	switch rule.Kind {
	case catalog.KindLookup:
		return fmt.Sprintf("by %s (%d options)", rule.Selector, len(rule.Table))
	case catalog.KindPerUnit:
		return fmt.Sprintf("per %s", rule.Unit)
	case catalog.KindBracket:
		return fmt.Sprintf("by %s bracket", rule.Unit)
	case catalog.KindStepped:
		return fmt.Sprintf("first %s plus additional", rule.Unit)
	case catalog.KindComposite:
		return fmt.Sprintf("combined (%d components)", len(rule.Parts))
	case catalog.KindNote:
		return "guidance"
	default:
		return string(rule.Kind)
	}
}

// catalogValidateCmd checks the card for internal consistency
var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the rate card (including overrides)",
	RunE: func(cmd *cobra.Command, args []string) error {
		card, err := loadCatalog()
		if err != nil {
			return err
		}
		if err := card.Validate(); err != nil {
			return err
		}
		pterm.Success.Printf("Card OK: %d entries across %d categories\n",
			card.Len(), len(card.Categories()))
		return nil
	},
}
