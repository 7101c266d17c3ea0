// Package cmd - quote command
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"vo-quote/core/cart"
	"vo-quote/core/catalog"
	"vo-quote/core/export"
	"vo-quote/core/output"
	"vo-quote/core/rate"
	"vo-quote/core/types"
	"vo-quote/internal/config"
	"vo-quote/internal/logging"
)

var (
	outputFormat string
	exportPath   string
	interactive  bool

	flagTerm     string
	flagTier     string
	flagType     string
	flagTags     float64
	flagWords    float64
	flagHours    float64
	flagMinutes  float64
	flagSpots    float64
	flagPrompts  float64
	flagVoices   float64
	flagEpisodes float64
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote [category] [sub-type]",
	Short: "Resolve a rate or build a multi-service quote",
	Long: `Resolve the rate for one card entry, or build a quote from
several entries interactively.

Category keys come from 'voquote catalog'. Usage parameters are passed
as flags; which ones apply depends on the entry.

Examples:
  voquote quote radio "Local – Regional (Terrestrial)" --term "1 Year"
  voquote quote digital_visual "Digital Tags" --tags 3
  voquote quote non_broadcast "Corporate & Industrial Narration – Recording Time Scale" --hours 3
  voquote quote --interactive --export quote.pdf`,
	Args: cobra.MaximumNArgs(2),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
	quoteCmd.Flags().StringVarP(&exportPath, "export", "e", "", "export quote sheet to a file (.csv, .json, .pdf)")
	quoteCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "build a quote interactively")

	quoteCmd.Flags().StringVar(&flagTerm, "term", "", "usage term (e.g. \"3 Months\", \"1 Year\")")
	quoteCmd.Flags().StringVar(&flagTier, "tier", "", "market or brand tier")
	quoteCmd.Flags().StringVar(&flagType, "type", "", "service variant (e.g. \"Business\")")
	quoteCmd.Flags().Float64Var(&flagTags, "tags", 0, "number of tags")
	quoteCmd.Flags().Float64Var(&flagWords, "words", 0, "word count")
	quoteCmd.Flags().Float64Var(&flagHours, "hours", 0, "hours (halves allowed)")
	quoteCmd.Flags().Float64Var(&flagMinutes, "minutes", 0, "finished minutes")
	quoteCmd.Flags().Float64Var(&flagSpots, "spots", 0, "number of spots")
	quoteCmd.Flags().Float64Var(&flagPrompts, "prompts", 0, "number of prompts")
	quoteCmd.Flags().Float64Var(&flagVoices, "voices", 0, "number of voices")
	quoteCmd.Flags().Float64Var(&flagEpisodes, "episodes", 0, "number of episodes")
}

func runQuote(cmd *cobra.Command, args []string) error {
	card, err := loadCatalog()
	if err != nil {
		return err
	}
	engine := rate.NewEngine(card)

	if interactive {
		return runInteractive(engine)
	}

	if len(args) != 2 {
		return fmt.Errorf("expected category and sub-type arguments (or --interactive)")
	}

	params := paramsFromFlags(cmd)
	entry := engine.Resolve(args[0], args[1], params)
	if entry == nil {
		return fmt.Errorf("no rate for %s / %s with the given parameters; run 'voquote catalog %s' to list sub-types", args[0], args[1], args[0])
	}

	result := &output.QuoteResult{
		Entry:    entry,
		Metadata: resultMetadata(),
	}
	if cat, ok := catalog.ParseCategory(args[0]); ok && config.Get().Output.ShowNotes {
		if e, found := card.Get(cat, args[1]); found {
			result.Notes = e.Notes
		}
	}

	if err := render(result); err != nil {
		return err
	}

	if exportPath != "" {
		c := cart.New()
		if _, added := c.Add(entry); !added {
			return fmt.Errorf("informational rates cannot be exported as a quote sheet")
		}
		return exportCart(c)
	}
	return nil
}

// paramsFromFlags collects only the flags the caller actually set, so
// absent quantities keep their engine defaults.
func paramsFromFlags(cmd *cobra.Command) types.Params {
	params := types.Params{}
	set := func(name, key string, value any) {
		if cmd.Flags().Changed(name) {
			params[key] = value
		}
	}
	set("term", types.ParamTerm, flagTerm)
	set("tier", types.ParamTier, flagTier)
	set("type", types.ParamType, flagType)
	set("tags", types.ParamTags, flagTags)
	set("words", types.ParamWords, flagWords)
	set("hours", types.ParamHours, flagHours)
	set("minutes", types.ParamMinutes, flagMinutes)
	set("spots", types.ParamSpots, flagSpots)
	set("prompts", types.ParamPrompts, flagPrompts)
	set("voices", types.ParamVoices, flagVoices)
	set("episodes", types.ParamEpisodes, flagEpisodes)
	return params
}

func render(result *output.QuoteResult) error {
	format := output.Format(config.Get().Output.DefaultFormat)
	if outputFormat != "" {
		format = output.Format(outputFormat)
	}
	formatter, err := output.DefaultRegistry().Get(format)
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, result)
}

func exportCart(c *cart.Cart) error {
	sheet := export.NewSheet(c)
	if err := sheet.Write(exportPath); err != nil {
		return err
	}
	logging.Sugar.Infow("quote sheet exported", "path", exportPath, "items", c.Len())
	fmt.Printf("\nQuote sheet written to %s\n", exportPath)
	return nil
}

func resultMetadata() output.Metadata {
	return output.Metadata{
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   "0.1.0",
	}
}

// runInteractive walks the card one selection at a time, accumulating
// quote lines until the user is done.
func runInteractive(engine *rate.Engine) error {
	card := engine.Catalog()
	c := cart.New()

	pterm.DefaultHeader.Println("Voice-Over Rate Quoting")

	for {
		cat, err := pickCategory(card)
		if err != nil {
			return err
		}

		subType, err := pterm.DefaultInteractiveSelect.
			WithOptions(card.SubTypes(cat)).
			WithMaxHeight(12).
			Show("Service")
		if err != nil {
			return err
		}

		entry, _ := card.Get(cat, subType)
		params, err := promptParams(entry.Rule)
		if err != nil {
			return err
		}

		resolved := engine.Resolve(cat.String(), subType, params)
		switch {
		case resolved == nil:
			pterm.Warning.Println("That selection does not resolve to a rate.")
		case resolved.Informational():
			pterm.Info.Printf("%s: %s\n", resolved.Description, resolved.Text)
			if entry.Notes != "" {
				pterm.Println(pterm.Gray(entry.Notes))
			}
		default:
			item, _ := c.Add(resolved)
			pterm.Success.Printf("Added: %s at %s\n", item.Description, item.Rate)
			if entry.Notes != "" && config.Get().Output.ShowNotes {
				pterm.Println(pterm.Gray(entry.Notes))
			}
		}

		again, err := pterm.DefaultInteractiveConfirm.
			WithDefaultValue(true).
			Show("Add another service?")
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	result := &output.QuoteResult{
		Items:    c.Items(),
		Metadata: resultMetadata(),
	}
	total := c.Total()
	result.Total = &total
	if err := render(result); err != nil {
		return err
	}

	if exportPath == "" && c.Len() > 0 {
		wantExport, err := pterm.DefaultInteractiveConfirm.
			Show("Export the quote sheet?")
		if err != nil {
			return err
		}
		if wantExport {
			exportPath, err = pterm.DefaultInteractiveTextInput.
				WithDefaultValue("quote.pdf").
				Show("Output file (.csv, .json, .pdf)")
			if err != nil {
				return err
			}
		}
	}
	if exportPath != "" && c.Len() > 0 {
		return exportCart(c)
	}
	return nil
}

func pickCategory(card *catalog.Catalog) (catalog.Category, error) {
	cats := card.Categories()
	labels := make([]string, len(cats))
	byLabel := make(map[string]catalog.Category, len(cats))
	for i, cat := range cats {
		labels[i] = cat.Label()
		byLabel[cat.Label()] = cat
	}

	picked, err := pterm.DefaultInteractiveSelect.
		WithOptions(labels).
		WithMaxHeight(len(labels)).
		Show("Category")
	if err != nil {
		return "", err
	}
	return byLabel[picked], nil
}

// promptParams asks only for the inputs the entry's rule consumes.
func promptParams(rule catalog.RuleSpec) (types.Params, error) {
	params := types.Params{}
	if err := promptRule(rule, params); err != nil {
		return nil, err
	}
	return params, nil
}

func promptRule(rule catalog.RuleSpec, params types.Params) error {
	switch rule.Kind {
	case catalog.KindLookup:
		options := make([]string, 0, len(rule.Table))
		for key := range rule.Table {
			options = append(options, key)
		}
		value, err := pterm.DefaultInteractiveSelect.
			WithOptions(options).
			Show(selectorPrompt(rule.Selector))
		if err != nil {
			return err
		}
		params[rule.Selector] = value

	case catalog.KindPerUnit, catalog.KindBracket, catalog.KindStepped:
		if _, done := params[rule.Quantity]; done {
			return nil
		}
		raw, err := pterm.DefaultInteractiveTextInput.
			WithDefaultValue("1").
			Show(quantityPrompt(rule))
		if err != nil {
			return err
		}
		qty, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			pterm.Warning.Println("Not a number, using 1.")
			qty = 1
		}
		params[rule.Quantity] = qty

	case catalog.KindComposite:
		for _, part := range rule.Parts {
			if err := promptRule(part, params); err != nil {
				return err
			}
		}

	case catalog.KindNote:
		// Nothing to ask.
	}
	return nil
}

func selectorPrompt(selector string) string {
	switch selector {
	case types.ParamTerm:
		return "Usage term"
	case types.ParamTier:
		return "Tier"
	case types.ParamType:
		return "Type"
	default:
		return selector
	}
}

func quantityPrompt(rule catalog.RuleSpec) string {
	unit := rule.Unit
	if unit == "" {
		unit = "unit"
	}
	return fmt.Sprintf("How many (%ss)?", unit)
}

// loadCatalog builds the card, applying any configured override file.
func loadCatalog() (*catalog.Catalog, error) {
	card := catalog.Default()
	if path := config.Get().Catalog.OverridePath; path != "" {
		if err := card.ApplyOverrides(path); err != nil {
			return nil, err
		}
		logging.Sugar.Debugw("card overrides applied", "path", path)
	}
	return card, nil
}
