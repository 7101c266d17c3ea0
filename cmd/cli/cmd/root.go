// Package cmd provides the CLI commands for voquote.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vo-quote/internal/config"
	"vo-quote/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "voquote",
	Short: "Quote voice-over work from the published non-union rate guide",
	Long: `voquote resolves voice-over rates from the published non-union
rate guide and assembles multi-service quotes.

Rates are quoted as ranges; final fees remain a negotiation between
talent and client.

Examples:
  voquote catalog
  voquote quote radio "Local – Regional (Terrestrial)" --term "1 Year"
  voquote quote digital_visual "Digital Tags" --tags 3 --format json
  voquote quote --interactive`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.voquote.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("voquote version 0.1.0")
	},
}

// configCmd shows the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		fmt.Printf("version:        %s\n", cfg.Version)
		fmt.Printf("output format:  %s\n", cfg.Output.DefaultFormat)
		fmt.Printf("show notes:     %t\n", cfg.Output.ShowNotes)
		fmt.Printf("card override:  %s\n", orDash(cfg.Catalog.OverridePath))
		fmt.Printf("server addr:    %s\n", cfg.Server.Addr)
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
