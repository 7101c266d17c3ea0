// Package main - Entry point for the voquote CLI
package main

import (
	"os"

	"vo-quote/cmd/cli/cmd"
	"vo-quote/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
