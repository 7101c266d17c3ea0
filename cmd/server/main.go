// Package main - Entry point for the voquote API server
package main

import (
	"flag"
	"fmt"
	"os"

	"vo-quote/api"
	"vo-quote/core/catalog"
	"vo-quote/core/rate"
	"vo-quote/internal/config"
	"vo-quote/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", "", "listen address (overrides config)")
	cfgPath := flag.String("config", "", "config file path")
	flag.Parse()

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}
	cfg := config.Get()
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	card := catalog.Default()
	if path := cfg.Catalog.OverridePath; path != "" {
		if err := card.ApplyOverrides(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error applying card overrides: %v\n", err)
			os.Exit(1)
		}
	}
	if err := card.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid rate card: %v\n", err)
		os.Exit(1)
	}

	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}

	server := api.NewServer(rate.NewEngine(card), version)
	if err := server.ListenAndServe(listen); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
