// Package config provides configuration management.
// Files load as JSON, YAML or TOML depending on the extension.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"vo-quote/internal/errors"
	"vo-quote/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version" toml:"version"`

	// Output contains rendering configuration
	Output OutputConfig `json:"output" yaml:"output" toml:"output"`

	// Catalog contains rate card configuration
	Catalog CatalogConfig `json:"catalog" yaml:"catalog" toml:"catalog"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server" yaml:"server" toml:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging" toml:"logging"`
}

// OutputConfig contains rendering settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json, markdown)
	DefaultFormat string `json:"default_format" yaml:"default_format" toml:"default_format"`

	// ShowNotes includes card guidance notes alongside quotes
	ShowNotes bool `json:"show_notes" yaml:"show_notes" toml:"show_notes"`
}

// CatalogConfig contains rate card settings
type CatalogConfig struct {
	// OverridePath points at a rates.hcl file patching the built-in
	// card; empty means the published card is used as shipped
	OverridePath string `json:"override_path" yaml:"override_path" toml:"override_path"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" yaml:"addr" toml:"addr"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowNotes:     true,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file. A missing file yields the
// defaults; an unreadable or malformed one is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrap(errors.TypeConfig, "reading config file", err)
	}

	config := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, errors.Wrap(errors.TypeConfig, "parsing YAML config", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, errors.Wrap(errors.TypeConfig, "parsing TOML config", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, errors.Wrap(errors.TypeConfig, "parsing JSON config", err)
		}
	}

	return config, nil
}

// Save saves configuration to a file as JSON.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.TypeConfig, "creating config directory", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(errors.TypeConfig, "encoding config", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
