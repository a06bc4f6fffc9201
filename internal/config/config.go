// Package config loads the HCL configuration file used by the wildhand CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Output styles
const (
	StylePretty = "pretty"
	StylePlain  = "plain"
)

// MaxWorkers caps the batch worker pool.
const MaxWorkers = 64

// Config represents the complete CLI configuration
type Config struct {
	LogLevel string          `hcl:"log_level,optional"`
	Workers  int             `hcl:"workers,optional"`
	Output   *OutputSettings `hcl:"output,block"`
}

// OutputSettings controls how results are rendered
type OutputSettings struct {
	Style   string `hcl:"style,optional"`
	Symbols bool   `hcl:"symbols,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Workers:  defaultWorkers(),
		Output: &OutputSettings{
			Style: StylePretty,
		},
	}
}

func defaultWorkers() int {
	return min(runtime.NumCPU(), 8)
}

// Load reads configuration from an HCL file. A missing file yields Default().
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills in defaults for missing values.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if cfg.Workers == 0 {
		cfg.Workers = defaults.Workers
	}
	if cfg.Output == nil {
		cfg.Output = defaults.Output
	}
	if cfg.Output.Style == "" {
		cfg.Output.Style = defaults.Output.Style
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if c.Workers < 1 || c.Workers > MaxWorkers {
		return fmt.Errorf("workers must be between 1 and %d, got %d", MaxWorkers, c.Workers)
	}

	if c.Output == nil {
		return fmt.Errorf("output settings are required")
	}
	switch c.Output.Style {
	case StylePretty, StylePlain:
	default:
		return fmt.Errorf("invalid output style: %s", c.Output.Style)
	}

	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Plain reports whether styling is disabled
func (c *Config) Plain() bool {
	return c.Output != nil && c.Output.Style == StylePlain
}
