// Package config loads settings for the schematic command from YAML,
// with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration validation.
var (
	// ErrBadFormat indicates an unknown output format.
	ErrBadFormat = errors.New("config: unknown output format")
	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("config: workers must be > 0")
)

// Config holds all schematic command configuration.
type Config struct {
	// Output format: text, yaml or json.
	Format string `yaml:"format"`

	// Detail adds per-number and per-gear listings to reports.
	Detail bool `yaml:"detail"`

	// Workers bounds how many inputs are solved concurrently.
	Workers int `yaml:"workers"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // json, console
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Format:  "text",
		Workers: 4,
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults; an empty path skips the file entirely. Environment overrides
// are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies SCHEMATIC_FORMAT and SCHEMATIC_WORKERS.
func (c *Config) applyEnvOverrides() error {
	if f := os.Getenv("SCHEMATIC_FORMAT"); f != "" {
		c.Format = f
	}
	if w := os.Getenv("SCHEMATIC_WORKERS"); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil {
			return fmt.Errorf("SCHEMATIC_WORKERS=%q: %w", w, err)
		}
		c.Workers = n
	}
	return nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "yaml", "json":
	default:
		return fmt.Errorf("%q: %w", c.Format, ErrBadFormat)
	}
	if c.Workers <= 0 {
		return ErrBadWorkers
	}
	return nil
}
