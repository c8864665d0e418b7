// SPDX-License-Identifier: MIT

// Package config holds the YAML configuration of the sqmatrix console program.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dispatch modes.
const (
	DispatchChain  = "chain"  // handlers linked in sequence, substring matching
	DispatchSwitch = "switch" // whitespace tokens routed by a switch to delegates
)

// Environment overrides.
const (
	EnvDispatch = "SQMATRIX_DISPATCH"
	EnvLogLevel = "SQMATRIX_LOG_LEVEL"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all sqmatrix configuration.
type Config struct {
	// Dispatch selects the command dispatcher: chain or switch.
	Dispatch string `yaml:"dispatch"`

	// AutoFill replaces typed elements with random ones.
	AutoFill AutoFillConfig `yaml:"autofill"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Output rendering
	Output OutputConfig `yaml:"output"`
}

// AutoFillConfig configures random matrix generation.
type AutoFillConfig struct {
	Enabled bool  `yaml:"enabled"`
	Min     int   `yaml:"min"`  // inclusive
	Max     int   `yaml:"max"`  // exclusive
	Seed    int64 `yaml:"seed"` // 0 = time-seeded
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// OutputConfig configures console rendering.
type OutputConfig struct {
	Color bool `yaml:"color"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Dispatch: DispatchChain,
		AutoFill: AutoFillConfig{
			Enabled: false,
			Min:     -10,
			Max:     10,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
		Output: OutputConfig{
			Color: false,
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults; an empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv(EnvDispatch)); v != "" {
		c.Dispatch = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	switch c.Dispatch {
	case DispatchChain, DispatchSwitch:
	default:
		return fmt.Errorf("%w: dispatch %q (want %s or %s)", ErrInvalidConfig, c.Dispatch, DispatchChain, DispatchSwitch)
	}
	if c.AutoFill.Min >= c.AutoFill.Max {
		return fmt.Errorf("%w: autofill range [%d, %d) is empty", ErrInvalidConfig, c.AutoFill.Min, c.AutoFill.Max)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging level %q", ErrInvalidConfig, c.Logging.Level)
	}

	return nil
}
