// Package config loads the optional YAML configuration of the chunkmul worker.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chunkmul/matrix"
)

// Config holds all chunkmul configuration. Command-line flags override it.
type Config struct {
	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Output formatting of the result chunk
	Output OutputConfig `yaml:"output"`

	// Input parsing policy
	Input InputConfig `yaml:"input"`
}

// LoggingConfig configures logging. Logs always go to stderr.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// OutputConfig configures how result values are printed.
type OutputConfig struct {
	Format    string `yaml:"format"`    // g, f, e
	Precision int    `yaml:"precision"` // -1 = shortest round-trip
}

// InputConfig configures matrix parsing.
type InputConfig struct {
	ValidateNaNInf bool `yaml:"validate_nan_inf"` // reject NaN/Inf tokens
	MaxElements    int  `yaml:"max_elements"`     // allocation cap per matrix
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Output: OutputConfig{
			Format:    "g",
			Precision: -1,
		},
		Input: InputConfig{
			ValidateNaNInf: matrix.DefaultValidateNaNInf,
			MaxElements:    matrix.DefaultMaxElements,
		},
	}
}

// Load reads configuration from path on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q: want debug, info, warn or error", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q: want json or console", c.Logging.Format))
	}
	if len(c.Output.Format) != 1 || !strings.ContainsAny(c.Output.Format, "efg") {
		errs = append(errs, fmt.Errorf("output.format %q: want e, f or g", c.Output.Format))
	}
	if c.Output.Precision < -1 {
		errs = append(errs, fmt.Errorf("output.precision %d: want >= -1", c.Output.Precision))
	}
	if c.Input.MaxElements <= 0 {
		errs = append(errs, fmt.Errorf("input.max_elements %d: want > 0", c.Input.MaxElements))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}

	return nil
}
