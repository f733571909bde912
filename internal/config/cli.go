package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// OutputFormat selects how the CLI renders results
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// IsValid checks if the format is supported
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// CLIConfig holds settings shared by every patterns command
type CLIConfig struct {
	// OutputFormat is how results are rendered: text, json or yaml
	// Default: text
	OutputFormat OutputFormat `yaml:"output_format"`

	// NoColor disables ANSI colors in text output
	// Default: false
	NoColor bool `yaml:"no_color"`

	// LogLevel is the minimum zap level written to stderr
	// Options: debug, info, warn, error
	// Default: info
	LogLevel string `yaml:"log_level"`
}

// DefaultCLIConfig returns the default CLI configuration
func DefaultCLIConfig() CLIConfig {
	return CLIConfig{
		OutputFormat: FormatText,
		NoColor:      false,
		LogLevel:     "info",
	}
}

// Validate checks if the configuration has valid values
func (c CLIConfig) Validate() error {
	if !c.OutputFormat.IsValid() {
		return fmt.Errorf("output_format must be 'text', 'json' or 'yaml' (got %q)", c.OutputFormat)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel into a zap level
func (c CLIConfig) Level() (zapcore.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("log_level must be one of debug, info, warn, error (got %q)", c.LogLevel)
}

// String returns a human-readable representation of the config
func (c CLIConfig) String() string {
	return fmt.Sprintf("CLIConfig{OutputFormat: %s, NoColor: %t, LogLevel: %s}",
		c.OutputFormat, c.NoColor, c.LogLevel)
}

// ApplyEnv overrides cfg with any of these environment variables that are set:
//   - PATTERNS_OUTPUT_FORMAT: text, json or yaml
//   - PATTERNS_NO_COLOR: disable colored output (bool)
//   - PATTERNS_LOG_LEVEL: debug, info, warn or error
func ApplyEnv(cfg *CLIConfig) error {
	var format string
	if err := parseEnvString("PATTERNS_OUTPUT_FORMAT", &format); err != nil {
		return err
	}
	if format != "" {
		cfg.OutputFormat = OutputFormat(strings.ToLower(format))
	}
	if err := parseEnvBool("PATTERNS_NO_COLOR", &cfg.NoColor); err != nil {
		return err
	}
	if err := parseEnvString("PATTERNS_LOG_LEVEL", &cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

// CLIConfigFromEnv creates a CLIConfig from environment variables, falling
// back to defaults. Returns an error if any variable has an invalid value.
func CLIConfigFromEnv() (CLIConfig, error) {
	cfg := DefaultCLIConfig()
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid CLI configuration from environment: %w", err)
	}
	return cfg, nil
}

// LoadFile reads a YAML config file on top of the defaults. Keys missing
// from the file keep their default values; unknown keys are rejected.
func LoadFile(path string) (CLIConfig, error) {
	cfg := DefaultCLIConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing YAML: %w", err)
	}
	return cfg, nil
}

// Load resolves the effective configuration: defaults, then the YAML file at
// path (skipped when path is empty), then environment variables.
func Load(path string) (CLIConfig, error) {
	cfg := DefaultCLIConfig()
	if path != "" {
		var err error
		if cfg, err = LoadFile(path); err != nil {
			return cfg, err
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid CLI configuration: %w", err)
	}
	return cfg, nil
}
