// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the environment variable consulted when no
// --config flag is given.
const EnvironmentVariable = "BUREAU_BLOB_CONFIG"

// Input formats accepted by the encode command.
const (
	InputJSON  = "json"
	InputJSONC = "jsonc"
	InputYAML  = "yaml"
)

// Output formats produced by the decode command.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config is the bureau-blob command configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	// Default: info
	LogLevel string `yaml:"log_level"`

	// Encode configures the encode command.
	Encode EncodeConfig `yaml:"encode"`

	// Decode configures the decode command.
	Decode DecodeConfig `yaml:"decode"`
}

// EncodeConfig configures the encode command.
type EncodeConfig struct {
	// InputFormat is how encode parses its input: json, jsonc
	// (comments and trailing commas allowed), or yaml.
	// Default: json
	InputFormat string `yaml:"input_format"`
}

// DecodeConfig configures the decode command.
type DecodeConfig struct {
	// OutputFormat is how decode prints the value: json or yaml.
	// Default: json
	OutputFormat string `yaml:"output_format"`

	// Pretty indents JSON output. Ignored for yaml.
	// Default: false
	Pretty bool `yaml:"pretty"`
}

// Default returns the built-in configuration used when no file is
// given.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Encode: EncodeConfig{
			InputFormat: InputJSON,
		},
		Decode: DecodeConfig{
			OutputFormat: OutputJSON,
		},
	}
}

// Resolve loads the configuration named by path, or by the
// BUREAU_BLOB_CONFIG environment variable when path is empty. When
// neither names a file the defaults are returned. There is no search
// path: a config file is only ever read when explicitly named.
func Resolve(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvironmentVariable)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path. Values in
// the file are merged over the defaults, ${VAR} references are
// expanded, and the result is validated.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in
// string values.
func (c *Config) expandVariables() {
	c.LogLevel = expandVars(c.LogLevel)
	c.Encode.InputFormat = expandVars(c.Encode.InputFormat)
	c.Decode.OutputFormat = expandVars(c.Decode.OutputFormat)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	inputFormats := []string{InputJSON, InputJSONC, InputYAML}
	if !slices.Contains(inputFormats, c.Encode.InputFormat) {
		errs = append(errs, fmt.Errorf("encode.input_format must be one of: %v", inputFormats))
	}

	outputFormats := []string{OutputJSON, OutputYAML}
	if !slices.Contains(outputFormats, c.Decode.OutputFormat) {
		errs = append(errs, fmt.Errorf("decode.output_format must be one of: %v", outputFormats))
	}

	return errors.Join(errs...)
}

// Level returns LogLevel as a slog.Level.
func (c *Config) Level() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log_level must be one of: [debug info warn error], got %q", c.LogLevel)
	}
}
