// Package config loads the client configuration file used by the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the client configuration.
type Config struct {
	Timeout    string            `yaml:"timeout" json:"timeout"`
	UserAgent  string            `yaml:"userAgent" json:"userAgent"`
	Headers    map[string]string `yaml:"headers" json:"headers,omitempty"`
	BufferHint int               `yaml:"bufferHint" json:"bufferHint,omitempty"`
	LogLevel   string            `yaml:"logLevel" json:"logLevel,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Timeout:  "30s",
		LogLevel: "info",
	}
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data, path)
}

// Parse parses configuration data.
//
// The format is determined by the file extension in path:
//   - .json -> JSON
//   - .yaml, .yml, anything else -> YAML
func Parse(data []byte, path string) (*Config, error) {
	config := Default()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	if err := Validate(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks field values without applying them.
func Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if config.Timeout != "" {
		d, err := time.ParseDuration(config.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", config.Timeout, err)
		}
		if d < 0 {
			return fmt.Errorf("timeout cannot be negative")
		}
	}

	if config.BufferHint < 0 {
		return fmt.Errorf("bufferHint cannot be negative")
	}

	if config.LogLevel != "" {
		validLevels := []string{"debug", "info", "warn", "warning", "error"}
		if !stringInSlice(config.LogLevel, validLevels) {
			return fmt.Errorf("invalid logLevel %q, must be one of: %s",
				config.LogLevel, strings.Join(validLevels, ", "))
		}
	}

	return nil
}

// TimeoutDuration parses the configured timeout. An empty value means
// no timeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(c.Timeout)
}

// stringInSlice checks if a string is in a slice.
func stringInSlice(str string, slice []string) bool {
	for _, s := range slice {
		if s == str {
			return true
		}
	}
	return false
}
