// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Defaults applied by MergeWithDefaults
const (
	DefaultPort                    = 8080
	DefaultMaxUploadBytes          = 10 << 20
	DefaultMinJobDescriptionLength = 50
	DefaultTopKeywords             = 30
	DefaultCORSAllowedOrigin       = "*"
)

// Environment variables that override file values
const (
	EnvPort           = "PORT"
	EnvConfigPath     = "RESUME_MATCHER_CONFIG"
	EnvVocabularyFile = "VOCABULARY_FILE"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or come from CLI flags.
type Config struct {
	// Server
	Port              int    `json:"port,omitempty"`
	MaxUploadBytes    int64  `json:"max_upload_bytes,omitempty"`    // Largest accepted resume upload
	CORSAllowedOrigin string `json:"cors_allowed_origin,omitempty"` // Value of Access-Control-Allow-Origin

	// Analysis
	MinJobDescriptionLength int    `json:"min_job_description_length,omitempty"` // Shortest accepted job description
	TopKeywords             int    `json:"top_keywords,omitempty"`               // Job keywords considered for keyword match
	VocabularyFile          string `json:"vocabulary_file,omitempty"`            // YAML extension of the technical vocabulary

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print stage timings and the analysis report
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides fields with values from the environment.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be a number: %w", EnvPort, err)
		}
		c.Port = port
	}
	if v := getenv(EnvVocabularyFile); v != "" {
		c.VocabularyFile = v
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}
	if c.MinJobDescriptionLength < 0 {
		return fmt.Errorf("config error: 'min_job_description_length' must be non-negative")
	}
	if c.TopKeywords < 0 {
		return fmt.Errorf("config error: 'top_keywords' must be non-negative")
	}

	if c.VocabularyFile != "" {
		if _, err := os.Stat(c.VocabularyFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.VocabularyFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults and then from the package defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.VocabularyFile == "" {
		result.VocabularyFile = defaults.VocabularyFile
	}
	if result.CORSAllowedOrigin == "" {
		result.CORSAllowedOrigin = firstNonEmpty(defaults.CORSAllowedOrigin, DefaultCORSAllowedOrigin)
	}

	// Numeric fields: use default if zero
	if result.Port == 0 {
		result.Port = firstPositive(defaults.Port, DefaultPort)
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = int64(firstPositive(int(defaults.MaxUploadBytes), DefaultMaxUploadBytes))
	}
	if result.MinJobDescriptionLength == 0 {
		result.MinJobDescriptionLength = firstPositive(defaults.MinJobDescriptionLength, DefaultMinJobDescriptionLength)
	}
	if result.TopKeywords == 0 {
		result.TopKeywords = firstPositive(defaults.TopKeywords, DefaultTopKeywords)
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
