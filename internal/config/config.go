// Package config provides configuration loading and validation for the service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the service configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags / environment.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Collaborators
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for AI ranking
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Timeouts (seconds)
	SuggestionTimeoutSeconds int `json:"suggestion_timeout_seconds,omitempty"` // Fuzzy-suggestion collaborator timeout
	RankTimeoutSeconds       int `json:"rank_timeout_seconds,omitempty"`       // AI-ranking collaborator timeout

	// Logging
	LogJSON bool `json:"log_json,omitempty"` // Emit JSON logs instead of console
	Verbose bool `json:"verbose,omitempty"`  // Enable debug logging
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.SuggestionTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'suggestion_timeout_seconds' must be non-negative")
	}
	if c.RankTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'rank_timeout_seconds' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. CLI flags and environment still win over both.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.SuggestionTimeoutSeconds == 0 {
		result.SuggestionTimeoutSeconds = defaults.SuggestionTimeoutSeconds
	}
	if result.RankTimeoutSeconds == 0 {
		result.RankTimeoutSeconds = defaults.RankTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Defaults returns the built-in defaults applied under any config file.
func Defaults() Config {
	return Config{
		Port:                     8080,
		SuggestionTimeoutSeconds: 5,
		RankTimeoutSeconds:       10,
	}
}
