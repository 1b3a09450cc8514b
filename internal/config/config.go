// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Backend
	BaseURL string `json:"base_url,omitempty"` // Interview backend base URL
	Token   string `json:"token,omitempty"`    // Bearer token (overrides the stored credentials)

	// Paths
	CredentialsPath string `json:"credentials_path,omitempty"` // Where login credentials are stored

	// Session
	DurationSeconds int    `json:"duration_seconds,omitempty"` // Interview time budget in seconds
	Difficulty      int    `json:"difficulty,omitempty"`       // Question difficulty (1-10)
	Role            string `json:"role,omitempty"`             // Role label used when the posting has none

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.DurationSeconds < 0 {
		return fmt.Errorf("config error: 'duration_seconds' must be non-negative")
	}
	if c.Difficulty < 0 || c.Difficulty > 10 {
		return fmt.Errorf("config error: 'difficulty' must be between 0 and 10")
	}

	if c.CredentialsPath != "" {
		if _, err := os.Stat(filepath.Dir(c.CredentialsPath)); os.IsNotExist(err) {
			return fmt.Errorf("config error: credentials directory not found: %s", filepath.Dir(c.CredentialsPath))
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.Token == "" {
		result.Token = defaults.Token
	}
	if result.CredentialsPath == "" {
		result.CredentialsPath = defaults.CredentialsPath
	}
	if result.Role == "" {
		result.Role = defaults.Role
	}

	// Int fields: use default if zero
	if result.DurationSeconds == 0 {
		result.DurationSeconds = defaults.DurationSeconds
	}
	if result.Difficulty == 0 {
		result.Difficulty = defaults.Difficulty
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
