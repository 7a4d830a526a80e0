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
	// Paths
	Resume string `json:"resume,omitempty"` // Path to resume text file
	Job    string `json:"job,omitempty"`    // Path to job description text or HTML file

	// Scoring
	Role          string             `json:"role,omitempty"`           // Target job role for weight selection
	CustomWeights map[string]float64 `json:"custom_weights,omitempty"` // Component weight overrides

	// Tuning
	MinFeedbackCount int     `json:"min_feedback_count,omitempty"` // Feedback records required before tuning
	WeightVariance   float64 `json:"weight_variance,omitempty"`    // Perturbation for adaptive weight trials (0.0-0.5)

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	AIInsights  bool   `json:"ai_insights,omitempty"`  // Enable AI suggestions and summary
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
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
	if c.MinFeedbackCount < 0 {
		return fmt.Errorf("config error: 'min_feedback_count' must be non-negative")
	}
	if c.WeightVariance < 0 || c.WeightVariance > 0.5 {
		return fmt.Errorf("config error: 'weight_variance' must be between 0.0 and 0.5")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if len(result.CustomWeights) == 0 {
		result.CustomWeights = defaults.CustomWeights
	}

	// Int fields: use default if zero
	if result.MinFeedbackCount == 0 {
		result.MinFeedbackCount = defaults.MinFeedbackCount
	}

	// Float fields
	if result.WeightVariance == 0 {
		result.WeightVariance = defaults.WeightVariance
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
