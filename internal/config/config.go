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
	CV       string `json:"cv,omitempty"`       // Path to structured CV JSON file
	Job      string `json:"job,omitempty"`      // Path to job context JSON file
	Strategy string `json:"strategy,omitempty"` // Path to custom curation strategy JSON file
	Output   string `json:"output,omitempty"`   // Path to write the curation result JSON

	// Limits
	MaxCharacters      int `json:"max_characters,omitempty"`       // Character budget override
	MaxExperienceItems int `json:"max_experience_items,omitempty"` // Experience item cap override
	MaxEducationItems  int `json:"max_education_items,omitempty"`  // Education item cap override
	MaxSkills          int `json:"max_skills,omitempty"`           // Skill cap override

	// Behavior
	Scorer      string `json:"scorer,omitempty"`       // Alignment scorer: "heuristic" or "llm"
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key (llm scorer only)
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed analysis information
	SkipSchema  bool   `json:"skip_schema,omitempty"`  // Skip JSON Schema validation of inputs
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for run history
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
	if c.MaxCharacters < 0 {
		return fmt.Errorf("config error: 'max_characters' must be non-negative")
	}
	if c.MaxExperienceItems < 0 {
		return fmt.Errorf("config error: 'max_experience_items' must be non-negative")
	}
	if c.MaxEducationItems < 0 {
		return fmt.Errorf("config error: 'max_education_items' must be non-negative")
	}
	if c.MaxSkills < 0 {
		return fmt.Errorf("config error: 'max_skills' must be non-negative")
	}

	if c.Scorer != "" && c.Scorer != "heuristic" && c.Scorer != "llm" {
		return fmt.Errorf("config error: 'scorer' must be \"heuristic\" or \"llm\"")
	}

	// Validate file paths exist (if specified)
	if c.CV != "" {
		if _, err := os.Stat(c.CV); os.IsNotExist(err) {
			return fmt.Errorf("config error: cv file not found: %s", c.CV)
		}
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	if c.Strategy != "" {
		if _, err := os.Stat(c.Strategy); os.IsNotExist(err) {
			return fmt.Errorf("config error: strategy file not found: %s", c.Strategy)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.CV == "" {
		result.CV = defaults.CV
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Strategy == "" {
		result.Strategy = defaults.Strategy
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Scorer == "" {
		result.Scorer = defaults.Scorer
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.MaxCharacters == 0 {
		result.MaxCharacters = defaults.MaxCharacters
	}
	if result.MaxExperienceItems == 0 {
		result.MaxExperienceItems = defaults.MaxExperienceItems
	}
	if result.MaxEducationItems == 0 {
		result.MaxEducationItems = defaults.MaxEducationItems
	}
	if result.MaxSkills == 0 {
		result.MaxSkills = defaults.MaxSkills
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
