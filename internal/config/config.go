// Package config handles the flat warden configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied where the config file is silent.
const (
	DefaultStateFile            = "orchestration_state.md"
	DefaultPollIntervalMinutes  = 15
	DefaultWarningWindowMinutes = 10
	DefaultTimeoutSeconds       = 10
)

// Config represents the flat warden configuration
type Config struct {
	Version              string `json:"version"`
	StateFile            string `json:"state_file,omitempty"`             // path to the orchestration state document
	MessagingEndpoint    string `json:"messaging_endpoint,omitempty"`     // base URL of the agent messaging service
	TrackerRepo          string `json:"tracker_repo,omitempty"`           // owner/name for gh issue commands
	TrackerProject       string `json:"tracker_project,omitempty"`        // gh project number
	TrackerOwner         string `json:"tracker_owner,omitempty"`          // project owner, defaults to repo owner
	PollIntervalMinutes  int    `json:"poll_interval_minutes,omitempty"`  // status-check cadence
	WarningWindowMinutes int    `json:"warning_window_minutes,omitempty"` // due-soon lead time
	TimeoutSeconds       int    `json:"timeout_seconds,omitempty"`        // collaborator call timeout
}

// LoadConfig reads .warden/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".warden", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadOrDefault reads the config from dir, falling back to defaults when no
// config file exists. Read-only commands use this so they work anywhere.
func LoadOrDefault(dir string) *Config {
	cfg, err := LoadConfig(dir)
	if err != nil {
		cfg = &Config{Version: "1"}
		cfg.applyDefaults()
	}
	return cfg
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	wardenDir := filepath.Join(dir, ".warden")
	if err := os.MkdirAll(wardenDir, 0755); err != nil {
		return fmt.Errorf("failed to create .warden dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(wardenDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.StateFile == "" {
		c.StateFile = DefaultStateFile
	}
	if c.PollIntervalMinutes <= 0 {
		c.PollIntervalMinutes = DefaultPollIntervalMinutes
	}
	if c.WarningWindowMinutes <= 0 {
		c.WarningWindowMinutes = DefaultWarningWindowMinutes
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
}
