package config

import (
	"testing"
)

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()

	in := &Config{
		Version:             "1",
		StateFile:           "docs/orchestration_state.md",
		MessagingEndpoint:   "http://localhost:8377",
		TrackerRepo:         "example/warden",
		PollIntervalMinutes: 30,
	}
	if err := SaveConfig(dir, in); err != nil {
		t.Fatal(err)
	}

	out, err := LoadConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if out.StateFile != "docs/orchestration_state.md" || out.MessagingEndpoint != "http://localhost:8377" {
		t.Errorf("config: %+v", out)
	}
	if out.PollIntervalMinutes != 30 {
		t.Errorf("explicit interval overridden: %d", out.PollIntervalMinutes)
	}
	// Unset fields pick up defaults.
	if out.WarningWindowMinutes != DefaultWarningWindowMinutes || out.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("defaults not applied: %+v", out)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Error("missing config should error")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg := LoadOrDefault(t.TempDir())
	if cfg.StateFile != DefaultStateFile {
		t.Errorf("state file = %s", cfg.StateFile)
	}
	if cfg.PollIntervalMinutes != DefaultPollIntervalMinutes {
		t.Errorf("interval = %d", cfg.PollIntervalMinutes)
	}
}
