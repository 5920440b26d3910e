package cliconfig

import (
	"testing"
)

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("MBEXPORT_CATEGORY", "room")
	t.Setenv("MBEXPORT_LOCATION", "DB03")
	t.Setenv("MBEXPORT_BATCH_SIZE", "40")
	t.Setenv("MBEXPORT_ENTIRE_FOREST", "true")
	t.Setenv("MBEXPORT_BATCH_FOLDER", "1")
	t.Setenv("MBEXPORT_DATABASE_URL", "postgres://directory")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err != nil {
		t.Fatalf("ApplyEnvConfig() error: %v", err)
	}

	if cfg.Category != "room" {
		t.Errorf("Category = %q, want %q", cfg.Category, "room")
	}
	if cfg.Location != "DB03" {
		t.Errorf("Location = %q, want %q", cfg.Location, "DB03")
	}
	if cfg.BatchSize != 40 {
		t.Errorf("BatchSize = %d, want 40", cfg.BatchSize)
	}
	if !cfg.EntireForest || !cfg.BatchFolder {
		t.Error("expected boolean env overrides to apply")
	}
	if cfg.DatabaseURL != "postgres://directory" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
}

func TestApplyEnvConfigRespectsChangedFlags(t *testing.T) {
	t.Setenv("MBEXPORT_CATEGORY", "room")

	cfg := DefaultConfig()
	cfg.Category = "user"
	if err := ApplyEnvConfig(&cfg, map[string]bool{"category": true}); err != nil {
		t.Fatalf("ApplyEnvConfig() error: %v", err)
	}
	if cfg.Category != "user" {
		t.Errorf("Category = %q, want flag value %q preserved", cfg.Category, "user")
	}
}

func TestApplyEnvConfigInvalidInt(t *testing.T) {
	t.Setenv("MBEXPORT_BATCH_SIZE", "not-a-number")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err == nil {
		t.Error("expected error for invalid MBEXPORT_BATCH_SIZE")
	}
}
