package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.General.Currency != "JPY" {
		t.Errorf("Currency = %q, want JPY", cfg.General.Currency)
	}
	if !cfg.General.RecordHistory {
		t.Error("RecordHistory should default to true")
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DataDir = "/home/me/money"
	cfg.General.Currency = "EUR"
	cfg.General.MaxDays = 7300
	cfg.Appearance.Theme = "terminal"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file should exist after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.General.DataDir != "/home/me/money" {
		t.Errorf("DataDir = %q, want /home/me/money", loaded.General.DataDir)
	}
	if loaded.General.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", loaded.General.Currency)
	}
	if loaded.General.MaxDays != 7300 {
		t.Errorf("MaxDays = %d, want 7300", loaded.General.MaxDays)
	}
	if loaded.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q, want terminal", loaded.Appearance.Theme)
	}
}

func TestLoad_BadToml(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfgDir := filepath.Join(dir, "valvelet")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("not = [toml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed config, got nil")
	}
}

func TestDataDir_RespectsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	if got := DataDir(); got != filepath.Join("/custom/data", "valvelet", "dat") {
		t.Errorf("DataDir = %q", got)
	}
	if got := HistoryDBPath(); got != filepath.Join("/custom/data", "valvelet", "history.db") {
		t.Errorf("HistoryDBPath = %q", got)
	}
}
