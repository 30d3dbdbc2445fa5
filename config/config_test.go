package config

import (
	"os"
	"path/filepath"
	"testing"
)

func setTempHome(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("USERPROFILE", dir)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	setTempHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Theme != "default" || cfg.WeekStart != WeekStartSunday {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Labels != nil {
		t.Fatalf("expected no label override, got %v", cfg.Labels)
	}
}

func TestLoadFromFile(t *testing.T) {
	setTempHome(t)

	dir, err := getConfigDir()
	if err != nil {
		t.Fatalf("getConfigDir error: %v", err)
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}

	content := "week_start: monday\nlabels:\n  - Open\n  - Closed\n"
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.WeekStart != WeekStartMonday {
		t.Fatalf("WeekStart = %q, want %q", cfg.WeekStart, WeekStartMonday)
	}
	if cfg.Theme != "default" {
		t.Fatalf("Theme zero value not backfilled: %q", cfg.Theme)
	}
	if len(cfg.Labels) != 2 || cfg.Labels[0] != "Open" {
		t.Fatalf("unexpected labels: %v", cfg.Labels)
	}
}

func TestLoadBadWeekStartFallsBack(t *testing.T) {
	setTempHome(t)

	dir, _ := getConfigDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte("week_start: friday\n"), 0600); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.WeekStart != WeekStartSunday {
		t.Fatalf("WeekStart = %q, want fallback to sunday", cfg.WeekStart)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	setTempHome(t)

	cfg := DefaultConfig()
	cfg.WeekStart = WeekStartMonday
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.WeekStart != WeekStartMonday {
		t.Fatalf("WeekStart = %q after round trip", loaded.WeekStart)
	}
}
