package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.Currency != "₹" {
		t.Fatalf("Currency = %q, want ₹", cfg.General.Currency)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if Exists() {
		t.Fatal("Exists() = true with no config file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "$"
	cfg.General.DataDir = "/tmp/milk"
	cfg.Appearance.Theme = "terminal"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != cfg {
		t.Fatalf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestLoadBackfillsCurrency(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "milkbook", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[appearance]\ntheme = \"terminal\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.General.Currency != "₹" {
		t.Fatalf("Currency = %q, want backfilled ₹", cfg.General.Currency)
	}
	if cfg.Appearance.Theme != "terminal" {
		t.Fatalf("Theme = %q, want terminal", cfg.Appearance.Theme)
	}
}

func TestDataDirOverride(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	cfg := DefaultConfig()
	if got := DataPath(cfg); got != filepath.Join("/xdg/data", "milkbook", "milkbook.db") {
		t.Fatalf("DataPath = %q", got)
	}

	cfg.General.DataDir = "/elsewhere"
	if got := DataPath(cfg); got != filepath.Join("/elsewhere", "milkbook.db") {
		t.Fatalf("DataPath with override = %q", got)
	}
}
