// Package config loads and saves milkbook preferences from a TOML
// file in the user's config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all milkbook configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	// DataDir overrides where the ledger database lives.
	DataDir string `toml:"data_dir,omitempty"`
	// Currency is the symbol used in summaries and CSV headers.
	Currency string `toml:"currency"`
}

// AppearanceConfig holds theme settings for the dashboard.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency: "₹",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "milkbook")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "milkbook")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding the ledger database, honoring
// the config override.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "milkbook")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "milkbook")
}

// DataPath returns the full path to the ledger database.
func DataPath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "milkbook.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.General.Currency == "" {
		cfg.General.Currency = "₹"
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
