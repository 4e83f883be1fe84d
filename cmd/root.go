package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"milkbook/internal/config"
	"milkbook/internal/ledger"
	"milkbook/internal/model"
	"milkbook/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagMonth   string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "milkbook",
	Short: "Milk delivery ledger",
	Long:  "Keep your daily milk deliveries, vendors, and monthly dues in a local ledger.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Ledger data directory (default: config or XDG data dir)")
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "m", "", "Month to operate on, YYYY-MM (default: current month)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress warnings")
}

// loadConfigOrDefault loads config, falling back to defaults so a
// corrupt config file never blocks the ledger itself.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  config unreadable, using defaults: %v\n", err)
	}
	return cfg
}

// openLedger opens the ledger database, honoring --data-dir over the
// config override. The returned func closes the database.
func openLedger() (*ledger.Ledger, config.Config, func(), error) {
	cfg := loadConfigOrDefault()

	dbPath := config.DataPath(cfg)
	if flagDataDir != "" {
		dbPath = filepath.Join(flagDataDir, "milkbook.db")
	}

	backend, err := store.OpenSQLite(dbPath)
	if err != nil {
		return nil, cfg, nil, fmt.Errorf("opening ledger: %w", err)
	}

	s := store.New(backend)
	if flagQuiet {
		s.SetLogWriter(nil)
	}

	return ledger.New(s), cfg, func() { _ = backend.Close() }, nil
}

// selectedMonth resolves --month, defaulting to the current month.
func selectedMonth() (int, time.Month, error) {
	if flagMonth == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse(model.MonthLayout, flagMonth)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --month %q, want YYYY-MM", flagMonth)
	}
	return t.Year(), t.Month(), nil
}

// selectedMonthKey resolves --month as a canonical YYYY-MM key.
func selectedMonthKey() (string, error) {
	year, month, err := selectedMonth()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d-%02d", year, int(month)), nil
}
