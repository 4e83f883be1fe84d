package cmd

import (
	"fmt"
	"os"

	"milkbook/internal/export"
	"milkbook/internal/model"

	"github.com/spf13/cobra"
)

var csvCmd = &cobra.Command{
	Use:   "csv [file]",
	Short: "Export the month's deliveries as CSV",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCSV,
}

var csvAll bool

func init() {
	csvCmd.Flags().BoolVarP(&csvAll, "all", "a", false, "Export every entry, not just the selected month")
	rootCmd.AddCommand(csvCmd)
}

func runCSV(_ *cobra.Command, args []string) error {
	year, month, err := selectedMonth()
	if err != nil {
		return err
	}

	l, cfg, closeLedger, err := openLedger()
	if err != nil {
		return err
	}
	defer closeLedger()

	var entries []model.MilkEntry
	if csvAll {
		entries = l.Entries()
	} else {
		entries = l.EntriesForMonth(year, month)
	}

	text := export.EntriesCSV(entries, l.Vendors(), cfg.General.Currency)

	if len(args) == 0 || args[0] == "-" {
		fmt.Print(text)
		return nil
	}

	if err := os.WriteFile(args[0], []byte(text), 0o600); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	fmt.Printf("  Wrote %d rows to %s\n", len(entries), args[0])
	return nil
}
