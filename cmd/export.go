package cmd

import (
	"fmt"
	"os"
	"time"

	"milkbook/internal/export"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write a JSON backup of the whole ledger",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	l, _, closeLedger, err := openLedger()
	if err != nil {
		return err
	}
	defer closeLedger()

	blob, err := export.All(l)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("milkbook-backup-%s.json", time.Now().Format("2006-01-02"))
	if len(args) == 1 {
		path = args[0]
	}

	if path == "-" {
		_, err = os.Stdout.Write(blob)
		return err
	}

	if err := os.WriteFile(path, blob, 0o600); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}

	fmt.Printf("  Backup written to %s\n", path)
	return nil
}
