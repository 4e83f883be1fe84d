package cmd

import (
	"fmt"
	"io"
	"os"

	"milkbook/internal/export"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore the ledger from a JSON backup",
	Long: "Restore collections from a backup file. Collections missing from\n" +
		"the backup are left untouched; a malformed backup changes nothing.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	var blob []byte
	var err error
	if args[0] == "-" {
		blob, err = io.ReadAll(os.Stdin)
	} else {
		blob, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading backup: %w", err)
	}

	l, _, closeLedger, err := openLedger()
	if err != nil {
		return err
	}
	defer closeLedger()

	if !export.Import(l, blob) {
		return fmt.Errorf("not a milkbook backup: %s", args[0])
	}

	fmt.Printf("  Restored %d vendors, %d entries, %d monthly settings\n",
		len(l.Vendors()), len(l.Entries()), len(l.Settings()))
	return nil
}
