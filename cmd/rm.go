package cmd

import (
	"fmt"

	"milkbook/internal/cli"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <entry-id>",
	Short: "Delete a delivery",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(_ *cobra.Command, args []string) error {
	l, _, closeLedger, err := openLedger()
	if err != nil {
		return err
	}
	defer closeLedger()

	e, ok := l.EntryByID(args[0])
	if !ok {
		return fmt.Errorf("no entry with id %q", args[0])
	}

	if !l.DeleteEntry(args[0]) {
		return fmt.Errorf("no entry with id %q", args[0])
	}

	fmt.Printf("  Deleted %s on %s\n", cli.FormatQuantity(e.Quantity), cli.FormatDate(e.Date))
	return nil
}
