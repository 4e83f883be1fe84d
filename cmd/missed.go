package cmd

import (
	"fmt"

	"milkbook/internal/cli"
	"milkbook/internal/stats"

	"github.com/spf13/cobra"
)

var missedCmd = &cobra.Command{
	Use:   "missed",
	Short: "List calendar days with no delivery",
	RunE:  runMissed,
}

func init() {
	rootCmd.AddCommand(missedCmd)
}

func runMissed(_ *cobra.Command, _ []string) error {
	year, month, err := selectedMonth()
	if err != nil {
		return err
	}

	l, _, closeLedger, err := openLedger()
	if err != nil {
		return err
	}
	defer closeLedger()

	entries := l.EntriesForMonth(year, month)
	missed := stats.MissedDaysIn(entries, year, month)

	monthKey := fmt.Sprintf("%04d-%02d", year, int(month))
	fmt.Printf("\n  %s: %d missed days\n", cli.FormatMonth(monthKey), len(missed))

	if len(missed) == 0 {
		fmt.Println("  " + cli.Ok("Every day covered."))
		return nil
	}

	fmt.Printf("  %s\n\n", cli.Warn(cli.JoinDays(missed)))
	return nil
}
