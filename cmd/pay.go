package cmd

import (
	"fmt"

	"milkbook/internal/cli"

	"github.com/spf13/cobra"
)

var payCmd = &cobra.Command{
	Use:   "pay [entry-id]",
	Short: "Mark deliveries as paid",
	Long: "Mark a single delivery as paid by id, or settle the whole\n" +
		"selected month with --month-due.",
	RunE: runPay,
}

var payMonthDue bool

func init() {
	payCmd.Flags().BoolVar(&payMonthDue, "month-due", false, "Mark every unpaid delivery in the selected month as paid")
	rootCmd.AddCommand(payCmd)
}

func runPay(_ *cobra.Command, args []string) error {
	l, cfg, closeLedger, err := openLedger()
	if err != nil {
		return err
	}
	defer closeLedger()

	if payMonthDue {
		year, month, err := selectedMonth()
		if err != nil {
			return err
		}

		var settled float64
		count := 0
		for _, e := range l.EntriesForMonth(year, month) {
			if e.IsPaid {
				continue
			}
			e.IsPaid = true
			l.SaveEntry(e)
			settled += e.Amount()
			count++
		}

		if count == 0 {
			fmt.Println("  Nothing pending this month.")
			return nil
		}
		fmt.Printf("  Settled %d deliveries (%s)\n", count, cli.FormatMoney(settled, cfg.General.Currency))
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("pass an entry id, or use --month-due")
	}

	e, ok := l.EntryByID(args[0])
	if !ok {
		return fmt.Errorf("no entry with id %q", args[0])
	}

	// Toggle rather than set, matching how the ledger flips the flag.
	e.IsPaid = !e.IsPaid
	l.SaveEntry(e)

	state := "unpaid"
	if e.IsPaid {
		state = "paid"
	}
	fmt.Printf("  Marked %s on %s as %s\n", cli.FormatQuantity(e.Quantity), cli.FormatDate(e.Date), state)
	return nil
}
