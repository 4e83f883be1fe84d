package cmd

import (
	"fmt"

	"milkbook/internal/cli"
	"milkbook/internal/model"

	"github.com/spf13/cobra"
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List deliveries for the month",
	RunE:  runEntries,
}

var entriesAll bool

func init() {
	entriesCmd.Flags().BoolVarP(&entriesAll, "all", "a", false, "List every entry, not just the selected month")
	rootCmd.AddCommand(entriesCmd)
}

func runEntries(_ *cobra.Command, _ []string) error {
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
	var title string
	if entriesAll {
		entries = l.Entries()
		title = "ALL DELIVERIES"
	} else {
		entries = l.EntriesForMonth(year, month)
		title = "DELIVERIES  " + cli.FormatMonth(fmt.Sprintf("%04d-%02d", year, int(month)))
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("  No deliveries recorded.")
		return nil
	}

	names := make(map[string]string)
	for _, v := range l.Vendors() {
		names[v.ID] = v.Name
	}
	currency := cfg.General.Currency

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		name, ok := names[e.VendorID]
		if !ok {
			name = "Unknown"
		}

		paid := cli.Ok(cli.FormatPaid(true))
		if !e.IsPaid {
			paid = cli.Warn(cli.FormatPaid(false))
		}

		rows = append(rows, []string{
			cli.Truncate(e.ID, 8),
			cli.FormatDate(e.Date),
			cli.FormatDayOfWeek(e.Date),
			cli.Truncate(name, 14),
			cli.FormatQuantity(e.Quantity),
			cli.FormatRate(e.Rate, currency),
			cli.FormatMoney(e.Amount(), currency),
			paid,
			cli.Muted(cli.Truncate(e.Notes, 20)),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Date", "Day", "Vendor", "Qty", "Rate", "Amount", "Paid", "Notes"},
		Rows:    rows,
	}))

	return nil
}
