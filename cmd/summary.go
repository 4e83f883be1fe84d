package cmd

import (
	"fmt"
	"time"

	"milkbook/internal/cli"
	"milkbook/internal/stats"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Monthly totals, dues, and missed days",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	year, month, err := selectedMonth()
	if err != nil {
		return err
	}

	l, cfg, closeLedger, err := openLedger()
	if err != nil {
		return err
	}
	defer closeLedger()

	entries := l.EntriesForMonth(year, month)
	monthly := stats.Monthly(entries)
	currency := cfg.General.Currency

	monthKey := fmt.Sprintf("%04d-%02d", year, int(month))
	fmt.Println()
	fmt.Println(cli.RenderTitle("MILK LEDGER  " + cli.FormatMonth(monthKey)))
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("  No deliveries recorded this month.")
		fmt.Println("  Use `milkbook add` to record one.")
		return nil
	}

	paid := cli.FormatMoney(monthly.TotalPaid, currency)
	pending := cli.FormatMoney(monthly.PendingAmount, currency)
	if monthly.PendingAmount > 0 {
		pending = cli.Warn(pending)
	} else {
		paid = cli.Ok(paid)
	}

	rows := [][]string{
		{"Deliveries", fmt.Sprintf("%d", len(entries))},
		{"Quantity", cli.FormatQuantity(monthly.TotalQuantity)},
		{"---"},
		{"Total Amount", cli.FormatMoney(monthly.TotalAmount, currency)},
		{"Paid", paid},
		{"Pending", pending},
		{"---"},
		{"Missed Days", fmt.Sprintf("%d", monthly.MissedDays)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	// Daily delivery sparkline for the month
	daily := stats.DailyQuantities(entries, year, month)
	fmt.Printf("\n  Daily liters  %s\n", cli.RenderSparkline(daily))

	// Today marker only makes sense when looking at the current month
	now := time.Now()
	if now.Year() == year && now.Month() == month {
		if stats.HasEntryOn(l.Entries(), now) {
			fmt.Println("  " + cli.Ok("Delivered today"))
		} else {
			fmt.Println("  " + cli.Warn("No delivery recorded today"))
		}
	}
	fmt.Println()

	return nil
}
