package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"milkbook/internal/cli"
	"milkbook/internal/model"
	"milkbook/internal/stats"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "List vendors with their aggregate totals",
	RunE:  runVendors,
}

var vendorsAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add or update a vendor",
	RunE:  runVendorsAdd,
}

var vendorsRmCmd = &cobra.Command{
	Use:   "rm <vendor-id>",
	Short: "Remove a vendor (its entries keep their reference)",
	Args:  cobra.ExactArgs(1),
	RunE:  runVendorsRm,
}

var vendorAddRate float64

func init() {
	vendorsAddCmd.Flags().Float64Var(&vendorAddRate, "rate", 0, "Default rate per liter")
	vendorsCmd.AddCommand(vendorsAddCmd)
	vendorsCmd.AddCommand(vendorsRmCmd)
	rootCmd.AddCommand(vendorsCmd)
}

func runVendors(_ *cobra.Command, _ []string) error {
	l, cfg, closeLedger, err := openLedger()
	if err != nil {
		return err
	}
	defer closeLedger()

	vendors := l.Vendors()

	fmt.Println()
	fmt.Println(cli.RenderTitle("VENDORS"))
	fmt.Println()

	if len(vendors) == 0 {
		fmt.Println("  No vendors yet. Use `milkbook vendors add`.")
		return nil
	}

	entries := l.Entries()
	currency := cfg.General.Currency

	rows := make([][]string, 0, len(vendors))
	for _, v := range vendors {
		vs := stats.ForVendor(v, entries)

		pending := cli.FormatMoney(vs.PendingAmount, currency)
		if vs.PendingAmount > 0 {
			pending = cli.Warn(pending)
		}

		rows = append(rows, []string{
			cli.Truncate(v.ID, 8),
			cli.Truncate(v.Name, 18),
			cli.FormatRate(v.DefaultRate, currency),
			cli.FormatQuantity(vs.TotalQuantity),
			cli.FormatMoney(vs.TotalAmount, currency),
			pending,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name", "Rate", "Total Qty", "Total", "Pending"},
		Rows:    rows,
	}))

	return nil
}

func runVendorsAdd(_ *cobra.Command, args []string) error {
	l, _, closeLedger, err := openLedger()
	if err != nil {
		return err
	}
	defer closeLedger()

	name := strings.Join(args, " ")
	rate := vendorAddRate

	if name == "" || rate <= 0 {
		rateStr := ""
		if rate > 0 {
			rateStr = strconv.FormatFloat(rate, 'f', -1, 64)
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Vendor name").
					Value(&name).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("name required")
						}
						return nil
					}),
				huh.NewInput().
					Title("Default rate per liter").
					Value(&rateStr).
					Validate(validatePositive),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("vendor form: %w", err)
		}

		name = strings.TrimSpace(name)
		rate, _ = strconv.ParseFloat(strings.TrimSpace(rateStr), 64)
	}

	if rate <= 0 {
		return fmt.Errorf("default rate must be positive")
	}

	// Same name = same vendor: editing the rate rather than duplicating.
	now := time.Now().UTC()
	v := model.Vendor{ID: uuid.NewString(), Name: name, DefaultRate: rate, CreatedAt: now, UpdatedAt: now}
	if existing, ok := resolveVendor(l, name); ok {
		existing.DefaultRate = rate
		v = existing
	}
	l.SaveVendor(v)

	fmt.Printf("  Saved vendor %s (%s)\n", v.Name, cli.Truncate(v.ID, 8))
	return nil
}

func runVendorsRm(_ *cobra.Command, args []string) error {
	l, _, closeLedger, err := openLedger()
	if err != nil {
		return err
	}
	defer closeLedger()

	if !l.DeleteVendor(args[0]) {
		return fmt.Errorf("no vendor with id %q", args[0])
	}

	fmt.Println("  Vendor removed. Its past deliveries are kept and will show as Unknown.")
	return nil
}
