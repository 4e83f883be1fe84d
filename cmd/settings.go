package cmd

import (
	"fmt"
	"time"

	"milkbook/internal/cli"
	"milkbook/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or set the month's default rate and vendor",
	RunE:  runSettings,
}

var (
	settingsRate   float64
	settingsVendor string
)

func init() {
	settingsCmd.Flags().Float64Var(&settingsRate, "rate", 0, "Default rate per liter for the month")
	settingsCmd.Flags().StringVar(&settingsVendor, "vendor", "", "Default vendor (id or name) for the month")
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, _ []string) error {
	monthKey, err := selectedMonthKey()
	if err != nil {
		return err
	}

	l, cfg, closeLedger, err := openLedger()
	if err != nil {
		return err
	}
	defer closeLedger()

	// No flags: show the month's settings.
	if !cmd.Flags().Changed("rate") && !cmd.Flags().Changed("vendor") {
		s, ok := l.SettingForMonth(monthKey)
		if !ok {
			fmt.Printf("  No settings for %s.\n", cli.FormatMonth(monthKey))
			fmt.Println("  Set them with --rate and --vendor.")
			return nil
		}

		vendorName := "not set"
		if v, ok := l.VendorByID(s.DefaultVendorID); ok {
			vendorName = v.Name
		} else if s.DefaultVendorID != "" {
			vendorName = "Unknown"
		}

		fmt.Printf("  %s\n", cli.FormatMonth(monthKey))
		fmt.Printf("    Default rate:   %s\n", cli.FormatRate(s.DefaultRate, cfg.General.Currency))
		fmt.Printf("    Default vendor: %s\n", vendorName)
		return nil
	}

	s, ok := l.SettingForMonth(monthKey)
	if !ok {
		now := time.Now().UTC()
		s = model.MonthlySettings{ID: uuid.NewString(), Month: monthKey, CreatedAt: now, UpdatedAt: now}
	}

	if cmd.Flags().Changed("rate") {
		if settingsRate <= 0 {
			return fmt.Errorf("rate must be positive")
		}
		s.DefaultRate = settingsRate
	}
	if cmd.Flags().Changed("vendor") {
		v, ok := resolveVendor(l, settingsVendor)
		if !ok {
			return fmt.Errorf("unknown vendor %q", settingsVendor)
		}
		s.DefaultVendorID = v.ID
	}

	l.SaveSettings(s)
	fmt.Printf("  Saved defaults for %s\n", cli.FormatMonth(monthKey))
	return nil
}
