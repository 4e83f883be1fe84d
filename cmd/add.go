package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"milkbook/internal/cli"
	"milkbook/internal/ledger"
	"milkbook/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a delivery",
	Long: "Record a milk delivery. With no flags an interactive form opens,\n" +
		"pre-filled from the month's settings or the vendor's default rate.",
	RunE: runAdd,
}

var (
	addDate   string
	addQty    float64
	addRate   float64
	addVendor string
	addPaid   bool
	addNotes  string
)

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "Delivery date, YYYY-MM-DD (default: today)")
	addCmd.Flags().Float64Var(&addQty, "qty", 0, "Quantity in liters")
	addCmd.Flags().Float64Var(&addRate, "rate", 0, "Rate per liter (default: month settings, then vendor default)")
	addCmd.Flags().StringVar(&addVendor, "vendor", "", "Vendor id or name")
	addCmd.Flags().BoolVar(&addPaid, "paid", false, "Mark the delivery as already paid")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Free-form note")
	rootCmd.AddCommand(addCmd)
}

// resolveVendor matches a --vendor value against ids first, then
// case-insensitive names.
func resolveVendor(l *ledger.Ledger, ref string) (model.Vendor, bool) {
	if v, ok := l.VendorByID(ref); ok {
		return v, true
	}
	for _, v := range l.Vendors() {
		if strings.EqualFold(v.Name, ref) {
			return v, true
		}
	}
	return model.Vendor{}, false
}

// defaultRateFor returns the pre-fill rate for a date: the month's
// settings record wins, then the vendor's default.
func defaultRateFor(l *ledger.Ledger, date string, vendor model.Vendor) float64 {
	if t, err := time.Parse(model.DateLayout, date); err == nil {
		if s, ok := l.SettingForMonth(model.MonthKey(t)); ok && s.DefaultRate > 0 {
			return s.DefaultRate
		}
	}
	return vendor.DefaultRate
}

func runAdd(_ *cobra.Command, _ []string) error {
	l, _, closeLedger, err := openLedger()
	if err != nil {
		return err
	}
	defer closeLedger()

	vendors := l.Vendors()
	if len(vendors) == 0 {
		return fmt.Errorf("no vendors yet; add one with `milkbook vendors add`")
	}

	date := addDate
	if date == "" {
		date = model.DateKey(time.Now())
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return fmt.Errorf("invalid --date %q, want YYYY-MM-DD", addDate)
	}

	var vendor model.Vendor
	if addVendor != "" {
		v, ok := resolveVendor(l, addVendor)
		if !ok {
			return fmt.Errorf("unknown vendor %q", addVendor)
		}
		vendor = v
	}

	qty := addQty
	rate := addRate
	paid := addPaid
	notes := addNotes

	// Anything still unset is collected interactively.
	if qty <= 0 || vendor.ID == "" {
		// Month-settings default vendor seeds the select.
		if vendor.ID == "" {
			if t, err := time.Parse(model.DateLayout, date); err == nil {
				if s, ok := l.SettingForMonth(model.MonthKey(t)); ok {
					if v, ok := l.VendorByID(s.DefaultVendorID); ok {
						vendor = v
					}
				}
			}
			if vendor.ID == "" {
				vendor = vendors[0]
			}
		}

		vendorID := vendor.ID
		qtyStr := ""
		if qty > 0 {
			qtyStr = strconv.FormatFloat(qty, 'f', -1, 64)
		}
		rateStr := ""
		if rate > 0 {
			rateStr = strconv.FormatFloat(rate, 'f', -1, 64)
		}

		options := make([]huh.Option[string], 0, len(vendors))
		for _, v := range vendors {
			options = append(options, huh.NewOption(v.Name, v.ID))
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Date").
					Value(&date).
					Validate(func(s string) error {
						_, err := time.Parse(model.DateLayout, s)
						if err != nil {
							return fmt.Errorf("want YYYY-MM-DD")
						}
						return nil
					}),
				huh.NewSelect[string]().
					Title("Vendor").
					Options(options...).
					Value(&vendorID),
				huh.NewInput().
					Title("Quantity (liters)").
					Value(&qtyStr).
					Validate(validatePositive),
				huh.NewInput().
					Title("Rate per liter (blank = default)").
					Value(&rateStr).
					Validate(validatePositiveOrEmpty),
				huh.NewConfirm().
					Title("Paid?").
					Value(&paid),
				huh.NewInput().
					Title("Notes").
					Value(&notes),
			),
		)

		if err := form.Run(); err != nil {
			return fmt.Errorf("entry form: %w", err)
		}

		v, ok := l.VendorByID(vendorID)
		if !ok {
			return fmt.Errorf("vendor disappeared while editing")
		}
		vendor = v
		qty, _ = strconv.ParseFloat(strings.TrimSpace(qtyStr), 64)
		if strings.TrimSpace(rateStr) != "" {
			rate, _ = strconv.ParseFloat(strings.TrimSpace(rateStr), 64)
		}
	}

	if rate <= 0 {
		rate = defaultRateFor(l, date, vendor)
	}
	if qty <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if rate <= 0 {
		return fmt.Errorf("rate must be positive; set one with --rate or a vendor default")
	}

	now := time.Now().UTC()
	e := l.SaveEntry(model.MilkEntry{
		ID:        uuid.NewString(),
		Date:      date,
		Quantity:  qty,
		Rate:      rate,
		VendorID:  vendor.ID,
		IsPaid:    paid,
		Notes:     strings.TrimSpace(notes),
		CreatedAt: now,
		UpdatedAt: now,
	})

	cfg := loadConfigOrDefault()
	fmt.Printf("  Recorded %s from %s on %s (%s)\n",
		cli.FormatQuantity(e.Quantity),
		vendor.Name,
		cli.FormatDate(e.Date),
		cli.FormatMoney(e.Amount(), cfg.General.Currency),
	)

	return nil
}

func validatePositive(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f <= 0 {
		return fmt.Errorf("want a positive number")
	}
	return nil
}

func validatePositiveOrEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validatePositive(s)
}
