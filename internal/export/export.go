// Package export serializes the full data set to a JSON bundle or a
// CSV rendering of entries, and restores the store from a bundle.
package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"milkbook/internal/ledger"
	"milkbook/internal/model"
	"milkbook/internal/store"
)

// Bundle is the backup file format: the three full collections plus an
// export timestamp.
type Bundle struct {
	Vendors         []model.Vendor          `json:"vendors"`
	MilkEntries     []model.MilkEntry       `json:"milkEntries"`
	MonthlySettings []model.MonthlySettings `json:"monthlySettings"`
	ExportedAt      time.Time               `json:"exportedAt"`
}

// All serializes the full data set.
func All(l *ledger.Ledger) ([]byte, error) {
	b := Bundle{
		Vendors:         l.Vendors(),
		MilkEntries:     l.Entries(),
		MonthlySettings: l.Settings(),
		ExportedAt:      time.Now().UTC(),
	}
	raw, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding backup: %w", err)
	}
	return raw, nil
}

// importBundle distinguishes absent collections from empty ones: a key
// missing from the blob leaves the stored collection untouched.
type importBundle struct {
	Vendors         *[]model.Vendor          `json:"vendors"`
	MilkEntries     *[]model.MilkEntry       `json:"milkEntries"`
	MonthlySettings *[]model.MonthlySettings `json:"monthlySettings"`
}

// Import parses a backup blob and overwrites each collection present
// in it. A parse failure returns false with zero mutation; the parse
// completes before the first write, so there is no partial apply on
// bad input.
func Import(l *ledger.Ledger, blob []byte) bool {
	var b importBundle
	if err := json.Unmarshal(blob, &b); err != nil {
		return false
	}

	s := l.Store()
	if b.Vendors != nil {
		store.Save(s, store.KeyVendors, *b.Vendors)
	}
	if b.MilkEntries != nil {
		store.Save(s, store.KeyMilkEntries, *b.MilkEntries)
	}
	if b.MonthlySettings != nil {
		store.Save(s, store.KeyMonthlySettings, *b.MonthlySettings)
	}
	return true
}

// csvDateLayout is the day-first form used in the CSV export.
const csvDateLayout = "02/01/2006"

// EntriesCSV renders entries as CSV, sorted ascending by date. The
// column shape is fixed: amounts to two decimals, Paid as Yes/No,
// vendor ids resolved to names with "Unknown" for dangling references,
// and only the notes field quoted (embedded quotes doubled).
func EntriesCSV(entries []model.MilkEntry, vendors []model.Vendor, currency string) string {
	names := make(map[string]string, len(vendors))
	for _, v := range vendors {
		names[v.ID] = v.Name
	}

	sorted := make([]model.MilkEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	var b strings.Builder
	fmt.Fprintf(&b, "Date,Quantity (L),Rate (%s),Amount (%s),Vendor,Paid,Notes\n", currency, currency)

	for _, e := range sorted {
		date := e.Date
		if t, err := time.Parse(model.DateLayout, e.Date); err == nil {
			date = t.Format(csvDateLayout)
		}

		name, ok := names[e.VendorID]
		if !ok {
			name = "Unknown"
		}

		paid := "No"
		if e.IsPaid {
			paid = "Yes"
		}

		notes := ""
		if e.Notes != "" {
			notes = `"` + strings.ReplaceAll(e.Notes, `"`, `""`) + `"`
		}

		fmt.Fprintf(&b, "%s,%s,%s,%.2f,%s,%s,%s\n",
			date,
			strconv.FormatFloat(e.Quantity, 'f', -1, 64),
			strconv.FormatFloat(e.Rate, 'f', -1, 64),
			e.Amount(),
			name,
			paid,
			notes,
		)
	}

	return b.String()
}
