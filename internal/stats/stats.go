// Package stats computes monthly and per-vendor aggregates from raw
// entry lists. Everything here is a pure function over its inputs.
package stats

import (
	"time"

	"milkbook/internal/model"
)

// daysInMonth returns the calendar length of the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Monthly reduces an entry list to its monthly aggregate.
//
// The missed-day count is taken against the calendar month of the
// first entry in the list, so callers must pre-filter to a single
// month for it to be meaningful; a mixed-month list produces a day
// collision, not an error. An empty input yields the zero stats with
// an empty entry list.
func Monthly(entries []model.MilkEntry) model.MonthlyStats {
	var s model.MonthlyStats

	for _, e := range entries {
		amount := e.Amount()
		s.TotalQuantity += e.Quantity
		s.TotalAmount += amount
		if e.IsPaid {
			s.TotalPaid += amount
		} else {
			s.PendingAmount += amount
		}
	}

	if len(entries) == 0 {
		s.Entries = []model.MilkEntry{}
		return s
	}

	first, err := time.Parse(model.DateLayout, entries[0].Date)
	if err == nil {
		present := make(map[int]struct{})
		for _, e := range entries {
			if d := e.Day(); d > 0 {
				present[d] = struct{}{}
			}
		}
		s.MissedDays = daysInMonth(first.Year(), first.Month()) - len(present)
	}

	s.Entries = entries
	return s
}

// ForVendor sums quantity and amount over the entries referencing the
// vendor, with the unpaid share as PendingAmount. No day accounting.
func ForVendor(v model.Vendor, entries []model.MilkEntry) model.VendorWithStats {
	vs := model.VendorWithStats{Vendor: v}
	for _, e := range entries {
		if e.VendorID != v.ID {
			continue
		}
		amount := e.Amount()
		vs.TotalQuantity += e.Quantity
		vs.TotalAmount += amount
		if !e.IsPaid {
			vs.PendingAmount += amount
		}
	}
	return vs
}

// MissedDaysIn returns the ascending 1-based day numbers of the given
// month that have no entry. Entries outside the month are ignored.
func MissedDaysIn(entries []model.MilkEntry, year int, month time.Month) []int {
	present := make(map[int]struct{})
	for _, e := range entries {
		t, err := time.Parse(model.DateLayout, e.Date)
		if err != nil {
			continue
		}
		if t.Year() == year && t.Month() == month {
			present[t.Day()] = struct{}{}
		}
	}

	var missed []int
	for day := 1; day <= daysInMonth(year, month); day++ {
		if _, ok := present[day]; !ok {
			missed = append(missed, day)
		}
	}
	return missed
}

// DailyQuantities buckets entry quantities by day of month, one slot
// per calendar day. Used by the dashboard chart.
func DailyQuantities(entries []model.MilkEntry, year int, month time.Month) []float64 {
	days := make([]float64, daysInMonth(year, month))
	for _, e := range entries {
		t, err := time.Parse(model.DateLayout, e.Date)
		if err != nil {
			continue
		}
		if t.Year() == year && t.Month() == month {
			days[t.Day()-1] += e.Quantity
		}
	}
	return days
}

// HasEntryOn reports whether any entry falls on the given date.
func HasEntryOn(entries []model.MilkEntry, date time.Time) bool {
	key := model.DateKey(date)
	for _, e := range entries {
		if e.Date == key {
			return true
		}
	}
	return false
}
