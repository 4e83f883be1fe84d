// Package model defines the domain types for the milkbook ledger.
package model

import "time"

// DateLayout is the canonical on-disk form of an entry date.
// Entries stored in any other form are invisible to month filtering.
const DateLayout = "2006-01-02"

// MonthLayout is the canonical year-month key, e.g. "2024-03".
const MonthLayout = "2006-01"

// Vendor is a milk supplier with a default per-liter rate.
type Vendor struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DefaultRate float64   `json:"defaultRate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MilkEntry is one recorded delivery. Date is kept as a canonical
// YYYY-MM-DD string rather than a time.Time so the stored and exported
// representation is exactly the persisted one.
type MilkEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Quantity  float64   `json:"quantity"`
	Rate      float64   `json:"rate"`
	VendorID  string    `json:"vendorId"`
	IsPaid    bool      `json:"isPaid"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Amount is the entry's value in currency units. Always derived from
// quantity and rate, never stored, so edits can't leave it stale.
func (e MilkEntry) Amount() float64 {
	return e.Quantity * e.Rate
}

// Day returns the day-of-month of the entry date, or 0 if the date is
// not in canonical form.
func (e MilkEntry) Day() int {
	t, err := time.Parse(DateLayout, e.Date)
	if err != nil {
		return 0
	}
	return t.Day()
}

// MonthlySettings holds per-month defaults used to pre-fill new entries.
// The store does not enforce one record per month; lookups take the
// first match in storage order.
type MonthlySettings struct {
	ID              string    `json:"id"`
	Month           string    `json:"month"`
	DefaultRate     float64   `json:"defaultRate"`
	DefaultVendorID string    `json:"defaultVendorId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// MonthlyStats is the derived monthly aggregate. Not persisted.
type MonthlyStats struct {
	TotalQuantity float64
	TotalAmount   float64
	TotalPaid     float64
	PendingAmount float64
	MissedDays    int
	Entries       []MilkEntry
}

// VendorWithStats is a Vendor plus its aggregate over referencing entries.
type VendorWithStats struct {
	Vendor
	TotalQuantity float64
	TotalAmount   float64
	PendingAmount float64
}

// MonthKey formats t as a canonical YYYY-MM key.
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// DateKey formats t as a canonical YYYY-MM-DD entry date.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}
