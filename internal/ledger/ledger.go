// Package ledger exposes the persisted collections (vendors, milk
// entries, monthly settings) as upsert/delete/query repositories over
// the store.
package ledger

import (
	"fmt"
	"time"

	"milkbook/internal/model"
	"milkbook/internal/store"
)

// Ledger is the typed view over the persisted collections. It holds no
// cache: every read re-fetches and re-parses the full collection, so a
// Ledger is always consistent with the last write to the store.
type Ledger struct {
	store *store.Store
}

// New creates a Ledger over the given store.
func New(s *store.Store) *Ledger {
	return &Ledger{store: s}
}

// Store returns the underlying record store.
func (l *Ledger) Store() *store.Store {
	return l.store
}

// upsert replaces the record with the same id in place, stamping its
// UpdatedAt, or appends when the id is new. The returned slice is the
// full collection to persist. Note the stored copy gets the fresh
// UpdatedAt while callers receive their own record back unchanged;
// that asymmetry is long-standing observable behavior.
func upsert[T any](records []T, rec T, id func(T) string, stamp func(*T)) []T {
	for i := range records {
		if id(records[i]) == id(rec) {
			records[i] = rec
			stamp(&records[i])
			return records
		}
	}
	return append(records, rec)
}

// remove deletes the record with the given id, reporting whether a
// removal occurred.
func remove[T any](records []T, id string, recID func(T) string) ([]T, bool) {
	kept := records[:0:0]
	for _, r := range records {
		if recID(r) != id {
			kept = append(kept, r)
		}
	}
	return kept, len(kept) != len(records)
}

// Vendors returns all vendors in storage order.
func (l *Ledger) Vendors() []model.Vendor {
	return store.Load(l.store, store.KeyVendors, []model.Vendor{})
}

// SaveVendor upserts a vendor by id and persists the full collection.
func (l *Ledger) SaveVendor(v model.Vendor) model.Vendor {
	vendors := l.Vendors()
	vendors = upsert(vendors, v,
		func(r model.Vendor) string { return r.ID },
		func(r *model.Vendor) { r.UpdatedAt = time.Now().UTC() })
	store.Save(l.store, store.KeyVendors, vendors)
	return v
}

// DeleteVendor removes the vendor with the given id. Entries that
// reference it are left alone; the dangling vendorId renders as
// "Unknown" downstream.
func (l *Ledger) DeleteVendor(id string) bool {
	vendors := l.Vendors()
	kept, removed := remove(vendors, id, func(r model.Vendor) string { return r.ID })
	if removed {
		store.Save(l.store, store.KeyVendors, kept)
	}
	return removed
}

// VendorByID returns the vendor with the given id.
func (l *Ledger) VendorByID(id string) (model.Vendor, bool) {
	for _, v := range l.Vendors() {
		if v.ID == id {
			return v, true
		}
	}
	return model.Vendor{}, false
}

// Entries returns all milk entries in storage order.
func (l *Ledger) Entries() []model.MilkEntry {
	return store.Load(l.store, store.KeyMilkEntries, []model.MilkEntry{})
}

// SaveEntry upserts an entry by id and persists the full collection.
func (l *Ledger) SaveEntry(e model.MilkEntry) model.MilkEntry {
	entries := l.Entries()
	entries = upsert(entries, e,
		func(r model.MilkEntry) string { return r.ID },
		func(r *model.MilkEntry) { r.UpdatedAt = time.Now().UTC() })
	store.Save(l.store, store.KeyMilkEntries, entries)
	return e
}

// DeleteEntry removes the entry with the given id.
func (l *Ledger) DeleteEntry(id string) bool {
	entries := l.Entries()
	kept, removed := remove(entries, id, func(r model.MilkEntry) string { return r.ID })
	if removed {
		store.Save(l.store, store.KeyMilkEntries, kept)
	}
	return removed
}

// EntryByID returns the entry with the given id.
func (l *Ledger) EntryByID(id string) (model.MilkEntry, bool) {
	for _, e := range l.Entries() {
		if e.ID == id {
			return e, true
		}
	}
	return model.MilkEntry{}, false
}

// EntriesForMonth returns entries whose date falls in the given
// calendar month. Matching is a string-prefix test on the YYYY-MM
// portion, so only canonically formatted dates are found.
func (l *Ledger) EntriesForMonth(year int, month time.Month) []model.MilkEntry {
	prefix := fmt.Sprintf("%04d-%02d", year, int(month))
	var out []model.MilkEntry
	for _, e := range l.Entries() {
		if len(e.Date) >= len(prefix) && e.Date[:len(prefix)] == prefix {
			out = append(out, e)
		}
	}
	return out
}

// Settings returns all monthly settings records in storage order.
func (l *Ledger) Settings() []model.MonthlySettings {
	return store.Load(l.store, store.KeyMonthlySettings, []model.MonthlySettings{})
}

// SaveSettings upserts a settings record by id. Uniqueness of the
// month field is not enforced; duplicate months can accumulate.
func (l *Ledger) SaveSettings(s model.MonthlySettings) model.MonthlySettings {
	all := l.Settings()
	all = upsert(all, s,
		func(r model.MonthlySettings) string { return r.ID },
		func(r *model.MonthlySettings) { r.UpdatedAt = time.Now().UTC() })
	store.Save(l.store, store.KeyMonthlySettings, all)
	return s
}

// SettingForMonth returns the first settings record matching the given
// YYYY-MM key. When duplicates exist, first in storage order wins.
func (l *Ledger) SettingForMonth(monthKey string) (model.MonthlySettings, bool) {
	for _, s := range l.Settings() {
		if s.Month == monthKey {
			return s, true
		}
	}
	return model.MonthlySettings{}, false
}
