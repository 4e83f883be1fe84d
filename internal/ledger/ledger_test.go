package ledger

import (
	"testing"
	"time"

	"milkbook/internal/model"
	"milkbook/internal/store"
)

func newTestLedger() *Ledger {
	return New(store.New(store.NewMemory()))
}

func entry(id, date, vendorID string, qty, rate float64) model.MilkEntry {
	return model.MilkEntry{
		ID:        id,
		Date:      date,
		Quantity:  qty,
		Rate:      rate,
		VendorID:  vendorID,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func TestSaveVendorUpsertIdempotence(t *testing.T) {
	l := newTestLedger()

	v := model.Vendor{ID: "v1", Name: "Fresh Dairy", DefaultRate: 55}
	l.SaveVendor(v)
	l.SaveVendor(v)

	vendors := l.Vendors()
	if len(vendors) != 1 {
		t.Fatalf("collection length after double save = %d, want 1", len(vendors))
	}
	if vendors[0].Name != "Fresh Dairy" || vendors[0].DefaultRate != 55 {
		t.Fatalf("stored vendor = %+v, want business fields of the saved record", vendors[0])
	}
}

func TestSaveVendorPreservesPositionOnUpdate(t *testing.T) {
	l := newTestLedger()

	l.SaveVendor(model.Vendor{ID: "v1", Name: "First"})
	l.SaveVendor(model.Vendor{ID: "v2", Name: "Second"})
	l.SaveVendor(model.Vendor{ID: "v1", Name: "Renamed"})

	vendors := l.Vendors()
	if len(vendors) != 2 {
		t.Fatalf("length = %d, want 2", len(vendors))
	}
	if vendors[0].ID != "v1" || vendors[0].Name != "Renamed" {
		t.Fatalf("updated record moved or kept old fields: %+v", vendors[0])
	}
	if vendors[1].ID != "v2" {
		t.Fatalf("untouched record moved: %+v", vendors[1])
	}
}

func TestSaveStampsStoredUpdatedAtNotReturned(t *testing.T) {
	l := newTestLedger()

	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	v := model.Vendor{ID: "v1", Name: "Fresh Dairy", UpdatedAt: old}
	l.SaveVendor(v)

	// Second save of the same id is an update and stamps the stored copy.
	got := l.SaveVendor(v)
	if !got.UpdatedAt.Equal(old) {
		t.Fatalf("returned UpdatedAt = %v, want the caller-supplied %v", got.UpdatedAt, old)
	}

	stored := l.Vendors()[0]
	if stored.UpdatedAt.Equal(old) {
		t.Fatal("stored UpdatedAt was not stamped on update")
	}
}

func TestDeleteVendor(t *testing.T) {
	l := newTestLedger()
	l.SaveVendor(model.Vendor{ID: "v1"})
	l.SaveVendor(model.Vendor{ID: "v2"})

	if l.DeleteVendor("nope") {
		t.Fatal("DeleteVendor(nonexistent) = true, want false")
	}
	if len(l.Vendors()) != 2 {
		t.Fatalf("length changed on failed delete: %d", len(l.Vendors()))
	}

	if !l.DeleteVendor("v1") {
		t.Fatal("DeleteVendor(existing) = false, want true")
	}
	vendors := l.Vendors()
	if len(vendors) != 1 || vendors[0].ID != "v2" {
		t.Fatalf("vendors after delete = %+v, want only v2", vendors)
	}
}

func TestDeleteVendorKeepsDanglingEntries(t *testing.T) {
	l := newTestLedger()
	l.SaveVendor(model.Vendor{ID: "v1"})
	l.SaveEntry(entry("e1", "2024-03-01", "v1", 2, 50))

	l.DeleteVendor("v1")

	entries := l.Entries()
	if len(entries) != 1 || entries[0].VendorID != "v1" {
		t.Fatalf("entries after vendor delete = %+v, want dangling reference kept", entries)
	}
}

func TestEntriesForMonth(t *testing.T) {
	l := newTestLedger()
	l.SaveEntry(entry("e1", "2024-03-01", "v1", 2, 50))
	l.SaveEntry(entry("e2", "2024-03-15", "v1", 1, 50))
	l.SaveEntry(entry("e3", "2024-04-01", "v1", 2, 50))
	l.SaveEntry(entry("e4", "1/3/2024", "v1", 2, 50)) // non-canonical, silently excluded

	got := l.EntriesForMonth(2024, time.March)
	if len(got) != 2 {
		t.Fatalf("EntriesForMonth(2024, March) returned %d entries, want 2", len(got))
	}
	if got[0].ID != "e1" || got[1].ID != "e2" {
		t.Fatalf("month filter returned %v, want e1, e2 in storage order", got)
	}
}

func TestEntriesForMonthZeroPadsMonth(t *testing.T) {
	l := newTestLedger()
	l.SaveEntry(entry("e1", "2024-01-05", "v1", 2, 50))
	l.SaveEntry(entry("e2", "2024-11-05", "v1", 2, 50))

	jan := l.EntriesForMonth(2024, time.January)
	if len(jan) != 1 || jan[0].ID != "e1" {
		t.Fatalf("January filter = %v, want only e1", jan)
	}
}

func TestSettingForMonthFirstMatchWins(t *testing.T) {
	l := newTestLedger()

	// Duplicate month records are possible: uniqueness is not enforced.
	l.SaveSettings(model.MonthlySettings{ID: "s1", Month: "2024-03", DefaultRate: 50})
	l.SaveSettings(model.MonthlySettings{ID: "s2", Month: "2024-03", DefaultRate: 60})

	got, ok := l.SettingForMonth("2024-03")
	if !ok {
		t.Fatal("SettingForMonth = absent, want first record")
	}
	if got.ID != "s1" || got.DefaultRate != 50 {
		t.Fatalf("SettingForMonth = %+v, want the first in storage order", got)
	}

	if _, ok := l.SettingForMonth("2024-04"); ok {
		t.Fatal("SettingForMonth(unset month) reported presence")
	}
}

func TestDeleteEntry(t *testing.T) {
	l := newTestLedger()
	l.SaveEntry(entry("e1", "2024-03-01", "v1", 2, 50))

	if l.DeleteEntry("e2") {
		t.Fatal("DeleteEntry(nonexistent) = true, want false")
	}
	if !l.DeleteEntry("e1") {
		t.Fatal("DeleteEntry(existing) = false, want true")
	}
	if len(l.Entries()) != 0 {
		t.Fatalf("entries after delete = %v, want empty", l.Entries())
	}
}
