package tui

import (
	"testing"
	"time"

	"milkbook/internal/ledger"
	"milkbook/internal/model"
	"milkbook/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp() (App, *ledger.Ledger) {
	s := store.New(store.NewMemory())
	s.SetLogWriter(nil)
	l := ledger.New(s)

	l.SaveVendor(model.Vendor{ID: "v1", Name: "Fresh Dairy", DefaultRate: 50})
	l.SaveEntry(model.MilkEntry{ID: "e1", Date: "2024-03-01", Quantity: 2, Rate: 50, VendorID: "v1"})
	l.SaveEntry(model.MilkEntry{ID: "e2", Date: "2024-03-02", Quantity: 1.5, Rate: 50, VendorID: "v1", IsPaid: true})
	l.SaveEntry(model.MilkEntry{ID: "e3", Date: "2024-04-01", Quantity: 2, Rate: 55, VendorID: "v1"})

	a := NewApp(l, "₹", 2024, time.March)
	a.loaded = true
	a.recompute()
	return a, l
}

func keyPress(a App, key string) App {
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return m.(App)
}

func TestRecomputeFiltersSelectedMonth(t *testing.T) {
	a, _ := newTestApp()

	if len(a.monthEntries) != 2 {
		t.Fatalf("march entries = %d, want 2", len(a.monthEntries))
	}
	if a.monthly.TotalAmount != 175 {
		t.Fatalf("march total = %v, want 175", a.monthly.TotalAmount)
	}
}

func TestMonthNavigation(t *testing.T) {
	a, _ := newTestApp()

	a = keyPress(a, "]")
	if a.year != 2024 || a.month != time.April {
		t.Fatalf("month = %d-%v, want 2024-April", a.year, a.month)
	}
	if len(a.monthEntries) != 1 {
		t.Fatalf("april entries = %d, want 1", len(a.monthEntries))
	}

	a = keyPress(a, "[")
	a = keyPress(a, "[")
	if a.year != 2024 || a.month != time.February {
		t.Fatalf("month = %d-%v, want 2024-February", a.year, a.month)
	}
}

func TestYearBoundaryNavigation(t *testing.T) {
	a, _ := newTestApp()
	a.year, a.month = 2024, time.January

	a = keyPress(a, "[")
	if a.year != 2023 || a.month != time.December {
		t.Fatalf("month = %d-%v, want 2023-December", a.year, a.month)
	}
}

func TestPaidToggleWritesThrough(t *testing.T) {
	a, l := newTestApp()
	a.activeTab = tabEntries

	// Cursor starts on e1, which is unpaid.
	a = keyPress(a, "p")

	e, ok := l.EntryByID("e1")
	if !ok {
		t.Fatal("e1 missing after toggle")
	}
	if !e.IsPaid {
		t.Fatal("e1 still unpaid after toggle")
	}
	if a.monthly.PendingAmount != 0 {
		t.Fatalf("pending = %v, want 0", a.monthly.PendingAmount)
	}
}

func TestDeleteClampsCursor(t *testing.T) {
	a, l := newTestApp()
	a.activeTab = tabEntries

	a = keyPress(a, "j") // cursor to last march entry
	a = keyPress(a, "d")

	if _, ok := l.EntryByID("e2"); ok {
		t.Fatal("e2 still present after delete")
	}
	if len(a.monthEntries) != 1 {
		t.Fatalf("march entries = %d, want 1", len(a.monthEntries))
	}
	if a.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", a.cursor)
	}
}

func TestTabKeys(t *testing.T) {
	a, _ := newTestApp()

	a = keyPress(a, "e")
	if a.activeTab != tabEntries {
		t.Fatalf("tab = %d, want %d", a.activeTab, tabEntries)
	}
	a = keyPress(a, "v")
	if a.activeTab != tabVendors {
		t.Fatalf("tab = %d, want %d", a.activeTab, tabVendors)
	}
	a = keyPress(a, "o")
	if a.activeTab != tabOverview {
		t.Fatalf("tab = %d, want %d", a.activeTab, tabOverview)
	}
}
