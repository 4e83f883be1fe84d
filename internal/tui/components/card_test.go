package components

import (
	"strings"
	"testing"

	"milkbook/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func TestLayoutRowSumsToTotal(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{100, 4},
		{101, 4},
		{103, 3},
		{55, 1},
	}

	for _, c := range cases {
		widths := LayoutRow(c.total, c.n)
		if len(widths) != c.n {
			t.Fatalf("LayoutRow(%d, %d) len = %d, want %d", c.total, c.n, len(widths), c.n)
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != c.total {
			t.Fatalf("LayoutRow(%d, %d) sum = %d, want %d", c.total, c.n, sum, c.total)
		}
		// No two widths differ by more than 1.
		for _, w := range widths {
			if w < widths[len(widths)-1] || w > widths[0] {
				t.Fatalf("LayoutRow(%d, %d) uneven widths %v", c.total, c.n, widths)
			}
		}
	}
}

func TestMetricCardRowHeightsMatch(t *testing.T) {
	theme.SetActive("flexoki-dark")

	row := MetricCardRow([]struct{ Label, Value, Detail string }{
		{"Quantity", "62 L", "31 deliveries"},
		{"Pending", "₹850.00", ""},
	}, 60)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 60 {
			t.Fatalf("row line %d width = %d, want 60", i, w)
		}
	}
}

func TestSparklineMarksZeroDays(t *testing.T) {
	theme.SetActive("terminal")

	s := Sparkline([]float64{2, 0, 1.5, 0, 2}, lipgloss.Color("4"))
	if got := strings.Count(s, "·"); got != 2 {
		t.Fatalf("zero-day markers = %d, want 2", got)
	}
	if !strings.ContainsRune(s, '█') {
		t.Fatal("peak value missing full block")
	}
}

func TestTabIdxByKey(t *testing.T) {
	for i, tab := range Tabs {
		if got := TabIdxByKey(tab.Key); got != i {
			t.Fatalf("TabIdxByKey(%q) = %d, want %d", tab.Key, got, i)
		}
	}
	if got := TabIdxByKey('x'); got != -1 {
		t.Fatalf("TabIdxByKey('x') = %d, want -1", got)
	}
}
