package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₹0.00"},
		{100, "₹100.00"},
		{1234.5, "₹1,234.50"},
		{123456.78, "₹1,23,456.78"},
		{12345678.9, "₹1,23,45,678.90"},
		{-250, "-₹250.00"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.amount, "₹"); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	if got := FormatQuantity(2); got != "2 L" {
		t.Errorf("FormatQuantity(2) = %q, want %q", got, "2 L")
	}
	if got := FormatQuantity(2.5); got != "2.5 L" {
		t.Errorf("FormatQuantity(2.5) = %q, want %q", got, "2.5 L")
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2024-03-01"); got != "01 Mar 2024" {
		t.Errorf("FormatDate = %q, want %q", got, "01 Mar 2024")
	}
	if got := FormatDate("garbage"); got != "garbage" {
		t.Errorf("FormatDate(non-canonical) = %q, want passthrough", got)
	}
}

func TestFormatMonth(t *testing.T) {
	if got := FormatMonth("2024-03"); got != "March 2024" {
		t.Errorf("FormatMonth = %q, want %q", got, "March 2024")
	}
}

func TestJoinDays(t *testing.T) {
	tests := []struct {
		days []int
		want string
	}{
		{nil, "none"},
		{[]int{4}, "4"},
		{[]int{1, 2, 3, 7, 9, 10}, "1-3, 7, 9-10"},
		{[]int{5, 6, 7, 8}, "5-8"},
	}
	for _, tt := range tests {
		if got := JoinDays(tt.days); got != tt.want {
			t.Errorf("JoinDays(%v) = %q, want %q", tt.days, got, tt.want)
		}
	}
}
