// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"milkbook/internal/model"
)

// FormatMoney formats a currency amount with the given symbol, two
// fraction digits, and Indian digit grouping (the grouping the ledger
// has always used: last three digits, then pairs).
// e.g., 123456.5 -> "₹1,23,456.50"
func FormatMoney(amount float64, currency string) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	grouped := groupIndian(intPart)
	out := currency + grouped + "." + fracPart
	if neg {
		return "-" + out
	}
	return out
}

// groupIndian inserts separators in the 3-then-2 Indian pattern.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}

// FormatQuantity formats liters, trimming insignificant zeros.
// e.g., 2.0 -> "2 L", 2.5 -> "2.5 L"
func FormatQuantity(liters float64) string {
	return strconv.FormatFloat(liters, 'f', -1, 64) + " L"
}

// FormatRate formats a per-liter rate. e.g., 55.0 -> "₹55/L"
func FormatRate(rate float64, currency string) string {
	return currency + strconv.FormatFloat(rate, 'f', -1, 64) + "/L"
}

// FormatDate renders a canonical entry date for display.
// e.g., "2024-03-01" -> "01 Mar 2024". Non-canonical input passes through.
func FormatDate(date string) string {
	t, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02 Jan 2006")
}

// FormatMonth renders a YYYY-MM key as a month name.
// e.g., "2024-03" -> "March 2024". Non-canonical input passes through.
func FormatMonth(monthKey string) string {
	t, err := time.Parse(model.MonthLayout, monthKey)
	if err != nil {
		return monthKey
	}
	return t.Format("January 2006")
}

// FormatDayOfWeek returns a 3-letter day abbreviation for a canonical
// entry date, or an empty string for non-canonical input.
func FormatDayOfWeek(date string) string {
	t, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return ""
	}
	return t.Format("Mon")
}

// FormatPaid renders a paid flag as the ledger's Yes/No convention.
func FormatPaid(paid bool) string {
	if paid {
		return "Yes"
	}
	return "No"
}

// JoinDays renders a day-number list compactly, collapsing runs.
// e.g., [1 2 3 7 9 10] -> "1-3, 7, 9-10"
func JoinDays(days []int) string {
	if len(days) == 0 {
		return "none"
	}

	var parts []string
	start, prev := days[0], days[0]
	flush := func() {
		if start == prev {
			parts = append(parts, strconv.Itoa(start))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", start, prev))
		}
	}
	for _, d := range days[1:] {
		if d == prev+1 {
			prev = d
			continue
		}
		flush()
		start, prev = d, d
	}
	flush()
	return strings.Join(parts, ", ")
}

// Truncate shortens s to at most maxLen runes with an ellipsis.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}
