package tui

import (
	"fmt"

	"milkbook/internal/cli"
	"milkbook/internal/tui/components"
	"milkbook/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(width int) string {
	t := theme.Active

	cards := []struct{ Label, Value, Detail string }{
		{
			Label:  "Quantity",
			Value:  cli.FormatQuantity(a.monthly.TotalQuantity),
			Detail: fmt.Sprintf("%d deliveries", len(a.monthEntries)),
		},
		{
			Label:  "Total",
			Value:  cli.FormatMoney(a.monthly.TotalAmount, a.currency),
			Detail: "this month",
		},
		{
			Label:  "Paid",
			Value:  cli.FormatMoney(a.monthly.TotalPaid, a.currency),
			Detail: paidRatio(a.monthly.TotalPaid, a.monthly.TotalAmount),
		},
		{
			Label:  "Pending",
			Value:  cli.FormatMoney(a.monthly.PendingAmount, a.currency),
			Detail: fmt.Sprintf("%d unpaid", a.unpaidCount()),
		},
	}
	topRow := components.MetricCardRow(cards, width)

	halves := components.LayoutRow(width, 2)
	sparkWidth := components.CardInnerWidth(halves[0])
	spark := components.Sparkline(clampValues(a.daily, sparkWidth), t.Blue)
	deliveriesCard := components.ContentCard("Daily Liters", spark, halves[0])

	missedBody := lipgloss.NewStyle().Foreground(t.Green).Render("No missed days")
	if len(a.missed) > 0 {
		missedBody = lipgloss.NewStyle().Foreground(t.Orange).
			Render(fmt.Sprintf("%d missed: %s", len(a.missed), cli.JoinDays(a.missed)))
	}
	if len(a.monthEntries) == 0 {
		missedBody = lipgloss.NewStyle().Foreground(t.TextDim).Render("No entries this month")
	}
	missedCard := components.ContentCard("Missed Days", missedBody, halves[1])

	return topRow + "\n" + components.CardRow([]string{deliveriesCard, missedCard})
}

func paidRatio(paid, total float64) string {
	if total <= 0 {
		return "no dues"
	}
	return fmt.Sprintf("%.0f%% settled", paid/total*100)
}

func (a App) unpaidCount() int {
	n := 0
	for _, e := range a.monthEntries {
		if !e.IsPaid {
			n++
		}
	}
	return n
}

// clampValues trims a daily series to the widest window that fits,
// keeping the most recent days.
func clampValues(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		return values
	}
	return values[len(values)-width:]
}
