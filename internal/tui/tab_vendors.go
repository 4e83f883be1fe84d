package tui

import (
	"fmt"

	"milkbook/internal/cli"
	"milkbook/internal/tui/components"
	"milkbook/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderVendorsTab(width int) string {
	t := theme.Active

	if len(a.vendorStats) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).
			Render("No vendors yet. Add one with: milkbook vendors add")
		return components.ContentCard("Vendors", empty, width)
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dueStyle := lipgloss.NewStyle().Foreground(t.Orange)
	okStyle := lipgloss.NewStyle().Foreground(t.Green)

	var body string
	for _, vs := range a.vendorStats {
		pending := okStyle.Render("settled")
		if vs.PendingAmount > 0 {
			pending = dueStyle.Render(cli.FormatMoney(vs.PendingAmount, a.currency) + " due")
		}
		body += fmt.Sprintf("%s  %s\n",
			nameStyle.Render(fmt.Sprintf("%-18s", cli.Truncate(vs.Name, 18))),
			mutedStyle.Render(fmt.Sprintf("%s  %9s  %12s  ",
				cli.FormatRate(vs.DefaultRate, a.currency),
				cli.FormatQuantity(vs.TotalQuantity),
				cli.FormatMoney(vs.TotalAmount, a.currency)))+pending)
	}
	listCard := components.ContentCard(fmt.Sprintf("Vendors (%d)", len(a.vendorStats)), body, width)

	// Lifetime amount per vendor as a bar chart.
	labels := make([]string, len(a.vendorStats))
	values := make([]float64, len(a.vendorStats))
	for i, vs := range a.vendorStats {
		labels[i] = cli.Truncate(vs.Name, 12)
		values[i] = vs.TotalAmount
	}
	bars := components.HorizontalBars(labels, values, t.Blue, components.CardInnerWidth(width))
	chartCard := components.ContentCard("Total Billed", bars, width)

	return listCard + "\n" + chartCard
}
