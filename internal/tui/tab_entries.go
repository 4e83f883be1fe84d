package tui

import (
	"fmt"

	"milkbook/internal/cli"
	"milkbook/internal/tui/components"
	"milkbook/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// visibleEntryRows caps how many entries render at once; the cursor
// keeps the selection inside the window.
const visibleEntryRows = 15

func (a App) updateEntriesTab(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.cursor < len(a.monthEntries)-1 {
			a.cursor++
		}
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
	case "g":
		a.cursor = 0
	case "G":
		if len(a.monthEntries) > 0 {
			a.cursor = len(a.monthEntries) - 1
		}
	case "p":
		if a.cursor < len(a.monthEntries) {
			e := a.monthEntries[a.cursor]
			e.IsPaid = !e.IsPaid
			a.ledger.SaveEntry(e)
			a.recompute()
		}
	case "d":
		if a.cursor < len(a.monthEntries) {
			a.ledger.DeleteEntry(a.monthEntries[a.cursor].ID)
			a.recompute()
		}
	}
	return a, nil
}

func (a App) renderEntriesTab(width int) string {
	t := theme.Active

	if len(a.monthEntries) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).
			Render("No entries this month. Add one with: milkbook add")
		return components.ContentCard("Entries", empty, width)
	}

	start := 0
	if a.cursor >= visibleEntryRows {
		start = a.cursor - visibleEntryRows + 1
	}
	end := start + visibleEntryRows
	if end > len(a.monthEntries) {
		end = len(a.monthEntries)
	}

	dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	paidStyle := lipgloss.NewStyle().Foreground(t.Green)
	dueStyle := lipgloss.NewStyle().Foreground(t.Orange)

	var body string
	for i := start; i < end; i++ {
		e := a.monthEntries[i]

		vendor := a.vendorNames[e.VendorID]
		if vendor == "" {
			vendor = "Unknown"
		}

		status := dueStyle.Render("due ")
		if e.IsPaid {
			status = paidStyle.Render("paid")
		}

		line := fmt.Sprintf("%-12s %-14s %8s %10s  %s",
			cli.FormatDate(e.Date),
			cli.Truncate(vendor, 14),
			cli.FormatQuantity(e.Quantity),
			cli.FormatMoney(e.Amount(), a.currency),
			status)

		if i == a.cursor {
			body += selStyle.Render("▸ "+line) + "\n"
		} else {
			body += dimStyle.Render("  "+line) + "\n"
		}
	}

	if len(a.monthEntries) > visibleEntryRows {
		body += lipgloss.NewStyle().Foreground(t.TextDim).
			Render(fmt.Sprintf("  %d-%d of %d", start+1, end, len(a.monthEntries)))
	}

	title := fmt.Sprintf("Entries (%d)", len(a.monthEntries))
	card := components.ContentCard(title, body, width)

	hint := lipgloss.NewStyle().Foreground(t.TextDim).
		Render("  [j/k] move  [p] toggle paid  [d] delete")
	return card + "\n" + hint
}
