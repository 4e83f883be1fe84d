package components

import (
	"strings"

	"milkbook/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Overview", Key: 'o', KeyPos: 0},
	{Name: "Entries", Key: 'e', KeyPos: 0},
	{Name: "Vendors", Key: 'v', KeyPos: 0},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimKeyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var parts []string
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}
		before := tab.Name[:tab.KeyPos]
		key := string(tab.Name[tab.KeyPos])
		after := tab.Name[tab.KeyPos+1:]
		parts = append(parts, inactiveStyle.Render(before)+
			dimKeyStyle.Render("[")+keyStyle.Render(key)+dimKeyStyle.Render("]")+
			inactiveStyle.Render(after))
	}

	return " " + strings.Join(parts, "  ")
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
