// Package tui provides the interactive Bubble Tea dashboard for milkbook.
package tui

import (
	"fmt"
	"time"

	"milkbook/internal/ledger"
	"milkbook/internal/model"
	"milkbook/internal/stats"
	"milkbook/internal/tui/components"
	"milkbook/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the initial ledger read finishes.
type DataLoadedMsg struct{}

const (
	tabOverview = iota
	tabEntries
	tabVendors
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 110
)

// App is the root Bubble Tea model.
type App struct {
	ledger   *ledger.Ledger
	currency string

	// Selected month
	year  int
	month time.Month

	// Recomputed from the ledger after every mutation or month change
	monthEntries []model.MilkEntry
	monthly      model.MonthlyStats
	vendors      []model.Vendor
	vendorNames  map[string]string
	vendorStats  []model.VendorWithStats
	missed       []int
	daily        []float64

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	cursor    int // entries tab selection

	loaded  bool
	spinner spinner.Model
}

// NewApp creates a new dashboard model over an open ledger.
func NewApp(l *ledger.Ledger, currency string, year int, month time.Month) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		ledger:   l,
		currency: currency,
		year:     year,
		month:    month,
		spinner:  sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, func() tea.Msg { return DataLoadedMsg{} })
}

// recompute re-reads the ledger and rebuilds everything derived. The
// ledger itself holds no cache, so this always reflects the last write.
func (a *App) recompute() {
	a.monthEntries = a.ledger.EntriesForMonth(a.year, a.month)
	a.monthly = stats.Monthly(a.monthEntries)
	a.missed = stats.MissedDaysIn(a.monthEntries, a.year, a.month)
	a.daily = stats.DailyQuantities(a.monthEntries, a.year, a.month)

	a.vendors = a.ledger.Vendors()
	a.vendorNames = make(map[string]string, len(a.vendors))
	allEntries := a.ledger.Entries()
	a.vendorStats = a.vendorStats[:0]
	for _, v := range a.vendors {
		a.vendorNames[v.ID] = v.Name
		a.vendorStats = append(a.vendorStats, stats.ForVendor(v, allEntries))
	}

	if a.cursor >= len(a.monthEntries) {
		a.cursor = len(a.monthEntries) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// shiftMonth moves the selected month by delta months.
func (a *App) shiftMonth(delta int) {
	t := time.Date(a.year, a.month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	a.year, a.month = t.Year(), t.Month()
	a.cursor = 0
	a.recompute()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.recompute()
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" || key == "q" {
			return a, tea.Quit
		}
		if !a.loaded {
			return a, nil
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
			return a, nil
		case "left", "[", "h":
			a.shiftMonth(-1)
			return a, nil
		case "right", "]", "l":
			a.shiftMonth(1)
			return a, nil
		}

		if idx := tabForKey(key); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}

		if a.activeTab == tabEntries {
			return a.updateEntriesTab(key)
		}
		return a, nil
	}

	return a, nil
}

func tabForKey(key string) int {
	if len(key) != 1 {
		return -1
	}
	return components.TabIdxByKey(rune(key[0]))
}

// View implements tea.Model.
func (a App) View() string {
	if a.width > 0 && a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d)\n", a.width, minTerminalWidth)
	}

	if !a.loaded {
		return "\n  " + a.spinner.View() + " Opening ledger...\n"
	}

	if a.showHelp {
		return a.renderHelp()
	}

	cw := a.width - 2
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	if cw < 40 {
		cw = 40
	}

	var content string
	switch a.activeTab {
	case tabEntries:
		content = a.renderEntriesTab(cw)
	case tabVendors:
		content = a.renderVendorsTab(cw)
	default:
		content = a.renderOverviewTab(cw)
	}

	monthLabel := time.Date(a.year, a.month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")

	return "\n" + components.RenderTabBar(a.activeTab) + "\n\n" +
		content + "\n" +
		components.RenderStatusBar(a.width, monthLabel)
}

func (a App) renderHelp() string {
	t := theme.Active
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	help := [][2]string{
		{"o / e / v", "switch tab"},
		{"tab", "next tab"},
		{"← / →", "previous / next month"},
		{"j / k", "move selection (entries)"},
		{"p", "toggle paid on selected entry"},
		{"d", "delete selected entry"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}

	body := "\n"
	for _, h := range help {
		body += fmt.Sprintf("  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", h[0])),
			descStyle.Render(h[1]))
	}
	return body
}
