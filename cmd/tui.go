package cmd

import (
	"fmt"

	"milkbook/internal/tui"
	"milkbook/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive dashboard",
	Long:  `Open a full-screen dashboard with monthly overview, entries, and vendors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, cfg, closeFn, err := openLedger()
		if err != nil {
			return err
		}
		defer closeFn()

		theme.SetActive(cfg.Appearance.Theme)

		year, month, err := selectedMonth()
		if err != nil {
			return err
		}

		app := tui.NewApp(l, cfg.General.Currency, year, month)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running dashboard: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
