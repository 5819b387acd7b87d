package main

import (
	"github.com/Veraticus/salesdash/internal/tui"
	"github.com/Veraticus/salesdash/internal/tui/themes"
	"github.com/spf13/cobra"
)

func (a *app) dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard (default)",
		Long: `Open the interactive dashboard.

Keys: [ and ] change the month, ←/→ change the page, / searches,
r refreshes, ? shows help and q quits. Logs go to logging.file because the
dashboard owns the terminal.`,
		Annotations: map[string]string{logToFile: "true"},
		RunE:        a.runDashboard,
	}
	a.addDashboardFlags(cmd)
	return cmd
}

func (a *app) addDashboardFlags(cmd *cobra.Command) {
	cmd.Flags().String("theme", "default", "color theme (default, catppuccin-mocha)")
	cmd.Flags().String("log-file", "", "log file (default: ~/.local/share/salesdash/salesdash.log)")
}

func (a *app) runDashboard(cmd *cobra.Command, _ []string) error {
	_, fetcher, err := a.newFetcher()
	if err != nil {
		return err
	}

	return tui.Run(cmd.Context(),
		tui.WithFetcher(fetcher),
		tui.WithTheme(themes.GetTheme(a.cfg.Dashboard.Theme)),
		tui.WithFilter(a.cfg.Dashboard.Month, a.cfg.Dashboard.Search),
	)
}
