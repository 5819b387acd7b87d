package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/salesdash/internal/cli"
	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/config"
	"github.com/Veraticus/salesdash/internal/export"
	"github.com/spf13/cobra"
)

func (a *app) exportCmd() *cobra.Command {
	var (
		output   string
		page     int
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the dashboard to an .xlsx or .pdf report",
		Long: `Export the records, month totals and the items-per-category chart to a
spreadsheet (.xlsx, with a native bar chart) or a PDF report. The format
follows the output file extension.`,
		Example: `  salesdash export --output march.xlsx
  salesdash export --month 11 --all-pages --output november.pdf`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.ExpandPath(output)
			if _, err := export.FormatFromPath(path); err != nil {
				return err
			}

			client, fetcher, err := a.newFetcher()
			if err != nil {
				return err
			}

			handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
			ctx, release := handler.HandleInterrupts(cmd.Context(), "Export")
			defer release()

			var progress export.PageProgress
			if allPages {
				progress = cli.NewPageProgress(cmd.ErrOrStderr()).Func()
			}

			report, err := export.Collect(ctx, client, fetcher, a.filter(page), allPages, progress)
			if err != nil {
				if handler.WasInterrupted() {
					return nil
				}
				return common.NewUserError("Could not reach the sales service at "+client.BaseURL(), err)
			}

			if err := export.WriteFile(path, report); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}

			slog.Info("Export written", "path", path, "records", len(report.Records))
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(
				fmt.Sprintf("Exported %d records for %s to %s", len(report.Records), report.Filter.Month, path)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.xlsx or .pdf)")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "records page to export")
	cmd.Flags().BoolVar(&allPages, "all-pages", false, "export every records page")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
