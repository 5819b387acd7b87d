package main

import (
	"fmt"

	"github.com/Veraticus/salesdash/internal/cli"
	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/export"
	"github.com/spf13/cobra"
)

func (a *app) snapshotCmd() *cobra.Command {
	var (
		format   string
		page     int
		allPages bool
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print the dashboard once and exit",
		Long: `Fetch one page of records, the month totals and the chart data, and
print them as text or JSON. Unlike the interactive dashboard, any failed
query fails the command.`,
		Example: `  salesdash snapshot --month 04 --search bag
  salesdash snapshot --format json --all-pages`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("%w: %s (want text or json)", common.ErrInvalidFormat, format)
			}

			client, fetcher, err := a.newFetcher()
			if err != nil {
				return err
			}

			report, err := export.Collect(cmd.Context(), client, fetcher, a.filter(page), allPages, nil)
			if err != nil {
				return common.NewUserError("Could not reach the sales service at "+client.BaseURL(), err)
			}

			if format == "json" {
				return cli.WriteSnapshotJSON(cmd.OutOrStdout(), report)
			}
			return cli.RenderSnapshot(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "records page to show")
	cmd.Flags().BoolVar(&allPages, "all-pages", false, "include every records page")

	return cmd
}
