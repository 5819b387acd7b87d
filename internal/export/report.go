// Package export writes dashboard snapshots to spreadsheet and PDF reports.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/Veraticus/salesdash/internal/chart"
	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/dashboard"
	"github.com/Veraticus/salesdash/internal/sales"
)

// Format is a report file format.
type Format string

// Supported formats.
const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "xlsx":
		return FormatXLSX, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q (use .xlsx or .pdf)", common.ErrInvalidFormat, path)
	}
}

// Report is everything one export contains.
type Report struct {
	GeneratedAt time.Time
	Series      sales.ChartSeries
	Records     []sales.Record
	Filter      dashboard.Filter
	Statistics  sales.Statistics
	TotalPages  int
	AllPages    bool
}

// Title names the report after its month and search term.
func (r Report) Title() string {
	title := fmt.Sprintf("Transactions Dashboard - %s", r.Filter.Month)
	if r.Filter.Search != "" {
		title += fmt.Sprintf(" (search: %s)", r.Filter.Search)
	}
	return title
}

// Chart builds the items-per-category chart of the report.
func (r Report) Chart() chart.Chart {
	return chart.New(r.Filter.Month.String(), r.Series)
}

// PageProgress is told about each page fetched while collecting.
type PageProgress func(done, total int)

// Collect runs one refresh round for filter and, when allPages is set,
// gathers the records of every page in order. Unlike the interactive view,
// any failed part fails the export.
func Collect(ctx context.Context, source dashboard.Source, fetcher *dashboard.Fetcher, filter dashboard.Filter, allPages bool, progress PageProgress) (Report, error) {
	result := fetcher.Fetch(ctx, 1, filter)
	if err := result.Err(); err != nil {
		return Report{}, fmt.Errorf("failed to fetch dashboard data: %w", err)
	}

	report := Report{
		GeneratedAt: time.Now(),
		Filter:      filter,
		Records:     result.Records.Records,
		TotalPages:  result.Records.TotalPages,
		Statistics:  *result.Statistics,
		Series:      result.Chart,
		AllPages:    allPages,
	}

	if !allPages {
		return report, nil
	}

	// Walk every page from the first; the page fetched above is reused.
	total := max(report.TotalPages, 1)
	records := make([]sales.Record, 0, len(report.Records)*total)
	for page := 1; page <= total; page++ {
		if page == filter.Page {
			records = append(records, report.Records...)
		} else {
			if err := ctx.Err(); err != nil {
				return Report{}, err
			}
			next, err := source.Records(ctx, filter.Search, page, filter.Month)
			if err != nil {
				return Report{}, fmt.Errorf("failed to fetch page %d: %w", page, err)
			}
			records = append(records, next.Records...)
			slog.Debug("Fetched export page", "page", page, "total", total, "records", len(next.Records))
		}
		if progress != nil {
			progress(page, total)
		}
	}
	report.Records = records

	return report, nil
}
