package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/Veraticus/salesdash/internal/chart"
	"github.com/Veraticus/salesdash/internal/export"
	"github.com/Veraticus/salesdash/internal/sales"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Snapshot sizes.
const (
	snapshotChartWidth  = 60
	snapshotChartHeight = 12
)

// RenderSnapshot writes a one-shot text view of the dashboard to w: the
// month totals, the records table and the bar chart.
func RenderSnapshot(w io.Writer, r export.Report) error {
	stats := lipgloss.JoinVertical(
		lipgloss.Left,
		fmt.Sprintf("%s  %s", SubtitleStyle.Render("Total Sale Amount: "), BoldStyle.Render(r.Statistics.FormatSaleAmount())),
		fmt.Sprintf("%s  %s", SubtitleStyle.Render("Total Sold Items:  "), BoldStyle.Render(strconv.Itoa(r.Statistics.TotalSoldItems))),
		fmt.Sprintf("%s  %s", SubtitleStyle.Render("Total Unsold Items:"), BoldStyle.Render(strconv.Itoa(r.Statistics.TotalUnsoldItems))),
	)

	canvas := chart.NewTextCanvas(snapshotChartWidth, snapshotChartHeight, chart.TextStyles{
		Bar:    ChartBarStyle,
		Axis:   SubtitleStyle,
		Legend: SubtitleStyle,
	})
	surface := chart.NewSurface[*chart.Frame](canvas)
	frame, err := surface.Render(r.Chart())
	if err != nil {
		return fmt.Errorf("failed to draw chart: %w", err)
	}
	defer func() { _ = surface.Close() }()

	page := fmt.Sprintf("Page %d of %d", r.Filter.Page, max(r.TotalPages, 1))
	if r.AllPages {
		page = fmt.Sprintf("All %d pages", max(r.TotalPages, 1))
	}

	out := lipgloss.JoinVertical(
		lipgloss.Left,
		FormatTitle(r.Title()),
		"",
		RenderBox("Statistics", stats),
		"",
		renderRecords(r.Records),
		SubtitleStyle.Render(page),
		"",
		RenderBox("Items per category", frame.String()),
	)

	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

func renderRecords(records []sales.Record) string {
	if len(records) == 0 {
		return SubtitleStyle.Render("No transactions found")
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Title, r.Category, r.Description, fmt.Sprintf("%.2f", r.Price)})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Title", "Category", "Description", "Price").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			if col == 3 {
				return TableCellStyle.Align(lipgloss.Right)
			}
			return TableCellStyle
		}).
		Render()
}

// snapshotJSON is the machine-readable snapshot.
type snapshotJSON struct {
	Filter     filterJSON        `json:"filter"`
	Statistics sales.Statistics  `json:"statistics"`
	Chart      sales.ChartSeries `json:"chart"`
	Records    []sales.Record    `json:"records"`
	TotalPages int               `json:"totalPages"`
}

type filterJSON struct {
	Month  string `json:"month"`
	Search string `json:"search"`
	Page   int    `json:"page"`
}

// WriteSnapshotJSON writes the report as indented JSON.
func WriteSnapshotJSON(w io.Writer, r export.Report) error {
	records := r.Records
	if records == nil {
		records = []sales.Record{}
	}
	series := r.Series
	if series == nil {
		series = sales.ChartSeries{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshotJSON{
		Filter: filterJSON{
			Month:  r.Filter.Month.Code(),
			Search: r.Filter.Search,
			Page:   r.Filter.Page,
		},
		Statistics: r.Statistics,
		Chart:      series,
		Records:    records,
		TotalPages: r.TotalPages,
	}); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}
