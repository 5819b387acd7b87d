package export

import (
	"fmt"
	"io"

	"github.com/Veraticus/salesdash/internal/chart"
	"github.com/xuri/excelize/v2"
)

const (
	recordsSheet = "Transactions"
	summarySheet = "Summary"
	chartSheet   = "Chart"
	chartAnchor  = "D2"
)

// SheetCanvas draws charts into a worksheet: the bar data goes to columns
// A:B and a native column chart is anchored next to it.
type SheetCanvas struct {
	file   *excelize.File
	sheet  string
	anchor string
}

// NewSheetCanvas returns a canvas on sheet, which must exist.
func NewSheetCanvas(file *excelize.File, sheet, anchor string) *SheetCanvas {
	return &SheetCanvas{file: file, sheet: sheet, anchor: anchor}
}

// SheetChart is a chart placed on a worksheet.
type SheetChart struct {
	file   *excelize.File
	sheet  string
	anchor string
	rows   int
}

// Rows returns how many data rows back the chart, header included.
func (s *SheetChart) Rows() int {
	return s.rows
}

// Release removes the chart and blanks its data range.
func (s *SheetChart) Release() error {
	if err := s.file.DeleteChart(s.sheet, s.anchor); err != nil {
		return fmt.Errorf("delete chart: %w", err)
	}
	for row := 1; row <= s.rows; row++ {
		for col := 1; col <= 2; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return err
			}
			if err := s.file.SetCellStr(s.sheet, cell, ""); err != nil {
				return err
			}
		}
	}
	return nil
}

// Draw writes the chart data and adds the column chart.
func (c *SheetCanvas) Draw(ch chart.Chart) (*SheetChart, error) {
	header := []any{"Category", ch.DatasetLabel}
	if err := c.file.SetSheetRow(c.sheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, bar := range ch.Bars {
		row := []any{bar.Label, bar.Value}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := c.file.SetSheetRow(c.sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	placed := &SheetChart{file: c.file, sheet: c.sheet, anchor: c.anchor, rows: len(ch.Bars) + 1}
	if ch.Empty() {
		return placed, nil
	}

	last := len(ch.Bars) + 1
	yMin := float64(ch.YMin)
	err := c.file.AddChart(c.sheet, c.anchor, &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$1", c.sheet),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", c.sheet, last),
			Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", c.sheet, last),
		}},
		Title:  []excelize.RichTextRun{{Text: ch.Title}},
		Legend: excelize.ChartLegend{Position: "bottom"},
		YAxis:  excelize.ChartAxis{Minimum: &yMin},
	})
	if err != nil {
		return nil, fmt.Errorf("add chart: %w", err)
	}

	return placed, nil
}

// WriteXLSX writes the report as a workbook with records, summary and chart
// sheets.
func WriteXLSX(w io.Writer, r Report) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", recordsSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(chartSheet); err != nil {
		return err
	}

	if err := writeRecordsSheet(f, r); err != nil {
		return fmt.Errorf("records sheet: %w", err)
	}
	if err := writeSummarySheet(f, r); err != nil {
		return fmt.Errorf("summary sheet: %w", err)
	}

	surface := chart.NewSurface[*SheetChart](NewSheetCanvas(f, chartSheet, chartAnchor))
	if _, err := surface.Render(r.Chart()); err != nil {
		return fmt.Errorf("chart sheet: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRecordsSheet(f *excelize.File, r Report) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#7C3AED"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	stripeStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#F2F2F2"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	priceStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return err
	}

	header := []any{"ID", "Title", "Category", "Description", "Price"}
	if err := f.SetSheetRow(recordsSheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(recordsSheet, "A1", "E1", headerStyle); err != nil {
		return err
	}

	for i, rec := range r.Records {
		rowNum := i + 2
		row := []any{string(rec.ID), rec.Title, rec.Category, rec.Description, rec.Price}
		if err := f.SetSheetRow(recordsSheet, fmt.Sprintf("A%d", rowNum), &row); err != nil {
			return err
		}
		if i%2 == 1 {
			if err := f.SetCellStyle(recordsSheet, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("D%d", rowNum), stripeStyle); err != nil {
				return err
			}
		}
		if err := f.SetCellStyle(recordsSheet, fmt.Sprintf("E%d", rowNum), fmt.Sprintf("E%d", rowNum), priceStyle); err != nil {
			return err
		}
	}

	widths := map[string]float64{"A": 8, "B": 36, "C": 18, "D": 60, "E": 12}
	for col, width := range widths {
		if err := f.SetColWidth(recordsSheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, r Report) error {
	rows := [][]any{
		{"Report", r.Title()},
		{"Month", r.Filter.Month.String()},
		{"Search", r.Filter.Search},
		{"Generated", r.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Total Sale Amount", r.Statistics.TotalSaleAmount},
		{"Total Sold Items", r.Statistics.TotalSoldItems},
		{"Total Unsold Items", r.Statistics.TotalUnsoldItems},
		{"Records", len(r.Records)},
		{"Total Pages", r.TotalPages},
	}
	for i, row := range rows {
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return err
		}
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "B5", "B5", amountStyle); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "A", "A", 22)
}
