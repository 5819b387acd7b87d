package components

import (
	"fmt"

	"github.com/Veraticus/salesdash/internal/sales"
	"github.com/Veraticus/salesdash/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
)

// RecordColumns are the table headers in display order.
var RecordColumns = []string{"Title", "Category", "Description", "Price"}

// Fixed column widths; Description takes what is left.
const (
	titleWidth      = 24
	categoryWidth   = 16
	priceWidth      = 10
	minDescWidth    = 12
	cellPadding     = 2
	tableBorderCols = 5
)

// RecordsTableModel renders one page of records as a striped table.
type RecordsTableModel struct {
	theme   themes.Theme
	records []sales.Record
	width   int
	height  int
}

// NewRecordsTable creates an empty table.
func NewRecordsTable(theme themes.Theme) RecordsTableModel {
	return RecordsTableModel{
		theme:  theme,
		width:  80,
		height: 12,
	}
}

// SetRecords replaces the displayed page.
func (m *RecordsTableModel) SetRecords(records []sales.Record) {
	m.records = records
}

// Records returns the displayed page.
func (m RecordsTableModel) Records() []sales.Record {
	return m.records
}

// Resize sets the available size. Rows beyond the height are cut off.
func (m *RecordsTableModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the table.
func (m RecordsTableModel) View() string {
	if len(m.records) == 0 {
		return m.theme.Faint.Render("No transactions found")
	}

	descWidth := m.width - titleWidth - categoryWidth - priceWidth -
		4*cellPadding - tableBorderCols
	descWidth = max(descWidth, minDescWidth)

	// header, its separator and the two outer borders
	visible := len(m.records)
	if m.height > 4 {
		visible = min(visible, m.height-4)
	}

	rows := make([][]string, 0, visible)
	for _, r := range m.records[:visible] {
		rows = append(rows, []string{
			runewidth.Truncate(r.Title, titleWidth, "…"),
			runewidth.Truncate(r.Category, categoryWidth, "…"),
			runewidth.Truncate(r.Description, descWidth, "…"),
			fmt.Sprintf("%.2f", r.Price),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(m.theme.Border)).
		Headers(RecordColumns...).
		Rows(rows...).
		StyleFunc(m.cellStyle)

	return t.Render()
}

// cellStyle stripes data rows and right-aligns the price column.
func (m RecordsTableModel) cellStyle(row, col int) lipgloss.Style {
	if row == table.HeaderRow {
		return m.theme.TableHeader
	}

	style := m.theme.StripeEven
	if row%2 == 1 {
		style = m.theme.StripeOdd
	}
	if col == len(RecordColumns)-1 {
		style = style.Align(lipgloss.Right)
	}
	return style
}
