package components

import (
	"strings"

	"github.com/Veraticus/salesdash/internal/sales"
	"github.com/Veraticus/salesdash/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// stripCellWidth is the width of one month in the wide layout.
const stripCellWidth = 5

// MonthPickerModel selects one of the twelve months.
type MonthPickerModel struct {
	theme themes.Theme
	month sales.Month
	width int
}

// NewMonthPicker creates a picker showing month.
func NewMonthPicker(month sales.Month, theme themes.Theme) MonthPickerModel {
	if !month.Valid() {
		month = sales.DefaultMonth
	}
	return MonthPickerModel{
		month: month,
		theme: theme,
		width: 80,
	}
}

// Month returns the selected month.
func (m MonthPickerModel) Month() sales.Month {
	return m.month
}

// Next selects the following month, wrapping after December.
func (m MonthPickerModel) Next() (MonthPickerModel, tea.Cmd) {
	return m.Set(m.month.Next())
}

// Prev selects the preceding month, wrapping before January.
func (m MonthPickerModel) Prev() (MonthPickerModel, tea.Cmd) {
	return m.Set(m.month.Prev())
}

// Set selects month. The returned command reports the change, or is nil
// when month was already selected.
func (m MonthPickerModel) Set(month sales.Month) (MonthPickerModel, tea.Cmd) {
	if !month.Valid() || month == m.month {
		return m, nil
	}
	m.month = month
	return m, func() tea.Msg {
		return MonthChangedMsg{Month: month}
	}
}

// Resize sets the available width.
func (m *MonthPickerModel) Resize(width int) {
	m.width = width
}

// View renders the picker. Wide terminals get all twelve months with the
// selection highlighted; narrow ones only the selected month.
func (m MonthPickerModel) View() string {
	label := m.theme.Subtitle.Render("Month ")

	if m.width-lipgloss.Width(label) < len(sales.Months)*stripCellWidth {
		return label + m.theme.Faint.Render("◀ ") +
			m.theme.Selected.Render(" "+m.month.String()+" ") +
			m.theme.Faint.Render(" ▶")
	}

	var b strings.Builder
	b.WriteString(label)
	for _, month := range sales.Months {
		cell := " " + abbreviation(month) + " "
		if month == m.month {
			b.WriteString(m.theme.Selected.Render(cell))
		} else {
			b.WriteString(m.theme.Faint.Render(cell))
		}
		b.WriteString(" ")
	}
	return b.String()
}

func abbreviation(month sales.Month) string {
	name := []rune(month.String())
	if len(name) > 3 {
		name = name[:3]
	}
	return string(name)
}
