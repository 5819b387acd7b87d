package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// appTitle heads the dashboard.
const appTitle = "Transactions Dashboard"

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.theme.Title.Render(appTitle),
		m.months.View(),
		m.search.View(),
		m.stats.View(),
		m.renderBody(),
		m.pager.View(),
		m.renderStatusBar(),
	}
	if m.showHelp {
		sections = append(sections, m.help.View(m.keymap))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderBody lays out the table and chart side by side on wide terminals
// and stacked otherwise.
func (m Model) renderBody() string {
	table := m.table.View()
	chart := m.theme.RoundedBox.Render(m.chart.View())

	if m.wide() {
		return lipgloss.JoinHorizontal(lipgloss.Top, table, " ", chart)
	}
	return lipgloss.JoinVertical(lipgloss.Left, table, chart)
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	var left string
	if m.state.Loading() {
		left = m.spinner.View() + m.theme.StatusInfo.Render(" Loading")
	} else {
		left = m.theme.StatusInfo.Render("Ready")
	}

	filter := m.state.Filter()
	center := filter.Month.String()
	if filter.Search != "" {
		center += fmt.Sprintf(" · search: %q", filter.Search)
	}

	right := m.theme.Faint.Render("? Help")
	if !m.showHelp {
		right = m.help.ShortHelpView(m.keymap.ShortHelp())
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if spacing < 2 {
		return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", m.theme.Normal.Render(center))
	}
	leftPad := spacing / 2

	return left +
		strings.Repeat(" ", leftPad) +
		m.theme.Normal.Render(center) +
		strings.Repeat(" ", spacing-leftPad) +
		right
}
