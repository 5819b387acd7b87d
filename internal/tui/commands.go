package tui

import (
	"github.com/Veraticus/salesdash/internal/dashboard"
	tea "github.com/charmbracelet/bubbletea"
)

// refresh opens a new refresh round for the current filter. Rounds may
// overlap; only the newest one is applied when it lands.
func (m *Model) refresh() tea.Cmd {
	wasLoading := m.state.Loading()
	gen, filter := m.state.Begin()
	m.logger.Debug("Starting refresh",
		"generation", gen,
		"month", filter.Month.Code(),
		"search", filter.Search,
		"page", filter.Page)

	cmds := []tea.Cmd{m.fetch(gen, filter)}
	if !wasLoading {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// fetch runs one round in the background and reports it as a refreshedMsg.
func (m Model) fetch(gen dashboard.Generation, filter dashboard.Filter) tea.Cmd {
	ctx := m.ctx
	fetcher := m.fetcher
	return func() tea.Msg {
		return refreshedMsg{result: fetcher.Fetch(ctx, gen, filter)}
	}
}

// applyResult folds a finished round into the model. Stale rounds are
// dropped.
func (m *Model) applyResult(r dashboard.Result) {
	if !m.state.Apply(r) {
		m.logger.Debug("Discarding stale refresh",
			"generation", r.Generation,
			"latest", m.state.Latest())
		return
	}

	m.table.SetRecords(m.state.Records())
	m.stats.SetStatistics(m.state.Statistics())
	if r.ChartErr == nil && r.Chart != nil {
		m.chart.SetSeries(r.Filter.Month, m.state.Series())
	}
	m.syncPager()
}

func (m *Model) syncPager() {
	m.pager.SetPosition(m.state.Page(), m.state.TotalPages())
}
