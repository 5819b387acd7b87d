package tui

import (
	"context"
	"log/slog"

	"github.com/Veraticus/salesdash/internal/dashboard"
	"github.com/Veraticus/salesdash/internal/tui/components"
	"github.com/Veraticus/salesdash/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Layout constants.
const (
	chartHeight     = 14
	wideLayoutWidth = 120
	chartPanelWidth = 44
)

// Model holds the main TUI state.
type Model struct {
	ctx      context.Context
	theme    themes.Theme
	fetcher  *dashboard.Fetcher
	logger   *slog.Logger
	chart    *components.BarChartModel
	keymap   KeyMap
	help     help.Model
	spinner  spinner.Model
	search   components.SearchBoxModel
	months   components.MonthPickerModel
	stats    components.StatsCardsModel
	table    components.RecordsTableModel
	pager    components.PagerModel
	state    dashboard.Dashboard
	width    int
	height   int
	showHelp bool
	quitting bool
}

// newModel creates a new model with the given configuration. The first
// refresh round is opened here and started by Init.
func newModel(ctx context.Context, cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = s.Style.Foreground(cfg.Theme.Primary)

	h := help.New()
	h.ShowAll = cfg.ShowHelp

	m := Model{
		ctx:      ctx,
		theme:    cfg.Theme,
		fetcher:  cfg.Fetcher,
		logger:   logger,
		keymap:   DefaultKeyMap(),
		help:     h,
		spinner:  s,
		state:    dashboard.New(cfg.Month, cfg.Search),
		search:   components.NewSearchBox(cfg.Search, cfg.Theme),
		stats:    components.NewStatsCards(cfg.Theme),
		table:    components.NewRecordsTable(cfg.Theme),
		pager:    components.NewPager(cfg.Theme),
		chart:    components.NewBarChart(chartPanelWidth, chartHeight, cfg.Theme),
		showHelp: cfg.ShowHelp,
	}
	m.months = components.NewMonthPicker(m.state.Filter().Month, cfg.Theme)
	m.state.Begin()
	m.syncPager()
	m.resize(cfg.Width, cfg.Height)

	return m
}

// Init starts the initial refresh round.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetch(m.state.Latest(), m.state.Filter()),
		m.spinner.Tick,
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	// Change messages can arrive out of order, so the widgets hold the
	// current value rather than the message.
	case components.SearchChangedMsg:
		if m.state.SetSearchTerm(m.search.Value()) {
			m.syncPager()
			return m, m.refresh()
		}
		return m, nil

	case components.MonthChangedMsg:
		if m.state.SetMonth(m.months.Month()) {
			m.syncPager()
			return m, m.refresh()
		}
		return m, nil

	case refreshedMsg:
		m.applyResult(msg.result)
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// handleKey routes key presses. While the search box is focused it gets
// every key except the ones that leave it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.search.Focused() {
		if key.Matches(msg, m.keymap.ExitSearch) {
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keymap.ClearScreen):
		return m, tea.ClearScreen

	case key.Matches(msg, m.keymap.Search):
		return m, m.search.Focus()

	case key.Matches(msg, m.keymap.NextMonth):
		m.months, cmd = m.months.Next()

	case key.Matches(msg, m.keymap.PrevMonth):
		m.months, cmd = m.months.Prev()

	case key.Matches(msg, m.keymap.NextPage):
		if m.state.NextPage() {
			m.syncPager()
			cmd = m.refresh()
		}

	case key.Matches(msg, m.keymap.PrevPage):
		if m.state.PrevPage() {
			m.syncPager()
			cmd = m.refresh()
		}

	case key.Matches(msg, m.keymap.Refresh):
		cmd = m.refresh()
	}

	return m, cmd
}

// resize adjusts component sizes when the terminal resizes.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	m.months.Resize(width)
	m.search.Resize(min(width, 60))
	m.stats.Resize(width)

	// title, month, search, cards (4), pager, status bar and spacing
	const chrome = 12
	tableHeight := max(height-chrome, 6)
	if m.wide() {
		m.table.Resize(width-chartPanelWidth-2, tableHeight)
		m.chart.Resize(chartPanelWidth, min(chartHeight, tableHeight))
	} else {
		m.table.Resize(width, max(tableHeight-chartHeight-1, 6))
		m.chart.Resize(width, chartHeight)
	}
}

// wide reports whether the table and chart fit side by side.
func (m Model) wide() bool {
	return m.width >= wideLayoutWidth
}

// Dashboard returns the current dashboard state.
func (m Model) Dashboard() dashboard.Dashboard {
	return m.state
}

// Close releases the live chart frame.
func (m Model) Close() error {
	return m.chart.Close()
}
