package components

import (
	"strings"
	"testing"

	"github.com/Veraticus/salesdash/internal/sales"
	"github.com/Veraticus/salesdash/internal/tui/themes"
	"github.com/Veraticus/salesdash/internal/tui/tuitest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthPickerModel(t *testing.T) {
	t.Run("invalid month falls back to default", func(t *testing.T) {
		m := NewMonthPicker(0, themes.Default)
		assert.Equal(t, sales.DefaultMonth, m.Month())
	})

	t.Run("next and prev report the change", func(t *testing.T) {
		m := NewMonthPicker(3, themes.Default)

		m, cmd := m.Next()
		require.NotNil(t, cmd)
		assert.Equal(t, MonthChangedMsg{Month: 4}, cmd())
		assert.Equal(t, sales.Month(4), m.Month())

		m, cmd = m.Prev()
		require.NotNil(t, cmd)
		assert.Equal(t, MonthChangedMsg{Month: 3}, cmd())
	})

	t.Run("wraps around the year", func(t *testing.T) {
		m := NewMonthPicker(12, themes.Default)
		m, _ = m.Next()
		assert.Equal(t, sales.Month(1), m.Month())
		m, _ = m.Prev()
		assert.Equal(t, sales.Month(12), m.Month())
	})

	t.Run("same month is not a change", func(t *testing.T) {
		m := NewMonthPicker(5, themes.Default)
		_, cmd := m.Set(5)
		assert.Nil(t, cmd)
		_, cmd = m.Set(13)
		assert.Nil(t, cmd)
	})

	t.Run("view adapts to width", func(t *testing.T) {
		m := NewMonthPicker(3, themes.Default)
		m.Resize(120)
		wide := m.View()
		for _, abbr := range []string{"Jan", "Mar", "Dec"} {
			assert.Contains(t, wide, abbr)
		}

		m.Resize(40)
		narrow := m.View()
		assert.Contains(t, narrow, "March")
		assert.NotContains(t, narrow, "Dec")
	})
}

func TestSearchBoxModel(t *testing.T) {
	m := NewSearchBox("", themes.Default)
	assert.Contains(t, m.View(), "Search transactions...")

	// Unfocused input ignores keys.
	m, cmd := m.Update(tuitest.KeyPress("b"))
	assert.Empty(t, m.Value())
	assert.Nil(t, cmd)

	m.Focus()
	assert.True(t, m.Focused())

	var msgs []tea.Msg
	for _, r := range "bag" {
		m, cmd = m.Update(tuitest.KeyPress(string(r)))
		require.NotNil(t, cmd)
		msgs = append(msgs, tuitest.Collect(cmd)...)
	}
	assert.Equal(t, "bag", m.Value())
	assert.Contains(t, msgs, tea.Msg(SearchChangedMsg{Term: "b"}))
	assert.Contains(t, msgs, tea.Msg(SearchChangedMsg{Term: "bag"}))

	m.Blur()
	assert.False(t, m.Focused())
	assert.Contains(t, m.View(), "bag")
}

func TestSearchBoxModel_InitialValue(t *testing.T) {
	m := NewSearchBox("shoes", themes.Default)
	assert.Equal(t, "shoes", m.Value())
	assert.Contains(t, m.View(), "shoes")
}

func TestPagerModel(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		wantPrev   bool
		wantNext   bool
		wantText   string
	}{
		{name: "single page", page: 1, totalPages: 1, wantText: "Page 1 of 1"},
		{name: "first page", page: 1, totalPages: 5, wantNext: true, wantText: "Page 1 of 5"},
		{name: "middle page", page: 3, totalPages: 5, wantPrev: true, wantNext: true, wantText: "Page 3 of 5"},
		{name: "last page", page: 5, totalPages: 5, wantPrev: true, wantText: "Page 5 of 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPager(themes.Default)
			m.SetPosition(tt.page, tt.totalPages)

			assert.Equal(t, tt.wantPrev, m.PrevEnabled())
			assert.Equal(t, tt.wantNext, m.NextEnabled())

			view := m.View()
			assert.Contains(t, view, tt.wantText)
			assert.Contains(t, view, PreviousLabel)
			assert.Contains(t, view, NextLabel)
		})
	}
}

func TestRecordsTableModel(t *testing.T) {
	m := NewRecordsTable(themes.Default)
	assert.Contains(t, m.View(), "No transactions found")

	m.SetRecords([]sales.Record{
		{ID: "1", Title: "Canvas Bag", Category: "Accessories", Description: "Tote", Price: 19.5},
		{ID: "2", Title: "Desk Lamp", Category: "Home", Description: "LED lamp", Price: 42},
		{ID: "3", Title: "Puzzle", Category: "Toys", Description: strings.Repeat("long ", 40), Price: 9.99},
	})
	m.Resize(100, 20)

	view := m.View()
	for _, col := range RecordColumns {
		assert.Contains(t, view, col)
	}
	assert.Contains(t, view, "Canvas Bag")
	assert.Contains(t, view, "42.00")
	assert.Contains(t, view, "9.99")
	assert.Contains(t, view, "…", "long descriptions are truncated")
	assert.Len(t, m.Records(), 3)
}

func TestRecordsTableModel_HeightLimit(t *testing.T) {
	records := make([]sales.Record, 10)
	for i := range records {
		records[i] = sales.Record{Title: "Item " + string(rune('A'+i)), Category: "Misc"}
	}

	m := NewRecordsTable(themes.Default)
	m.SetRecords(records)
	m.Resize(100, 7)

	view := m.View()
	assert.Contains(t, view, "Item A")
	assert.Contains(t, view, "Item C")
	assert.NotContains(t, view, "Item D")
}

func TestBarChartModel(t *testing.T) {
	m := NewBarChart(40, 12, themes.Default)
	assert.Contains(t, m.View(), "No chart data")
	initial := m.Renders()

	m.SetSeries(3, sales.ChartSeries{"Electronics": 4, "Toys": 2})
	view := m.View()
	assert.Contains(t, view, "Electronics")
	assert.Contains(t, view, "Toys")
	assert.Contains(t, view, "Number of Items")
	assert.Contains(t, view, "March")

	m.SetSeries(4, sales.ChartSeries{"Books": 1})
	assert.Equal(t, initial+2, m.Renders())

	live, ok := m.Live()
	require.True(t, ok)
	assert.Equal(t, 1, live.Bars())
	assert.False(t, live.Released())
	assert.NotContains(t, m.View(), "Electronics")

	m.Resize(60, 14)
	assert.Equal(t, initial+3, m.Renders())
	assert.True(t, live.Released(), "resizing replaces the live frame")

	m.Resize(60, 14)
	assert.Equal(t, initial+3, m.Renders())

	resized, ok := m.Live()
	require.True(t, ok)
	require.NoError(t, m.Close())
	assert.True(t, resized.Released())
	_, ok = m.Live()
	assert.False(t, ok)
	assert.NotContains(t, m.View(), "Books")
}
