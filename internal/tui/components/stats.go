package components

import (
	"strconv"

	"github.com/Veraticus/salesdash/internal/sales"
	"github.com/Veraticus/salesdash/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// Card labels.
const (
	LabelTotalSaleAmount  = "Total Sale Amount"
	LabelTotalSoldItems   = "Total Sold Items"
	LabelTotalUnsoldItems = "Total Unsold Items"
)

// minCardWidth is the narrowest card that still fits its label.
const minCardWidth = 22

// StatsCardsModel shows the month totals as three cards.
type StatsCardsModel struct {
	theme themes.Theme
	stats sales.Statistics
	width int
}

// NewStatsCards creates an empty card row.
func NewStatsCards(theme themes.Theme) StatsCardsModel {
	return StatsCardsModel{
		theme: theme,
		width: 80,
	}
}

// SetStatistics replaces the displayed totals.
func (m *StatsCardsModel) SetStatistics(stats sales.Statistics) {
	m.stats = stats
}

// Statistics returns the displayed totals.
func (m StatsCardsModel) Statistics() sales.Statistics {
	return m.stats
}

// Resize sets the available width.
func (m *StatsCardsModel) Resize(width int) {
	m.width = width
}

// View renders the cards side by side, or stacked when they do not fit.
func (m StatsCardsModel) View() string {
	values := []struct {
		label string
		value string
	}{
		{LabelTotalSaleAmount, m.stats.FormatSaleAmount()},
		{LabelTotalSoldItems, strconv.Itoa(m.stats.TotalSoldItems)},
		{LabelTotalUnsoldItems, strconv.Itoa(m.stats.TotalUnsoldItems)},
	}

	frame := m.theme.Card.GetHorizontalFrameSize()
	cardWidth := (m.width-2)/len(values) - frame
	stacked := cardWidth < minCardWidth
	if stacked {
		cardWidth = max(m.width-frame, minCardWidth)
	}

	cards := make([]string, 0, len(values))
	for _, v := range values {
		body := lipgloss.JoinVertical(
			lipgloss.Left,
			m.theme.CardLabel.Render(v.label),
			m.theme.CardValue.Render(v.value),
		)
		cards = append(cards, m.theme.Card.Width(cardWidth).Render(body))
	}

	if stacked {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards[0], " ", cards[1], " ", cards[2])
}
