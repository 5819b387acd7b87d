package components

import (
	"fmt"

	"github.com/Veraticus/salesdash/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// Pager button captions.
const (
	PreviousLabel = "◀ Previous"
	NextLabel     = "Next ▶"
)

// PagerModel renders the Previous/Next controls and page position.
type PagerModel struct {
	theme      themes.Theme
	page       int
	totalPages int
}

// NewPager creates a pager on page 1 of 1.
func NewPager(theme themes.Theme) PagerModel {
	return PagerModel{
		theme:      theme,
		page:       1,
		totalPages: 1,
	}
}

// SetPosition updates the current page and page count.
func (m *PagerModel) SetPosition(page, totalPages int) {
	m.page = page
	m.totalPages = totalPages
}

// PrevEnabled reports whether Previous can be pressed.
func (m PagerModel) PrevEnabled() bool {
	return m.page > 1
}

// NextEnabled reports whether Next can be pressed.
func (m PagerModel) NextEnabled() bool {
	return m.page < m.totalPages
}

// View renders the controls.
func (m PagerModel) View() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		m.button(PreviousLabel, m.PrevEnabled()),
		"  ",
		m.theme.Normal.Render(fmt.Sprintf("Page %d of %d", m.page, max(m.totalPages, 1))),
		"  ",
		m.button(NextLabel, m.NextEnabled()),
	)
}

func (m PagerModel) button(label string, enabled bool) string {
	if enabled {
		return m.theme.Bold.Render("[" + label + "]")
	}
	return m.theme.Disabled.Render("[" + label + "]")
}
