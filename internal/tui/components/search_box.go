package components

import (
	"github.com/Veraticus/salesdash/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SearchBoxModel is the free-text search input.
type SearchBoxModel struct {
	theme themes.Theme
	input textinput.Model
}

// NewSearchBox creates a search box holding value.
func NewSearchBox(value string, theme themes.Theme) SearchBoxModel {
	input := textinput.New()
	input.Placeholder = "Search transactions..."
	input.Prompt = "/ "
	input.CharLimit = 100
	input.Width = 30
	input.SetValue(value)

	return SearchBoxModel{
		input: input,
		theme: theme,
	}
}

// Update forwards msg to the input and reports a SearchChangedMsg when the
// value changes.
func (m SearchBoxModel) Update(msg tea.Msg) (SearchBoxModel, tea.Cmd) {
	before := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	after := m.input.Value()
	if after == before {
		return m, cmd
	}

	return m, tea.Batch(cmd, func() tea.Msg {
		return SearchChangedMsg{Term: after}
	})
}

// Focus starts accepting keystrokes.
func (m *SearchBoxModel) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur stops accepting keystrokes.
func (m *SearchBoxModel) Blur() {
	m.input.Blur()
}

// Focused reports whether the box accepts keystrokes.
func (m SearchBoxModel) Focused() bool {
	return m.input.Focused()
}

// Value returns the current search term.
func (m SearchBoxModel) Value() string {
	return m.input.Value()
}

// Resize sets the visible input width.
func (m *SearchBoxModel) Resize(width int) {
	m.input.Width = max(width-lipgloss.Width(m.input.Prompt)-1, 10)
}

// View renders the search box.
func (m SearchBoxModel) View() string {
	if m.Focused() {
		return m.input.View()
	}
	if m.input.Value() == "" {
		return m.theme.Faint.Render(m.input.Prompt + m.input.Placeholder)
	}
	return m.theme.Normal.Render(m.input.Prompt + m.input.Value())
}
