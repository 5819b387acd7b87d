package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Filters
	NextMonth  key.Binding
	PrevMonth  key.Binding
	Search     key.Binding
	ExitSearch key.Binding

	// Pagination
	NextPage key.Binding
	PrevPage key.Binding

	// Application
	Refresh     key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
	ClearScreen key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextMonth: key.NewBinding(
			key.WithKeys("]", "tab"),
			key.WithHelp("]", "next month"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("[", "shift+tab"),
			key.WithHelp("[", "previous month"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ExitSearch: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("Esc/Enter", "leave search"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("l", "right", "n", "pgdown"),
			key.WithHelp("→/l", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("h", "left", "p", "pgup"),
			key.WithHelp("←/h", "previous page"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r", "r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
		ClearScreen: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "clear screen"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevMonth, k.NextMonth, k.PrevPage, k.NextPage, k.Search, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevMonth, k.NextMonth, k.Search, k.ExitSearch},
		{k.PrevPage, k.NextPage, k.Refresh},
		{k.Help, k.ClearScreen, k.Quit, k.ForceQuit},
	}
}
