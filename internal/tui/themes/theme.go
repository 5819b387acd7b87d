// Package themes defines the color palettes and styles of the dashboard.
package themes

import (
	"github.com/Veraticus/salesdash/internal/chart"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Normal      lipgloss.Style
	Bold        lipgloss.Style
	Faint       lipgloss.Style
	Selected    lipgloss.Style
	Highlighted lipgloss.Style
	Disabled    lipgloss.Style
	Card        lipgloss.Style
	CardLabel   lipgloss.Style
	CardValue   lipgloss.Style
	RoundedBox  lipgloss.Style
	TableHeader lipgloss.Style
	StripeEven  lipgloss.Style
	StripeOdd   lipgloss.Style
	StatusError lipgloss.Style
	StatusInfo  lipgloss.Style
	Chart       chart.TextStyles
	Primary     lipgloss.Color
	Secondary   lipgloss.Color
	Muted       lipgloss.Color
	Border      lipgloss.Color
	Foreground  lipgloss.Color
	Background  lipgloss.Color
	Surface     lipgloss.Color
	Info        lipgloss.Color
	Error       lipgloss.Color
	Success     lipgloss.Color
}

// palette is the set of colors a theme is derived from.
type palette struct {
	primary    string
	secondary  string
	success    string
	errorColor string
	info       string
	background string
	foreground string
	subtle     string
	surface    string
	border     string
	muted      string
}

func newTheme(p palette) Theme {
	fg := lipgloss.Color(p.foreground)
	border := lipgloss.Color(p.border)
	muted := lipgloss.Color(p.muted)
	primary := lipgloss.Color(p.primary)
	surface := lipgloss.Color(p.surface)

	return Theme{
		Primary:    primary,
		Secondary:  lipgloss.Color(p.secondary),
		Success:    lipgloss.Color(p.success),
		Error:      lipgloss.Color(p.errorColor),
		Info:       lipgloss.Color(p.info),
		Background: lipgloss.Color(p.background),
		Foreground: fg,
		Surface:    surface,
		Border:     border,
		Muted:      muted,

		// Text styles
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Faint: lipgloss.NewStyle().
			Foreground(muted),
		Selected: lipgloss.NewStyle().
			Background(primary).
			Foreground(lipgloss.Color(p.background)).
			Bold(true),
		Highlighted: lipgloss.NewStyle().
			Background(border).
			Foreground(fg),
		Disabled: lipgloss.NewStyle().
			Foreground(muted).
			Strikethrough(true),

		// Component styles
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 2),
		CardLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)),
		CardValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Padding(0, 1),
		StripeEven: lipgloss.NewStyle().
			Foreground(fg).
			Padding(0, 1),
		StripeOdd: lipgloss.NewStyle().
			Background(surface).
			Foreground(fg).
			Padding(0, 1),

		// Status styles
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.errorColor)).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.info)).
			Bold(true),

		Chart: chart.TextStyles{
			Bar:    lipgloss.NewStyle().Foreground(primary),
			Axis:   lipgloss.NewStyle().Foreground(border),
			Label:  lipgloss.NewStyle().Foreground(fg),
			Legend: lipgloss.NewStyle().Foreground(muted),
		},
	}
}

// Default is the default theme.
var Default = newTheme(palette{
	primary:    "#7c3aed",
	secondary:  "#a78bfa",
	success:    "#10b981",
	errorColor: "#ef4444",
	info:       "#3b82f6",
	background: "#1a1a1a",
	foreground: "#fafafa",
	subtle:     "#a3a3a3",
	surface:    "#262626",
	border:     "#404040",
	muted:      "#737373",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:    "#cba6f7",
	secondary:  "#f5c2e7",
	success:    "#a6e3a1",
	errorColor: "#f38ba8",
	info:       "#89dceb",
	background: "#1e1e2e",
	foreground: "#cdd6f4",
	subtle:     "#a6adc8",
	surface:    "#313244",
	border:     "#45475a",
	muted:      "#6c7086",
})

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
