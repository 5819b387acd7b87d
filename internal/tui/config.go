package tui

import (
	"log/slog"

	"github.com/Veraticus/salesdash/internal/dashboard"
	"github.com/Veraticus/salesdash/internal/sales"
	"github.com/Veraticus/salesdash/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme     themes.Theme
	Fetcher   *dashboard.Fetcher
	Logger    *slog.Logger
	Search    string
	Month     sales.Month
	Width     int
	Height    int
	ShowHelp  bool
	AltScreen bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Month:     sales.DefaultMonth,
		Width:     100,
		Height:    40,
		AltScreen: true,
	}
}

// WithFetcher sets the fetcher used for every refresh round.
func WithFetcher(fetcher *dashboard.Fetcher) Option {
	return func(c *Config) {
		c.Fetcher = fetcher
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithFilter sets the month and search term the dashboard opens with.
func WithFilter(month sales.Month, search string) Option {
	return func(c *Config) {
		c.Month = month
		c.Search = search
	}
}

// WithLogger sets the logger for refresh bookkeeping.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithHelp opens the dashboard with the full key help expanded.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}

// WithAltScreen controls whether the program takes over the whole terminal.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}
