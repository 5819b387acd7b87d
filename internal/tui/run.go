package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive dashboard and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Fetcher == nil {
		return fmt.Errorf("fetcher is required")
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	m := newModel(ctx, cfg)
	final, err := tea.NewProgram(m, programOpts...).Run()

	if fm, ok := final.(Model); ok {
		if closeErr := fm.Close(); closeErr != nil {
			m.logger.Warn("Failed to release chart", "error", closeErr)
		}
	}

	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
