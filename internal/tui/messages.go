package tui

import "github.com/Veraticus/salesdash/internal/dashboard"

// refreshedMsg carries the outcome of one refresh round.
type refreshedMsg struct {
	result dashboard.Result
}
