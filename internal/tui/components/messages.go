package components

import "github.com/Veraticus/salesdash/internal/sales"

// SearchChangedMsg is sent whenever the search box value changes.
type SearchChangedMsg struct {
	Term string
}

// MonthChangedMsg is sent when the month picker selects a new month.
type MonthChangedMsg struct {
	Month sales.Month
}
