// Package sales holds the sales dashboard domain types.
package sales

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month is a calendar month as understood by the sales service.
type Month int

// DefaultMonth is the month the dashboard opens on.
const DefaultMonth Month = 3

// Months lists every selectable month in calendar order.
var Months = []Month{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

// ParseMonth accepts "3", "03", "march" or "Mar".
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		m := Month(n)
		if !m.Valid() {
			return 0, fmt.Errorf("month %q out of range 1-12", s)
		}
		return m, nil
	}

	lower := strings.ToLower(s)
	if len(lower) >= 3 {
		for _, m := range Months {
			name := strings.ToLower(m.String())
			if lower == name || (len(lower) == 3 && strings.HasPrefix(name, lower)) {
				return m, nil
			}
		}
	}

	return 0, fmt.Errorf("unknown month %q", s)
}

// Valid reports whether m is between January and December.
func (m Month) Valid() bool {
	return m >= 1 && m <= 12
}

// Code returns the two-digit form used on the wire ("01".."12").
func (m Month) Code() string {
	return fmt.Sprintf("%02d", int(m))
}

// String returns the English month name.
func (m Month) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return time.Month(m).String()
}

// Next returns the following month, wrapping December to January.
func (m Month) Next() Month {
	if m >= 12 {
		return 1
	}
	return m + 1
}

// Prev returns the preceding month, wrapping January to December.
func (m Month) Prev() Month {
	if m <= 1 {
		return 12
	}
	return m - 1
}
