package sales

import (
	"fmt"
	"sort"
)

// Statistics are the month totals computed by the service.
type Statistics struct {
	TotalSaleAmount  float64 `json:"totalSaleAmount"`
	TotalSoldItems   int     `json:"totalSoldItems"`
	TotalUnsoldItems int     `json:"totalUnsoldItems"`
}

// FormatSaleAmount renders the sale total with two decimals.
func (s Statistics) FormatSaleAmount() string {
	return fmt.Sprintf("$%.2f", s.TotalSaleAmount)
}

// ChartSeries maps a category label to an item count.
type ChartSeries map[string]int

// Labels returns the series labels in sorted order.
func (c ChartSeries) Labels() []string {
	labels := make([]string, 0, len(c))
	for label := range c {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
