// Package chart turns a chart series into a bar chart and draws it on
// replaceable canvases.
package chart

import (
	"github.com/Veraticus/salesdash/internal/sales"
)

// DatasetLabel names the single dataset of the items chart.
const DatasetLabel = "Number of Items"

// Bar is one labeled column.
type Bar struct {
	Label string
	Value int
}

// Chart is a bar chart whose value axis starts at zero.
type Chart struct {
	Title        string
	DatasetLabel string
	Bars         []Bar
	YMin         int
	YMax         int
}

// New builds a chart with one bar per series label, labels sorted.
func New(title string, series sales.ChartSeries) Chart {
	c := Chart{
		Title:        title,
		DatasetLabel: DatasetLabel,
		Bars:         make([]Bar, 0, len(series)),
		YMin:         0,
		YMax:         1,
	}
	for _, label := range series.Labels() {
		v := series[label]
		c.Bars = append(c.Bars, Bar{Label: label, Value: v})
		if v > c.YMax {
			c.YMax = v
		}
	}
	return c
}

// Empty reports whether the chart has no bars.
func (c Chart) Empty() bool {
	return len(c.Bars) == 0
}

// Ticks returns up to n+1 evenly spaced integer ticks from YMin to YMax.
func (c Chart) Ticks(n int) []int {
	span := c.YMax - c.YMin
	if n < 1 || span <= 0 {
		return []int{c.YMin}
	}
	if n > span {
		n = span
	}
	ticks := make([]int, 0, n+1)
	last := -1
	for i := 0; i <= n; i++ {
		v := c.YMin + (span*i+n/2)/n
		if v != last {
			ticks = append(ticks, v)
			last = v
		}
	}
	return ticks
}

// Fraction returns how much of the axis value v covers, clamped to [0, 1].
func (c Chart) Fraction(v int) float64 {
	span := c.YMax - c.YMin
	if span <= 0 {
		return 0
	}
	f := float64(v-c.YMin) / float64(span)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
