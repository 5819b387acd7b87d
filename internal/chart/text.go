package chart

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// eighths are the partial block glyphs, from empty to full.
var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

const (
	minPlotHeight = 3
	maxBarWidth   = 9
)

// TextStyles styles the parts of a terminal chart.
type TextStyles struct {
	Bar    lipgloss.Style
	Axis   lipgloss.Style
	Label  lipgloss.Style
	Legend lipgloss.Style
}

// TextCanvas draws vertical bar charts as terminal text.
type TextCanvas struct {
	styles TextStyles
	width  int
	height int
}

// NewTextCanvas returns a canvas of the given cell size.
func NewTextCanvas(width, height int, styles TextStyles) *TextCanvas {
	t := &TextCanvas{styles: styles}
	t.Resize(width, height)
	return t
}

// Resize changes the cell size used by later draws.
func (t *TextCanvas) Resize(width, height int) {
	t.width = max(width, 10)
	t.height = max(height, minPlotHeight+3)
}

// Size returns the canvas size in cells.
func (t *TextCanvas) Size() (int, int) {
	return t.width, t.height
}

// Frame is a chart rendered to text lines.
type Frame struct {
	lines    []string
	bars     int
	released bool
}

// String returns the rendered chart, or "" once released.
func (f *Frame) String() string {
	if f == nil || f.released {
		return ""
	}
	return strings.Join(f.lines, "\n")
}

// Bars returns the number of bars drawn.
func (f *Frame) Bars() int {
	if f == nil {
		return 0
	}
	return f.bars
}

// Released reports whether the frame has been released.
func (f *Frame) Released() bool {
	return f.released
}

// Release drops the rendered lines.
func (f *Frame) Release() error {
	f.lines = nil
	f.released = true
	return nil
}

// Draw renders c to a Frame.
//
// Layout, top to bottom: plot rows, axis line, value row, label row, legend.
func (t *TextCanvas) Draw(c Chart) (*Frame, error) {
	frame := &Frame{bars: len(c.Bars)}
	legend := t.styles.Legend.Render("■ " + c.DatasetLabel)

	if c.Empty() {
		frame.lines = []string{t.styles.Label.Render("No chart data"), legend}
		return frame, nil
	}

	plotHeight := max(t.height-4, minPlotHeight)
	gutter := len(strconv.Itoa(c.YMax))
	colWidth := max((t.width-gutter-1)/len(c.Bars), 2)
	barWidth := min(max(colWidth-1, 1), maxBarWidth)

	tickRows := make(map[int]int)
	for _, v := range c.Ticks(2) {
		row := int(math.Round(c.Fraction(v) * float64(plotHeight)))
		if row > 0 {
			tickRows[row] = v
		}
	}

	heights := make([]int, len(c.Bars))
	for i, b := range c.Bars {
		heights[i] = int(math.Round(c.Fraction(b.Value) * float64(plotHeight*8)))
	}

	lines := make([]string, 0, plotHeight+4)
	for row := plotHeight; row >= 1; row-- {
		label := ""
		if v, ok := tickRows[row]; ok {
			label = strconv.Itoa(v)
		}
		var sb strings.Builder
		sb.WriteString(t.styles.Axis.Render(padLeft(label, gutter) + "┤"))
		for _, h := range heights {
			fill := min(max(h-(row-1)*8, 0), 8)
			cell := strings.Repeat(string(eighths[fill]), barWidth)
			sb.WriteString(t.styles.Bar.Render(cell))
			sb.WriteString(strings.Repeat(" ", colWidth-barWidth))
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}

	lines = append(lines, t.styles.Axis.Render(padLeft(strconv.Itoa(c.YMin), gutter)+"└"+strings.Repeat("─", colWidth*len(c.Bars))))

	var values, labels strings.Builder
	values.WriteString(strings.Repeat(" ", gutter+1))
	labels.WriteString(strings.Repeat(" ", gutter+1))
	for _, b := range c.Bars {
		values.WriteString(padRight(center(strconv.Itoa(b.Value), barWidth), colWidth))
		labels.WriteString(padRight(truncate(b.Label, colWidth-1), colWidth))
	}
	lines = append(lines,
		t.styles.Label.Render(strings.TrimRight(values.String(), " ")),
		t.styles.Label.Render(strings.TrimRight(labels.String(), " ")),
		legend,
	)

	frame.lines = lines
	return frame, nil
}

func padLeft(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func padRight(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func center(s string, width int) string {
	n := width - lipgloss.Width(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(" ", n/2) + s
}

func truncate(s string, width int) string {
	if width <= 1 {
		return runewidth.Truncate(s, 1, "")
	}
	return runewidth.Truncate(s, width, "…")
}
