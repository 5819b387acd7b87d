package components

import (
	"log/slog"

	"github.com/Veraticus/salesdash/internal/chart"
	"github.com/Veraticus/salesdash/internal/sales"
	"github.com/Veraticus/salesdash/internal/tui/themes"
)

// BarChartModel draws the items-per-category chart. Every redraw releases
// the previous frame before a new one is drawn.
type BarChartModel struct {
	surface *chart.Surface[*chart.Frame]
	canvas  *chart.TextCanvas
	frame   *chart.Frame
	theme   themes.Theme
	current chart.Chart
}

// NewBarChart creates an empty chart of the given size.
func NewBarChart(width, height int, theme themes.Theme) *BarChartModel {
	canvas := chart.NewTextCanvas(width, height, theme.Chart)
	m := &BarChartModel{
		canvas:  canvas,
		surface: chart.NewSurface[*chart.Frame](canvas),
		theme:   theme,
	}
	m.SetSeries(sales.DefaultMonth, sales.ChartSeries{})
	return m
}

// SetSeries redraws the chart for month from series.
func (m *BarChartModel) SetSeries(month sales.Month, series sales.ChartSeries) {
	m.current = chart.New(month.String(), series)
	m.redraw()
}

// Resize redraws the current chart at the new size.
func (m *BarChartModel) Resize(width, height int) {
	if w, h := m.canvas.Size(); w == width && h == height {
		return
	}
	m.canvas.Resize(width, height)
	m.redraw()
}

// Chart returns the chart currently drawn.
func (m *BarChartModel) Chart() chart.Chart {
	return m.current
}

// Renders returns how many frames have been drawn.
func (m *BarChartModel) Renders() int {
	return m.surface.Renders()
}

// Live returns the frame currently on screen.
func (m *BarChartModel) Live() (*chart.Frame, bool) {
	return m.surface.Live()
}

// Close releases the live frame.
func (m *BarChartModel) Close() error {
	m.frame = nil
	return m.surface.Close()
}

func (m *BarChartModel) redraw() {
	frame, err := m.surface.Render(m.current)
	if err != nil {
		slog.Error("Error rendering bar chart", "error", err)
	}
	m.frame = frame
}

// View renders the chart.
func (m *BarChartModel) View() string {
	title := m.theme.Subtitle.Render("Items per category, " + m.current.Title)
	return title + "\n" + m.frame.String()
}
