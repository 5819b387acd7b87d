package chart

import (
	"errors"
	"testing"

	"github.com/Veraticus/salesdash/internal/sales"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingInstance struct {
	canvas   *countingCanvas
	chart    Chart
	released bool
}

func (i *countingInstance) Release() error {
	if i.released {
		return errors.New("released twice")
	}
	i.released = true
	i.canvas.live--
	return i.canvas.releaseErr
}

type countingCanvas struct {
	drawErr    error
	releaseErr error
	live       int
	draws      int
}

func (c *countingCanvas) Draw(ch Chart) (*countingInstance, error) {
	if c.drawErr != nil {
		return nil, c.drawErr
	}
	c.draws++
	c.live++
	return &countingInstance{canvas: c, chart: ch}, nil
}

func TestSurface_RenderReplacesPriorInstance(t *testing.T) {
	canvas := &countingCanvas{}
	s := NewSurface[*countingInstance](canvas)

	first, err := s.Render(New("", sales.ChartSeries{"Toys": 1}))
	require.NoError(t, err)
	second, err := s.Render(New("", sales.ChartSeries{"Toys": 2}))
	require.NoError(t, err)
	third, err := s.Render(New("", sales.ChartSeries{"Toys": 3}))
	require.NoError(t, err)

	assert.True(t, first.released)
	assert.True(t, second.released)
	assert.False(t, third.released)
	assert.Equal(t, 1, canvas.live, "exactly one chart stays on the canvas")
	assert.Equal(t, 3, s.Renders())

	live, ok := s.Live()
	require.True(t, ok)
	assert.Same(t, third, live)
	assert.Equal(t, 3, live.chart.Bars[0].Value)
}

func TestSurface_Close(t *testing.T) {
	canvas := &countingCanvas{}
	s := NewSurface[*countingInstance](canvas)

	require.NoError(t, s.Close(), "closing an empty surface is fine")

	inst, err := s.Render(New("", sales.ChartSeries{"Toys": 1}))
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	assert.True(t, inst.released)
	assert.Equal(t, 0, canvas.live)
	_, ok := s.Live()
	assert.False(t, ok)
}

func TestSurface_DrawError(t *testing.T) {
	canvas := &countingCanvas{}
	s := NewSurface[*countingInstance](canvas)

	first, err := s.Render(New("", sales.ChartSeries{"Toys": 1}))
	require.NoError(t, err)

	canvas.drawErr = errors.New("no context")
	_, err = s.Render(New("", sales.ChartSeries{"Toys": 2}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no context")

	assert.True(t, first.released, "the prior chart is released even when the next draw fails")
	_, ok := s.Live()
	assert.False(t, ok)
	assert.Equal(t, 0, canvas.live)
}

func TestSurface_ReleaseErrorStillDraws(t *testing.T) {
	canvas := &countingCanvas{}
	s := NewSurface[*countingInstance](canvas)

	_, err := s.Render(New("", sales.ChartSeries{"Toys": 1}))
	require.NoError(t, err)

	canvas.releaseErr = errors.New("stuck")
	inst, err := s.Render(New("", sales.ChartSeries{"Toys": 2}))
	require.Error(t, err)
	require.NotNil(t, inst)

	live, ok := s.Live()
	require.True(t, ok)
	assert.Same(t, inst, live)
}
