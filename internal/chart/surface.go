package chart

import (
	"errors"
	"fmt"
	"sync"
)

// Instance is a chart drawn on a canvas. Release frees whatever the
// drawing holds on the canvas.
type Instance interface {
	Release() error
}

// Canvas draws charts and hands back the resulting instance.
type Canvas[I Instance] interface {
	Draw(c Chart) (I, error)
}

// Surface binds a canvas to at most one live chart instance. Every Render
// releases the previous instance before drawing the next one.
type Surface[I Instance] struct {
	canvas  Canvas[I]
	live    I
	mu      sync.Mutex
	renders int
	hasLive bool
}

// NewSurface returns a surface drawing on canvas.
func NewSurface[I Instance](canvas Canvas[I]) *Surface[I] {
	return &Surface[I]{canvas: canvas}
}

// Render replaces the live chart with c.
func (s *Surface[I]) Render(c Chart) (I, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	releaseErr := s.releaseLocked()

	inst, err := s.canvas.Draw(c)
	if err != nil {
		var zero I
		return zero, errors.Join(releaseErr, fmt.Errorf("draw chart: %w", err))
	}

	s.live = inst
	s.hasLive = true
	s.renders++
	return inst, releaseErr
}

// Live returns the current instance, if any.
func (s *Surface[I]) Live() (I, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live, s.hasLive
}

// Renders counts successful draws.
func (s *Surface[I]) Renders() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renders
}

// Close releases the live instance.
func (s *Surface[I]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.releaseLocked()
}

func (s *Surface[I]) releaseLocked() error {
	if !s.hasLive {
		return nil
	}
	inst := s.live
	var zero I
	s.live = zero
	s.hasLive = false
	if err := inst.Release(); err != nil {
		return fmt.Errorf("release chart: %w", err)
	}
	return nil
}
