// Package session holds the state of one running board and the commands
// the user interface invokes on it.
package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"RasterBoard/internal/input"
	"RasterBoard/internal/raster"
	"RasterBoard/internal/render"
	"RasterBoard/internal/state"
)

// Session owns the point store and viewport of a board and repaints its
// surface after every change. It is meant to be driven from a single
// goroutine, the UI event loop.
type Session struct {
	ID       string
	Store    *state.Store
	Viewport *state.Viewport

	// OnStatus, when set, receives a one-line outcome of every command.
	OnStatus func(string)

	surface render.Surface
	log     *slog.Logger

	panning          bool
	anchorX, anchorY int
}

type Option func(*Session)

// WithLogger sets the logger. The session ID is attached to every record.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithScale sets the initial viewport scale.
func WithScale(scale float64) Option {
	return func(s *Session) {
		s.Viewport = state.NewViewport(scale)
	}
}

func New(surface render.Surface, opts ...Option) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		Store:    state.NewStore(),
		Viewport: state.NewViewport(state.DefaultScale),
		surface:  surface,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With("session", s.ID)
	return s
}

func (s *Session) status(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if s.OnStatus != nil {
		s.OnStatus(msg)
	}
}

// fail reports a recovered error. The session carries on.
func (s *Session) fail(action string, err error) error {
	var (
		parseErr *input.ParseError
		shapeErr *raster.InvalidShapeError
	)
	switch {
	case errors.As(err, &parseErr):
		s.log.Warn("invalid input", "action", action, "field", parseErr.Field, "err", err)
		s.status("Enter valid coordinates: %v", err)
	case errors.As(err, &shapeErr):
		s.log.Warn("invalid shape", "action", action, "err", err)
		s.status("Cannot draw: %v", err)
	case errors.Is(err, state.ErrInvalidZoom):
		s.log.Warn("invalid zoom", "err", err)
		s.status("Cannot zoom: %v", err)
	default:
		s.log.Error("command failed", "action", action, "err", err)
		s.status("Error: %v", err)
	}
	return fmt.Errorf("%s: %w", action, err)
}

// Redraw repaints the surface from the current store and viewport.
func (s *Session) Redraw() {
	if s.surface == nil {
		return
	}
	render.Redraw(s.surface, s.Store, s.Viewport)
}

// Export repaints the current view onto another surface, for snapshots.
func (s *Session) Export(dst render.Surface) {
	render.Redraw(dst, s.Store, s.Viewport)
	s.log.Info("exported view", "points", s.Store.Len())
}

// AddShape rasterizes shape and appends its points. On failure nothing is
// appended.
func (s *Session) AddShape(shape raster.Shape) error {
	pts, err := shape.Points()
	if err != nil {
		return s.fail(shape.String(), err)
	}
	s.Store.Append(pts...)
	s.log.Debug("shape added", "shape", shape.String(), "points", len(pts), "total", s.Store.Len())
	s.status("Added %d points: %v", len(pts), shape)
	s.Redraw()
	return nil
}

func (s *Session) runLine(f input.Fields, algo raster.Algorithm) error {
	l, err := input.ParseLine(f, algo)
	if err != nil {
		return s.fail(algo.String(), err)
	}
	return s.AddShape(l)
}

// RunDDA draws the line x1,y1 to x2,y2 with the DDA algorithm.
func (s *Session) RunDDA(f input.Fields) error {
	return s.runLine(f, raster.AlgorithmDDA)
}

// RunBresenhamLine draws the line x1,y1 to x2,y2 with Bresenham's algorithm.
func (s *Session) RunBresenhamLine(f input.Fields) error {
	return s.runLine(f, raster.AlgorithmBresenham)
}

// RunBresenhamCircle draws a circle centred on x1,y1 with the radius field.
func (s *Session) RunBresenhamCircle(f input.Fields) error {
	c, err := input.ParseCircle(f)
	if err != nil {
		return s.fail("circle", err)
	}
	return s.AddShape(c)
}

// Clear empties the store.
func (s *Session) Clear() {
	n := s.Store.Len()
	s.Store.Clear()
	s.log.Debug("cleared", "points", n)
	s.status("Cleared %d points", n)
	s.Redraw()
}

// Zoom scales the view by factor.
func (s *Session) Zoom(factor float64) error {
	if err := s.Viewport.Zoom(factor); err != nil {
		return s.fail("zoom", err)
	}
	s.log.Debug("zoomed", "factor", factor, "scale", s.Viewport.Scale())
	s.status("Scale %.2f", s.Viewport.Scale())
	s.Redraw()
	return nil
}

func (s *Session) ZoomIn() {
	_ = s.Zoom(state.ZoomInFactor)
}

func (s *Session) ZoomOut() {
	_ = s.Zoom(state.ZoomOutFactor)
}

// BeginPan records the pointer position a drag starts from.
func (s *Session) BeginPan(x, y int) {
	s.panning = true
	s.anchorX, s.anchorY = x, y
}

// DragPan pans by the distance from the anchor to (x, y) and moves the
// anchor there. A drag without an anchor only sets one.
func (s *Session) DragPan(x, y int) {
	if !s.panning {
		s.BeginPan(x, y)
		return
	}
	dx, dy := x-s.anchorX, y-s.anchorY
	s.anchorX, s.anchorY = x, y
	if dx == 0 && dy == 0 {
		return
	}
	s.Viewport.Pan(dx, dy)
	s.Redraw()
}

// EndPan forgets the anchor.
func (s *Session) EndPan() {
	s.panning = false
}
