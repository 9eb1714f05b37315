// Package render repaints a drawing surface from the point store through
// the viewport.
package render

import (
	"image/color"

	"RasterBoard/internal/raster"
	"RasterBoard/internal/state"
)

// Surface is a drawing target. Coordinates are in surface pixels with the
// origin at the top left.
type Surface interface {
	// Size reports the current surface size in pixels.
	Size() (width, height int)
	// Clear removes everything previously drawn.
	Clear()
	// Line strokes a straight segment.
	Line(x1, y1, x2, y2 float64, c color.Color, width float64)
	// Dot fills a circle of the given radius centred on (x, y).
	Dot(x, y, radius float64, c color.Color)
}

// Flusher is implemented by surfaces that buffer primitives until a
// repaint is complete. Redraw calls Flush last.
type Flusher interface {
	Flush()
}

var (
	AxisXColor = color.NRGBA{R: 0x45, G: 0x7B, B: 0x9D, A: 0xFF}
	AxisYColor = color.NRGBA{R: 0xE6, G: 0x39, B: 0x46, A: 0xFF}
	PointColor = color.Black
)

const (
	AxisWidth   = 2.0
	PointRadius = 2.0
)

// Redraw repaints s from scratch: it clears the surface, draws the two axes
// through the transformed origin, then a marker for every point. The store
// is only read.
func Redraw(s Surface, store *state.Store, vp *state.Viewport) {
	w, h := s.Size()
	s.Clear()

	cx, cy := vp.Origin(w, h)
	s.Line(float64(cx), 0, float64(cx), float64(h), AxisYColor, AxisWidth)
	s.Line(0, float64(cy), float64(w), float64(cy), AxisXColor, AxisWidth)

	store.Each(func(p raster.Point) {
		sp := vp.ToScreen(p, w, h)
		s.Dot(sp.X, sp.Y, PointRadius, PointColor)
	})

	if f, ok := s.(Flusher); ok {
		f.Flush()
	}
}
