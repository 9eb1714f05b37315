package state

import (
	"errors"
	"math"
	"sync"

	"RasterBoard/internal/raster"
)

const (
	// MinScale is the floor applied after every zoom.
	MinScale = 5.0
	// DefaultScale is the initial number of screen pixels per grid cell.
	DefaultScale = 20.0

	ZoomInFactor  = 1.1
	ZoomOutFactor = 0.9
)

// ErrInvalidZoom is returned for zoom factors that are not positive and
// finite.
var ErrInvalidZoom = errors.New("zoom factor must be positive and finite")

// ScreenPoint is a pixel position on the drawing surface.
type ScreenPoint struct {
	X, Y float64
}

// Viewport maps model-space grid points onto a drawing surface. The model
// origin sits at the centre of the surface shifted by the pan offset.
type Viewport struct {
	scale            float64
	offsetX, offsetY int
	mu               sync.RWMutex
}

// NewViewport returns a viewport with no pan offset. The scale is floored
// at MinScale; a non-finite scale falls back to DefaultScale.
func NewViewport(scale float64) *Viewport {
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = DefaultScale
	}
	return &Viewport{scale: math.Max(MinScale, scale)}
}

func (v *Viewport) Scale() float64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.scale
}

func (v *Viewport) Offset() (x, y int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.offsetX, v.offsetY
}

// ToScreen converts p to a pixel position on a surface of the given size.
// The half-surface centring uses integer division.
func (v *Viewport) ToScreen(p raster.Point, width, height int) ScreenPoint {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return ScreenPoint{
		X: float64(p.X)*v.scale + float64(v.offsetX+width/2),
		Y: float64(p.Y)*v.scale + float64(v.offsetY+height/2),
	}
}

// Origin returns the pixel position of the model origin. It depends on the
// offset only, never on the scale.
func (v *Viewport) Origin(width, height int) (x, y int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return width/2 + v.offsetX, height/2 + v.offsetY
}

// Pan shifts the view by (dx, dy) pixels. The offset is unbounded.
func (v *Viewport) Pan(dx, dy int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.offsetX += dx
	v.offsetY += dy
}

// Zoom multiplies the scale by factor and clamps it to MinScale. There is
// no upper bound.
func (v *Viewport) Zoom(factor float64) error {
	if !(factor > 0) || math.IsInf(factor, 1) {
		return ErrInvalidZoom
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.scale = math.Max(MinScale, v.scale*factor)
	return nil
}
