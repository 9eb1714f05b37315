package state

import (
	"errors"
	"math"
	"testing"

	"RasterBoard/internal/raster"
	"RasterBoard/internal/testutil/assert"
)

func TestStore(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s := NewStore()
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, []raster.Point{}, s.Points())
	})

	t.Run("append keeps order and duplicates", func(t *testing.T) {
		s := NewStore()
		s.Append(raster.Point{X: 1, Y: 1}, raster.Point{X: 2, Y: 2})
		s.Append(raster.Point{X: 1, Y: 1})
		assert.Equal(t, []raster.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 1}}, s.Points())
		assert.Equal(t, 3, s.Len())
	})

	t.Run("points is a copy", func(t *testing.T) {
		s := NewStore()
		s.Append(raster.Point{X: 5, Y: 5})
		pts := s.Points()
		pts[0].X = 99
		assert.Equal(t, []raster.Point{{X: 5, Y: 5}}, s.Points())
	})

	t.Run("each", func(t *testing.T) {
		s := NewStore()
		s.Append(raster.Point{X: 1}, raster.Point{Y: 1})
		var seen []raster.Point
		s.Each(func(p raster.Point) { seen = append(seen, p) })
		assert.Equal(t, []raster.Point{{X: 1}, {Y: 1}}, seen)
	})

	t.Run("clear", func(t *testing.T) {
		s := NewStore()
		s.Append(raster.Point{X: 1}, raster.Point{X: 2})
		s.Clear()
		assert.Equal(t, 0, s.Len())
		s.Append(raster.Point{X: 3})
		assert.Equal(t, []raster.Point{{X: 3}}, s.Points())
	})
}

func TestViewportToScreen(t *testing.T) {
	t.Run("centred", func(t *testing.T) {
		v := NewViewport(20)
		assert.Equal(t, ScreenPoint{X: 400, Y: 300}, v.ToScreen(raster.Point{}, 800, 600))
		assert.Equal(t, ScreenPoint{X: 420, Y: 260}, v.ToScreen(raster.Point{X: 1, Y: -2}, 800, 600))
	})

	t.Run("odd surface truncates", func(t *testing.T) {
		v := NewViewport(10)
		assert.Equal(t, ScreenPoint{X: 50, Y: 33}, v.ToScreen(raster.Point{}, 101, 67))
	})

	t.Run("offset and scale", func(t *testing.T) {
		v := NewViewport(20)
		v.Pan(3, 4)
		assert.Equal(t, ScreenPoint{X: 423, Y: 344}, v.ToScreen(raster.Point{X: 1, Y: 2}, 800, 600))
	})

	t.Run("pure", func(t *testing.T) {
		v := NewViewport(12.5)
		v.Pan(-7, 11)
		p := raster.Point{X: -3, Y: 9}
		assert.Equal(t, v.ToScreen(p, 640, 480), v.ToScreen(p, 640, 480))
	})
}

func TestViewportOrigin(t *testing.T) {
	v := NewViewport(20)
	v.Pan(10, -5)
	x, y := v.Origin(800, 600)
	assert.Equal(t, 410, x)
	assert.Equal(t, 295, y)

	assert.NoError(t, v.Zoom(3))
	x, y = v.Origin(800, 600)
	assert.Equal(t, 410, x)
	assert.Equal(t, 295, y)
}

func TestViewportPan(t *testing.T) {
	v := NewViewport(20)
	v.Pan(5, -3)
	v.Pan(-2, -2)
	x, y := v.Offset()
	assert.Equal(t, 3, x)
	assert.Equal(t, -5, y)
	assert.Equal(t, 20.0, v.Scale())
}

func TestViewportZoom(t *testing.T) {
	t.Run("in and out", func(t *testing.T) {
		v := NewViewport(20)
		assert.NoError(t, v.Zoom(ZoomInFactor))
		assert.True(t, math.Abs(v.Scale()-22) < 1e-9)
		assert.NoError(t, v.Zoom(ZoomOutFactor))
		assert.True(t, math.Abs(v.Scale()-19.8) < 1e-9)
	})

	t.Run("floor", func(t *testing.T) {
		v := NewViewport(20)
		for range 10 {
			assert.NoError(t, v.Zoom(0.1))
			assert.True(t, v.Scale() >= MinScale)
		}
		assert.Equal(t, MinScale, v.Scale())
	})

	t.Run("no upper bound", func(t *testing.T) {
		v := NewViewport(20)
		assert.NoError(t, v.Zoom(1e6))
		assert.Equal(t, 2e7, v.Scale())
	})

	t.Run("offset untouched", func(t *testing.T) {
		v := NewViewport(20)
		v.Pan(4, 4)
		assert.NoError(t, v.Zoom(2))
		x, y := v.Offset()
		assert.Equal(t, 4, x)
		assert.Equal(t, 4, y)
	})

	t.Run("invalid", func(t *testing.T) {
		v := NewViewport(20)
		for _, f := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			assert.True(t, errors.Is(v.Zoom(f), ErrInvalidZoom))
		}
		assert.Equal(t, 20.0, v.Scale())
	})

	t.Run("initial scale floored", func(t *testing.T) {
		assert.Equal(t, MinScale, NewViewport(1).Scale())
		assert.Equal(t, DefaultScale, NewViewport(math.NaN()).Scale())
	})
}
