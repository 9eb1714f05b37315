package input

import (
	"errors"
	"strconv"
	"testing"

	"RasterBoard/internal/raster"
	"RasterBoard/internal/testutil/assert"
)

func TestParseLine(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		l, err := ParseLine(Fields{X1: "0", Y1: " -3 ", X2: "+4", Y2: "2", Radius: "junk"}, raster.AlgorithmBresenham)
		assert.NoError(t, err)
		assert.Equal(t, raster.Line{
			From:      raster.Point{X: 0, Y: -3},
			To:        raster.Point{X: 4, Y: 2},
			Algorithm: raster.AlgorithmBresenham,
		}, l)
	})

	t.Run("empty field", func(t *testing.T) {
		_, err := ParseLine(Fields{X1: "1", Y1: "2", X2: "", Y2: "4"}, raster.AlgorithmDDA)
		if e, ok := assert.ErrorAs[*ParseError](t, err); ok {
			assert.Equal(t, "x2", e.Field)
			assert.Equal(t, "x2: value is required", e.Error())
		}
	})

	t.Run("not an integer", func(t *testing.T) {
		_, err := ParseLine(Fields{X1: "1.5", Y1: "2", X2: "3", Y2: "4"}, raster.AlgorithmDDA)
		if e, ok := assert.ErrorAs[*ParseError](t, err); ok {
			assert.Equal(t, "x1", e.Field)
			assert.Equal(t, `x1: "1.5" is not a valid integer`, e.Error())
			assert.True(t, errors.Is(err, strconv.ErrSyntax))
		}
	})

	t.Run("first failure wins", func(t *testing.T) {
		_, err := ParseLine(Fields{X1: "1", Y1: "a", X2: "b", Y2: "4"}, raster.AlgorithmDDA)
		if e, ok := assert.ErrorAs[*ParseError](t, err); ok {
			assert.Equal(t, "y1", e.Field)
		}
	})
}

func TestParseCircle(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := ParseCircle(Fields{X1: "5", Y1: "-5", X2: "ignored", Radius: "7"})
		assert.NoError(t, err)
		assert.Equal(t, raster.Circle{Center: raster.Point{X: 5, Y: -5}, R: 7}, c)
	})

	t.Run("negative radius parses", func(t *testing.T) {
		c, err := ParseCircle(Fields{X1: "0", Y1: "0", Radius: "-2"})
		assert.NoError(t, err)
		assert.Equal(t, -2, c.R)
	})

	t.Run("missing radius", func(t *testing.T) {
		_, err := ParseCircle(Fields{X1: "0", Y1: "0"})
		if e, ok := assert.ErrorAs[*ParseError](t, err); ok {
			assert.Equal(t, "radius", e.Field)
		}
	})
}

func TestParseShape(t *testing.T) {
	t.Run("dda", func(t *testing.T) {
		s, err := ParseShape("dda:0,0,4,2")
		assert.NoError(t, err)
		assert.Equal[raster.Shape](t, raster.Line{To: raster.Point{X: 4, Y: 2}}, s)
	})

	t.Run("bresenham", func(t *testing.T) {
		s, err := ParseShape("Bresenham:1, 2, 3, 4")
		assert.NoError(t, err)
		assert.Equal[raster.Shape](t, raster.Line{
			From:      raster.Point{X: 1, Y: 2},
			To:        raster.Point{X: 3, Y: 4},
			Algorithm: raster.AlgorithmBresenham,
		}, s)
	})

	t.Run("circle", func(t *testing.T) {
		s, err := ParseShape("circle:-1,1,3")
		assert.NoError(t, err)
		assert.Equal[raster.Shape](t, raster.Circle{Center: raster.Point{X: -1, Y: 1}, R: 3}, s)
	})

	for name, in := range map[string]string{
		"no kind":      "0,0,1,1",
		"unknown kind": "spline:0,0,1,1",
		"short line":   "dda:0,0,1",
		"long circle":  "circle:0,0,1,1",
		"bad number":   "circle:0,x,1",
	} {
		t.Run(name, func(t *testing.T) {
			s, err := ParseShape(in)
			assert.Equal[raster.Shape](t, nil, s)
			assert.ErrorAs[*ParseError](t, err)
		})
	}
}
