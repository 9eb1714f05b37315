// Package raster turns line segments and circles into ordered sequences of
// integer grid points. Nothing here knows about screens or viewports.
package raster

import (
	"fmt"
	"math"
)

// MaxCoord bounds the magnitude of every coordinate and radius accepted by
// the rasterizers.
const MaxCoord = 1 << 20

// Point is a cell of the model-space grid.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// InvalidShapeError reports shape parameters that cannot be rasterized.
type InvalidShapeError struct {
	Shape  string
	Reason string
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Shape, e.Reason)
}

func checkCoords(shape string, vs ...int) error {
	for _, v := range vs {
		if v > MaxCoord || v < -MaxCoord {
			return &InvalidShapeError{
				Shape:  shape,
				Reason: fmt.Sprintf("coordinate %d outside [-%d, %d]", v, MaxCoord, MaxCoord),
			}
		}
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// DDA rasterizes the segment from (x1,y1) to (x2,y2) with the digital
// differential analyzer. Samples are rounded half away from zero.
func DDA(x1, y1, x2, y2 int) ([]Point, error) {
	if err := checkCoords("line", x1, y1, x2, y2); err != nil {
		return nil, err
	}

	dx, dy := x2-x1, y2-y1
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return []Point{{X: x1, Y: y1}}, nil
	}

	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)

	points := make([]Point, 0, steps+1)
	x, y := float64(x1), float64(y1)
	for range steps + 1 {
		points = append(points, Point{X: int(math.Round(x)), Y: int(math.Round(y))})
		x += xInc
		y += yInc
	}
	return points, nil
}

// BresenhamLine rasterizes the segment from (x1,y1) to (x2,y2) using integer
// arithmetic only. Both endpoints are included and every octant is handled
// by the same loop.
func BresenhamLine(x1, y1, x2, y2 int) ([]Point, error) {
	if err := checkCoords("line", x1, y1, x2, y2); err != nil {
		return nil, err
	}

	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x2 < x1 {
		sx = -1
	}
	if y2 < y1 {
		sy = -1
	}
	err := dx - dy

	points := make([]Point, 0, max(dx, dy)+1)
	x, y := x1, y1
	for {
		points = append(points, Point{X: x, Y: y})
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return points, nil
}

// BresenhamCircle rasterizes the circle centred on (xc,yc) with radius r
// using the midpoint algorithm. Each step over the first octant emits its
// eight reflections; points on octant boundaries are repeated. A zero
// radius yields the centre alone.
func BresenhamCircle(xc, yc, r int) ([]Point, error) {
	if r < 0 {
		return nil, &InvalidShapeError{Shape: "circle", Reason: fmt.Sprintf("negative radius %d", r)}
	}
	if err := checkCoords("circle", xc, yc, r, xc+r, xc-r, yc+r, yc-r); err != nil {
		return nil, err
	}
	if r == 0 {
		return []Point{{X: xc, Y: yc}}, nil
	}

	// about r/sqrt(2) steps of 8 points each
	points := make([]Point, 0, 8*(r*3/4+2))
	x, y := 0, r
	d := 3 - 2*r
	for x <= y {
		points = append(points,
			Point{xc + x, yc + y}, Point{xc - x, yc + y},
			Point{xc + x, yc - y}, Point{xc - x, yc - y},
			Point{xc + y, yc + x}, Point{xc - y, yc + x},
			Point{xc + y, yc - x}, Point{xc - y, yc - x},
		)
		if d <= 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
	return points, nil
}
