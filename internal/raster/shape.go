package raster

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Algorithm selects how a Line is rasterized.
type Algorithm uint8

const (
	AlgorithmDDA Algorithm = iota
	AlgorithmBresenham
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmDDA:
		return "dda"
	case AlgorithmBresenham:
		return "bresenham"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// Shape is a validated request to rasterize one primitive.
type Shape interface {
	Points() ([]Point, error)
	fmt.Stringer
}

// Line is a segment between two grid points.
type Line struct {
	From, To  Point
	Algorithm Algorithm
}

func (l Line) Points() ([]Point, error) {
	switch l.Algorithm {
	case AlgorithmDDA:
		return DDA(l.From.X, l.From.Y, l.To.X, l.To.Y)
	case AlgorithmBresenham:
		return BresenhamLine(l.From.X, l.From.Y, l.To.X, l.To.Y)
	default:
		return nil, &InvalidShapeError{Shape: "line", Reason: "unknown algorithm " + l.Algorithm.String()}
	}
}

func (l Line) String() string {
	return fmt.Sprintf("%s line %v-%v", l.Algorithm, l.From, l.To)
}

// Circle is always drawn with the midpoint algorithm.
type Circle struct {
	Center Point
	R      int
}

func (c Circle) Points() ([]Point, error) {
	return BresenhamCircle(c.Center.X, c.Center.Y, c.R)
}

func (c Circle) String() string {
	return fmt.Sprintf("circle %v r=%d", c.Center, c.R)
}

// RasterizeAll rasterizes shapes concurrently and returns their points
// concatenated in the order the shapes were given. The first failure
// cancels the remaining work.
func RasterizeAll(ctx context.Context, shapes []Shape) ([]Point, error) {
	results := make([][]Point, len(shapes))

	g, ctx := errgroup.WithContext(ctx)
	for i, s := range shapes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pts, err := s.Points()
			if err != nil {
				return fmt.Errorf("%v: %w", s, err)
			}
			results[i] = pts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	n := 0
	for _, r := range results {
		n += len(r)
	}
	all := make([]Point, 0, n)
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}
