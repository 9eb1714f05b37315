// Package input turns raw user text into shapes ready for rasterization.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"RasterBoard/internal/raster"
)

// ParseError reports malformed or missing numeric input.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	var numErr *strconv.NumError
	switch {
	case e.Value == "":
		return fmt.Sprintf("%s: value is required", e.Field)
	case errors.As(e.Err, &numErr):
		return fmt.Sprintf("%s: %q is not a valid integer", e.Field, e.Value)
	default:
		return fmt.Sprintf("%s: %q: %v", e.Field, e.Value, e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// Fields holds the raw contents of the coordinate entries.
type Fields struct {
	X1, Y1 string
	X2, Y2 string
	Radius string
}

func parseInt(field, value string) (int, error) {
	v := strings.TrimSpace(value)
	n, err := strconv.ParseInt(v, 10, 0)
	if err != nil {
		return 0, &ParseError{Field: field, Value: v, Err: err}
	}
	return int(n), nil
}

type intField struct {
	name  string
	value string
	dst   *int
}

func parseAll(fs ...intField) error {
	for _, f := range fs {
		n, err := parseInt(f.name, f.value)
		if err != nil {
			return err
		}
		*f.dst = n
	}
	return nil
}

// ParseLine reads x1, y1, x2 and y2 as a line drawn with algo.
func ParseLine(f Fields, algo raster.Algorithm) (raster.Line, error) {
	var l raster.Line
	err := parseAll(
		intField{"x1", f.X1, &l.From.X},
		intField{"y1", f.Y1, &l.From.Y},
		intField{"x2", f.X2, &l.To.X},
		intField{"y2", f.Y2, &l.To.Y},
	)
	if err != nil {
		return raster.Line{}, err
	}
	l.Algorithm = algo
	return l, nil
}

// ParseCircle reads x1 and y1 as the centre and the radius field as r.
func ParseCircle(f Fields) (raster.Circle, error) {
	var c raster.Circle
	err := parseAll(
		intField{"x1", f.X1, &c.Center.X},
		intField{"y1", f.Y1, &c.Center.Y},
		intField{"radius", f.Radius, &c.R},
	)
	if err != nil {
		return raster.Circle{}, err
	}
	return c, nil
}

// ParseShape parses the compact form used on the command line:
//
//	dda:x1,y1,x2,y2
//	bresenham:x1,y1,x2,y2
//	circle:xc,yc,r
func ParseShape(s string) (raster.Shape, error) {
	kind, args, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return nil, &ParseError{Field: "shape", Value: s, Err: errors.New("missing ':' after shape kind")}
	}
	vals := strings.Split(args, ",")

	switch strings.ToLower(kind) {
	case "dda", "bresenham":
		if len(vals) != 4 {
			return nil, &ParseError{Field: kind, Value: args, Err: fmt.Errorf("want 4 values, got %d", len(vals))}
		}
		algo := raster.AlgorithmDDA
		if strings.EqualFold(kind, "bresenham") {
			algo = raster.AlgorithmBresenham
		}
		l, err := ParseLine(Fields{X1: vals[0], Y1: vals[1], X2: vals[2], Y2: vals[3]}, algo)
		if err != nil {
			return nil, err
		}
		return l, nil
	case "circle":
		if len(vals) != 3 {
			return nil, &ParseError{Field: kind, Value: args, Err: fmt.Errorf("want 3 values, got %d", len(vals))}
		}
		c, err := ParseCircle(Fields{X1: vals[0], Y1: vals[1], Radius: vals[2]})
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, &ParseError{Field: "shape", Value: s, Err: fmt.Errorf(`must be one of "dda","bresenham","circle" but got %q`, kind)}
	}
}
