package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"RasterBoard/internal/input"
	"RasterBoard/internal/raster"
)

// Shape is a command line shape such as "dda:0,0,4,2".
type Shape struct {
	raster.Shape
}

// Pan is a pixel offset given as "dx,dy".
type Pan struct {
	DX, DY int
}

// TypeMappers contains all the kong.TypeMapper options that should be used
// when parsing at the top-level.
var TypeMappers = []kong.Option{
	kong.TypeMapper(reflect.TypeOf(Shape{}), kong.MapperFunc(func(ctx *kong.DecodeContext, target reflect.Value) error {
		var s string
		if err := ctx.Scan.PopValueInto("shape", &s); err != nil {
			return err
		}

		shape, err := input.ParseShape(s)
		if err != nil {
			return err
		}

		target.Set(reflect.ValueOf(Shape{shape}))
		return nil
	})),

	kong.TypeMapper(reflect.TypeOf(Pan{}), kong.MapperFunc(func(ctx *kong.DecodeContext, target reflect.Value) error {
		var s string
		if err := ctx.Scan.PopValueInto("pan", &s); err != nil {
			return err
		}

		x, y, ok := strings.Cut(s, ",")
		if !ok {
			return fmt.Errorf(`must be of the form "dx,dy" but got "%s"`, s)
		}
		dx, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return fmt.Errorf("invalid pan dx: %w", err)
		}
		dy, err := strconv.Atoi(strings.TrimSpace(y))
		if err != nil {
			return fmt.Errorf("invalid pan dy: %w", err)
		}

		target.Set(reflect.ValueOf(Pan{DX: dx, DY: dy}))
		return nil
	})),
}
