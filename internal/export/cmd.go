package export

import (
	"context"
	"fmt"
	"os"

	"RasterBoard/internal/config"
	"RasterBoard/internal/raster"
	"RasterBoard/internal/session"
	"RasterBoard/internal/state"
)

// Cmd rasterizes shapes given on the command line and writes one snapshot
// without opening a window.
type Cmd struct {
	Shapes []config.Shape `name:"shape" short:"S" sep:";" help:"Shape to draw: dda:x1,y1,x2,y2, bresenham:x1,y1,x2,y2 or circle:xc,yc,r. Repeatable; several shapes may be joined with ';'."`
	Pan    config.Pan     `short:"p" default:"0,0" help:"Pan offset in pixels as dx,dy."`
	Zoom   int            `short:"z" help:"Zoom steps to apply. Positive zooms in, negative zooms out."`
	Out    string         `short:"o" required:"" type:"path" help:"Output file, .png or .pdf."`
}

func (c *Cmd) Run(g config.Globals) error {
	log := g.Logger(os.Stderr)
	s := session.New(nil, session.WithScale(g.Scale), session.WithLogger(log))

	shapes := make([]raster.Shape, len(c.Shapes))
	for i, sh := range c.Shapes {
		shapes[i] = sh.Shape
	}
	pts, err := raster.RasterizeAll(context.Background(), shapes)
	if err != nil {
		return fmt.Errorf("failed to rasterize: %w", err)
	}
	s.Store.Append(pts...)

	s.Viewport.Pan(c.Pan.DX, c.Pan.DY)
	factor := state.ZoomInFactor
	steps := c.Zoom
	if steps < 0 {
		factor, steps = state.ZoomOutFactor, -steps
	}
	for range steps {
		if err := s.Viewport.Zoom(factor); err != nil {
			return err
		}
	}

	if err := WriteFile(c.Out, s, g.Width, g.Height); err != nil {
		return err
	}
	log.Info("wrote snapshot", "path", c.Out, "shapes", len(shapes), "points", s.Store.Len(), "scale", s.Viewport.Scale())
	return nil
}
