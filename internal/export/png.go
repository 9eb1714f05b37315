// Package export provides off-screen surfaces that snapshot the board view
// to a file.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"RasterBoard/internal/render"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// PNG is a render.Surface backed by an in-memory NRGBA image.
type PNG struct {
	img *image.NRGBA
	z   *vector.Rasterizer
}

var _ render.Surface = (*PNG)(nil)

func NewPNG(width, height int) *PNG {
	p := &PNG{
		img: image.NewNRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
	p.Clear()
	return p
}

func (p *PNG) Size() (int, int) {
	b := p.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear paints the whole image white.
func (p *PNG) Clear() {
	draw.Draw(p.img, p.img.Bounds(), image.White, image.Point{}, draw.Src)
}

// visible reports whether the box [x0,x1]x[y0,y1] touches the image.
func (p *PNG) visible(x0, y0, x1, y1 float64) bool {
	w, h := p.Size()
	return x1 >= 0 && y1 >= 0 && x0 <= float64(w) && y0 <= float64(h)
}

func (p *PNG) fill(c color.Color) {
	p.z.DrawOp = draw.Over
	p.z.Draw(p.img, p.img.Bounds(), image.NewUniform(c), image.Point{})
}

func (p *PNG) Line(x1, y1, x2, y2 float64, c color.Color, width float64) {
	hw := width / 2
	if !p.visible(math.Min(x1, x2)-hw, math.Min(y1, y2)-hw, math.Max(x1, x2)+hw, math.Max(y1, y2)+hw) {
		return
	}
	dx, dy := x2-x1, y2-y1
	l := math.Hypot(dx, dy)
	if l == 0 {
		p.Dot(x1, y1, hw, c)
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw

	w, h := p.Size()
	p.z.Reset(w, h)
	p.z.MoveTo(float32(x1+nx), float32(y1+ny))
	p.z.LineTo(float32(x2+nx), float32(y2+ny))
	p.z.LineTo(float32(x2-nx), float32(y2-ny))
	p.z.LineTo(float32(x1-nx), float32(y1-ny))
	p.z.ClosePath()
	p.fill(c)
}

func (p *PNG) Dot(x, y, radius float64, c color.Color) {
	if radius <= 0 || !p.visible(x-radius, y-radius, x+radius, y+radius) {
		return
	}
	cx, cy, r := float32(x), float32(y), float32(radius)
	k := float32(kappa) * r

	w, h := p.Size()
	p.z.Reset(w, h)
	p.z.MoveTo(cx+r, cy)
	p.z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	p.z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	p.z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	p.z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	p.z.ClosePath()
	p.fill(c)
}

// Image returns the backing image. It is not copied.
func (p *PNG) Image() image.Image {
	return p.img
}

// WriteTo encodes the image as PNG to w.
func (p *PNG) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := png.Encode(cw, p.img); err != nil {
		return cw.n, fmt.Errorf("failed to encode png: %w", err)
	}
	return cw.n, nil
}
