package export

import (
	"fmt"
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"

	"RasterBoard/internal/render"
)

// PDF is a render.Surface that lays the view out on a single page the size
// of the surface, one PDF point per pixel.
type PDF struct {
	width, height int
	title         string
	doc           *gofpdf.Fpdf
}

var _ render.Surface = (*PDF)(nil)

func NewPDF(width, height int, title string) *PDF {
	p := &PDF{width: width, height: height, title: title}
	p.Clear()
	return p
}

func (p *PDF) Size() (int, int) { return p.width, p.height }

// Clear starts a new document, dropping everything drawn so far.
func (p *PDF) Clear() {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(p.width), Ht: float64(p.height)},
	})
	doc.SetTitle(p.title, true)
	doc.SetCreator("RasterBoard", true)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetLineCapStyle("round")
	p.doc = doc
}

func rgb(c color.Color) (int, int, int) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B)
}

func (p *PDF) Line(x1, y1, x2, y2 float64, c color.Color, width float64) {
	p.doc.SetDrawColor(rgb(c))
	p.doc.SetLineWidth(width)
	p.doc.Line(x1, y1, x2, y2)
}

func (p *PDF) Dot(x, y, radius float64, c color.Color) {
	p.doc.SetFillColor(rgb(c))
	p.doc.Circle(x, y, radius, "F")
}

// WriteTo writes the finished document to w.
func (p *PDF) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := p.doc.Output(cw); err != nil {
		return cw.n, fmt.Errorf("failed to write pdf: %w", err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
