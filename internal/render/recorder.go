package render

import (
	"fmt"
	"image/color"
)

type OpKind uint8

const (
	OpLine OpKind = iota
	OpDot
)

func (k OpKind) String() string {
	switch k {
	case OpLine:
		return "line"
	case OpDot:
		return "dot"
	default:
		return fmt.Sprintf("OpKind(%d)", uint8(k))
	}
}

// Op is one primitive received by a Recorder. Dots use X1, Y1 and Size as
// the radius; lines use all four coordinates and Size as the stroke width.
type Op struct {
	Kind           OpKind
	X1, Y1, X2, Y2 float64
	Size           float64
	Color          color.Color
}

// Recorder is a Surface that remembers what was drawn on it since the last
// Clear.
type Recorder struct {
	Width, Height int
	Ops           []Op
	// Clears counts calls to Clear.
	Clears int
}

var _ Surface = (*Recorder)(nil)

func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

func (r *Recorder) Clear() {
	r.Ops = nil
	r.Clears++
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, c color.Color, width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Size: width, Color: c})
}

func (r *Recorder) Dot(x, y, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpDot, X1: x, Y1: y, Size: radius, Color: c})
}

// Count returns how many recorded ops are of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}
