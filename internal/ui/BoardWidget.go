package ui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"RasterBoard/internal/render"
)

// BoardWidget shows the rasterized points. It draws whatever its Surface
// receives and reports pointer gestures through the On* callbacks.
type BoardWidget struct {
	widget.BaseWidget
	objects  []fyne.CanvasObject
	pending  []fyne.CanvasObject
	mu       sync.RWMutex
	lastSize fyne.Size

	OnPanStart func(x, y int)
	OnPan      func(x, y int)
	OnPanEnd   func()
	OnZoom     func(in bool)
	OnResize   func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget() *BoardWidget {
	b := &BoardWidget{
		objects: make([]fyne.CanvasObject, 0),
	}
	b.ExtendBaseWidget(b)
	return b
}

// Surface returns the render target backed by this widget.
func (b *BoardWidget) Surface() render.Surface {
	return boardSurface{b}
}

type boardSurface struct {
	b *BoardWidget
}

func (s boardSurface) Size() (int, int) {
	size := s.b.Size()
	return int(size.Width), int(size.Height)
}

func (s boardSurface) Clear() {
	s.b.pending = make([]fyne.CanvasObject, 0, len(s.b.objects))
}

func (s boardSurface) Line(x1, y1, x2, y2 float64, c color.Color, width float64) {
	line := canvas.NewLine(c)
	line.StrokeWidth = float32(width)
	line.Position1 = fyne.NewPos(float32(x1), float32(y1))
	line.Position2 = fyne.NewPos(float32(x2), float32(y2))
	s.b.pending = append(s.b.pending, line)
}

func (s boardSurface) Dot(x, y, radius float64, c color.Color) {
	dot := canvas.NewCircle(c)
	dot.Position1 = fyne.NewPos(float32(x-radius), float32(y-radius))
	dot.Position2 = fyne.NewPos(float32(x+radius), float32(y+radius))
	s.b.pending = append(s.b.pending, dot)
}

// Flush swaps the finished frame in and refreshes the widget.
func (s boardSurface) Flush() {
	s.b.mu.Lock()
	s.b.objects = s.b.pending
	s.b.pending = nil
	s.b.mu.Unlock()
	s.b.Refresh()
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary && b.OnPanStart != nil {
		b.OnPanStart(int(e.Position.X), int(e.Position.Y))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary && b.OnPanEnd != nil {
		b.OnPanEnd()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.OnPan != nil {
		b.OnPan(int(e.Position.X), int(e.Position.Y))
	}
}

func (b *BoardWidget) DragEnd() {
	if b.OnPanEnd != nil {
		b.OnPanEnd()
	}
}

// Scrolled zooms in when scrolling up and out when scrolling down.
func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	if b.OnZoom == nil || e.Scrolled.DY == 0 {
		return
	}
	b.OnZoom(e.Scrolled.DY > 0)
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	r.board.mu.RLock()
	defer r.board.mu.RUnlock()

	objects := make([]fyne.CanvasObject, 0, len(r.board.objects)+1)
	objects = append(objects, r.background)
	return append(objects, r.board.objects...)
}

func (r *boardWidgetRenderer) Refresh() {
	canvas.Refresh(r.board)
}

// Layout repaints when the size changes since the axes follow the centre.
func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	if size == r.board.lastSize {
		return
	}
	r.board.lastSize = size
	if r.board.OnResize != nil {
		r.board.OnResize()
	}
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}
