package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"RasterBoard/internal/input"
	"RasterBoard/internal/session"
)

// ControlPanel holds the coordinate entries and the command buttons.
type ControlPanel struct {
	x1, y1, x2, y2, radius *widget.Entry
	status                 *widget.Label
}

func newEntry(placeholder string) *widget.Entry {
	e := widget.NewEntry()
	e.SetPlaceHolder(placeholder)
	return e
}

func NewControlPanel() *ControlPanel {
	status := widget.NewLabel("Ready")
	status.Wrapping = fyne.TextWrapWord
	return &ControlPanel{
		x1:     newEntry("0"),
		y1:     newEntry("0"),
		x2:     newEntry("0"),
		y2:     newEntry("0"),
		radius: newEntry("0"),
		status: status,
	}
}

// Fields returns the current text of every entry.
func (p *ControlPanel) Fields() input.Fields {
	return input.Fields{
		X1:     p.x1.Text,
		Y1:     p.y1.Text,
		X2:     p.x2.Text,
		Y2:     p.y2.Text,
		Radius: p.radius.Text,
	}
}

func (p *ControlPanel) SetStatus(text string) {
	p.status.SetText(text)
}

func heading(text string) fyne.CanvasObject {
	return widget.NewLabelWithStyle(text, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
}

// Build lays the panel out and binds its buttons to s. Command errors are
// already reported through the session status, so they are dropped here.
func (p *ControlPanel) Build(s *session.Session, onExport func()) fyne.CanvasObject {
	form := widget.NewForm(
		widget.NewFormItem("X1", p.x1),
		widget.NewFormItem("Y1", p.y1),
		widget.NewFormItem("X2", p.x2),
		widget.NewFormItem("Y2", p.y2),
		widget.NewFormItem("Radius", p.radius),
	)

	algorithms := container.NewVBox(
		widget.NewButton("DDA", func() { _ = s.RunDDA(p.Fields()) }),
		widget.NewButton("Bresenham (line)", func() { _ = s.RunBresenhamLine(p.Fields()) }),
		widget.NewButton("Bresenham (circle)", func() { _ = s.RunBresenhamCircle(p.Fields()) }),
		widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), s.Clear),
	)

	view := container.NewVBox(
		widget.NewButtonWithIcon("Zoom in", theme.ZoomInIcon(), s.ZoomIn),
		widget.NewButtonWithIcon("Zoom out", theme.ZoomOutIcon(), s.ZoomOut),
		widget.NewButtonWithIcon("Export…", theme.DocumentSaveIcon(), onExport),
	)

	panel := container.NewVBox(
		heading("Coordinates"),
		form,
		widget.NewSeparator(),
		heading("Algorithms"),
		algorithms,
		widget.NewSeparator(),
		heading("View"),
		view,
		layout.NewSpacer(),
		p.status,
	)
	return container.NewPadded(panel)
}
