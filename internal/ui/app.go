package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"RasterBoard/internal/config"
	"RasterBoard/internal/session"
)

// NewBoard creates the board widget and a session drawing on it, with the
// pointer gestures wired to panning and zooming.
func NewBoard(opts ...session.Option) (*BoardWidget, *session.Session) {
	board := NewBoardWidget()
	s := session.New(board.Surface(), opts...)

	board.OnPanStart = s.BeginPan
	board.OnPan = s.DragPan
	board.OnPanEnd = s.EndPan
	board.OnZoom = func(in bool) {
		if in {
			s.ZoomIn()
		} else {
			s.ZoomOut()
		}
	}
	board.OnResize = s.Redraw
	return board, s
}

func RunApp(g config.Globals, log *slog.Logger) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Rasterization algorithms")
	myWindow.Resize(fyne.NewSize(float32(g.Width), float32(g.Height)))

	board, s := NewBoard(session.WithScale(g.Scale), session.WithLogger(log))
	log.Info("session started", "session", s.ID, "scale", s.Viewport.Scale())

	panel := NewControlPanel()
	s.OnStatus = panel.SetStatus
	controls := panel.Build(s, func() {
		showExportDialog(myWindow, s, board, panel, log)
	})

	content := container.NewBorder(nil, nil, nil, controls, board)
	myWindow.SetContent(content)
	s.Redraw()
	myWindow.ShowAndRun()
}
