package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"RasterBoard/internal/export"
	"RasterBoard/internal/session"
)

// saveSnapshot writes the current view to wc at the board's size. The
// format follows the file name chosen in the dialog.
func saveSnapshot(wc fyne.URIWriteCloser, s *session.Session, board *BoardWidget) (err error) {
	defer func() {
		closeErr := wc.Close()

		if err == nil {
			err = closeErr
		}
	}()

	f, err := export.FormatFor(wc.URI().Name())
	if err != nil {
		return err
	}
	w, h := board.Surface().Size()
	return export.Snapshot(wc, f, s, w, h)
}

func showExportDialog(win fyne.Window, s *session.Session, board *BoardWidget, panel *ControlPanel, log *slog.Logger) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if wc == nil {
			// cancelled
			return
		}

		name := wc.URI().Name()
		if err := saveSnapshot(wc, s, board); err != nil {
			log.Error("export failed", "file", name, "err", err)
			panel.SetStatus(fmt.Sprintf("Export failed: %v", err))
			dialog.ShowError(err, win)
			return
		}
		log.Info("exported snapshot", "uri", wc.URI().String())
		panel.SetStatus("Saved " + name)
	}, win)
	d.SetFileName("board.png")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".pdf"}))
	d.Show()
}
