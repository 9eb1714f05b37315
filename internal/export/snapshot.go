package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"RasterBoard/internal/render"
	"RasterBoard/internal/session"
)

type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// FormatFor picks the snapshot format from the file extension of name.
func FormatFor(name string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".png":
		return FormatPNG, nil
	case ".pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf(`unsupported snapshot extension "%s", want ".png" or ".pdf"`, ext)
	}
}

type surfaceWriter interface {
	render.Surface
	io.WriterTo
}

// Snapshot renders the session's current view at the given size and writes
// it to w.
func Snapshot(w io.Writer, f Format, s *session.Session, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid snapshot size %dx%d", width, height)
	}

	var dst surfaceWriter
	switch f {
	case FormatPNG:
		dst = NewPNG(width, height)
	case FormatPDF:
		dst = NewPDF(width, height, "RasterBoard "+s.ID)
	default:
		return fmt.Errorf("unknown snapshot format %q", f)
	}

	s.Export(dst)
	_, err := dst.WriteTo(w)
	return err
}

// WriteFile writes a snapshot to path, choosing the format from its
// extension.
func WriteFile(path string, s *session.Session, width, height int) (err error) {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer func() {
		closeErr := file.Close()

		if err == nil {
			err = closeErr
		}
	}()

	return Snapshot(file, f, s, width, height)
}
