package config

import (
	"io"
	"log/slog"
)

// Globals contains options shared by every command.
type Globals struct {
	// Scale is the initial number of screen pixels per grid cell.
	Scale float64 `short:"s" default:"20" help:"Initial number of pixels per grid cell. Values below 5 are raised to 5."`
	// Width and Height size the window, or the image for snapshots.
	Width  int `default:"1200" help:"Surface width in pixels."`
	Height int `default:"800" help:"Surface height in pixels."`
	// LogLevel is the minimum level written to the log.
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Minimum level of log records written to stderr."`
}

// Logger returns a text logger writing to w at the configured level.
func (g Globals) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
