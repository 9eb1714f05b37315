package ui

import (
	"os"

	"RasterBoard/internal/config"
)

// Cmd opens the interactive board window.
type Cmd struct{}

func (c *Cmd) Run(g config.Globals) error {
	RunApp(g, g.Logger(os.Stderr))
	return nil
}
