package main

import (
	"os"

	"github.com/alecthomas/kong"

	"RasterBoard/internal/config"
	"RasterBoard/internal/export"
	"RasterBoard/internal/ui"
)

type cli struct {
	config.Globals `embed:""`

	Board  ui.Cmd     `cmd:"" default:"1" help:"Open the interactive board."`
	Render export.Cmd `cmd:"" help:"Rasterize shapes without a window and write a PNG or PDF snapshot."`
}

func main() {
	var flags cli
	parser := kong.Must(&flags, append([]kong.Option{
		kong.Name("rasterboard"),
		kong.Description("Draw lines and circles with classic rasterization algorithms."),
		kong.UsageOnError(),
	}, config.TypeMappers...)...)

	cfgArgs, err := config.LoadArgs()
	parser.FatalIfErrorf(err)

	ctx, err := parser.Parse(append(cfgArgs, os.Args[1:]...))
	parser.FatalIfErrorf(err)

	err = ctx.Run(flags.Globals)
	ctx.FatalIfErrorf(err)
}
