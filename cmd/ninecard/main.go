package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Arrange  ArrangeCmd       `cmd:"" help:"Find the best arrangement for a hand"`
	Deal     DealCmd          `cmd:"" help:"Deal a sample round and arrange every seat"`
	Simulate SimulateCmd      `cmd:"" help:"Simulate sessions and report per-player results"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("ninecard"),
		kong.Description("Nine-card arrangement game engine and simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
