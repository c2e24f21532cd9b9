package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Simulate   SimulateCmd      `cmd:"" default:"withargs" help:"Run a batch of rounds and report winner frequencies"`
	Round      RoundCmd         `cmd:"" help:"Play one traced round"`
	Play       PlayCmd          `cmd:"" help:"Play traced rounds interactively"`
	Strategies StrategiesCmd    `cmd:"" help:"List built-in strategies"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("nothanks"),
		kong.Description("Strategy simulator for the No Thanks! card game"),
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
