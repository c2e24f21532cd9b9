package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/nothanks/cmd/nothanks/shared"
	"github.com/lox/nothanks/internal/display"
	"github.com/lox/nothanks/internal/fileutil"
	"github.com/lox/nothanks/internal/simulator"
)

// SimulateCmd runs a batch of silent rounds
type SimulateCmd struct {
	CommonFlags `embed:""`

	Trials   *int     `kong:"short='n',help='Number of rounds to play'"`
	Workers  *int     `kong:"short='w',help='Parallel workers (1 plays every round on one engine)'"`
	MinShare *float64 `kong:"name='min-share',help='Hide winner sets below this fraction of rounds'"`
	Players  bool     `kong:"help='Show per-player statistics'"`
	Quiet    bool     `kong:"short='q',help='Do not print progress dots'"`
	Output   string   `kong:"short='o',type='path',help='Also write the plain-text report to this file'"`
}

func (c *SimulateCmd) Run() error {
	logger := c.logger()

	cfg, err := c.load()
	if err != nil {
		return err
	}
	if c.Trials != nil {
		cfg.Trials = *c.Trials
	}
	if c.Workers != nil {
		cfg.Workers = *c.Workers
	}
	if c.MinShare != nil {
		cfg.MinShare = *c.MinShare
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	s := seed(cfg)
	simCfg := simulator.Config{
		Rules:   cfg.Rules,
		Roster:  cfg.Roster,
		Seed:    s,
		Workers: cfg.Workers,
		Logger:  logger,
	}
	if !c.Quiet {
		simCfg.OnProgress = display.DotProgress(os.Stdout)
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	fmt.Printf("Playing %d rounds (%s, seed %d)\n", cfg.Trials, cfg.Rules, s)
	summary, err := simulator.New(simCfg).Run(ctx, cfg.Trials)
	if err != nil {
		return err
	}

	opts := display.ReportOptions{
		MinShare:    cfg.MinShare,
		ShowPlayers: c.Players,
	}
	if err := display.WriteReport(os.Stdout, display.NewRenderer(os.Stdout, !c.NoColor), summary, opts); err != nil {
		return err
	}
	if c.Output == "" {
		return nil
	}

	logger.Debug("Writing report", "path", c.Output)
	return fileutil.WriteAtomic(c.Output, 0o644, func(w io.Writer) error {
		return display.WriteReport(w, display.NewRenderer(w, false), summary, opts)
	})
}
