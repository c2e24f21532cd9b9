package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/nothanks/internal/game"
	"github.com/lox/nothanks/internal/randutil"
	"github.com/lox/nothanks/internal/simulator"
	"github.com/lox/nothanks/internal/tui"
)

// PlayCmd plays rounds interactively until the user quits
type PlayCmd struct {
	CommonFlags `embed:""`

	Reasons bool `kong:"help='Show strategy reasoning'"`
	Passes  bool `kong:"help='Print every pass instead of a dot'"`
	Stamps  bool `kong:"name='timestamps',help='Prefix trace lines with the event time'"`
}

func (c *PlayCmd) Run() error {
	logger := c.logger()

	cfg, err := c.load()
	if err != nil {
		return err
	}

	engine, err := simulator.BuildEngine(cfg.Rules, cfg.Roster, seed(cfg), randutil.New, game.WithLogger(logger))
	if err != nil {
		return err
	}

	model := tui.NewModel(engine, tui.Options{
		Color:  !c.NoColor,
		Logger: logger,
		Formatting: game.FormattingOptions{
			ShowReasonings: c.Reasons,
			ShowPasses:     c.Passes,
			ShowTimestamps: c.Stamps,
		},
	})
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
