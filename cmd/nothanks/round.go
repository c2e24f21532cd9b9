package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/nothanks/internal/deck"
	"github.com/lox/nothanks/internal/display"
	"github.com/lox/nothanks/internal/game"
	"github.com/lox/nothanks/internal/randutil"
	"github.com/lox/nothanks/internal/simulator"
)

// RoundCmd plays one round with the full trace
type RoundCmd struct {
	CommonFlags `embed:""`

	Deck    string `kong:"help='Fixed deal order, top card first, e.g. 5,3,8 (seats keep roster order)'"`
	Starter int    `kong:"default='0',help='Seat that acts first with --deck'"`
	Reasons bool   `kong:"help='Show strategy reasoning'"`
	Passes  bool   `kong:"help='Print every pass instead of a dot'"`
	Stamps  bool   `kong:"name='timestamps',help='Prefix trace lines with the event time'"`
}

func (c *RoundCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *RoundCmd) run(w io.Writer) error {
	logger := c.logger()

	cfg, err := c.load()
	if err != nil {
		return err
	}

	rng := randutil.New(seed(cfg))
	players, err := simulator.BuildPlayers(cfg.Roster, rng)
	if err != nil {
		return err
	}

	var shuffler game.Shuffler = game.NewRandomShuffler(rng)
	if c.Deck != "" {
		order, err := deck.ParseCards(c.Deck)
		if err != nil {
			return fmt.Errorf("invalid --deck: %w", err)
		}
		// the engine checks the order against the rules before dealing
		fixed, err := game.NewFixedShuffler(order, c.Starter)
		if err != nil {
			return err
		}
		shuffler = fixed
	}

	trace := display.NewTrace(w, display.NewRenderer(w, !c.NoColor), game.FormattingOptions{
		ShowReasonings: c.Reasons,
		ShowPasses:     c.Passes,
		ShowTimestamps: c.Stamps,
	})
	engine := game.NewEngine(cfg.Rules, players, shuffler,
		game.WithLogger(logger),
		game.WithSubscriber(trace),
	)

	if _, err := engine.PlayRound(false); err != nil {
		return err
	}
	return trace.Err()
}
