package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/nothanks/cmd/nothanks/shared"
	"github.com/lox/nothanks/internal/config"
)

// CommonFlags are shared by every command that plays rounds. Flags override
// values from the config file.
type CommonFlags struct {
	Config  string `kong:"default='nothanks.hcl',type='path',help='HCL config file; a missing file uses the defaults'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
	Seed    *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	MinCard *int   `kong:"name='min-card',help='Lowest card in the deck'"`
	MaxCard *int   `kong:"name='max-card',help='Highest card in the deck'"`
	Burn    *int   `kong:"help='Cards removed face down before play'"`
	Chips   *int   `kong:"help='Starting chips per player (default from the player-count table)'"`
	NoColor bool   `kong:"name='no-color',help='Disable styled output'"`
}

func (f *CommonFlags) logger() *log.Logger {
	return shared.SetupLogger(f.Debug)
}

// load reads the config file and applies flag overrides
func (f *CommonFlags) load() (*config.Config, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return nil, err
	}
	if f.MinCard != nil {
		cfg.Rules.MinCard = *f.MinCard
	}
	if f.MaxCard != nil {
		cfg.Rules.MaxCard = *f.MaxCard
	}
	if f.Burn != nil {
		cfg.Rules.Burn = *f.Burn
	}
	if f.Chips != nil {
		cfg.Rules = cfg.Rules.WithChips(*f.Chips)
	}
	if f.Seed != nil {
		seed := *f.Seed
		cfg.Seed = &seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// seed returns the configured seed, or a time-based one
func seed(cfg *config.Config) int64 {
	if cfg.Seed != nil {
		return *cfg.Seed
	}
	return time.Now().UnixNano()
}
