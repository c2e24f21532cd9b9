// Package config loads simulation settings from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/nothanks/internal/game"
	"github.com/lox/nothanks/internal/simulator"
	"github.com/lox/nothanks/internal/statistics"
	"github.com/lox/nothanks/internal/strategy"
)

// DefaultTrials is the batch size used when none is configured.
const DefaultTrials = 20000

// fileConfig mirrors the HCL file layout
type fileConfig struct {
	Trials   *int          `hcl:"trials,optional"`
	Seed     *int64        `hcl:"seed,optional"`
	Workers  *int          `hcl:"workers,optional"`
	MinShare *float64      `hcl:"min_share,optional"`
	Rules    *rulesBlock   `hcl:"rules,block"`
	Players  []playerBlock `hcl:"player,block"`
}

type rulesBlock struct {
	MinCard        *int `hcl:"min_card,optional"`
	MaxCard        *int `hcl:"max_card,optional"`
	Burn           *int `hcl:"burn,optional"`
	ChipsPerPlayer *int `hcl:"chips_per_player,optional"`
}

type playerBlock struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
	MaxCost  *int   `hcl:"max_cost,optional"`
	Distance *int   `hcl:"distance,optional"`
}

// Config is a resolved simulation configuration
type Config struct {
	Trials   int
	Seed     *int64 // nil picks a time-based seed at run time
	Workers  int
	MinShare float64
	Rules    game.Rules
	Roster   []simulator.Entry
}

// Default returns the configuration used when no file is given: cards 3 to
// 35, nine burned, seven chips each, four heuristic players.
func Default() *Config {
	return &Config{
		Trials:   DefaultTrials,
		Workers:  1,
		MinShare: statistics.DefaultMinShare,
		Rules:    game.DefaultRules().WithChips(7),
		Roster:   simulator.DefaultRoster(),
	}
}

// Load reads configuration from an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. Settings the file omits keep their defaults; a
// file with player blocks replaces the default roster entirely.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if fc.Trials != nil {
		cfg.Trials = *fc.Trials
	}
	if fc.Seed != nil {
		seed := *fc.Seed
		cfg.Seed = &seed
	}
	if fc.Workers != nil {
		cfg.Workers = *fc.Workers
	}
	if fc.MinShare != nil {
		cfg.MinShare = *fc.MinShare
	}

	if r := fc.Rules; r != nil {
		if r.MinCard != nil {
			cfg.Rules.MinCard = *r.MinCard
		}
		if r.MaxCard != nil {
			cfg.Rules.MaxCard = *r.MaxCard
		}
		if r.Burn != nil {
			cfg.Rules.Burn = *r.Burn
		}
		// Without an explicit allotment the chip table decides
		cfg.Rules.ChipsPerPlayer = r.ChipsPerPlayer
	}

	if len(fc.Players) > 0 {
		roster, err := buildRoster(fc.Players)
		if err != nil {
			return nil, err
		}
		cfg.Roster = roster
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildRoster(blocks []playerBlock) ([]simulator.Entry, error) {
	roster := make([]simulator.Entry, 0, len(blocks))
	for _, b := range blocks {
		kind, err := strategy.ParseKind(b.Strategy)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", b.Name, err)
		}

		spec := strategy.Spec{Kind: kind}
		switch kind {
		case strategy.KindCostThreshold:
			if b.MaxCost == nil {
				return nil, fmt.Errorf("player %q: %w: %s requires max_cost", b.Name, strategy.ErrInvalidParam, kind)
			}
			spec.MaxCost = *b.MaxCost
		case strategy.KindProximity:
			if b.Distance == nil {
				return nil, fmt.Errorf("player %q: %w: %s requires distance", b.Name, strategy.ErrInvalidParam, kind)
			}
			spec.Distance = *b.Distance
		}
		if b.MaxCost != nil && kind != strategy.KindCostThreshold {
			return nil, fmt.Errorf("player %q: %w: max_cost is not used by %s", b.Name, strategy.ErrInvalidParam, kind)
		}
		if b.Distance != nil && kind != strategy.KindProximity {
			return nil, fmt.Errorf("player %q: %w: distance is not used by %s", b.Name, strategy.ErrInvalidParam, kind)
		}

		roster = append(roster, simulator.Entry{Name: b.Name, Spec: spec})
	}
	return roster, nil
}

// Validate checks the batch settings, rules and roster
func (c *Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.MinShare < 0 || c.MinShare > 1 {
		return fmt.Errorf("min_share must be between 0 and 1, got %g", c.MinShare)
	}
	if err := c.Rules.Validate(); err != nil {
		return err
	}

	if len(c.Roster) < 2 {
		return fmt.Errorf("%w: roster has %d", game.ErrTooFewPlayers, len(c.Roster))
	}
	seen := make(map[string]bool, len(c.Roster))
	for _, entry := range c.Roster {
		if entry.Name == "" {
			return errors.New("player name must not be empty")
		}
		if seen[entry.Name] {
			return fmt.Errorf("%w: %q", game.ErrDuplicatePlayer, entry.Name)
		}
		seen[entry.Name] = true
		if err := entry.Spec.Validate(); err != nil {
			return fmt.Errorf("player %q: %w", entry.Name, err)
		}
	}
	return nil
}
