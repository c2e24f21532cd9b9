package simulator

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/nothanks/internal/game"
	"github.com/lox/nothanks/internal/strategy"
)

// Entry is one seat in the roster: a display name and a strategy spec.
type Entry struct {
	Name string
	Spec strategy.Spec
}

// DefaultRoster is the line-up compared by default.
func DefaultRoster() []Entry {
	return []Entry{
		{Name: "Val < 15", Spec: strategy.Spec{Kind: strategy.KindCostThreshold, MaxCost: 15}},
		{Name: "Val < 10", Spec: strategy.Spec{Kind: strategy.KindCostThreshold, MaxCost: 10}},
		{Name: "Within 2", Spec: strategy.Spec{Kind: strategy.KindProximity, Distance: 2}},
		{Name: "Within 3", Spec: strategy.Spec{Kind: strategy.KindProximity, Distance: 3}},
	}
}

// BuildPlayers creates fresh players for roster. Strategies that need
// randomness draw from rng, so each engine must get its own.
func BuildPlayers(roster []Entry, rng *rand.Rand) ([]*game.Player, error) {
	players := make([]*game.Player, 0, len(roster))
	for _, entry := range roster {
		s, err := strategy.New(entry.Spec, rng)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", entry.Name, err)
		}
		players = append(players, game.NewPlayer(entry.Name, s))
	}
	return players, nil
}

// BuildEngine creates an engine with its own players, all randomness drawn
// from one source seeded with seed.
func BuildEngine(rules game.Rules, roster []Entry, seed int64, newRand func(int64) *rand.Rand, opts ...game.EngineOption) (*game.Engine, error) {
	rng := newRand(seed)
	players, err := BuildPlayers(roster, rng)
	if err != nil {
		return nil, err
	}
	return game.NewEngine(rules, players, game.NewRandomShuffler(rng), opts...), nil
}
