package game

import (
	"errors"
	"testing"

	"github.com/lox/nothanks/internal/deck"
	"github.com/lox/nothanks/internal/strategy"
	"github.com/stretchr/testify/require"
)

// recorder captures every published event
type recorder struct {
	events []GameEvent
}

func (r *recorder) OnEvent(event GameEvent) {
	r.events = append(r.events, event)
}

func (r *recorder) takes() []TakeEvent {
	var out []TakeEvent
	for _, ev := range r.events {
		if take, ok := ev.(TakeEvent); ok {
			out = append(out, take)
		}
	}
	return out
}

func (r *recorder) count(t EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.EventType() == t {
			n++
		}
	}
	return n
}

// stubborn always passes, even with no chips left
type stubborn struct{}

func (stubborn) Decide(strategy.Offer, strategy.View) (strategy.Decision, error) {
	return strategy.Pass("never"), nil
}

var errBroken = errors.New("broken strategy")

// failing returns an error on its nth decision
type failing struct {
	after int
	calls int
}

func (f *failing) Decide(strategy.Offer, strategy.View) (strategy.Decision, error) {
	f.calls++
	if f.calls > f.after {
		return strategy.Decision{}, errBroken
	}
	return strategy.Take("fine"), nil
}

// countingShuffler records whether setup got as far as randomizing
type countingShuffler struct {
	Shuffler
	calls int
}

func (c *countingShuffler) ShuffleCards(cards []deck.Card) {
	c.calls++
	c.Shuffler.ShuffleCards(cards)
}

func newPlayers(s strategy.Strategy, names ...string) []*Player {
	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = NewPlayer(name, s)
	}
	return players
}

func fixed(t *testing.T, starter int, order ...deck.Card) *FixedShuffler {
	t.Helper()
	s, err := NewFixedShuffler(order, starter)
	require.NoError(t, err)
	return s
}

func rangeRules(minCard, maxCard, burn, chips int) Rules {
	return Rules{MinCard: minCard, MaxCard: maxCard, Burn: burn}.WithChips(chips)
}
