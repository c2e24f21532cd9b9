package game

import (
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/lox/nothanks/internal/deck"
	"github.com/lox/nothanks/internal/randutil"
)

// Shuffler makes every random choice of a round's setup.
type Shuffler interface {
	ShuffleCards(cards []deck.Card)
	ShuffleSeats(seats []*Player)
	PickStarter(players int) int
}

// DealChecker is implemented by shufflers whose choices are fixed in advance.
// The engine calls Check during setup, before the deck is built.
type DealChecker interface {
	Check(rules Rules, players int) error
}

// RandomShuffler draws from a seeded source with a full Fisher-Yates pass.
type RandomShuffler struct {
	rng *rand.Rand
}

// NewRandomShuffler creates a shuffler backed by rng. It panics on nil; a
// hidden global source would make rounds impossible to reproduce.
func NewRandomShuffler(rng *rand.Rand) *RandomShuffler {
	if rng == nil {
		panic("rng is required for shuffling")
	}
	return &RandomShuffler{rng: rng}
}

func (s *RandomShuffler) ShuffleCards(cards []deck.Card) {
	randutil.Shuffle(s.rng, len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

func (s *RandomShuffler) ShuffleSeats(seats []*Player) {
	randutil.Shuffle(s.rng, len(seats), func(i, j int) { seats[i], seats[j] = seats[j], seats[i] })
}

func (s *RandomShuffler) PickStarter(players int) int {
	return s.rng.IntN(players)
}

// FixedShuffler replays a known deck order from a known seat. Seating is
// left as given. Used for replays and tests.
type FixedShuffler struct {
	order   []deck.Card
	starter int
}

// NewFixedShuffler creates a shuffler that always deals order, top first.
func NewFixedShuffler(order []deck.Card, starter int) (*FixedShuffler, error) {
	if starter < 0 {
		return nil, fmt.Errorf("starting seat must not be negative, got %d", starter)
	}
	return &FixedShuffler{order: slices.Clone(order), starter: starter}, nil
}

// Check reports whether the fixed order is a permutation of the rules' deck
// and the starting seat exists.
func (s *FixedShuffler) Check(rules Rules, players int) error {
	if len(s.order) != rules.DeckSize() {
		return fmt.Errorf("%w: deck order has %d cards, rules need %d", ErrInvalidDeal, len(s.order), rules.DeckSize())
	}
	sorted := slices.Clone(s.order)
	slices.Sort(sorted)
	for i, c := range sorted {
		if int(c) != rules.MinCard+i {
			return fmt.Errorf("%w: deck order is not a permutation of %d-%d", ErrInvalidDeal, rules.MinCard, rules.MaxCard)
		}
	}
	if s.starter >= players {
		return fmt.Errorf("%w: starting seat %d out of range for %d players", ErrInvalidDeal, s.starter, players)
	}
	return nil
}

// ShuffleCards copies the fixed order over cards. The engine has already
// checked the order against the rules, so lengths match.
func (s *FixedShuffler) ShuffleCards(cards []deck.Card) {
	if len(cards) == len(s.order) {
		copy(cards, s.order)
	}
}

func (s *FixedShuffler) ShuffleSeats([]*Player) {}

func (s *FixedShuffler) PickStarter(players int) int {
	return s.starter % players
}
