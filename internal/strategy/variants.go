package strategy

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/nothanks/internal/deck"
)

// AlwaysTake takes every card it is offered.
type AlwaysTake struct{}

func (AlwaysTake) Decide(Offer, View) (Decision, error) {
	return Take("always take"), nil
}

func (AlwaysTake) String() string { return string(KindAlwaysTake) }

// AlwaysPass passes while it has chips and takes only when forced.
type AlwaysPass struct{}

func (AlwaysPass) Decide(_ Offer, self View) (Decision, error) {
	if self.Chips() > 0 {
		return Pass("always pass"), nil
	}
	return Take("out of chips"), nil
}

func (AlwaysPass) String() string { return string(KindAlwaysPass) }

// CostThreshold takes when the effective cost of the card is at most MaxCost.
// The cost is the face value less the chips on it; a free card also has its
// face value removed.
type CostThreshold struct {
	MaxCost int
}

// Cost returns the effective penalty of taking offer for self.
func (s CostThreshold) Cost(offer Offer, self View) int {
	cost := int(offer.Card) - offer.ChipsOnCard
	if self.IsFree(offer.Card) {
		cost -= int(offer.Card)
	}
	return cost
}

func (s CostThreshold) Decide(offer Offer, self View) (Decision, error) {
	cost := s.Cost(offer, self)
	if cost <= s.MaxCost {
		return Take(fmt.Sprintf("cost %d <= %d", cost, s.MaxCost)), nil
	}
	return Pass(fmt.Sprintf("cost %d > %d", cost, s.MaxCost)), nil
}

func (s CostThreshold) String() string {
	return fmt.Sprintf("%s(max_cost=%d)", KindCostThreshold, s.MaxCost)
}

// ProximityTake takes when it already holds a card in
// [card-Distance, card+Distance). The upper bound is excluded.
type ProximityTake struct {
	Distance int
}

func (s ProximityTake) Decide(offer Offer, self View) (Decision, error) {
	for i := -s.Distance; i < s.Distance; i++ {
		near := offer.Card + deck.Card(i)
		if self.Holds(near) {
			return Take(fmt.Sprintf("holds %d", near)), nil
		}
	}
	return Pass(fmt.Sprintf("nothing within %d", s.Distance)), nil
}

func (s ProximityTake) String() string {
	return fmt.Sprintf("%s(distance=%d)", KindProximity, s.Distance)
}

// RandomChoice takes with probability one half.
type RandomChoice struct {
	rng *rand.Rand
}

// NewRandomChoice creates a RandomChoice drawing from rng. Each trial worker
// needs its own rng; *rand.Rand is not safe for concurrent use.
func NewRandomChoice(rng *rand.Rand) (*RandomChoice, error) {
	if rng == nil {
		return nil, errors.New("random strategy requires a random source")
	}
	return &RandomChoice{rng: rng}, nil
}

func (s *RandomChoice) Decide(Offer, View) (Decision, error) {
	if s.rng.IntN(2) == 0 {
		return Take("coin flip"), nil
	}
	return Pass("coin flip"), nil
}

func (s *RandomChoice) String() string { return string(KindRandom) }
