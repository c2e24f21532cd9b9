package game

import (
	"fmt"

	"github.com/lox/nothanks/internal/deck"
	"github.com/lox/nothanks/internal/strategy"
)

// Player is a seat at the table: a name, a strategy, and the cards and chips
// accumulated during the current round.
type Player struct {
	name     string
	strategy strategy.Strategy
	hand     *deck.Hand
	chips    int
}

// NewPlayer creates a player with an empty hand and no chips.
// Chips are dealt when a round starts.
func NewPlayer(name string, s strategy.Strategy) *Player {
	return &Player{
		name:     name,
		strategy: s,
		hand:     deck.NewHand(),
	}
}

// Name returns the player's display name
func (p *Player) Name() string { return p.name }

// Strategy returns the player's decision policy
func (p *Player) Strategy() strategy.Strategy { return p.strategy }

// StrategyName describes the strategy for reports
func (p *Player) StrategyName() string {
	if s, ok := p.strategy.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", p.strategy)
}

// Chips returns the player's chip balance
func (p *Player) Chips() int { return p.chips }

// Holds reports whether the player has taken c
func (p *Player) Holds(c deck.Card) bool { return p.hand.Holds(c) }

// IsFree reports whether c would extend one of the player's runs
func (p *Player) IsFree(c deck.Card) bool { return p.hand.IsFree(c) }

// Cards returns the held cards in ascending order
func (p *Player) Cards() []deck.Card { return p.hand.Cards() }

// Hand renders the held cards as runs
func (p *Player) Hand() string { return p.hand.String() }

// TakeCard adds card to the hand and the chips riding on it to the balance.
func (p *Player) TakeCard(card deck.Card, chipsOnCard int) (TakeEvent, error) {
	if !p.hand.Add(card) {
		return TakeEvent{}, fmt.Errorf("%w: %s already holds %d", ErrCardAlreadyHeld, p.name, card)
	}
	p.chips += chipsOnCard
	return TakeEvent{
		Player:      p.name,
		Card:        card,
		ChipsOnCard: chipsOnCard,
		ChipsAfter:  p.chips,
	}, nil
}

// pay moves one chip from the player onto the exposed card.
func (p *Player) pay() {
	p.chips--
}

// Score is the sum of held cards that are not free, less chips. Lower is better.
func (p *Player) Score() int {
	return p.hand.Penalty() - p.chips
}

func (p *Player) reset(chips int) {
	p.hand.Clear()
	p.chips = chips
}

func (p *Player) clearCards() {
	p.hand.Clear()
}
