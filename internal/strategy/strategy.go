// Package strategy holds the take-or-pass decision policies players use.
//
// A Strategy sees only the offered card, the chips riding on it, how many
// cards are left, and its own player's hand and chips. It never sees other
// hands or the contents of the deck.
package strategy

import (
	"github.com/lox/nothanks/internal/deck"
)

// Offer is the public state of the exposed card when a player must act.
type Offer struct {
	Card        deck.Card
	ChipsOnCard int
	CardsLeft   int // cards still in the deck, not counting Card
}

// View is the acting player's read-only view of their own state.
type View interface {
	Chips() int
	Holds(c deck.Card) bool
	IsFree(c deck.Card) bool
	Cards() []deck.Card
}

// Decision is a strategy's answer for one offer.
type Decision struct {
	Take      bool
	Reasoning string // Human-readable explanation
}

// Strategy decides whether to take the offered card.
// Implementations must be deterministic given their inputs and any random
// source they were constructed with.
type Strategy interface {
	Decide(offer Offer, self View) (Decision, error)
}

// Take returns a taking decision
func Take(reasoning string) Decision {
	return Decision{Take: true, Reasoning: reasoning}
}

// Pass returns a passing decision
func Pass(reasoning string) Decision {
	return Decision{Take: false, Reasoning: reasoning}
}
