package deck

import (
	"errors"
	"fmt"
)

// ErrNotEnoughCards is returned when a burn would leave no card to play.
var ErrNotEnoughCards = errors.New("not enough cards")

// Deck represents the ordered draw pile. The top of the deck is index 0.
type Deck struct {
	cards []Card
}

// NewRange creates an unshuffled deck holding every value in [minVal, maxVal].
// An inverted range yields an empty deck.
func NewRange(minVal, maxVal int) *Deck {
	d := &Deck{}
	d.Reset(minVal, maxVal)
	return d
}

// NewFromCards creates a deck in exactly the given order.
func NewFromCards(cards []Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// Reset refills the deck with [minVal, maxVal] in ascending order, reusing capacity.
func (d *Deck) Reset(minVal, maxVal int) {
	d.cards = d.cards[:0]
	for v := minVal; v <= maxVal; v++ {
		d.cards = append(d.cards, Card(v))
	}
}

// Shuffle hands the underlying slice to order so the caller's source of
// randomness decides the permutation.
func (d *Deck) Shuffle(order func(cards []Card)) {
	order(d.cards)
}

// Burn removes n cards from the top of the deck. It refuses to burn if fewer
// than n+1 cards remain, so at least one card is always left to play.
func (d *Deck) Burn(n int) ([]Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot burn %d cards", n)
	}
	if n >= len(d.cards) {
		return nil, fmt.Errorf("%w: burning %d of %d leaves nothing to play", ErrNotEnoughCards, n, len(d.cards))
	}

	burned := make([]Card, n)
	copy(burned, d.cards[:n])
	d.cards = d.cards[n:]
	return burned, nil
}

// Draw removes and returns the top card from the deck
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return 0, false
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards, top first.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
