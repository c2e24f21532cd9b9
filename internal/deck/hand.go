package deck

import (
	"slices"
	"strings"
)

// Hand is the set of cards a player has taken. A card value appears at most once.
type Hand struct {
	held map[Card]struct{}
}

// NewHand returns an empty hand
func NewHand() *Hand {
	return &Hand{held: make(map[Card]struct{})}
}

// Add puts c into the hand. It reports false if c was already held.
func (h *Hand) Add(c Card) bool {
	if _, ok := h.held[c]; ok {
		return false
	}
	h.held[c] = struct{}{}
	return true
}

// Holds reports whether c is in the hand
func (h *Hand) Holds(c Card) bool {
	_, ok := h.held[c]
	return ok
}

// IsFree reports whether c costs nothing for this hand: the card directly
// below it is already held, so c only extends a run.
func (h *Hand) IsFree(c Card) bool {
	return h.Holds(c.Prev())
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.held)
}

// Clear empties the hand, keeping the allocation.
func (h *Hand) Clear() {
	clear(h.held)
}

// Cards returns the held cards in ascending order
func (h *Hand) Cards() []Card {
	out := make([]Card, 0, len(h.held))
	for c := range h.held {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// Penalty is the sum of every held card that is not free. Only the lowest
// card of each run counts.
func (h *Hand) Penalty() int {
	total := 0
	for c := range h.held {
		if !h.IsFree(c) {
			total += int(c)
		}
	}
	return total
}

// Runs groups the held cards into maximal runs of consecutive values.
func (h *Hand) Runs() [][]Card {
	var runs [][]Card
	for _, c := range h.Cards() {
		if n := len(runs); n > 0 && runs[n-1][len(runs[n-1])-1] == c.Prev() {
			runs[n-1] = append(runs[n-1], c)
			continue
		}
		runs = append(runs, []Card{c})
	}
	return runs
}

// String renders runs compactly, e.g. "3-5 9 12-13".
func (h *Hand) String() string {
	runs := h.Runs()
	parts := make([]string, len(runs))
	for i, run := range runs {
		if len(run) == 1 {
			parts[i] = run[0].String()
			continue
		}
		parts[i] = run[0].String() + "-" + run[len(run)-1].String()
	}
	return strings.Join(parts, " ")
}
