package game

import (
	"strings"

	"github.com/lox/nothanks/internal/deck"
)

// Standing is one player's final position in a round.
type Standing struct {
	Name     string
	Strategy string
	Seat     int
	Score    int
	Chips    int
	Cards    []deck.Card
	Hand     string // cards rendered as runs
}

// Result is the outcome of one round.
type Result struct {
	RoundID   string
	Burned    []deck.Card
	Turns     int
	Standings []Standing // ascending by score, ties in seat order
	Winners   []string   // names tied for the lowest score, sorted
}

// Key identifies the winner set, e.g. "Alice, Bob".
func (r *Result) Key() string {
	return WinnerKey(r.Winners)
}

// BestScore returns the winning score
func (r *Result) BestScore() int {
	if len(r.Standings) == 0 {
		return 0
	}
	return r.Standings[0].Score
}

// IsWinner reports whether name is in the winner set
func (r *Result) IsWinner(name string) bool {
	for _, w := range r.Winners {
		if w == name {
			return true
		}
	}
	return false
}

// WinnerKey joins sorted winner names the way tallies key them.
func WinnerKey(names []string) string {
	return strings.Join(names, ", ")
}
