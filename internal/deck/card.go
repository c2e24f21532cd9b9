package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// Card is a numbered No Thanks card. Its face value is its score penalty.
type Card int

// String returns the string representation of a card
func (c Card) String() string {
	return strconv.Itoa(int(c))
}

// Prev returns the card one below c, the card that makes c free.
func (c Card) Prev() Card {
	return c - 1
}

// ParseCards parses a comma or space separated list of card values,
// e.g. "5,3,8,4" or "5 3 8 4".
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no cards in %q", s)
	}

	cards := make([]Card, 0, len(fields))
	seen := make(map[Card]bool, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid card %q: %w", f, err)
		}
		c := Card(v)
		if seen[c] {
			return nil, fmt.Errorf("duplicate card %d", v)
		}
		seen[c] = true
		cards = append(cards, c)
	}
	return cards, nil
}

// FormatCards joins cards with single spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Sum returns the total face value of cards
func Sum(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += int(c)
	}
	return total
}
