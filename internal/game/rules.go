package game

import (
	"fmt"
)

const (
	// DefaultChips is used when the player count is not in the chip table.
	DefaultChips = 7
	// DefaultMinCard, DefaultMaxCard and DefaultBurn are the published game's values.
	DefaultMinCard = 3
	DefaultMaxCard = 35
	DefaultBurn    = 9
)

// chipTable maps player count to starting chips
var chipTable = map[int]int{
	3: 11,
	4: 11,
	5: 11,
	6: 9,
	7: 7,
}

// Rules is the adjustable configuration of a round.
type Rules struct {
	MinCard int
	MaxCard int
	Burn    int
	// ChipsPerPlayer overrides the chip table when set.
	ChipsPerPlayer *int
}

// DefaultRules returns the published game: cards 3 to 35, nine burned,
// starting chips from the table.
func DefaultRules() Rules {
	return Rules{
		MinCard: DefaultMinCard,
		MaxCard: DefaultMaxCard,
		Burn:    DefaultBurn,
	}
}

// WithChips returns a copy of r with a fixed chip allotment.
func (r Rules) WithChips(chips int) Rules {
	r.ChipsPerPlayer = &chips
	return r
}

// DeckSize returns the number of cards before burning
func (r Rules) DeckSize() int {
	if r.MinCard > r.MaxCard {
		return 0
	}
	return r.MaxCard - r.MinCard + 1
}

// StartingChips returns the chips each player starts a round with:
// the override, else the table entry, else DefaultChips.
func (r Rules) StartingChips(players int) int {
	if r.ChipsPerPlayer != nil {
		return *r.ChipsPerPlayer
	}
	if chips, ok := chipTable[players]; ok {
		return chips
	}
	return DefaultChips
}

// Validate checks the card range, burn count and chip override.
func (r Rules) Validate() error {
	if r.MinCard > r.MaxCard {
		return fmt.Errorf("%w: min %d > max %d", ErrInvalidCardRange, r.MinCard, r.MaxCard)
	}
	if r.Burn < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeBurn, r.Burn)
	}
	if r.Burn >= r.DeckSize() {
		return fmt.Errorf("%w: burning %d of %d cards", ErrBurnTooLarge, r.Burn, r.DeckSize())
	}
	if r.ChipsPerPlayer != nil && *r.ChipsPerPlayer < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeChips, *r.ChipsPerPlayer)
	}
	return nil
}

func (r Rules) String() string {
	chips := "table"
	if r.ChipsPerPlayer != nil {
		chips = fmt.Sprint(*r.ChipsPerPlayer)
	}
	return fmt.Sprintf("cards %d-%d, burn %d, chips %s", r.MinCard, r.MaxCard, r.Burn, chips)
}
