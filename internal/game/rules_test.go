package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartingChips(t *testing.T) {
	tests := []struct {
		players int
		want    int
	}{
		{2, 7},
		{3, 11},
		{4, 11},
		{5, 11},
		{6, 9},
		{7, 7},
		{8, 7},
	}

	rules := DefaultRules()
	for _, tt := range tests {
		assert.Equal(t, tt.want, rules.StartingChips(tt.players), "%d players", tt.players)
	}
}

func TestStartingChipsOverride(t *testing.T) {
	rules := DefaultRules().WithChips(5)
	assert.Equal(t, 5, rules.StartingChips(3))
	assert.Equal(t, 5, rules.StartingChips(9))

	zero := DefaultRules().WithChips(0)
	assert.Equal(t, 0, zero.StartingChips(4), "an explicit zero is still an override")
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name  string
		rules Rules
		want  error
	}{
		{name: "default", rules: DefaultRules()},
		{name: "single card", rules: Rules{MinCard: 4, MaxCard: 4}},
		{name: "inverted range", rules: Rules{MinCard: 10, MaxCard: 3}, want: ErrInvalidCardRange},
		{name: "burn all", rules: Rules{MinCard: 3, MaxCard: 10, Burn: 8}, want: ErrBurnTooLarge},
		{name: "burn all but one", rules: Rules{MinCard: 3, MaxCard: 10, Burn: 7}},
		{name: "negative burn", rules: Rules{MinCard: 3, MaxCard: 10, Burn: -1}, want: ErrNegativeBurn},
		{name: "negative chips", rules: DefaultRules().WithChips(-1), want: ErrNegativeChips},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rules.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDeckSize(t *testing.T) {
	assert.Equal(t, 33, DefaultRules().DeckSize())
	assert.Equal(t, 0, Rules{MinCard: 5, MaxCard: 4}.DeckSize())
}

func TestRulesString(t *testing.T) {
	assert.Equal(t, "cards 3-35, burn 9, chips table", DefaultRules().String())
	assert.Equal(t, "cards 3-35, burn 9, chips 7", DefaultRules().WithChips(7).String())
}
