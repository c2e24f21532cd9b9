package strategy

import (
	"testing"

	"github.com/lox/nothanks/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuildsEveryKind(t *testing.T) {
	rng := randutil.New(1)
	for _, info := range Kinds() {
		t.Run(string(info.Kind), func(t *testing.T) {
			s, err := New(Spec{Kind: info.Kind, MaxCost: 5, Distance: 2}, rng)
			require.NoError(t, err)
			require.NotNil(t, s)
		})
	}
}

func TestNewCarriesParams(t *testing.T) {
	s, err := New(Spec{Kind: KindCostThreshold, MaxCost: 15}, nil)
	require.NoError(t, err)
	assert.Equal(t, CostThreshold{MaxCost: 15}, s)

	s, err = New(Spec{Kind: KindProximity, Distance: 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, ProximityTake{Distance: 3}, s)
}

func TestNewErrors(t *testing.T) {
	_, err := New(Spec{Kind: "bluff"}, nil)
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = New(Spec{Kind: KindProximity, Distance: -1}, nil)
	assert.ErrorIs(t, err, ErrInvalidParam)

	_, err = New(Spec{Kind: KindRandom}, nil)
	assert.Error(t, err)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Cost-Threshold")
	require.NoError(t, err)
	assert.Equal(t, KindCostThreshold, k)

	_, err = ParseKind("fold")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestValidateAgreesWithNew(t *testing.T) {
	raw := Spec{Kind: Kind("Cost-Threshold"), MaxCost: 15}

	assert.ErrorIs(t, raw.Validate(), ErrUnknownKind)
	_, err := New(raw, nil)
	assert.ErrorIs(t, err, ErrUnknownKind)

	kind, err := ParseKind(string(raw.Kind))
	require.NoError(t, err)
	canonical := Spec{Kind: kind, MaxCost: 15}
	require.NoError(t, canonical.Validate())
	s, err := New(canonical, nil)
	require.NoError(t, err)
	assert.Equal(t, CostThreshold{MaxCost: 15}, s)
}

func TestSpecString(t *testing.T) {
	assert.Equal(t, "cost_threshold(max_cost=15)", Spec{Kind: KindCostThreshold, MaxCost: 15}.String())
	assert.Equal(t, "proximity(distance=2)", Spec{Kind: KindProximity, Distance: 2}.String())
	assert.Equal(t, "always_pass", Spec{Kind: KindAlwaysPass}.String())
}
