package strategy

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"strings"
)

var (
	// ErrUnknownKind is returned for a strategy kind that is not registered.
	ErrUnknownKind = errors.New("unknown strategy kind")
	// ErrInvalidParam is returned when a strategy parameter is out of range.
	ErrInvalidParam = errors.New("invalid strategy parameter")
)

// Kind names a built-in strategy
type Kind string

const (
	KindAlwaysTake    Kind = "always_take"
	KindAlwaysPass    Kind = "always_pass"
	KindCostThreshold Kind = "cost_threshold"
	KindProximity     Kind = "proximity"
	KindRandom        Kind = "random"
)

// Spec describes a strategy and its parameters. Only the fields used by Kind
// are read.
type Spec struct {
	Kind     Kind
	MaxCost  int // cost_threshold
	Distance int // proximity
}

func (s Spec) String() string {
	switch s.Kind {
	case KindCostThreshold:
		return fmt.Sprintf("%s(max_cost=%d)", s.Kind, s.MaxCost)
	case KindProximity:
		return fmt.Sprintf("%s(distance=%d)", s.Kind, s.Distance)
	default:
		return string(s.Kind)
	}
}

// Info describes a registered kind for listings.
type Info struct {
	Kind   Kind
	Params []string
	Help   string
}

var registry = []Info{
	{Kind: KindAlwaysTake, Help: "Take every card"},
	{Kind: KindAlwaysPass, Help: "Pass until out of chips"},
	{Kind: KindCostThreshold, Params: []string{"max_cost"}, Help: "Take when card minus chips (minus card if free) is at most max_cost"},
	{Kind: KindProximity, Params: []string{"distance"}, Help: "Take when holding a card in [card-distance, card+distance)"},
	{Kind: KindRandom, Help: "Take on a fair coin flip"},
}

// Kinds returns every registered strategy kind
func Kinds() []Info {
	out := make([]Info, len(registry))
	copy(out, registry)
	return out
}

// ParseKind resolves a kind name, accepting dashes in place of underscores.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_"))
	if !registered(k) {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

func registered(k Kind) bool {
	for _, info := range registry {
		if info.Kind == k {
			return true
		}
	}
	return false
}

// Validate checks the spec without building a strategy. Kind must already be
// in canonical form; use ParseKind for user input.
func (s Spec) Validate() error {
	if !registered(s.Kind) {
		return fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
	if s.Kind == KindProximity && s.Distance < 0 {
		return fmt.Errorf("%w: distance must not be negative, got %d", ErrInvalidParam, s.Distance)
	}
	return nil
}

// New builds the strategy described by spec. rng is only used by kinds that
// need randomness and may be nil otherwise.
func New(spec Spec, rng *rand.Rand) (Strategy, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	switch spec.Kind {
	case KindAlwaysTake:
		return AlwaysTake{}, nil
	case KindAlwaysPass:
		return AlwaysPass{}, nil
	case KindCostThreshold:
		return CostThreshold{MaxCost: spec.MaxCost}, nil
	case KindProximity:
		return ProximityTake{Distance: spec.Distance}, nil
	case KindRandom:
		return NewRandomChoice(rng)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
	}
}
