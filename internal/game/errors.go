package game

import "errors"

// Configuration errors are reported by Setup before any card is shuffled.
var (
	ErrTooFewPlayers    = errors.New("at least 2 players required")
	ErrInvalidCardRange = errors.New("invalid card range")
	ErrBurnTooLarge     = errors.New("burn leaves no card to play")
	ErrNegativeBurn     = errors.New("burn count must not be negative")
	ErrNegativeChips    = errors.New("chips per player must not be negative")
	ErrDuplicatePlayer  = errors.New("duplicate player name")
	ErrNilStrategy      = errors.New("player has no strategy")
	ErrInvalidDeal      = errors.New("fixed deal does not match rules")
)

// Runtime errors abort the round in progress.
var (
	ErrChipsNotConserved = errors.New("chip total changed during round")
	ErrCardAlreadyHeld   = errors.New("card already held")
	ErrStrategyFailed    = errors.New("strategy failed")
)
