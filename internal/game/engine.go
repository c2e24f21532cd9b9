package game

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/lox/nothanks/internal/deck"
	"github.com/lox/nothanks/internal/strategy"
)

// Phase is the engine's position in the round state machine
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSetup
	PhasePlaying
	PhaseScoring
	PhaseCleanup
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSetup:
		return "setup"
	case PhasePlaying:
		return "playing"
	case PhaseScoring:
		return "scoring"
	case PhaseCleanup:
		return "cleanup"
	default:
		return "unknown"
	}
}

// EngineOption configures an Engine during creation.
type EngineOption func(*Engine)

// WithLogger sets the engine's logger. The default discards everything.
func WithLogger(logger *log.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger.WithPrefix("engine")
	}
}

// WithSubscriber subscribes s to the engine's event bus.
func WithSubscriber(s EventSubscriber) EngineOption {
	return func(e *Engine) {
		e.bus.Subscribe(s)
	}
}

// WithClock sets the clock used to timestamp events.
func WithClock(clock quartz.Clock) EngineOption {
	return func(e *Engine) {
		e.clock = clock
	}
}

// WithRoundIDs replaces the round ID generator.
func WithRoundIDs(next func() string) EngineOption {
	return func(e *Engine) {
		e.nextID = next
	}
}

// Engine plays rounds of No Thanks for a fixed roster. It is not safe for
// concurrent use; run one engine per goroutine.
type Engine struct {
	rules    Rules
	seats    []*Player
	shuffler Shuffler
	logger   *log.Logger
	bus      *SimpleEventBus
	clock    quartz.Clock
	nextID   func() string

	// Round state, rebuilt by setup
	phase       Phase
	silent      bool
	roundID     string
	deck        *deck.Deck
	current     deck.Card
	chipsOnCard int
	turn        int
	turns       int
	chipTotal   int
	burned      []deck.Card
}

// NewEngine creates an engine for players under rules. Configuration is
// validated when each round starts, so rules and roster can be adjusted with
// SetRules and SetPlayers between rounds.
func NewEngine(rules Rules, players []*Player, shuffler Shuffler, opts ...EngineOption) *Engine {
	if shuffler == nil {
		panic("shuffler is required for engine creation")
	}

	e := &Engine{
		rules:    rules,
		seats:    slices.Clone(players),
		shuffler: shuffler,
		logger:   log.New(io.Discard),
		bus:      NewEventBus(),
		clock:    quartz.NewReal(),
		nextID:   uuid.NewString,
		deck:     &deck.Deck{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Rules returns the current rules
func (e *Engine) Rules() Rules { return e.rules }

// SetRules replaces the rules used from the next round on
func (e *Engine) SetRules(rules Rules) { e.rules = rules }

// Players returns the roster in current seating order
func (e *Engine) Players() []*Player { return slices.Clone(e.seats) }

// SetPlayers replaces the roster used from the next round on
func (e *Engine) SetPlayers(players []*Player) { e.seats = slices.Clone(players) }

// Phase returns where the engine is in the round state machine
func (e *Engine) Phase() Phase { return e.phase }

// EventBus returns the bus trace events are published on
func (e *Engine) EventBus() EventBus { return e.bus }

// Validate checks the rules and roster without touching any state.
func (e *Engine) Validate() error {
	if len(e.seats) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewPlayers, len(e.seats))
	}
	seen := make(map[string]bool, len(e.seats))
	for _, p := range e.seats {
		if p == nil || p.strategy == nil {
			return ErrNilStrategy
		}
		if seen[p.name] {
			return fmt.Errorf("%w: %q", ErrDuplicatePlayer, p.name)
		}
		seen[p.name] = true
	}
	return e.rules.Validate()
}

// PlayRound plays one complete round and returns its result. When silent is
// false every step is published on the event bus. Player cards are cleared
// before PlayRound returns, whether or not the round completed.
func (e *Engine) PlayRound(silent bool) (*Result, error) {
	e.silent = silent
	defer e.cleanup()

	if err := e.setup(); err != nil {
		return nil, err
	}
	if err := e.play(); err != nil {
		return nil, err
	}
	return e.score(), nil
}

func (e *Engine) setup() error {
	e.phase = PhaseSetup

	if err := e.Validate(); err != nil {
		return err
	}
	if checker, ok := e.shuffler.(DealChecker); ok {
		if err := checker.Check(e.rules, len(e.seats)); err != nil {
			return err
		}
	}

	chips := e.rules.StartingChips(len(e.seats))
	for _, p := range e.seats {
		p.reset(chips)
	}
	e.chipTotal = chips * len(e.seats)

	e.deck.Reset(e.rules.MinCard, e.rules.MaxCard)
	e.deck.Shuffle(e.shuffler.ShuffleCards)
	e.shuffler.ShuffleSeats(e.seats)

	burned, err := e.deck.Burn(e.rules.Burn)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBurnTooLarge, err)
	}
	e.burned = burned

	first, ok := e.deck.Draw()
	if !ok {
		return errors.New("deck empty after burning")
	}
	e.current = first
	e.chipsOnCard = 0
	e.turns = 0

	e.turn = e.shuffler.PickStarter(len(e.seats))
	if e.turn < 0 || e.turn >= len(e.seats) {
		return fmt.Errorf("starting seat %d out of range", e.turn)
	}

	e.roundID = e.nextID()

	e.logger.Debug("Round setup",
		"round", e.roundID,
		"players", len(e.seats),
		"chips", chips,
		"burned", len(burned),
		"cards", e.deck.CardsRemaining()+1,
		"starter", e.seats[e.turn].name)

	e.publish(BurnEvent{Cards: burned, timestamp: e.clock.Now()})
	e.publish(RoundStartEvent{
		RoundID:   e.roundID,
		Seats:     e.seatNames(),
		Starter:   e.seats[e.turn].name,
		ChipsEach: chips,
		Cards:     e.deck.CardsRemaining() + 1,
		FirstCard: first,
		timestamp: e.clock.Now(),
	})
	return nil
}

func (e *Engine) play() error {
	e.phase = PhasePlaying

	for {
		p := e.seats[e.turn]
		offer := strategy.Offer{
			Card:        e.current,
			ChipsOnCard: e.chipsOnCard,
			CardsLeft:   e.deck.CardsRemaining(),
		}

		decision, err := p.strategy.Decide(offer, p)
		if err != nil {
			return fmt.Errorf("%w: %s on card %d: %w", ErrStrategyFailed, p.name, e.current, err)
		}
		e.turns++

		if decision.Take || p.chips == 0 {
			ev, err := p.TakeCard(e.current, e.chipsOnCard)
			if err != nil {
				return err
			}
			ev.Forced = !decision.Take
			ev.Reasoning = decision.Reasoning
			ev.timestamp = e.clock.Now()

			e.logger.Debug("Take", "player", p.name, "card", e.current, "chips", e.chipsOnCard, "forced", ev.Forced)
			e.chipsOnCard = 0
			e.publish(ev)

			if err := e.checkChips(); err != nil {
				return err
			}

			next, ok := e.deck.Draw()
			if !ok {
				return nil
			}
			e.current = next
			continue
		}

		p.pay()
		e.chipsOnCard++
		e.logger.Debug("Pass", "player", p.name, "card", e.current, "chips_on_card", e.chipsOnCard)
		e.publish(PassEvent{
			Player:      p.name,
			Card:        e.current,
			ChipsOnCard: e.chipsOnCard,
			ChipsLeft:   p.chips,
			Reasoning:   decision.Reasoning,
			timestamp:   e.clock.Now(),
		})

		if err := e.checkChips(); err != nil {
			return err
		}
		e.advanceTurn()
	}
}

func (e *Engine) advanceTurn() {
	e.turn = (e.turn + 1) % len(e.seats)
}

// checkChips verifies that player chips plus the pot still add up to what
// was dealt.
func (e *Engine) checkChips() error {
	total := e.chipsOnCard
	for _, p := range e.seats {
		if p.chips < 0 {
			return fmt.Errorf("%w: %s has %d chips", ErrChipsNotConserved, p.name, p.chips)
		}
		total += p.chips
	}
	if total != e.chipTotal {
		return fmt.Errorf("%w: have %d, dealt %d", ErrChipsNotConserved, total, e.chipTotal)
	}
	return nil
}

func (e *Engine) score() *Result {
	e.phase = PhaseScoring

	standings := make([]Standing, len(e.seats))
	for i, p := range e.seats {
		standings[i] = Standing{
			Name:     p.name,
			Strategy: p.StrategyName(),
			Seat:     i,
			Score:    p.Score(),
			Chips:    p.chips,
			Cards:    p.Cards(),
			Hand:     p.Hand(),
		}
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score < standings[j].Score
	})

	best := standings[0].Score
	var winners []string
	for _, s := range standings {
		if s.Score != best {
			break
		}
		winners = append(winners, s.Name)
	}
	slices.Sort(winners)

	result := &Result{
		RoundID:   e.roundID,
		Burned:    e.burned,
		Turns:     e.turns,
		Standings: standings,
		Winners:   winners,
	}

	e.logger.Debug("Round complete", "round", e.roundID, "turns", e.turns, "winners", result.Key(), "score", best)
	e.publish(RoundEndEvent{Result: result, timestamp: e.clock.Now()})
	return result
}

func (e *Engine) cleanup() {
	e.phase = PhaseCleanup
	for _, p := range e.seats {
		if p != nil {
			p.clearCards()
		}
	}
	e.chipsOnCard = 0
	e.phase = PhaseIdle
}

func (e *Engine) publish(event GameEvent) {
	if e.silent {
		return
	}
	e.bus.Publish(event)
}

func (e *Engine) seatNames() []string {
	names := make([]string, len(e.seats))
	for i, p := range e.seats {
		names[i] = p.name
	}
	return names
}
