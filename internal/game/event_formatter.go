package game

import (
	"fmt"
	"strings"

	"github.com/lox/nothanks/internal/deck"
)

// FormattingOptions controls how events are rendered as text
type FormattingOptions struct {
	ShowReasonings bool // Include strategy reasoning
	ShowPasses     bool // One line per pass instead of a dot
	ShowTimestamps bool // Prefix lines with the event time
}

// TimestampLayout is the time format used by ShowTimestamps
const TimestampLayout = "15:04:05.000"

// EventFormatter turns round events into human-readable lines
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	return &EventFormatter{opts: opts}
}

// Format renders any event; unknown events render as their type. Pass dots
// never carry a timestamp.
func (ef *EventFormatter) Format(event GameEvent) string {
	text := ef.format(event)
	if !ef.opts.ShowTimestamps {
		return text
	}
	if _, pass := event.(PassEvent); pass && !ef.opts.ShowPasses {
		return text
	}
	return event.Timestamp().Format(TimestampLayout) + " " + text
}

func (ef *EventFormatter) format(event GameEvent) string {
	switch ev := event.(type) {
	case BurnEvent:
		return ef.FormatBurn(ev)
	case RoundStartEvent:
		return ef.FormatRoundStart(ev)
	case PassEvent:
		return ef.FormatPass(ev)
	case TakeEvent:
		return ef.FormatTake(ev)
	case RoundEndEvent:
		return ef.FormatRoundEnd(ev)
	default:
		return event.EventType().String()
	}
}

// FormatBurn formats the burned cards
func (ef *EventFormatter) FormatBurn(ev BurnEvent) string {
	if len(ev.Cards) == 0 {
		return "Burns: none"
	}
	return "Burns: " + deck.FormatCards(ev.Cards)
}

// FormatRoundStart formats the seating and deck size
func (ef *EventFormatter) FormatRoundStart(ev RoundStartEvent) string {
	return fmt.Sprintf("Playing with %d players and %d cards! Seats: %s. %s starts on %d.",
		len(ev.Seats), ev.Cards, strings.Join(ev.Seats, ", "), ev.Starter, ev.FirstCard)
}

// FormatPass formats a pass. Without ShowPasses a pass is a single dot so
// long passing streaks stay on one line.
func (ef *EventFormatter) FormatPass(ev PassEvent) string {
	if !ef.opts.ShowPasses {
		return "."
	}
	line := fmt.Sprintf("%s passes on %d (%d on card, %d left)", ev.Player, ev.Card, ev.ChipsOnCard, ev.ChipsLeft)
	return ef.withReasoning(line, ev.Reasoning)
}

// FormatTake formats a take
func (ef *EventFormatter) FormatTake(ev TakeEvent) string {
	line := fmt.Sprintf("%s took %d with %d chips!", ev.Player, ev.Card, ev.ChipsOnCard)
	if ev.Forced {
		line += " (forced)"
	}
	return ef.withReasoning(line, ev.Reasoning)
}

// FormatRoundEnd formats the score table and winners, one standing per line
func (ef *EventFormatter) FormatRoundEnd(ev RoundEndEvent) string {
	var b strings.Builder
	b.WriteString("Scores:\n")
	for _, s := range ev.Result.Standings {
		fmt.Fprintf(&b, "%d | %s (%d chips) [%s]\n", s.Score, s.Name, s.Chips, s.Hand)
	}
	b.WriteString("Winners: " + ev.Result.Key())
	return b.String()
}

func (ef *EventFormatter) withReasoning(line, reasoning string) string {
	if ef.opts.ShowReasonings && reasoning != "" {
		return line + " - " + reasoning
	}
	return line
}
