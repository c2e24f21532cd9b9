package game

import (
	"time"

	"github.com/lox/nothanks/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for round events
const (
	EventTypeRoundStart EventType = "round_start"
	EventTypeBurn       EventType = "burn"
	EventTypePass       EventType = "pass"
	EventTypeTake       EventType = "take"
	EventTypeRoundEnd   EventType = "round_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a round
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published once setup has finished
type RoundStartEvent struct {
	RoundID   string
	Seats     []string // seating order after shuffling
	Starter   string
	ChipsEach int
	Cards     int // cards in play after burning, including the first card
	FirstCard deck.Card
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// BurnEvent lists the cards removed before play. Players never see it.
type BurnEvent struct {
	Cards     []deck.Card
	timestamp time.Time
}

func (e BurnEvent) EventType() EventType { return EventTypeBurn }
func (e BurnEvent) Timestamp() time.Time { return e.timestamp }

// PassEvent is published when a player pays a chip onto the card
type PassEvent struct {
	Player      string
	Card        deck.Card
	ChipsOnCard int // after the pass
	ChipsLeft   int // player's chips after the pass
	Reasoning   string
	timestamp   time.Time
}

func (e PassEvent) EventType() EventType { return EventTypePass }
func (e PassEvent) Timestamp() time.Time { return e.timestamp }

// TakeEvent is published when a player takes the card and its chips
type TakeEvent struct {
	Player      string
	Card        deck.Card
	ChipsOnCard int
	ChipsAfter  int
	Forced      bool // strategy wanted to pass but the player had no chips
	Reasoning   string
	timestamp   time.Time
}

func (e TakeEvent) EventType() EventType { return EventTypeTake }
func (e TakeEvent) Timestamp() time.Time { return e.timestamp }

// RoundEndEvent carries the final standings
type RoundEndEvent struct {
	Result    *Result
	timestamp time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a function to EventSubscriber. Function values
// are not comparable, so a func subscriber cannot be unsubscribed.
type EventSubscriberFunc func(event GameEvent)

func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a synchronous in-memory event bus. Subscribers run on the
// engine's goroutine, in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
