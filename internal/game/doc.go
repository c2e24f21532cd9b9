// Package game implements the No Thanks round engine.
//
// The main type is Engine, which owns the deck, the chips riding on the
// exposed card and the seating order, and drives one round through
// Setup, Playing, Scoring and Cleanup. Players are reused across rounds;
// their chips and cards are reset at the start of every round and their
// cards are cleared again when the round ends.
//
// # Basic Usage
//
//	players := []*game.Player{
//	    game.NewPlayer("Alice", strategy.CostThreshold{MaxCost: 10}),
//	    game.NewPlayer("Bob", strategy.ProximityTake{Distance: 2}),
//	    game.NewPlayer("Carol", strategy.AlwaysPass{}),
//	}
//	engine := game.NewEngine(game.DefaultRules(), players,
//	    game.NewRandomShuffler(randutil.New(42)))
//	result, err := engine.PlayRound(true)
//
// # Deterministic Testing
//
// Every random choice goes through the Shuffler. Inject a FixedShuffler to
// play a known deck order from a known starting seat:
//
//	shuffler, _ := game.NewFixedShuffler([]deck.Card{5, 3, 8, 4, 10, 6, 9, 7}, 0)
//
// # Tracing
//
// PlayRound(false) publishes RoundStartEvent, BurnEvent, PassEvent, TakeEvent
// and RoundEndEvent to the engine's EventBus. PlayRound(true) publishes nothing.
package game
