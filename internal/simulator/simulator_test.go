package simulator

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/nothanks/internal/deck"
	"github.com/lox/nothanks/internal/game"
	"github.com/lox/nothanks/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Rules:  game.DefaultRules().WithChips(7),
		Roster: DefaultRoster(),
		Seed:   12345,
		Logger: log.New(io.Discard),
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	sim := New(Config{})
	assert.NotNil(t, sim.config.Logger)
	assert.NotNil(t, sim.config.Clock)
	assert.Equal(t, DefaultProgressEvery, sim.config.ProgressEvery)
	assert.Len(t, sim.config.Roster, 4)
}

func TestRun_SingleTrial(t *testing.T) {
	summary, err := New(testConfig()).Run(context.Background(), 1)
	require.NoError(t, err)

	tally := summary.Tally
	assert.Equal(t, 1, tally.Trials)
	require.Len(t, tally.Outcomes, 1)
	for _, n := range tally.Outcomes {
		assert.Equal(t, 1, n)
	}

	report := tally.Report(0.01)
	require.Len(t, report, 1)
	assert.InDelta(t, 1.0, report[0].Share, 1e-9)
}

func TestRun_Sequential(t *testing.T) {
	summary, err := New(testConfig()).Run(context.Background(), 500)
	require.NoError(t, err)

	assert.Equal(t, 500, summary.Tally.Trials)
	assert.Equal(t, 1, summary.Workers)
	require.NoError(t, summary.Tally.Validate())
	for _, entry := range DefaultRoster() {
		ps := summary.Tally.Player(entry.Name)
		require.NotNil(t, ps, entry.Name)
		assert.Equal(t, 500, ps.Scores.Count)
		assert.Equal(t, entry.Spec.String(), ps.Strategy)
	}
}

func TestRun_SameSeedSameTally(t *testing.T) {
	a, err := New(testConfig()).Run(context.Background(), 300)
	require.NoError(t, err)
	b, err := New(testConfig()).Run(context.Background(), 300)
	require.NoError(t, err)

	assert.Equal(t, a.Tally.Outcomes, b.Tally.Outcomes)

	cfg := testConfig()
	cfg.Seed = 54321
	c, err := New(cfg).Run(context.Background(), 300)
	require.NoError(t, err)
	assert.NotEqual(t, a.Tally.Outcomes, c.Tally.Outcomes)
}

func TestRun_Parallel(t *testing.T) {
	cfg := testConfig()
	cfg.Workers = 4

	summary, err := New(cfg).Run(context.Background(), 1001)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Workers)
	assert.Equal(t, 1001, summary.Tally.Trials)
	require.NoError(t, summary.Tally.Validate())

	again, err := New(cfg).Run(context.Background(), 1001)
	require.NoError(t, err)
	assert.Equal(t, summary.Tally.Outcomes, again.Tally.Outcomes, "per-worker seeds make parallel runs reproducible")
}

func TestRun_ParallelWithRandomStrategy(t *testing.T) {
	cfg := testConfig()
	cfg.Workers = 3
	cfg.Roster = append(DefaultRoster(), Entry{Name: "Coin", Spec: strategy.Spec{Kind: strategy.KindRandom}})

	summary, err := New(cfg).Run(context.Background(), 600)
	require.NoError(t, err)
	assert.Equal(t, 600, summary.Tally.Player("Coin").Scores.Count)
}

func TestRun_WorkersCappedByTrials(t *testing.T) {
	cfg := testConfig()
	cfg.Workers = 8

	summary, err := New(cfg).Run(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Workers)
	assert.Equal(t, 3, summary.Tally.Trials)
}

func TestRun_Errors(t *testing.T) {
	_, err := New(testConfig()).Run(context.Background(), 0)
	assert.Error(t, err)

	cfg := testConfig()
	cfg.Roster = []Entry{{Name: "solo", Spec: strategy.Spec{Kind: strategy.KindAlwaysTake}}}
	_, err = New(cfg).Run(context.Background(), 10)
	assert.ErrorIs(t, err, game.ErrTooFewPlayers)

	cfg = testConfig()
	cfg.Roster = []Entry{{Name: "a", Spec: strategy.Spec{Kind: "bluff"}}, {Name: "b", Spec: strategy.Spec{Kind: strategy.KindAlwaysTake}}}
	_, err = New(cfg).Run(context.Background(), 10)
	assert.ErrorIs(t, err, strategy.ErrUnknownKind)

	cfg = testConfig()
	cfg.Workers = 2
	cfg.Rules = game.Rules{MinCard: 3, MaxCard: 4, Burn: 5}
	_, err = New(cfg).Run(context.Background(), 10)
	assert.ErrorIs(t, err, game.ErrBurnTooLarge)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(testConfig()).Run(ctx, 100)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_ProgressUsesClock(t *testing.T) {
	clock := quartz.NewMock(t)
	var reports []Progress

	cfg := testConfig()
	cfg.Clock = clock
	cfg.ProgressEvery = 100
	cfg.OnProgress = func(p Progress) {
		reports = append(reports, p)
		clock.Advance(time.Second)
	}

	summary, err := New(cfg).Run(context.Background(), 250)
	require.NoError(t, err)

	require.Len(t, reports, 3)
	assert.Equal(t, Progress{Done: 100, Total: 250, Elapsed: 0}, reports[0])
	assert.Equal(t, Progress{Done: 200, Total: 250, Elapsed: time.Second}, reports[1])
	assert.Equal(t, Progress{Done: 250, Total: 250, Elapsed: 2 * time.Second}, reports[2])
	assert.Equal(t, 3*time.Second, summary.Elapsed)
	assert.InDelta(t, 250.0/3, summary.TrialsPerSecond(), 1e-9)
}

// Reusing one engine across trials must not leak cards between rounds.
func TestRunEngine_ReusesPlayers(t *testing.T) {
	players := []*game.Player{
		game.NewPlayer("A", strategy.AlwaysPass{}),
		game.NewPlayer("B", strategy.AlwaysPass{}),
		game.NewPlayer("C", strategy.AlwaysPass{}),
	}
	shuffler, err := game.NewFixedShuffler([]deck.Card{5, 3, 8, 4, 10, 6, 9, 7}, 0)
	require.NoError(t, err)
	engine := game.NewEngine(game.Rules{MinCard: 3, MaxCard: 10}.WithChips(5), players, shuffler)

	tally, err := New(testConfig()).RunEngine(context.Background(), engine, 50)
	require.NoError(t, err)

	// Same deal every trial, so a clean reset gives the same winner every time
	assert.Equal(t, map[string]int{"A": 50}, tally.Outcomes)
	assert.InDelta(t, -4, tally.Player("A").Scores.Mean(), 1e-9)
	assert.InDelta(t, 13, tally.Player("B").Scores.Mean(), 1e-9)
	assert.Zero(t, tally.Player("C").Scores.Variance())
	for _, p := range players {
		assert.Empty(t, p.Cards())
	}
}

func TestBuildPlayers(t *testing.T) {
	players, err := BuildPlayers(DefaultRoster(), nil)
	require.NoError(t, err)
	require.Len(t, players, 4)
	assert.Equal(t, "Val < 15", players[0].Name())
	assert.Equal(t, strategy.CostThreshold{MaxCost: 15}, players[0].Strategy())

	_, err = BuildPlayers([]Entry{{Name: "coin", Spec: strategy.Spec{Kind: strategy.KindRandom}}}, nil)
	assert.Error(t, err)
}
