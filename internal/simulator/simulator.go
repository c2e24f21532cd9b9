package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/nothanks/internal/game"
	"github.com/lox/nothanks/internal/randutil"
	"github.com/lox/nothanks/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// DefaultProgressEvery matches the dot-per-thousand progress of the CLI.
const DefaultProgressEvery = 1000

// Progress is reported periodically while a batch runs
type Progress struct {
	Done    int
	Total   int
	Elapsed time.Duration
}

// Config holds configuration for running simulations
type Config struct {
	Rules   game.Rules
	Roster  []Entry
	Seed    int64
	Workers int // <= 1 runs trials sequentially on one engine

	ProgressEvery int
	OnProgress    func(Progress)

	Logger *log.Logger
	Clock  quartz.Clock
}

// Summary is the outcome of a batch
type Summary struct {
	Tally   *statistics.Tally
	Seed    int64
	Workers int
	Elapsed time.Duration
}

// TrialsPerSecond returns throughput over the whole batch
func (s *Summary) TrialsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Tally.Trials) / s.Elapsed.Seconds()
}

// Simulator runs batches of No Thanks rounds
type Simulator struct {
	config Config
	done   atomic.Int64
	total  int
	mu     sync.Mutex // serializes OnProgress
	start  time.Time
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.ProgressEvery <= 0 {
		config.ProgressEvery = DefaultProgressEvery
	}
	if config.Roster == nil {
		config.Roster = DefaultRoster()
	}
	return &Simulator{config: config}
}

// Run plays trials rounds and tallies the winner sets.
func (s *Simulator) Run(ctx context.Context, trials int) (*Summary, error) {
	if trials <= 0 {
		return nil, fmt.Errorf("trials must be positive, got %d", trials)
	}

	workers := s.config.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > trials {
		workers = trials
	}

	logger := s.config.Logger.WithPrefix("simulator")
	logger.Info("Starting simulation", "trials", trials, "players", len(s.config.Roster), "workers", workers, "seed", s.config.Seed, "rules", s.config.Rules)

	s.reset(trials)

	var (
		tally *statistics.Tally
		err   error
	)
	if workers == 1 {
		var engine *game.Engine
		engine, err = BuildEngine(s.config.Rules, s.config.Roster, s.config.Seed, randutil.New, game.WithLogger(s.config.Logger))
		if err != nil {
			return nil, err
		}
		tally, err = s.runEngine(ctx, engine, trials)
	} else {
		tally, err = s.runParallel(ctx, trials, workers)
	}
	if err != nil {
		return nil, err
	}

	if err := tally.Validate(); err != nil {
		return nil, fmt.Errorf("tally validation failed: %w", err)
	}

	summary := &Summary{
		Tally:   tally,
		Seed:    s.config.Seed,
		Workers: workers,
		Elapsed: s.config.Clock.Since(s.start),
	}
	logger.Info("Simulation complete", "trials", tally.Trials, "outcomes", len(tally.Outcomes), "elapsed", summary.Elapsed)
	return summary, nil
}

// RunEngine plays trials rounds on one engine, reusing its players, so the
// engine's rules and roster are used instead of the configured ones.
// Cancellation is checked between rounds.
func (s *Simulator) RunEngine(ctx context.Context, engine *game.Engine, trials int) (*statistics.Tally, error) {
	s.reset(trials)
	tally, err := s.runEngine(ctx, engine, trials)
	if err != nil {
		return nil, err
	}
	if err := tally.Validate(); err != nil {
		return nil, fmt.Errorf("tally validation failed: %w", err)
	}
	return tally, nil
}

func (s *Simulator) runEngine(ctx context.Context, engine *game.Engine, trials int) (*statistics.Tally, error) {
	tally := statistics.NewTally()
	for i := 0; i < trials; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := engine.PlayRound(true)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i+1, err)
		}
		tally.Add(result)
		s.tick()
	}
	return tally, nil
}

// runParallel splits trials across workers. Each worker owns an engine,
// players and random source seeded from the batch seed, and a partial tally.
func (s *Simulator) runParallel(ctx context.Context, trials, workers int) (*statistics.Tally, error) {
	partials := make([]*statistics.Tally, workers)
	perWorker := trials / workers
	remainder := trials % workers

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		n := perWorker
		if w < remainder {
			n++
		}
		seed := randutil.Derive(s.config.Seed, w)
		logger := s.config.Logger.With("worker", w)

		g.Go(func() error {
			engine, err := BuildEngine(s.config.Rules, s.config.Roster, seed, randutil.New, game.WithLogger(logger))
			if err != nil {
				return err
			}
			tally, err := s.runEngine(ctx, engine, n)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			partials[w] = tally
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := statistics.NewTally()
	for _, p := range partials {
		if p == nil {
			return nil, errors.New("worker finished without a tally")
		}
		merged.Merge(p)
	}
	return merged, nil
}

func (s *Simulator) reset(total int) {
	s.done.Store(0)
	s.total = total
	s.start = s.config.Clock.Now()
}

func (s *Simulator) tick() {
	done := int(s.done.Add(1))
	if s.config.OnProgress == nil {
		return
	}
	if done%s.config.ProgressEvery != 0 && done != s.total {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.config.OnProgress(Progress{
		Done:    done,
		Total:   s.total,
		Elapsed: s.config.Clock.Since(s.start),
	})
}
