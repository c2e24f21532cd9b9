package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/nothanks/internal/game"
)

// DefaultMinShare hides winner sets that won less than 1% of trials.
const DefaultMinShare = 0.01

// PlayerStats tracks one player's results across trials
type PlayerStats struct {
	Name       string
	Strategy   string
	Wins       int     // trials won alone
	SharedWins int     // trials tied for first
	Equity     float64 // each win split evenly between tied winners
	Scores     Statistics
}

// WinRate returns the fraction of trials the player won or tied for
func (p *PlayerStats) WinRate() float64 {
	if p.Scores.Count == 0 {
		return 0
	}
	return float64(p.Wins+p.SharedWins) / float64(p.Scores.Count)
}

// EquityShare returns the player's split-win equity as a fraction of trials
func (p *PlayerStats) EquityShare() float64 {
	if p.Scores.Count == 0 {
		return 0
	}
	return p.Equity / float64(p.Scores.Count)
}

// Tally is the frequency table of winner sets over a batch of trials.
// It is not safe for concurrent use; parallel runs keep one per worker and
// Merge them afterwards.
type Tally struct {
	Trials   int
	Outcomes map[string]int // winner key -> trials
	players  map[string]*PlayerStats
}

// NewTally creates an empty tally
func NewTally() *Tally {
	return &Tally{
		Outcomes: make(map[string]int),
		players:  make(map[string]*PlayerStats),
	}
}

// Add records one round result
func (t *Tally) Add(result *game.Result) {
	t.Trials++
	t.Outcomes[result.Key()]++

	share := 1 / float64(len(result.Winners))
	for _, s := range result.Standings {
		ps := t.player(s.Name, s.Strategy)
		ps.Scores.Add(float64(s.Score))
		if !result.IsWinner(s.Name) {
			continue
		}
		if len(result.Winners) == 1 {
			ps.Wins++
		} else {
			ps.SharedWins++
		}
		ps.Equity += share
	}
}

// Merge folds other into t
func (t *Tally) Merge(other *Tally) {
	t.Trials += other.Trials
	for key, n := range other.Outcomes {
		t.Outcomes[key] += n
	}
	for name, theirs := range other.players {
		ps := t.player(name, theirs.Strategy)
		ps.Wins += theirs.Wins
		ps.SharedWins += theirs.SharedWins
		ps.Equity += theirs.Equity
		ps.Scores.Merge(&theirs.Scores)
	}
}

func (t *Tally) player(name, strategy string) *PlayerStats {
	ps, ok := t.players[name]
	if !ok {
		ps = &PlayerStats{Name: name, Strategy: strategy}
		t.players[name] = ps
	}
	return ps
}

// Players returns per-player stats, best equity first
func (t *Tally) Players() []*PlayerStats {
	out := make([]*PlayerStats, 0, len(t.players))
	for _, ps := range t.players {
		out = append(out, ps)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Equity != out[j].Equity {
			return out[i].Equity > out[j].Equity
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Player returns stats for name, or nil
func (t *Tally) Player(name string) *PlayerStats {
	return t.players[name]
}

// Entry is one row of a report
type Entry struct {
	Winners string
	Count   int
	Share   float64 // fraction of trials
}

// Percent returns Share as a percentage
func (e Entry) Percent() float64 {
	return e.Share * 100
}

// Report lists winner sets by count, most frequent first, omitting those
// below minShare of trials. Ties in count are ordered by key.
func (t *Tally) Report(minShare float64) []Entry {
	if t.Trials == 0 {
		return nil
	}
	entries := make([]Entry, 0, len(t.Outcomes))
	for key, n := range t.Outcomes {
		share := float64(n) / float64(t.Trials)
		if share < minShare {
			continue
		}
		entries = append(entries, Entry{Winners: key, Count: n, Share: share})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Winners < entries[j].Winners
	})
	return entries
}

// Omitted returns how many trials fall in winner sets hidden by minShare
func (t *Tally) Omitted(minShare float64) int {
	shown := 0
	for _, e := range t.Report(minShare) {
		shown += e.Count
	}
	return t.Trials - shown
}

// Validate checks that the tally accounts for every trial exactly once.
func (t *Tally) Validate() error {
	total := 0
	for _, n := range t.Outcomes {
		total += n
	}
	if total != t.Trials {
		return fmt.Errorf("outcome total (%d) does not match trials (%d)", total, t.Trials)
	}

	equity := 0.0
	for _, ps := range t.players {
		if ps.Scores.Count != t.Trials {
			return fmt.Errorf("player %s scored %d rounds, expected %d", ps.Name, ps.Scores.Count, t.Trials)
		}
		if ps.Wins+ps.SharedWins > t.Trials {
			return fmt.Errorf("player %s won %d of %d trials", ps.Name, ps.Wins+ps.SharedWins, t.Trials)
		}
		equity += ps.Equity
	}
	if len(t.players) > 0 && math.Abs(equity-float64(t.Trials)) > 1e-6 {
		return fmt.Errorf("win equity (%.6f) does not match trials (%d)", equity, t.Trials)
	}
	return nil
}
