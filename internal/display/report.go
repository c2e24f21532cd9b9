package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/nothanks/internal/simulator"
	"github.com/lox/nothanks/internal/statistics"
)

// ReportOptions controls the simulation report
type ReportOptions struct {
	MinShare    float64 // winner sets below this fraction of trials are hidden
	ShowPlayers bool    // append the per-player table
}

// WriteReport renders the winner-set frequency table for a finished batch,
// followed by per-player statistics when requested.
func WriteReport(w io.Writer, r *lipgloss.Renderer, summary *simulator.Summary, opts ReportOptions) error {
	styles := NewStyles(r)
	tally := summary.Tally

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", styles.Header.Render(fmt.Sprintf("Results (Omitting < %s WR):", percent(opts.MinShare*100))))

	entries := tally.Report(opts.MinShare)
	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Winners)+1)
	}
	for _, e := range entries {
		key := styles.Winner.Width(width).Render(e.Winners + ":")
		fmt.Fprintf(&b, "%s %d (%s)\n", key, e.Count, percent(e.Percent()))
	}
	if omitted := tally.Omitted(opts.MinShare); omitted > 0 {
		fmt.Fprintf(&b, "%s\n", styles.Muted.Render(fmt.Sprintf("%d trials in smaller winner sets", omitted)))
	}

	if opts.ShowPlayers {
		b.WriteString("\n")
		writePlayers(&b, styles, tally)
	}

	fmt.Fprintf(&b, "\n%s\n", styles.Muted.Render(fmt.Sprintf("%d trials, seed %d, %d workers, %.0f trials/sec",
		tally.Trials, summary.Seed, summary.Workers, summary.TrialsPerSecond())))

	_, err := io.WriteString(w, b.String())
	return err
}

func writePlayers(b *strings.Builder, styles Styles, tally *statistics.Tally) {
	players := tally.Players()
	nameWidth, stratWidth := len("Player"), len("Strategy")
	for _, ps := range players {
		nameWidth = max(nameWidth, lipgloss.Width(ps.Name))
		stratWidth = max(stratWidth, lipgloss.Width(ps.Strategy))
	}

	name := styles.Score.Width(nameWidth + 2)
	strat := styles.Muted.Width(stratWidth + 2)
	num := styles.Score.Width(10).Align(lipgloss.Right)

	b.WriteString(styles.Header.Render(
		name.Render("Player")+strat.Render("Strategy")+
			num.Render("Wins")+num.Render("Shared")+num.Render("Equity")+
			num.Render("Mean")+num.Render("95% CI")) + "\n")

	for _, ps := range players {
		low, high := ps.Scores.ConfidenceInterval95()
		b.WriteString(name.Render(ps.Name) + strat.Render(ps.Strategy) +
			num.Render(fmt.Sprintf("%d", ps.Wins)) +
			num.Render(fmt.Sprintf("%d", ps.SharedWins)) +
			num.Render(percent(ps.EquityShare()*100)) +
			num.Render(fmt.Sprintf("%.2f", ps.Scores.Mean())) +
			num.Render(fmt.Sprintf("±%.2f", (high-low)/2)) + "\n")
	}
}

// percent rounds to three decimals and drops trailing zeros, e.g. "12.5%".
func percent(p float64) string {
	s := fmt.Sprintf("%.3f", p)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s + "%"
}
