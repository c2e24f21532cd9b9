package display

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/nothanks/internal/game"
)

// Trace writes round events to a writer as they happen. Passes are dots on
// the current line unless FormattingOptions.ShowPasses is set.
type Trace struct {
	w         io.Writer
	styles    Styles
	formatter *game.EventFormatter
	opts      game.FormattingOptions
	midLine   bool
	err       error
}

// NewTrace creates a trace sink writing to w
func NewTrace(w io.Writer, r *lipgloss.Renderer, opts game.FormattingOptions) *Trace {
	return &Trace{
		w:         w,
		styles:    NewStyles(r),
		formatter: game.NewEventFormatter(opts),
		opts:      opts,
	}
}

// OnEvent implements game.EventSubscriber
func (t *Trace) OnEvent(event game.GameEvent) {
	text := t.formatter.Format(event)

	switch ev := event.(type) {
	case game.PassEvent:
		if !t.opts.ShowPasses {
			t.write(t.styles.Pass.Render(text))
			t.midLine = true
			return
		}
		t.line(t.styles.Pass.Render(text))
	case game.TakeEvent:
		style := t.styles.Take
		if ev.Forced {
			style = t.styles.Forced
		}
		t.line(style.Render(text))
	case game.BurnEvent:
		t.line(t.styles.Burn.Render(text))
	case game.RoundStartEvent:
		t.line(t.styles.Header.Render(text))
	case game.RoundEndEvent:
		t.roundEnd(ev.Result, text)
	default:
		t.line(text)
	}
}

// Err returns the first write error, if any
func (t *Trace) Err() error {
	return t.err
}

// roundEnd styles the formatter's score block: a heading, one row per
// standing in order, then the winners line.
func (t *Trace) roundEnd(result *game.Result, text string) {
	lines := strings.Split(text, "\n")
	if len(lines) != len(result.Standings)+2 {
		t.line(text)
		return
	}

	t.line("")
	t.line(t.styles.Header.Render(lines[0]))
	for i, s := range result.Standings {
		style := t.styles.Score
		if result.IsWinner(s.Name) {
			style = t.styles.Winner
		}
		t.line(style.Render(lines[i+1]))
	}
	t.line("")
	t.line(t.styles.Winner.Render(lines[len(lines)-1]))
}

// line finishes any dot run before writing s on its own line
func (t *Trace) line(s string) {
	if t.midLine {
		t.write("\n")
		t.midLine = false
	}
	t.write(s + "\n")
}

func (t *Trace) write(s string) {
	if t.err != nil {
		return
	}
	_, t.err = io.WriteString(t.w, s)
}
