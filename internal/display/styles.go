// Package display renders round traces and simulation reports for the terminal.
package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles used by the trace and the report
type Styles struct {
	Header  lipgloss.Style
	Burn    lipgloss.Style
	Take    lipgloss.Style
	Forced  lipgloss.Style
	Pass    lipgloss.Style
	Score   lipgloss.Style
	Winner  lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
}

// NewRenderer returns a renderer for w. With color disabled every style
// renders as plain text.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	if !color {
		return lipgloss.NewRenderer(w, termenv.WithProfile(termenv.Ascii))
	}
	return lipgloss.NewRenderer(w)
}

// NewStyles builds the palette on r
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		Burn: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Take: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Forced: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Pass: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Score: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		Winner: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
	}
}
