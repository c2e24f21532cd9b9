package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/nothanks/internal/display"
	"github.com/lox/nothanks/internal/strategy"
)

// StrategiesCmd lists the strategy kinds usable in player blocks
type StrategiesCmd struct {
	NoColor bool `kong:"name='no-color',help='Disable styled output'"`
}

func (c *StrategiesCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *StrategiesCmd) run(w io.Writer) error {
	styles := display.NewStyles(display.NewRenderer(w, !c.NoColor))
	for _, info := range strategy.Kinds() {
		name := string(info.Kind)
		if len(info.Params) > 0 {
			name += " (" + strings.Join(info.Params, ", ") + ")"
		}
		if _, err := fmt.Fprintf(w, "%s\n    %s\n", styles.Take.Render(name), info.Help); err != nil {
			return err
		}
	}
	return nil
}
