package display

import (
	"fmt"
	"io"

	"github.com/lox/nothanks/internal/simulator"
)

// DotProgress returns a progress callback that prints one dot per report and
// a newline once the batch completes.
func DotProgress(w io.Writer) func(simulator.Progress) {
	return func(p simulator.Progress) {
		if p.Done >= p.Total {
			fmt.Fprint(w, ".\n")
			return
		}
		fmt.Fprint(w, ".")
	}
}
