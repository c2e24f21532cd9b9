package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lox/nothanks/internal/game"
	"github.com/lox/nothanks/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threePassers = `
player "A" { strategy = "always_pass" }
player "B" { strategy = "always_pass" }
player "C" { strategy = "always_pass" }
`

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nothanks.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func fixedRoundArgs(path string, extra ...string) []string {
	args := []string{"round", "--config", path, "--no-color",
		"--deck", "5,3,8,4,10,6,9,7", "--min-card", "3", "--max-card", "10", "--burn", "0", "--chips", "5"}
	return append(args, extra...)
}

func TestRoundCmd_FixedDeal(t *testing.T) {
	cli := parse(t, fixedRoundArgs(writeConfig(t, threePassers))...)

	var buf bytes.Buffer
	require.NoError(t, cli.Round.run(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Burns: none\n"), out)
	assert.Contains(t, out, "Playing with 3 players and 8 cards! Seats: A, B, C. A starts on 5.\n")
	assert.Contains(t, out, strings.Repeat(".", 15)+"\nA took 5 with 15 chips! (forced)\n")
	assert.Contains(t, out, "Scores:\n-4 | A (9 chips) [5]\n13 | B (6 chips) [3-4 7 9]\n24 | C (0 chips) [6 8 10]\n")
	assert.True(t, strings.HasSuffix(out, "Winners: A\n"), out)
}

func TestRoundCmd_Starter(t *testing.T) {
	cli := parse(t, fixedRoundArgs(writeConfig(t, threePassers), "--starter", "1", "--reasons")...)

	var buf bytes.Buffer
	require.NoError(t, cli.Round.run(&buf))
	assert.Contains(t, buf.String(), "B starts on 5.")
	assert.Contains(t, buf.String(), "B took 5 with 15 chips! (forced)")
}

func TestRoundCmd_RejectsBadDeal(t *testing.T) {
	path := writeConfig(t, threePassers)

	tests := []struct {
		name string
		args []string
	}{
		{name: "short deck", args: []string{"round", "--config", path, "--deck", "5,3,8", "--min-card", "3", "--max-card", "10", "--burn", "0"}},
		{name: "starter past last seat", args: fixedRoundArgs(path, "--starter", "3")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := parse(t, tt.args...)
			var buf bytes.Buffer
			err := cli.Round.run(&buf)
			assert.ErrorIs(t, err, game.ErrInvalidDeal)
			assert.Empty(t, buf.String())
		})
	}
}

func TestRoundCmd_UnparsableDeck(t *testing.T) {
	cli := parse(t, "round", "--config", writeConfig(t, threePassers), "--deck", "5,x,8")

	var buf bytes.Buffer
	err := cli.Round.run(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --deck")
}

func TestStrategiesCmd(t *testing.T) {
	cli := parse(t, "strategies", "--no-color")

	var buf bytes.Buffer
	require.NoError(t, cli.Strategies.run(&buf))

	out := buf.String()
	for _, info := range strategy.Kinds() {
		assert.Contains(t, out, string(info.Kind))
		assert.Contains(t, out, "    "+info.Help+"\n")
	}
	assert.Contains(t, out, "cost_threshold (max_cost)\n")
	assert.Contains(t, out, "proximity (distance)\n")
}
