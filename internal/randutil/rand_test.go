package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestDeriveSeparatesStreams(t *testing.T) {
	seen := make(map[int64]int)
	for stream := 0; stream < 64; stream++ {
		s := Derive(7, stream)
		prev, dup := seen[s]
		require.False(t, dup, "stream %d collides with stream %d", stream, prev)
		seen[s] = stream
	}
	assert.Equal(t, Derive(7, 3), Derive(7, 3))
	assert.NotEqual(t, Derive(7, 3), Derive(8, 3))
}

func TestShuffleIsPermutation(t *testing.T) {
	rng := New(1)
	values := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	Shuffle(rng, len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })

	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, values)
}

// Every element must be able to land in every position, including index 0 and 1.
func TestShuffleReachesEveryPosition(t *testing.T) {
	const n = 4
	rng := New(99)
	var hits [n][n]int

	for trial := 0; trial < 4000; trial++ {
		values := []int{0, 1, 2, 3}
		Shuffle(rng, n, func(i, j int) { values[i], values[j] = values[j], values[i] })
		for pos, v := range values {
			hits[v][pos]++
		}
	}

	for v := 0; v < n; v++ {
		for pos := 0; pos < n; pos++ {
			assert.Greater(t, hits[v][pos], 700, "value %d at position %d", v, pos)
		}
	}
}

type fixedIntner []int

func (f *fixedIntner) IntN(n int) int {
	v := (*f)[0]
	*f = (*f)[1:]
	return v % n
}

func TestShuffleDrawsFullRange(t *testing.T) {
	var bounds []int
	rng := &recordingIntner{bounds: &bounds}
	Shuffle(rng, 5, func(i, j int) {})

	assert.Equal(t, []int{5, 4, 3, 2}, bounds)
}

type recordingIntner struct {
	bounds *[]int
}

func (r *recordingIntner) IntN(n int) int {
	*r.bounds = append(*r.bounds, n)
	return 0
}

func TestShuffleSwapTargets(t *testing.T) {
	draws := fixedIntner{0, 0, 0}
	values := []int{10, 20, 30, 40}
	Shuffle(&draws, len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })

	// i=3 swaps with 0, i=2 swaps with 0, i=1 swaps with 0
	assert.Equal(t, []int{20, 30, 40, 10}, values)
}
