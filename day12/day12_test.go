package day12

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/input"
)

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

func TestParseHeightMap(t *testing.T) {
	hm, err := parseHeightMap(input.Lines(sample))
	require.NoError(t, err)
	require.Equal(t, 8, hm.width)
	require.Equal(t, 5, hm.height)
	require.Equal(t, 0, hm.start)
	require.Equal(t, 2*8+5, hm.end)
	require.Equal(t, 0, hm.cells[hm.start])
	require.Equal(t, 25, hm.cells[hm.end])
}

func TestFewestSteps(t *testing.T) {
	got, err := FewestSteps(input.Lines(sample))
	require.NoError(t, err)
	require.Equal(t, 31, got)
}

func TestFewestStepsFromLow(t *testing.T) {
	got, err := FewestStepsFromLow(input.Lines(sample))
	require.NoError(t, err)
	require.Equal(t, 29, got)
}

func TestFewestSteps_Errors(t *testing.T) {
	_, err := FewestSteps(nil)
	require.ErrorIs(t, err, ErrEmptyGrid)

	_, err = FewestSteps([]string{"Sab", "ab"})
	require.ErrorIs(t, err, ErrRaggedGrid)

	_, err = FewestSteps([]string{"S1E"})
	require.ErrorIs(t, err, ErrBadSquare)

	_, err = FewestSteps([]string{"abE"})
	require.ErrorIs(t, err, ErrNoStart)

	_, err = FewestSteps([]string{"Sab"})
	require.ErrorIs(t, err, ErrNoEnd)

	// A wall of z squares makes the end unreachable.
	_, err = FewestSteps([]string{"Sa", "zz", "aE"})
	require.ErrorIs(t, err, ErrNoPath)
}
