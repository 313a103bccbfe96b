package day05_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/day05"
	"github.com/katalvlaran/advent2022/input"
)

// Built from per-line literals so editors cannot strip the trailing spaces
// that pad each drawing line to the full 11-character width.
const example = "    [D]    \n" +
	"[N] [C]    \n" +
	"[Z] [M] [P]\n" +
	" 1   2   3 \n" +
	"\n" +
	"move 1 from 2 to 1\n" +
	"move 3 from 1 to 3\n" +
	"move 2 from 2 to 1\n" +
	"move 1 from 1 to 2\n"

func TestTopCrates(t *testing.T) {
	got, err := day05.TopCrates(input.Lines(example))
	require.NoError(t, err)
	assert.Equal(t, "CMZ", got)
}

func TestTopCratesBulk(t *testing.T) {
	got, err := day05.TopCratesBulk(input.Lines(example))
	require.NoError(t, err)
	assert.Equal(t, "MCD", got, "CrateMover 9001 keeps lifted runs in order")
}

func TestTopCrates_BadStep(t *testing.T) {
	_, err := day05.TopCrates(input.Lines("[A]\n 1 \n\nshove 1 from 1 to 1\n"))
	assert.ErrorIs(t, err, day05.ErrBadStep)
}

func TestTopCrates_MissingSeparator(t *testing.T) {
	_, err := day05.TopCrates(input.Lines("[A]\n 1 \n"))
	assert.ErrorIs(t, err, day05.ErrBadFormat)
}

func TestTopCrates_EmptyStack(t *testing.T) {
	_, err := day05.TopCrates(input.Lines("[A]    \n 1   2 \n\nmove 1 from 2 to 1\n"))
	assert.ErrorIs(t, err, day05.ErrEmptyStack)
}
