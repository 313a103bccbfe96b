package day04_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/day04"
	"github.com/katalvlaran/advent2022/input"
)

const example = `2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
`

func TestFullyContainedCount(t *testing.T) {
	got, err := day04.FullyContainedCount(input.Lines(example))
	require.NoError(t, err)
	assert.Equal(t, 2, got, "2-8,3-7 and 6-6,4-6")
}

func TestOverlapCount(t *testing.T) {
	got, err := day04.OverlapCount(input.Lines(example))
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestParseErrors(t *testing.T) {
	_, err := day04.OverlapCount([]string{"1-2"})
	assert.ErrorIs(t, err, day04.ErrBadPair)

	_, err = day04.OverlapCount([]string{"1-2,3"})
	assert.ErrorIs(t, err, day04.ErrBadRange)

	_, err = day04.OverlapCount([]string{"5-2,3-4"})
	assert.ErrorIs(t, err, day04.ErrBadRange, "inverted range")
}
