package day08_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/day08"
	"github.com/katalvlaran/advent2022/input"
)

const example = `30373
25512
65332
33549
35390
`

func TestVisibleTrees(t *testing.T) {
	got, err := day08.VisibleTrees(input.Lines(example))
	require.NoError(t, err)
	assert.Equal(t, 21, got, "16 edge trees plus 5 interior")
}

func TestBestScenicScore(t *testing.T) {
	got, err := day08.BestScenicScore(input.Lines(example))
	require.NoError(t, err)
	assert.Equal(t, 8, got, "the 5 in the middle of the fourth row")
}

func TestGridErrors(t *testing.T) {
	_, err := day08.VisibleTrees(nil)
	assert.ErrorIs(t, err, day08.ErrEmptyGrid)

	_, err = day08.VisibleTrees([]string{"123", "12"})
	assert.ErrorIs(t, err, day08.ErrRaggedGrid)

	_, err = day08.VisibleTrees([]string{"12a"})
	assert.ErrorIs(t, err, day08.ErrBadHeight)
}
