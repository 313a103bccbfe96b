package day01_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/day01"
	"github.com/katalvlaran/advent2022/input"
)

const example = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

func TestMostCalories(t *testing.T) {
	got, err := day01.MostCalories(input.Lines(example))
	require.NoError(t, err)
	assert.Equal(t, 24000, got, "fourth elf carries the most")
}

func TestTopThreeCalories(t *testing.T) {
	got, err := day01.TopThreeCalories(input.Lines(example))
	require.NoError(t, err)
	assert.Equal(t, 45000, got)
}

func TestMostCalories_BadValue(t *testing.T) {
	_, err := day01.MostCalories([]string{"12", "oops"})
	assert.Error(t, err, "non-numeric calorie value must fail")
}

func TestMostCalories_Empty(t *testing.T) {
	_, err := day01.MostCalories(nil)
	assert.ErrorIs(t, err, day01.ErrNoElves)
}
