package day11

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/input"
)

const sample = `Monkey 0:
  Starting items: 79, 98
  Operation: new = old * 19
  Test: divisible by 23
    If true: throw to monkey 2
    If false: throw to monkey 3

Monkey 1:
  Starting items: 54, 65, 75, 74
  Operation: new = old + 6
  Test: divisible by 19
    If true: throw to monkey 2
    If false: throw to monkey 0

Monkey 2:
  Starting items: 79, 60, 97
  Operation: new = old * old
  Test: divisible by 13
    If true: throw to monkey 1
    If false: throw to monkey 3

Monkey 3:
  Starting items: 74
  Operation: new = old + 3
  Test: divisible by 17
    If true: throw to monkey 0
    If false: throw to monkey 1
`

func TestParseMonkey(t *testing.T) {
	blocks := input.Blocks(input.Lines(sample))
	require.Len(t, blocks, 4)

	m, err := parseMonkey(blocks[2])
	require.NoError(t, err)
	require.Equal(t, []int{79, 60, 97}, m.items)
	require.True(t, m.op.square)
	require.Equal(t, 13, m.divisor)
	require.Equal(t, 1, m.onTrue)
	require.Equal(t, 3, m.onFalse)
}

func TestParseOperation(t *testing.T) {
	op, err := parseOperation("old + 6")
	require.NoError(t, err)
	require.Equal(t, 11, op.apply(5))

	op, err = parseOperation("old * 19")
	require.NoError(t, err)
	require.Equal(t, 95, op.apply(5))

	op, err = parseOperation("old * old")
	require.NoError(t, err)
	require.Equal(t, 25, op.apply(5))

	_, err = parseOperation("old - 2")
	require.ErrorIs(t, err, ErrBadOperation)

	_, err = parseOperation("new * 2")
	require.ErrorIs(t, err, ErrBadOperation)
}

func TestMonkeyBusiness(t *testing.T) {
	got, err := MonkeyBusiness(input.Lines(sample))
	require.NoError(t, err)
	require.Equal(t, 10605, got)
}

func TestMonkeyBusiness_LongGame(t *testing.T) {
	got, err := MonkeyBusiness(input.Lines(sample), WithRounds(10000), WithoutRelief())
	require.NoError(t, err)
	require.Equal(t, 2713310158, got)
}

func TestMonkeyBusiness_BadRounds(t *testing.T) {
	_, err := MonkeyBusiness(input.Lines(sample), WithRounds(0))
	require.ErrorIs(t, err, ErrOptionViolation)
}

func TestMonkeyBusiness_BadMonkey(t *testing.T) {
	_, err := MonkeyBusiness([]string{"Monkey 0:", "  Starting items: 1"})
	require.ErrorIs(t, err, ErrBadMonkey)
}
