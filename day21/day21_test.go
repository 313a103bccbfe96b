package day21

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/input"
)

const sample = `root: pppw + sjmn
dbpl: 5
cczh: sllz + lgvd
zczc: 2
ptdq: humn - dvpt
dvpt: 3
lfqf: 4
humn: 5
ljgn: 2
sjmn: drzm * dbpl
sllz: 4
pppw: cczh / lfqf
lgvd: ljgn * ptdq
drzm: hmdt - zczc
hmdt: 32
`

func TestParseJobs(t *testing.T) {
	jobs, err := parseJobs(input.Lines(sample))
	require.NoError(t, err)
	require.Len(t, jobs, 15)
	require.Equal(t, job{literal: 5}, jobs["dbpl"])
	require.Equal(t, job{op: '*', left: "drzm", right: "dbpl"}, jobs["sjmn"])

	for _, bad := range []string{"root", "root: a ? b", "root: a +", "root: a plus b"} {
		_, err = parseJobs([]string{bad})
		require.ErrorIs(t, err, ErrBadJob, "line %q", bad)
	}
}

func TestRootNumber(t *testing.T) {
	got, err := RootNumber(input.Lines(sample))
	require.NoError(t, err)
	require.Equal(t, 152, got)
}

func TestRootNumber_Errors(t *testing.T) {
	_, err := RootNumber([]string{"dbpl: 5"})
	require.ErrorIs(t, err, ErrNoRoot)

	_, err = RootNumber([]string{"root: a + b", "a: 1"})
	require.ErrorIs(t, err, ErrUnknownMonkey)
}

func TestHumanNumber(t *testing.T) {
	got, err := HumanNumber(input.Lines(sample))
	require.NoError(t, err)
	require.Equal(t, 301, got)
}

func TestHumanNumber_NoHuman(t *testing.T) {
	_, err := HumanNumber([]string{"root: a + b", "a: 1", "b: 2"})
	require.ErrorIs(t, err, ErrNoHuman)
}

func TestHumanNumber_BothSides(t *testing.T) {
	_, err := HumanNumber([]string{"root: a + b", "a: humn + c", "b: 2", "c: humn - d", "d: 1", "humn: 0"})
	require.ErrorIs(t, err, ErrUnsolvable)
}
