package day16

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/input"
)

const sample = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

func TestParseValves(t *testing.T) {
	valves, err := parseValves(input.Lines(sample))
	require.NoError(t, err)
	require.Len(t, valves, 10)
	require.Equal(t, valve{name: "AA", flow: 0, tunnels: []string{"DD", "II", "BB"}}, valves[0])
	require.Equal(t, valve{name: "HH", flow: 22, tunnels: []string{"GG"}}, valves[7])

	_, err = parseValves([]string{"Valve AA has flow rate=0"})
	require.ErrorIs(t, err, ErrBadValve)
}

func TestBuildNetwork(t *testing.T) {
	nw, err := buildNetwork(input.Lines(sample))
	require.NoError(t, err)
	require.Equal(t, 0, nw.start)
	require.Len(t, nw.working, 6)

	// Shortest paths through zero-flow corridors.
	require.Equal(t, 1, nw.dist[0][3]) // AA -> DD
	require.Equal(t, 2, nw.dist[0][9]) // AA -> JJ via II
	require.Equal(t, 5, nw.dist[0][7]) // AA -> HH via DD, EE, FF, GG
	require.Equal(t, 7, nw.dist[9][7]) // JJ -> HH
}

func TestBuildNetwork_Errors(t *testing.T) {
	_, err := buildNetwork([]string{"Valve BB has flow rate=13; tunnel leads to valve CC"})
	require.ErrorIs(t, err, ErrUnknownValve)

	_, err = buildNetwork([]string{
		"Valve BB has flow rate=13; tunnel leads to valve CC",
		"Valve CC has flow rate=2; tunnel leads to valve BB",
	})
	require.ErrorIs(t, err, ErrNoStart)
}

func TestMostPressure(t *testing.T) {
	got, err := MostPressure(input.Lines(sample))
	require.NoError(t, err)
	require.Equal(t, 1651, got)
}

func TestMostPressureWithElephant(t *testing.T) {
	got, err := MostPressureWithElephant(input.Lines(sample))
	require.NoError(t, err)
	require.Equal(t, 1707, got)
}
