// Package day16 solves Proboscidea Volcanium: open valves in a tunnel
// network to release as much pressure as possible before time runs out.
//
// The tunnel graph is collapsed to pairwise distances between working
// valves with Floyd–Warshall, then a depth-first search over valve subsets
// records the best pressure achievable for every set of opened valves.
// Part two pairs two disjoint subsets, one walked by you and one by the
// elephant.
package day16

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Sentinel errors for scan parsing and graph construction.
var (
	// ErrBadValve is returned for a line not matching the scan format.
	ErrBadValve = errors.New("day16: malformed valve description")
	// ErrUnknownValve is returned when a tunnel names an undeclared valve.
	ErrUnknownValve = errors.New("day16: tunnel to unknown valve")
	// ErrNoStart is returned when the scan lacks valve AA.
	ErrNoStart = errors.New("day16: valve AA not found")
)

// startValve is where the search begins.
const startValve = "AA"

// infDist marks valve pairs not yet connected during the all-pairs pass.
const infDist = int(^uint(0) >> 2)

var valveRe = regexp.MustCompile(
	`^Valve ([A-Z]{2}) has flow rate=(\d+); tunnels? leads? to valves? ([A-Z]{2}(?:, [A-Z]{2})*)$`)

type valve struct {
	name    string
	flow    int
	tunnels []string
}

// network holds the collapsed graph: distances between all valves and the
// bit position assigned to each working valve.
type network struct {
	valves []valve
	dist   [][]int
	start  int
	// working lists indices of valves with positive flow; the i-th entry
	// owns bit i in subset masks.
	working []int
}

func parseValves(lines []string) ([]valve, error) {
	valves := make([]valve, 0, len(lines))
	for _, line := range lines {
		m := valveRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrBadValve, line)
		}
		flow, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadValve, line, err)
		}
		valves = append(valves, valve{
			name:    m[1],
			flow:    flow,
			tunnels: strings.Split(m[3], ", "),
		})
	}

	return valves, nil
}

func buildNetwork(lines []string) (*network, error) {
	valves, err := parseValves(lines)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(valves))
	for i, v := range valves {
		index[v.name] = i
	}
	n := len(valves)
	dist := make([][]int, n)
	for i := range dist {
		dist[i] = make([]int, n)
		for j := range dist[i] {
			dist[i][j] = infDist
		}
		dist[i][i] = 0
	}
	for i, v := range valves {
		for _, t := range v.tunnels {
			j, ok := index[t]
			if !ok {
				return nil, fmt.Errorf("%w: %s -> %s", ErrUnknownValve, v.name, t)
			}
			dist[i][j] = 1
		}
	}

	start, ok := index[startValve]
	if !ok {
		return nil, ErrNoStart
	}

	// All-pairs shortest paths over the raw tunnel graph.
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d := dist[i][k] + dist[k][j]; d < dist[i][j] {
					dist[i][j] = d
				}
			}
		}
	}

	nw := &network{valves: valves, dist: dist, start: start}
	for i, v := range valves {
		if v.flow > 0 {
			nw.working = append(nw.working, i)
		}
	}

	return nw, nil
}

// bestPerSubset returns, for every subset of opened valves, the highest
// total pressure any walk opening exactly that subset can release.
// Unvisited subsets hold -1.
func (nw *network) bestPerSubset(minutes int) []int {
	best := make([]int, 1<<len(nw.working))
	for i := range best {
		best[i] = -1
	}
	nw.visit(nw.start, minutes, 0, 0, best)

	return best
}

func (nw *network) visit(at, left, opened, released int, best []int) {
	if released > best[opened] {
		best[opened] = released
	}
	for bit, vi := range nw.working {
		if opened&(1<<bit) != 0 {
			continue
		}
		// One minute per tunnel step plus one to open the valve.
		remain := left - nw.dist[at][vi] - 1
		if remain <= 0 {
			continue
		}
		nw.visit(vi, remain, opened|1<<bit, released+remain*nw.valves[vi].flow, best)
	}
}

// MostPressure returns the maximum pressure one actor can release in
// 30 minutes.
func MostPressure(lines []string) (int, error) {
	nw, err := buildNetwork(lines)
	if err != nil {
		return 0, err
	}

	most := 0
	for _, released := range nw.bestPerSubset(30) {
		if released > most {
			most = released
		}
	}

	return most, nil
}

// MostPressureWithElephant returns the maximum combined pressure released
// by two actors working disjoint valve sets for 26 minutes each.
func MostPressureWithElephant(lines []string) (int, error) {
	nw, err := buildNetwork(lines)
	if err != nil {
		return 0, err
	}

	best := nw.bestPerSubset(26)
	most := 0
	for mine, my := range best {
		if my < 0 {
			continue
		}
		for theirs := mine + 1; theirs < len(best); theirs++ {
			if mine&theirs != 0 || best[theirs] < 0 {
				continue
			}
			if sum := my + best[theirs]; sum > most {
				most = sum
			}
		}
	}

	return most, nil
}
