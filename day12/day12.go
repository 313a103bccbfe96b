// Package day12 solves Hill Climbing Algorithm: find the shortest walk up a
// height map where each step may climb at most one elevation level.
//
// Distances are computed with a min-heap Dijkstra using the lazy-decrease-key
// pattern: shorter candidates are pushed as duplicates and stale entries are
// skipped when popped.
package day12

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for height-map parsing and traversal.
var (
	// ErrEmptyGrid is returned when the height map has no rows.
	ErrEmptyGrid = errors.New("day12: empty height map")
	// ErrRaggedGrid is returned when rows differ in length.
	ErrRaggedGrid = errors.New("day12: rows have unequal length")
	// ErrBadSquare is returned for a cell outside a-z, S, E.
	ErrBadSquare = errors.New("day12: invalid square")
	// ErrNoStart is returned when the map lacks an S square.
	ErrNoStart = errors.New("day12: start square not found")
	// ErrNoEnd is returned when the map lacks an E square.
	ErrNoEnd = errors.New("day12: end square not found")
	// ErrNoPath is returned when the end square is unreachable.
	ErrNoPath = errors.New("day12: no path to the end square")
)

// unreachable marks cells the search never settled.
const unreachable = math.MaxInt

// heightMap stores elevations in a flat row-major slice.
type heightMap struct {
	width  int
	height int
	cells  []int // elevation 0..25
	start  int   // index of S
	end    int   // index of E
}

// directions enumerates the four orthogonal neighbor offsets.
var directions = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func parseHeightMap(lines []string) (*heightMap, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	hm := &heightMap{
		width:  len(lines[0]),
		height: len(lines),
		cells:  make([]int, 0, len(lines)*len(lines[0])),
		start:  -1,
		end:    -1,
	}
	for y, line := range lines {
		if len(line) != hm.width {
			return nil, fmt.Errorf("%w: row %d has %d squares, want %d", ErrRaggedGrid, y, len(line), hm.width)
		}
		for x := 0; x < len(line); x++ {
			c := line[x]
			switch {
			case c == 'S':
				hm.start = len(hm.cells)
				c = 'a'
			case c == 'E':
				hm.end = len(hm.cells)
				c = 'z'
			case c < 'a' || c > 'z':
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadSquare, c, x, y)
			}
			hm.cells = append(hm.cells, int(c-'a'))
		}
	}
	if hm.start < 0 {
		return nil, ErrNoStart
	}
	if hm.end < 0 {
		return nil, ErrNoEnd
	}

	return hm, nil
}

// shortest runs Dijkstra from every source index at distance zero and
// returns the settled distance to the end square.
func (hm *heightMap) shortest(sources []int) (int, error) {
	dist := make([]int, len(hm.cells))
	for i := range dist {
		dist[i] = unreachable
	}
	visited := make([]bool, len(hm.cells))

	pq := make(cellPQ, 0, len(sources))
	heap.Init(&pq)
	for _, s := range sources {
		dist[s] = 0
		heap.Push(&pq, &cellItem{index: s})
	}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*cellItem)
		u := item.index
		if visited[u] {
			continue // stale heap entry
		}
		visited[u] = true
		if u == hm.end {
			return item.dist, nil
		}
		hm.relax(u, dist, &pq)
	}

	return 0, ErrNoPath
}

// relax pushes every climbable neighbor of u with an improved distance.
func (hm *heightMap) relax(u int, dist []int, pq *cellPQ) {
	ux, uy := u%hm.width, u/hm.width
	for _, d := range directions {
		vx, vy := ux+d[0], uy+d[1]
		if vx < 0 || vx >= hm.width || vy < 0 || vy >= hm.height {
			continue
		}
		v := vy*hm.width + vx
		if hm.cells[v] > hm.cells[u]+1 {
			continue // too steep to climb
		}
		if nd := dist[u] + 1; nd < dist[v] {
			dist[v] = nd
			heap.Push(pq, &cellItem{index: v, dist: nd})
		}
	}
}

// FewestSteps returns the length of the shortest path from S to E.
func FewestSteps(lines []string) (int, error) {
	hm, err := parseHeightMap(lines)
	if err != nil {
		return 0, err
	}

	return hm.shortest([]int{hm.start})
}

// FewestStepsFromLow returns the shortest path to E starting from any square
// at the lowest elevation. All candidate starts seed the same search.
func FewestStepsFromLow(lines []string) (int, error) {
	hm, err := parseHeightMap(lines)
	if err != nil {
		return 0, err
	}

	var sources []int
	for i, c := range hm.cells {
		if c == 0 {
			sources = append(sources, i)
		}
	}

	return hm.shortest(sources)
}

// cellItem is a heap entry pairing a cell index with its candidate distance.
type cellItem struct {
	index int
	dist  int
}

// cellPQ is a min-heap of *cellItem ordered by distance.
type cellPQ []*cellItem

func (pq cellPQ) Len() int            { return len(pq) }
func (pq cellPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq cellPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
