// Package day08 solves Treetop Tree House: visibility and viewing distances
// on a rectangular grid of tree heights.
package day08

import (
	"errors"
	"fmt"
)

// Sentinel errors for the height grid.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("day08: grid must have at least one row and one column")
	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = errors.New("day08: all rows must have the same length")
	// ErrBadHeight indicates a cell that is not a single digit.
	ErrBadHeight = errors.New("day08: tree height must be a digit")
)

// grid stores heights row-major in a flat slice.
type grid struct {
	width, height int
	store         []int
}

func (g *grid) at(x, y int) int { return g.store[y*g.width+x] }

func parseGrid(lines []string) (*grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	g := &grid{
		width:  len(lines[0]),
		height: len(lines),
		store:  make([]int, 0, len(lines)*len(lines[0])),
	}
	for _, line := range lines {
		if len(line) != g.width {
			return nil, fmt.Errorf("%w: row %q", ErrRaggedGrid, line)
		}
		for i := 0; i < len(line); i++ {
			c := line[i]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: %q", ErrBadHeight, c)
			}
			g.store = append(g.store, int(c-'0'))
		}
	}

	return g, nil
}

// directions to scan from a tree outward.
var directions = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// visible reports whether the tree at (x, y) can be seen from any edge.
func (g *grid) visible(x, y int) bool {
	h := g.at(x, y)
	for _, d := range directions {
		blocked := false
		for cx, cy := x+d[0], y+d[1]; cx >= 0 && cx < g.width && cy >= 0 && cy < g.height; cx, cy = cx+d[0], cy+d[1] {
			if g.at(cx, cy) >= h {
				blocked = true
				break
			}
		}
		if !blocked {
			return true
		}
	}

	return false
}

// scenicScore multiplies the viewing distance in all four directions.
func (g *grid) scenicScore(x, y int) int {
	h := g.at(x, y)
	score := 1
	for _, d := range directions {
		distance := 0
		for cx, cy := x+d[0], y+d[1]; cx >= 0 && cx < g.width && cy >= 0 && cy < g.height; cx, cy = cx+d[0], cy+d[1] {
			distance++
			if g.at(cx, cy) >= h {
				break
			}
		}
		score *= distance
	}

	return score
}

// VisibleTrees counts trees visible from outside the grid.
func VisibleTrees(lines []string) (int, error) {
	g, err := parseGrid(lines)
	if err != nil {
		return 0, err
	}

	count := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.visible(x, y) {
				count++
			}
		}
	}

	return count, nil
}

// BestScenicScore finds the highest scenic score over all trees.
func BestScenicScore(lines []string) (int, error) {
	g, err := parseGrid(lines)
	if err != nil {
		return 0, err
	}

	best := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if score := g.scenicScore(x, y); score > best {
				best = score
			}
		}
	}

	return best, nil
}
