// Package day14 solves Regolith Reservoir: pour sand into a cave of rock
// paths and count the units that come to rest.
package day14

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for scan parsing.
var (
	// ErrBadPath is returned for a malformed rock path line.
	ErrBadPath = errors.New("day14: malformed rock path")
	// ErrDiagonalSegment is returned when two consecutive path points share
	// neither coordinate.
	ErrDiagonalSegment = errors.New("day14: rock segment is neither horizontal nor vertical")
)

// sandSource is where every unit of sand enters the cave.
var sandSource = point{x: 500, y: 0}

type point struct {
	x, y int
}

// cave tracks occupied cells and the depth of the lowest rock.
type cave struct {
	filled map[point]bool
	maxY   int
}

func parsePoint(s string) (point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return point{}, fmt.Errorf("%w: point %q", ErrBadPath, s)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return point{}, fmt.Errorf("%w: point %q: %v", ErrBadPath, s, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return point{}, fmt.Errorf("%w: point %q: %v", ErrBadPath, s, err)
	}

	return point{x: x, y: y}, nil
}

func parseCave(lines []string) (*cave, error) {
	c := &cave{filled: make(map[point]bool)}
	for _, line := range lines {
		parts := strings.Split(line, " -> ")
		if len(parts) < 2 {
			return nil, fmt.Errorf("%w: %q", ErrBadPath, line)
		}
		prev, err := parsePoint(parts[0])
		if err != nil {
			return nil, err
		}
		for _, part := range parts[1:] {
			next, err := parsePoint(part)
			if err != nil {
				return nil, err
			}
			if err := c.addSegment(prev, next); err != nil {
				return nil, err
			}
			prev = next
		}
	}

	return c, nil
}

// addSegment fills every cell on the axis-aligned segment from a to b.
func (c *cave) addSegment(a, b point) error {
	if a.x != b.x && a.y != b.y {
		return fmt.Errorf("%w: %d,%d -> %d,%d", ErrDiagonalSegment, a.x, a.y, b.x, b.y)
	}
	dx, dy := sign(b.x-a.x), sign(b.y-a.y)
	for p := a; ; p.x, p.y = p.x+dx, p.y+dy {
		c.filled[p] = true
		if p.y > c.maxY {
			c.maxY = p.y
		}
		if p == b {
			return nil
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// drop traces one unit of sand from the source. It returns the resting
// point and false when the sand falls past the lowest rock forever.
// floor, when positive, is an infinite horizontal wall at that depth.
func (c *cave) drop(floor int) (point, bool) {
	p := sandSource
	for {
		if floor == 0 && p.y > c.maxY {
			return point{}, false
		}
		moved := false
		for _, next := range [3]point{{p.x, p.y + 1}, {p.x - 1, p.y + 1}, {p.x + 1, p.y + 1}} {
			if c.filled[next] || next.y == floor {
				continue
			}
			p = next
			moved = true
			break
		}
		if !moved {
			return p, true
		}
	}
}

// pour drops sand until the stop condition fires and returns the count
// of units that came to rest.
func (c *cave) pour(floor int) int {
	count := 0
	for {
		p, ok := c.drop(floor)
		if !ok {
			return count
		}
		c.filled[p] = true
		count++
		if p == sandSource {
			return count
		}
	}
}

// SandAtRest counts sand units that settle before any unit falls into
// the abyss below the lowest rock.
func SandAtRest(lines []string) (int, error) {
	c, err := parseCave(lines)
	if err != nil {
		return 0, err
	}

	return c.pour(0), nil
}

// SandUntilBlocked counts sand units that settle onto a floor two below
// the lowest rock, until the source itself is plugged.
func SandUntilBlocked(lines []string) (int, error) {
	c, err := parseCave(lines)
	if err != nil {
		return 0, err
	}

	return c.pour(c.maxY + 2), nil
}
