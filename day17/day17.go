// Package day17 solves Pyroclastic Flow: rocks of five repeating shapes
// fall into a seven-unit-wide chamber, pushed by a looping jet pattern.
//
// Trillions of rocks are handled by detecting when the (shape, jet, upper
// surface) state repeats and fast-forwarding whole cycles.
package day17

import (
	"errors"
	"fmt"
)

// Sentinel errors for jet-pattern parsing.
var (
	// ErrEmptyJets is returned when the input holds no jet pattern.
	ErrEmptyJets = errors.New("day17: empty jet pattern")
	// ErrBadJet is returned for a character other than < or >.
	ErrBadJet = errors.New("day17: invalid jet character")
)

// chamberWidth is the fixed width of the vertical chamber.
const chamberWidth = 7

// surfaceDepth is how many top rows participate in the cycle-detection key.
const surfaceDepth = 32

// shapes lists the five rock shapes as row bitmasks, bottom row first,
// bit 0 being the left wall. Each shape spawns with its left edge two
// units from the wall, already baked into the masks.
var shapes = [5]shape{
	// horizontal bar
	{rows: []uint8{0b0111100}, width: 4},
	// plus
	{rows: []uint8{0b0001000, 0b0011100, 0b0001000}, width: 3},
	// mirrored L
	{rows: []uint8{0b0011100, 0b0010000, 0b0010000}, width: 3},
	// vertical bar
	{rows: []uint8{0b0000100, 0b0000100, 0b0000100, 0b0000100}, width: 1},
	// square
	{rows: []uint8{0b0001100, 0b0001100}, width: 2},
}

type shape struct {
	rows  []uint8
	width int
}

// chamber simulates falling rocks over a growing stack of settled rows.
type chamber struct {
	rows  []uint8 // settled rock, index 0 is the floor row
	jets  []int8  // -1 for <, +1 for >
	jetAt int
}

func parseJets(lines []string) ([]int8, error) {
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrEmptyJets
	}
	jets := make([]int8, len(lines[0]))
	for i, c := range lines[0] {
		switch c {
		case '<':
			jets[i] = -1
		case '>':
			jets[i] = 1
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrBadJet, c, i)
		}
	}

	return jets, nil
}

// collides reports whether the masks overlap settled rock or the floor
// when the shape's bottom row sits at height y.
func (c *chamber) collides(masks []uint8, y int) bool {
	if y < 0 {
		return true
	}
	for i, m := range masks {
		if y+i < len(c.rows) && c.rows[y+i]&m != 0 {
			return true
		}
	}

	return false
}

// shifted returns the shape's masks moved dx columns, or nil when the move
// would cross a wall.
func shifted(masks []uint8, left, width, dx int) ([]uint8, int) {
	nl := left + dx
	if nl < 0 || nl+width > chamberWidth {
		return nil, left
	}
	out := make([]uint8, len(masks))
	for i, m := range masks {
		if dx < 0 {
			out[i] = m >> 1
		} else {
			out[i] = m << 1
		}
	}

	return out, nl
}

// dropRock lets one rock of shape s fall until it settles.
func (c *chamber) dropRock(s shape) {
	masks := make([]uint8, len(s.rows))
	copy(masks, s.rows)
	left := 2
	y := len(c.rows) + 3

	for {
		// Jet push, rejected when it would hit a wall or settled rock.
		dx := int(c.jets[c.jetAt])
		c.jetAt = (c.jetAt + 1) % len(c.jets)
		if moved, nl := shifted(masks, left, s.width, dx); moved != nil && !c.collides(moved, y) {
			masks, left = moved, nl
		}

		// Fall one unit, or settle.
		if c.collides(masks, y-1) {
			break
		}
		y--
	}

	for i, m := range masks {
		for y+i >= len(c.rows) {
			c.rows = append(c.rows, 0)
		}
		c.rows[y+i] |= m
	}
}

// surfaceKey captures the chamber's upper rows along with the shape and jet
// cursor positions. Matching keys mean the simulation has entered a cycle.
func (c *chamber) surfaceKey(shapeAt int) string {
	depth := surfaceDepth
	if depth > len(c.rows) {
		depth = len(c.rows)
	}
	key := make([]byte, 0, depth+8)
	key = append(key, byte(shapeAt), byte(c.jetAt), byte(c.jetAt>>8))
	for i := len(c.rows) - depth; i < len(c.rows); i++ {
		key = append(key, c.rows[i])
	}

	return string(key)
}

type cycleMark struct {
	rock   int
	height int
}

// TowerHeight simulates the given number of falling rocks and returns the
// final height of the tower.
func TowerHeight(lines []string, rocks int) (int, error) {
	jets, err := parseJets(lines)
	if err != nil {
		return 0, err
	}

	c := &chamber{jets: jets}
	seen := make(map[string]cycleMark)
	skipped := 0

	for rock := 0; rock < rocks; rock++ {
		shapeAt := rock % len(shapes)
		if skipped == 0 {
			key := c.surfaceKey(shapeAt)
			if mark, ok := seen[key]; ok {
				cycleRocks := rock - mark.rock
				cycleHeight := len(c.rows) - mark.height
				cycles := (rocks - rock) / cycleRocks
				skipped = cycles * cycleHeight
				rock += cycles * cycleRocks
				if rock >= rocks {
					break
				}
			} else {
				seen[key] = cycleMark{rock: rock, height: len(c.rows)}
			}
		}
		c.dropRock(shapes[shapeAt])
	}

	return len(c.rows) + skipped, nil
}
