// Package day09 solves Rope Bridge: simulate a rope of knots where each knot
// drags one step toward its predecessor, and count where the tail has been.
package day09

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for motion parsing.
var (
	// ErrBadDirection is returned for a direction outside U, R, D, L.
	ErrBadDirection = errors.New("day09: invalid direction")
	// ErrBadStep is returned when a line is not "<dir> <count>".
	ErrBadStep = errors.New("day09: malformed step")
)

type position struct {
	x, y int
}

type step struct {
	dx, dy int
	count  int
}

func parseStep(line string) (step, error) {
	fields := strings.Split(line, " ")
	if len(fields) != 2 {
		return step{}, fmt.Errorf("%w: %q", ErrBadStep, line)
	}
	count, err := strconv.Atoi(fields[1])
	if err != nil {
		return step{}, fmt.Errorf("%w: %q: %v", ErrBadStep, line, err)
	}

	s := step{count: count}
	switch fields[0] {
	case "U":
		s.dy = 1
	case "D":
		s.dy = -1
	case "R":
		s.dx = 1
	case "L":
		s.dx = -1
	default:
		return step{}, fmt.Errorf("%w: %q", ErrBadDirection, fields[0])
	}

	return s, nil
}

func parseSteps(lines []string) ([]step, error) {
	steps := make([]step, 0, len(lines))
	for _, line := range lines {
		s, err := parseStep(line)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}

	return steps, nil
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// follow moves knot one step toward head when they are no longer touching.
func follow(head, knot position) position {
	dx, dy := head.x-knot.x, head.y-knot.y
	if abs(dx) <= 1 && abs(dy) <= 1 {
		return knot // still adjacent
	}
	knot.x += sign(dx)
	knot.y += sign(dy)

	return knot
}

// TailVisits simulates a head knot followed by tails trailing knots and
// returns the number of distinct positions the last knot occupies.
// tails=1 models part one's two-knot rope, tails=9 the long rope.
func TailVisits(lines []string, tails int) (int, error) {
	steps, err := parseSteps(lines)
	if err != nil {
		return 0, err
	}

	knots := make([]position, tails+1)
	visited := map[position]bool{knots[tails]: true}

	for _, s := range steps {
		for i := 0; i < s.count; i++ {
			knots[0].x += s.dx
			knots[0].y += s.dy
			for k := 1; k <= tails; k++ {
				knots[k] = follow(knots[k-1], knots[k])
			}
			visited[knots[tails]] = true
		}
	}

	return len(visited), nil
}
