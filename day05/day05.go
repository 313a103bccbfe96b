// Package day05 solves Supply Stacks: rearrange crates between stacks per a
// move list, with the CrateMover 9000 (one crate at a time) and the 9001
// (whole runs at once).
package day05

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2022/input"
)

// Sentinel errors for stack rearrangement.
var (
	// ErrBadLayout is returned when the crate drawing cannot be decoded.
	ErrBadLayout = errors.New("day05: malformed crate drawing")
	// ErrBadStep is returned for a step not of the form "move N from A to B".
	ErrBadStep = errors.New("day05: malformed rearrangement step")
	// ErrEmptyStack is returned when a step pops or reads an empty stack.
	ErrEmptyStack = errors.New("day05: stack is empty")
	// ErrBadFormat is returned when the input lacks the drawing/steps split.
	ErrBadFormat = errors.New("day05: expected crate drawing and steps separated by a blank line")
)

// step moves count crates from one 1-based stack to another.
type step struct {
	count, from, to int
}

// stacks holds each stack bottom-to-top.
type stacks [][]byte

// parseStacks decodes the fixed-column crate drawing. The last line labels
// the stacks; crate letters sit at column 4i+1.
func parseStacks(drawing []string) (stacks, error) {
	if len(drawing) == 0 {
		return nil, fmt.Errorf("%w: empty drawing", ErrBadLayout)
	}
	labels := drawing[len(drawing)-1]
	n := len(strings.Fields(labels))

	st := make(stacks, n)
	for row := len(drawing) - 2; row >= 0; row-- {
		line := drawing[row]
		for i := 0; i < n; i++ {
			col := 4*i + 1
			if col >= len(line) {
				return nil, fmt.Errorf("%w: line %q too short", ErrBadLayout, line)
			}
			if c := line[col]; c != ' ' {
				st[i] = append(st[i], c)
			}
		}
	}

	return st, nil
}

func parseStep(line string) (step, error) {
	fields := strings.Split(line, " ")
	if len(fields) != 6 || fields[0] != "move" || fields[2] != "from" || fields[4] != "to" {
		return step{}, fmt.Errorf("%w: %q", ErrBadStep, line)
	}
	count, err := strconv.Atoi(fields[1])
	if err != nil {
		return step{}, fmt.Errorf("%w: %q: %v", ErrBadStep, line, err)
	}
	from, err := strconv.Atoi(fields[3])
	if err != nil {
		return step{}, fmt.Errorf("%w: %q: %v", ErrBadStep, line, err)
	}
	to, err := strconv.Atoi(fields[5])
	if err != nil {
		return step{}, fmt.Errorf("%w: %q: %v", ErrBadStep, line, err)
	}

	return step{count: count, from: from, to: to}, nil
}

func parse(lines []string) (stacks, []step, error) {
	blocks := input.Blocks(lines)
	if len(blocks) != 2 {
		return nil, nil, ErrBadFormat
	}

	st, err := parseStacks(blocks[0])
	if err != nil {
		return nil, nil, err
	}
	steps := make([]step, 0, len(blocks[1]))
	for _, line := range blocks[1] {
		s, err := parseStep(line)
		if err != nil {
			return nil, nil, err
		}
		steps = append(steps, s)
	}

	return st, steps, nil
}

// tops spells the top crate of each stack left to right.
func (st stacks) tops() (string, error) {
	var b strings.Builder
	for _, stack := range st {
		if len(stack) == 0 {
			return "", ErrEmptyStack
		}
		b.WriteByte(stack[len(stack)-1])
	}

	return b.String(), nil
}

// apply moves crates one at a time, reversing their order.
func (st stacks) apply(s step) error {
	for i := 0; i < s.count; i++ {
		from := st[s.from-1]
		if len(from) == 0 {
			return ErrEmptyStack
		}
		crate := from[len(from)-1]
		st[s.from-1] = from[:len(from)-1]
		st[s.to-1] = append(st[s.to-1], crate)
	}

	return nil
}

// applyBulk moves the whole run at once, preserving order.
func (st stacks) applyBulk(s step) error {
	from := st[s.from-1]
	if len(from) < s.count {
		return ErrEmptyStack
	}
	cut := len(from) - s.count
	st[s.to-1] = append(st[s.to-1], from[cut:]...)
	st[s.from-1] = from[:cut]

	return nil
}

// TopCrates runs every step one crate at a time and spells the stack tops.
func TopCrates(lines []string) (string, error) {
	st, steps, err := parse(lines)
	if err != nil {
		return "", err
	}
	for _, s := range steps {
		if err = st.apply(s); err != nil {
			return "", err
		}
	}

	return st.tops()
}

// TopCratesBulk runs every step as a single multi-crate lift and spells the
// stack tops.
func TopCratesBulk(lines []string) (string, error) {
	st, steps, err := parse(lines)
	if err != nil {
		return "", err
	}
	for _, s := range steps {
		if err = st.applyBulk(s); err != nil {
			return "", err
		}
	}

	return st.tops()
}
