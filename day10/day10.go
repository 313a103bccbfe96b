// Package day10 solves Cathode-Ray Tube: run the addx/noop program cycle by
// cycle, sampling signal strengths and rasterizing the CRT image.
package day10

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadInstruction is returned for a line that is neither noop nor addx.
var ErrBadInstruction = errors.New("day10: invalid instruction")

const (
	crtWidth  = 40
	crtHeight = 6
)

type instruction struct {
	cycles int
	delta  int // applied to X after the instruction completes
}

func parseInstructions(lines []string) ([]instruction, error) {
	program := make([]instruction, 0, len(lines))
	for _, line := range lines {
		fields := strings.Split(line, " ")
		switch {
		case len(fields) == 1 && fields[0] == "noop":
			program = append(program, instruction{cycles: 1})
		case len(fields) == 2 && fields[0] == "addx":
			delta, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrBadInstruction, line, err)
			}
			program = append(program, instruction{cycles: 2, delta: delta})
		default:
			return nil, fmt.Errorf("%w: %q", ErrBadInstruction, line)
		}
	}

	return program, nil
}

// run executes the program, calling during(cycle, x) at the start of every
// cycle with the X value in effect during that cycle.
func run(program []instruction, during func(cycle, x int)) {
	x := 1
	cycle := 0
	for _, ins := range program {
		for i := 0; i < ins.cycles; i++ {
			cycle++
			during(cycle, x)
		}
		x += ins.delta
	}
}

// SignalStrengthSum sums cycle*X at cycles 20, 60, 100, 140, 180 and 220.
func SignalStrengthSum(lines []string) (int, error) {
	program, err := parseInstructions(lines)
	if err != nil {
		return 0, err
	}

	total := 0
	run(program, func(cycle, x int) {
		if cycle%crtWidth == 20 && cycle <= 220 {
			total += cycle * x
		}
	})

	return total, nil
}

// Render draws the 40×6 CRT image: a pixel lights when the three-wide
// sprite centered on X overlaps the beam. Each row ends with a newline.
func Render(lines []string) (string, error) {
	program, err := parseInstructions(lines)
	if err != nil {
		return "", err
	}

	display := make([]bool, crtWidth*crtHeight)
	run(program, func(cycle, x int) {
		index := (cycle - 1) % len(display)
		col := index % crtWidth
		display[index] = col >= x-1 && col <= x+1
	})

	var b strings.Builder
	b.Grow(len(display) + crtHeight)
	for row := 0; row < crtHeight; row++ {
		for col := 0; col < crtWidth; col++ {
			if display[row*crtWidth+col] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}
