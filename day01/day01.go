// Package day01 solves Calorie Counting: elves carry blank-line separated
// groups of calorie values; find the best-supplied elves.
package day01

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/advent2022/input"
)

// ErrNoElves is returned when the input contains no calorie groups.
var ErrNoElves = errors.New("day01: no elves in input")

// parseTotals sums each blank-line separated group of calorie values.
func parseTotals(lines []string) ([]int, error) {
	blocks := input.Blocks(lines)
	totals := make([]int, 0, len(blocks))
	for _, block := range blocks {
		total := 0
		for _, line := range block {
			calories, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("day01: bad calorie value %q: %w", line, err)
			}
			total += calories
		}
		totals = append(totals, total)
	}

	return totals, nil
}

// MostCalories returns the largest per-elf calorie total.
func MostCalories(lines []string) (int, error) {
	totals, err := parseTotals(lines)
	if err != nil {
		return 0, err
	}
	if len(totals) == 0 {
		return 0, ErrNoElves
	}

	best := totals[0]
	for _, t := range totals[1:] {
		if t > best {
			best = t
		}
	}

	return best, nil
}

// TopThreeCalories returns the combined total of the three best-supplied
// elves.
func TopThreeCalories(lines []string) (int, error) {
	totals, err := parseTotals(lines)
	if err != nil {
		return 0, err
	}
	if len(totals) < 3 {
		return 0, ErrNoElves
	}

	sort.Sort(sort.Reverse(sort.IntSlice(totals)))

	return totals[0] + totals[1] + totals[2], nil
}
