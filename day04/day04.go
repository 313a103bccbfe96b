// Package day04 solves Camp Cleanup: count elf assignment pairs where one
// section range fully contains, or merely overlaps, the other.
package day04

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for assignment parsing.
var (
	// ErrBadPair is returned when a line is not two comma-separated ranges.
	ErrBadPair = errors.New("day04: malformed assignment pair")
	// ErrBadRange is returned when a range is not start-end with start ≤ end.
	ErrBadRange = errors.New("day04: malformed section range")
)

// sections is an inclusive range of section IDs.
type sections struct {
	start, end int
}

func (s sections) contains(other sections) bool {
	return s.start <= other.start && other.end <= s.end
}

func (s sections) overlaps(other sections) bool {
	return s.start <= other.end && other.start <= s.end
}

func parseRange(s string) (sections, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return sections{}, fmt.Errorf("%w: %q", ErrBadRange, s)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return sections{}, fmt.Errorf("%w: %q: %v", ErrBadRange, s, err)
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return sections{}, fmt.Errorf("%w: %q: %v", ErrBadRange, s, err)
	}
	if start > end {
		return sections{}, fmt.Errorf("%w: %q is inverted", ErrBadRange, s)
	}

	return sections{start: start, end: end}, nil
}

func parsePair(line string) (sections, sections, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return sections{}, sections{}, fmt.Errorf("%w: %q", ErrBadPair, line)
	}
	first, err := parseRange(parts[0])
	if err != nil {
		return sections{}, sections{}, err
	}
	second, err := parseRange(parts[1])
	if err != nil {
		return sections{}, sections{}, err
	}

	return first, second, nil
}

// FullyContainedCount counts pairs where one assignment contains the other.
func FullyContainedCount(lines []string) (int, error) {
	count := 0
	for _, line := range lines {
		a, b, err := parsePair(line)
		if err != nil {
			return 0, err
		}
		if a.contains(b) || b.contains(a) {
			count++
		}
	}

	return count, nil
}

// OverlapCount counts pairs whose assignments share any section.
func OverlapCount(lines []string) (int, error) {
	count := 0
	for _, line := range lines {
		a, b, err := parsePair(line)
		if err != nil {
			return 0, err
		}
		if a.overlaps(b) {
			count++
		}
	}

	return count, nil
}
