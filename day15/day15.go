// Package day15 solves Beacon Exclusion Zone: sensors report their closest
// beacon by Manhattan distance, carving diamond-shaped exclusion zones.
//
// Row queries merge each sensor's projected interval instead of probing
// individual positions, so a row is answered in O(S log S) for S sensors.
package day15

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for sensor reports and the distress search.
var (
	// ErrBadReport is returned for a malformed sensor line.
	ErrBadReport = errors.New("day15: malformed sensor report")
	// ErrNoSensors is returned when the input has no sensor reports.
	ErrNoSensors = errors.New("day15: no sensor reports")
	// ErrNoBeacon is returned when no row in the search area has a gap.
	ErrNoBeacon = errors.New("day15: no position can hold the distress beacon")
)

// frequencyFactor converts an x coordinate into a tuning frequency.
const frequencyFactor = 4000000

type point struct {
	x, y int
}

// sensor pairs a sensor position with its exclusion radius.
type sensor struct {
	pos    point
	beacon point
	radius int
}

// span is an inclusive interval of x coordinates.
type span struct {
	lo, hi int
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

func parseSensors(lines []string) ([]sensor, error) {
	if len(lines) == 0 {
		return nil, ErrNoSensors
	}
	sensors := make([]sensor, 0, len(lines))
	for _, line := range lines {
		var s sensor
		_, err := fmt.Sscanf(line, "Sensor at x=%d, y=%d: closest beacon is at x=%d, y=%d",
			&s.pos.x, &s.pos.y, &s.beacon.x, &s.beacon.y)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadReport, line, err)
		}
		s.radius = abs(s.pos.x-s.beacon.x) + abs(s.pos.y-s.beacon.y)
		sensors = append(sensors, s)
	}

	return sensors, nil
}

// rowSpan projects a sensor's exclusion diamond onto row y.
func (s sensor) rowSpan(y int) (span, bool) {
	reach := s.radius - abs(s.pos.y-y)
	if reach < 0 {
		return span{}, false
	}

	return span{lo: s.pos.x - reach, hi: s.pos.x + reach}, true
}

// mergeSpans sorts and coalesces overlapping or touching intervals in place.
func mergeSpans(spans []span) []span {
	if len(spans) == 0 {
		return spans
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })

	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.lo <= last.hi+1 {
			if s.hi > last.hi {
				last.hi = s.hi
			}
			continue
		}
		merged = append(merged, s)
	}

	return merged
}

// ExcludedInRow counts positions in row y that cannot hold a beacon.
func ExcludedInRow(lines []string, y int) (int, error) {
	sensors, err := parseSensors(lines)
	if err != nil {
		return 0, err
	}

	spans := make([]span, 0, len(sensors))
	for _, s := range sensors {
		if sp, ok := s.rowSpan(y); ok {
			spans = append(spans, sp)
		}
	}

	count := 0
	for _, sp := range mergeSpans(spans) {
		count += sp.hi - sp.lo + 1
	}

	// Known beacons sitting in a merged span are not excluded positions.
	beacons := make(map[int]bool)
	for _, s := range sensors {
		if s.beacon.y == y {
			beacons[s.beacon.x] = true
		}
	}
	count -= len(beacons)

	return count, nil
}

// TuningFrequency locates the single uncovered position with both
// coordinates in [min, max] and returns x*4000000 + y.
func TuningFrequency(lines []string, min, max int) (int, error) {
	sensors, err := parseSensors(lines)
	if err != nil {
		return 0, err
	}

	spans := make([]span, 0, len(sensors))
	for y := min; y <= max; y++ {
		spans = spans[:0]
		for _, s := range sensors {
			if sp, ok := s.rowSpan(y); ok {
				spans = append(spans, sp)
			}
		}
		x := min
		for _, sp := range mergeSpans(spans) {
			if sp.lo > x {
				break
			}
			if sp.hi >= x {
				x = sp.hi + 1
			}
		}
		if x <= max {
			return x*frequencyFactor + y, nil
		}
	}

	return 0, ErrNoBeacon
}
