// Package day06 solves Tuning Trouble: locate the first window of distinct
// characters in the datastream buffer.
package day06

import "errors"

// Sentinel errors for marker detection.
var (
	// ErrEmptyInput is returned when there is no datastream line.
	ErrEmptyInput = errors.New("day06: empty input")
	// ErrNoMarker is returned when no all-distinct window exists.
	ErrNoMarker = errors.New("day06: no marker found")
)

const (
	packetWindow  = 4
	messageWindow = 14
)

// firstMarker returns the 1-based index of the character that completes the
// first run of size distinct characters.
func firstMarker(stream string, size int) (int, error) {
	counts := make(map[byte]int, size)
	for i := 0; i < len(stream); i++ {
		counts[stream[i]]++
		if i >= size {
			old := stream[i-size]
			counts[old]--
			if counts[old] == 0 {
				delete(counts, old)
			}
		}
		if len(counts) == size {
			return i + 1, nil
		}
	}

	return 0, ErrNoMarker
}

// PacketMarker finds the end of the first start-of-packet marker (4 distinct).
func PacketMarker(lines []string) (int, error) {
	if len(lines) == 0 {
		return 0, ErrEmptyInput
	}

	return firstMarker(lines[0], packetWindow)
}

// MessageMarker finds the end of the first start-of-message marker (14 distinct).
func MessageMarker(lines []string) (int, error) {
	if len(lines) == 0 {
		return 0, ErrEmptyInput
	}

	return firstMarker(lines[0], messageWindow)
}
