// Package day20 solves Grove Positioning System: decrypt a circular list
// of coordinates by mixing, moving each number by its own value.
//
// Mixing removes a number and reinserts it with the offset taken modulo
// n-1, since the list is circular around the moving element. The result is
// therefore some rotation of the decrypted file, which leaves the grove
// coordinates unchanged.
package day20

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for file parsing and coordinate lookup.
var (
	// ErrBadNumber is returned for a line that is not an integer.
	ErrBadNumber = errors.New("day20: malformed number")
	// ErrNoZero is returned when the file has no 0 to anchor coordinates.
	ErrNoZero = errors.New("day20: value 0 not found")
)

// decryptionKey and decryptionRounds are the part-two parameters.
const (
	decryptionKey    = 811589153
	decryptionRounds = 10
)

func parseNumbers(lines []string) ([]int, error) {
	numbers := make([]int, 0, len(lines))
	for _, line := range lines {
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadNumber, line, err)
		}
		numbers = append(numbers, n)
	}

	return numbers, nil
}

// Mix runs the given number of mixing rounds over values and returns the
// decrypted sequence. Every round moves the numbers in their original file
// order. The returned slice may be an arbitrary rotation of the circle.
func Mix(values []int, rounds int) []int {
	type entry struct {
		value int
	}
	file := make([]*entry, len(values))
	order := make([]*entry, len(values))
	for i, v := range values {
		e := &entry{value: v}
		file[i] = e
		order[i] = e
	}

	n := len(order)
	if n < 2 {
		out := make([]int, len(values))
		copy(out, values)
		return out
	}

	for round := 0; round < rounds; round++ {
		for _, e := range file {
			i := 0
			for order[i] != e {
				i++
			}
			order = append(order[:i], order[i+1:]...)

			j := (i + e.value) % (n - 1)
			if j < 0 {
				j += n - 1
			}
			order = append(order, nil)
			copy(order[j+1:], order[j:])
			order[j] = e
		}
	}

	out := make([]int, n)
	for i, e := range order {
		out[i] = e.value
	}

	return out
}

// groveSum adds the values 1000, 2000 and 3000 positions after the 0.
func groveSum(mixed []int) (int, error) {
	zero := -1
	for i, v := range mixed {
		if v == 0 {
			zero = i
			break
		}
	}
	if zero < 0 {
		return 0, ErrNoZero
	}

	sum := 0
	for _, offset := range [3]int{1000, 2000, 3000} {
		sum += mixed[(zero+offset)%len(mixed)]
	}

	return sum, nil
}

// GroveCoordinates mixes the file once and returns the coordinate sum.
func GroveCoordinates(lines []string) (int, error) {
	numbers, err := parseNumbers(lines)
	if err != nil {
		return 0, err
	}

	return groveSum(Mix(numbers, 1))
}

// DecryptedGroveCoordinates applies the decryption key, mixes ten rounds
// and returns the coordinate sum.
func DecryptedGroveCoordinates(lines []string) (int, error) {
	numbers, err := parseNumbers(lines)
	if err != nil {
		return 0, err
	}
	for i := range numbers {
		numbers[i] *= decryptionKey
	}

	return groveSum(Mix(numbers, decryptionRounds))
}
