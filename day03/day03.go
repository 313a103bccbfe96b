// Package day03 solves Rucksack Reorganization: find the item common to a
// rucksack's two compartments, and the badge common to each elf trio.
package day03

import (
	"errors"
	"fmt"
)

// Sentinel errors for rucksack analysis.
var (
	// ErrOddItems is returned when a rucksack has an odd item count.
	ErrOddItems = errors.New("day03: rucksack holds an odd number of items")
	// ErrNoCommonItem is returned when no item spans the compartments/group.
	ErrNoCommonItem = errors.New("day03: no common item found")
	// ErrManyCommonItems is returned when more than one item is shared.
	ErrManyCommonItems = errors.New("day03: more than one common item")
	// ErrBadItem is returned for an item outside a-z / A-Z.
	ErrBadItem = errors.New("day03: invalid item")
	// ErrShortGroup is returned when the input is not a multiple of three lines.
	ErrShortGroup = errors.New("day03: incomplete group of three rucksacks")
)

// priority maps a-z to 1-26 and A-Z to 27-52.
func priority(item byte) (int, error) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, nil
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadItem, item)
	}
}

func toSet(items string) map[byte]bool {
	set := make(map[byte]bool, len(items))
	for i := 0; i < len(items); i++ {
		set[items[i]] = true
	}

	return set
}

// commonItem returns the single item present in every set.
func commonItem(sets ...map[byte]bool) (byte, error) {
	overlap := sets[0]
	for _, set := range sets[1:] {
		next := make(map[byte]bool)
		for item := range overlap {
			if set[item] {
				next[item] = true
			}
		}
		overlap = next
	}

	switch len(overlap) {
	case 0:
		return 0, ErrNoCommonItem
	case 1:
		for item := range overlap {
			return item, nil
		}
	}

	return 0, ErrManyCommonItems
}

// PrioritySum totals the priority of the item each rucksack's two
// compartments share.
func PrioritySum(lines []string) (int, error) {
	total := 0
	for _, line := range lines {
		if len(line)%2 != 0 {
			return 0, fmt.Errorf("%w: %q", ErrOddItems, line)
		}
		half := len(line) / 2
		item, err := commonItem(toSet(line[:half]), toSet(line[half:]))
		if err != nil {
			return 0, err
		}
		p, err := priority(item)
		if err != nil {
			return 0, err
		}
		total += p
	}

	return total, nil
}

// BadgePrioritySum totals the priority of the badge item shared by each
// consecutive group of three rucksacks.
func BadgePrioritySum(lines []string) (int, error) {
	if len(lines)%3 != 0 {
		return 0, ErrShortGroup
	}

	total := 0
	for i := 0; i < len(lines); i += 3 {
		item, err := commonItem(toSet(lines[i]), toSet(lines[i+1]), toSet(lines[i+2]))
		if err != nil {
			return 0, err
		}
		p, err := priority(item)
		if err != nil {
			return 0, err
		}
		total += p
	}

	return total, nil
}
