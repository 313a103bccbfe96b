// Package day13 solves Distress Signal: compare nested list packets and
// order them according to the distress-signal protocol.
package day13

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/advent2022/input"
)

// Sentinel errors for packet parsing.
var (
	// ErrBadPacket is returned for a packet that is not a well-formed
	// bracketed list of integers.
	ErrBadPacket = errors.New("day13: malformed packet")
	// ErrBadPair is returned when a pair block does not hold exactly two packets.
	ErrBadPair = errors.New("day13: expected a pair of packets")
)

// packet is either an integer or a list of packets.
type packet struct {
	num    int
	list   []packet
	isList bool
}

// parsePacket parses one full packet line.
func parsePacket(s string) (packet, error) {
	p, rest, err := parseValue(s)
	if err != nil {
		return packet{}, err
	}
	if rest != "" {
		return packet{}, fmt.Errorf("%w: trailing %q", ErrBadPacket, rest)
	}

	return p, nil
}

// parseValue consumes one packet value from the front of s and returns the
// unconsumed remainder.
func parseValue(s string) (packet, string, error) {
	if s == "" {
		return packet{}, "", fmt.Errorf("%w: unexpected end of input", ErrBadPacket)
	}
	if s[0] != '[' {
		return parseNumber(s)
	}

	p := packet{isList: true}
	s = s[1:]
	for {
		if s == "" {
			return packet{}, "", fmt.Errorf("%w: unterminated list", ErrBadPacket)
		}
		if s[0] == ']' {
			return p, s[1:], nil
		}
		elem, rest, err := parseValue(s)
		if err != nil {
			return packet{}, "", err
		}
		p.list = append(p.list, elem)
		s = rest
		switch {
		case s == "":
			return packet{}, "", fmt.Errorf("%w: unterminated list", ErrBadPacket)
		case s[0] == ',':
			s = s[1:]
		case s[0] != ']':
			return packet{}, "", fmt.Errorf("%w: unexpected %q", ErrBadPacket, s[0])
		}
	}
}

func parseNumber(s string) (packet, string, error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return packet{}, "", fmt.Errorf("%w: unexpected %q", ErrBadPacket, s[0])
	}
	n := 0
	for _, c := range s[:i] {
		n = n*10 + int(c-'0')
	}

	return packet{num: n}, s[i:], nil
}

// compare orders two packets: negative when a comes first, positive when b
// comes first, zero when undecided.
func compare(a, b packet) int {
	switch {
	case !a.isList && !b.isList:
		return a.num - b.num
	case !a.isList:
		return compare(packet{isList: true, list: []packet{a}}, b)
	case !b.isList:
		return compare(a, packet{isList: true, list: []packet{b}})
	}

	for i := 0; i < len(a.list) && i < len(b.list); i++ {
		if c := compare(a.list[i], b.list[i]); c != 0 {
			return c
		}
	}

	return len(a.list) - len(b.list)
}

// OrderedPairSum sums the 1-based indices of packet pairs already in the
// right order.
func OrderedPairSum(lines []string) (int, error) {
	sum := 0
	for i, block := range input.Blocks(lines) {
		if len(block) != 2 {
			return 0, fmt.Errorf("%w: block %d has %d lines", ErrBadPair, i+1, len(block))
		}
		left, err := parsePacket(block[0])
		if err != nil {
			return 0, err
		}
		right, err := parsePacket(block[1])
		if err != nil {
			return 0, err
		}
		if compare(left, right) < 0 {
			sum += i + 1
		}
	}

	return sum, nil
}

// DecoderKey sorts all packets together with the [[2]] and [[6]] dividers and
// multiplies the dividers' 1-based positions.
func DecoderKey(lines []string) (int, error) {
	divider := func(n int) *packet {
		return &packet{isList: true, list: []packet{{isList: true, list: []packet{{num: n}}}}}
	}
	first, second := divider(2), divider(6)
	packets := []*packet{first, second}
	for _, line := range lines {
		if line == "" {
			continue
		}
		p, err := parsePacket(line)
		if err != nil {
			return 0, err
		}
		packets = append(packets, &p)
	}

	sort.Slice(packets, func(i, j int) bool { return compare(*packets[i], *packets[j]) < 0 })

	key := 1
	for i, p := range packets {
		if p == first || p == second {
			key *= i + 1
		}
	}

	return key, nil
}
