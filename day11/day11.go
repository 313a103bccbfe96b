// Package day11 solves Monkey in the Middle: monkeys inspect and throw
// items by simple arithmetic rules; rank the two busiest inspectors.
package day11

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2022/input"
)

// Sentinel errors for monkey parsing and options.
var (
	// ErrBadMonkey is returned when a monkey block misses a required line.
	ErrBadMonkey = errors.New("day11: malformed monkey description")
	// ErrBadOperation is returned for an operation outside old+n, old*n, old*old.
	ErrBadOperation = errors.New("day11: invalid monkey operation")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("day11: invalid option supplied")
)

// operation transforms an item's worry level.
type operation struct {
	multiply bool // false is addition
	square   bool
	operand  int
}

func (op operation) apply(old int) int {
	switch {
	case op.square:
		return old * old
	case op.multiply:
		return old * op.operand
	default:
		return old + op.operand
	}
}

func parseOperation(s string) (operation, error) {
	fields := strings.Split(s, " ")
	if len(fields) != 3 || fields[0] != "old" {
		return operation{}, fmt.Errorf("%w: %q", ErrBadOperation, s)
	}
	if fields[1] == "*" && fields[2] == "old" {
		return operation{multiply: true, square: true}, nil
	}
	operand, err := strconv.Atoi(fields[2])
	if err != nil {
		return operation{}, fmt.Errorf("%w: %q: %v", ErrBadOperation, s, err)
	}
	switch fields[1] {
	case "*":
		return operation{multiply: true, operand: operand}, nil
	case "+":
		return operation{operand: operand}, nil
	default:
		return operation{}, fmt.Errorf("%w: %q", ErrBadOperation, s)
	}
}

// monkey holds its item queue and throwing rule.
type monkey struct {
	items       []int
	op          operation
	divisor     int
	onTrue      int
	onFalse     int
	inspections int
}

// stripPrefixInt parses the integer following a required line prefix.
func stripPrefixInt(line, prefix string) (int, error) {
	rest, ok := strings.CutPrefix(line, prefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadMonkey, line)
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrBadMonkey, line, err)
	}

	return n, nil
}

func parseMonkey(block []string) (*monkey, error) {
	if len(block) != 6 {
		return nil, fmt.Errorf("%w: expected 6 lines, got %d", ErrBadMonkey, len(block))
	}

	itemsLine, ok := strings.CutPrefix(block[1], "  Starting items: ")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadMonkey, block[1])
	}
	var items []int
	for _, item := range strings.Split(itemsLine, ", ") {
		n, err := strconv.Atoi(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadMonkey, item, err)
		}
		items = append(items, n)
	}

	opLine, ok := strings.CutPrefix(block[2], "  Operation: new = ")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadMonkey, block[2])
	}
	op, err := parseOperation(opLine)
	if err != nil {
		return nil, err
	}

	divisor, err := stripPrefixInt(block[3], "  Test: divisible by ")
	if err != nil {
		return nil, err
	}
	onTrue, err := stripPrefixInt(block[4], "    If true: throw to monkey ")
	if err != nil {
		return nil, err
	}
	onFalse, err := stripPrefixInt(block[5], "    If false: throw to monkey ")
	if err != nil {
		return nil, err
	}

	return &monkey{
		items:   items,
		op:      op,
		divisor: divisor,
		onTrue:  onTrue,
		onFalse: onFalse,
	}, nil
}

func parseMonkeys(lines []string) ([]*monkey, error) {
	blocks := input.Blocks(lines)
	monkeys := make([]*monkey, 0, len(blocks))
	for _, block := range blocks {
		m, err := parseMonkey(block)
		if err != nil {
			return nil, err
		}
		monkeys = append(monkeys, m)
	}

	return monkeys, nil
}

// Option configures the simulation via functional arguments.
type Option func(*Options)

// Options holds simulation parameters.
type Options struct {
	// Rounds is the number of full keep-away rounds to play.
	Rounds int
	// Relief divides worry by three after every inspection. When disabled,
	// worry is reduced modulo the product of all divisors instead.
	Relief bool

	err error
}

// DefaultOptions plays 20 rounds with relief, part one's rules.
func DefaultOptions() Options {
	return Options{Rounds: 20, Relief: true}
}

// WithRounds sets the number of rounds; non-positive values are rejected.
func WithRounds(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: rounds must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Rounds = n
	}
}

// WithoutRelief disables the divide-by-three relief, switching worry
// management to modular arithmetic.
func WithoutRelief() Option {
	return func(o *Options) { o.Relief = false }
}

// MonkeyBusiness plays the keep-away game and multiplies the inspection
// counts of the two most active monkeys.
func MonkeyBusiness(lines []string, opts ...Option) (int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return 0, cfg.err
	}

	monkeys, err := parseMonkeys(lines)
	if err != nil {
		return 0, err
	}

	modulo := 1
	for _, m := range monkeys {
		modulo *= m.divisor
	}

	for round := 0; round < cfg.Rounds; round++ {
		for _, m := range monkeys {
			for _, item := range m.items {
				m.inspections++
				worry := m.op.apply(item)
				if cfg.Relief {
					worry /= 3
				} else {
					worry %= modulo
				}
				target := m.onFalse
				if worry%m.divisor == 0 {
					target = m.onTrue
				}
				monkeys[target].items = append(monkeys[target].items, worry)
			}
			m.items = m.items[:0]
		}
	}

	activity := make([]int, len(monkeys))
	for i, m := range monkeys {
		activity[i] = m.inspections
	}
	sort.Sort(sort.Reverse(sort.IntSlice(activity)))

	return activity[0] * activity[1], nil
}
