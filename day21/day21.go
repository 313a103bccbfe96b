// Package day21 solves Monkey Math: evaluate a tree of yelling monkeys,
// then work out the number a human must yell to balance the root equality.
package day21

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for job parsing and evaluation.
var (
	// ErrBadJob is returned for a line that is neither a number nor a
	// two-operand expression.
	ErrBadJob = errors.New("day21: malformed monkey job")
	// ErrUnknownMonkey is returned when a job references an undefined monkey.
	ErrUnknownMonkey = errors.New("day21: reference to unknown monkey")
	// ErrNoRoot is returned when the root monkey is missing.
	ErrNoRoot = errors.New("day21: monkey root not found")
	// ErrNoHuman is returned when humn does not influence the root equality.
	ErrNoHuman = errors.New("day21: humn not found under root")
	// ErrUnsolvable is returned when humn influences both operands of a
	// node, which the inverse unwind cannot isolate.
	ErrUnsolvable = errors.New("day21: humn appears on both sides")
)

const (
	rootName  = "root"
	humanName = "humn"
)

// job is either a literal number or an operation over two other monkeys.
type job struct {
	literal     int
	op          byte // 0 for literals
	left, right string
}

func parseJobs(lines []string) (map[string]job, error) {
	jobs := make(map[string]job, len(lines))
	for _, line := range lines {
		name, rest, ok := strings.Cut(line, ": ")
		if !ok || len(name) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadJob, line)
		}
		if n, err := strconv.Atoi(rest); err == nil {
			jobs[name] = job{literal: n}
			continue
		}
		fields := strings.Split(rest, " ")
		if len(fields) != 3 || len(fields[1]) != 1 || !strings.ContainsAny(fields[1], "+-*/") {
			return nil, fmt.Errorf("%w: %q", ErrBadJob, line)
		}
		jobs[name] = job{op: fields[1][0], left: fields[0], right: fields[2]}
	}

	return jobs, nil
}

// eval computes the number monkey name yells.
func eval(jobs map[string]job, name string) (int, error) {
	j, ok := jobs[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMonkey, name)
	}
	if j.op == 0 {
		return j.literal, nil
	}

	left, err := eval(jobs, j.left)
	if err != nil {
		return 0, err
	}
	right, err := eval(jobs, j.right)
	if err != nil {
		return 0, err
	}

	switch j.op {
	case '+':
		return left + right, nil
	case '-':
		return left - right, nil
	case '*':
		return left * right, nil
	default:
		return left / right, nil
	}
}

// RootNumber returns the number the root monkey yells.
func RootNumber(lines []string) (int, error) {
	jobs, err := parseJobs(lines)
	if err != nil {
		return 0, err
	}
	if _, ok := jobs[rootName]; !ok {
		return 0, ErrNoRoot
	}

	return eval(jobs, rootName)
}

// dependsOnHuman reports whether name's subtree contains humn.
func dependsOnHuman(jobs map[string]job, name string) bool {
	if name == humanName {
		return true
	}
	j, ok := jobs[name]
	if !ok || j.op == 0 {
		return false
	}

	return dependsOnHuman(jobs, j.left) || dependsOnHuman(jobs, j.right)
}

// solve walks down the humn-carrying side, inverting each operation so
// that the subtree must equal target.
func solve(jobs map[string]job, name string, target int) (int, error) {
	if name == humanName {
		return target, nil
	}
	j, ok := jobs[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMonkey, name)
	}

	humanLeft := dependsOnHuman(jobs, j.left)
	if humanLeft && dependsOnHuman(jobs, j.right) {
		return 0, fmt.Errorf("%w: at %q", ErrUnsolvable, name)
	}
	known := j.right
	if !humanLeft {
		known = j.left
	}
	value, err := eval(jobs, known)
	if err != nil {
		return 0, err
	}

	var next int
	switch {
	case j.op == '+':
		next = target - value
	case j.op == '*':
		next = target / value
	case j.op == '-' && humanLeft:
		next = target + value // humn - value = target
	case j.op == '-':
		next = value - target // value - humn = target
	case j.op == '/' && humanLeft:
		next = target * value // humn / value = target
	default:
		next = value / target // value / humn = target
	}

	branch := j.left
	if !humanLeft {
		branch = j.right
	}

	return solve(jobs, branch, next)
}

// HumanNumber returns the number humn must yell so that root's two
// operands are equal.
func HumanNumber(lines []string) (int, error) {
	jobs, err := parseJobs(lines)
	if err != nil {
		return 0, err
	}
	root, ok := jobs[rootName]
	if !ok {
		return 0, ErrNoRoot
	}
	if root.op == 0 {
		return 0, ErrNoHuman
	}

	leftHuman := dependsOnHuman(jobs, root.left)
	rightHuman := dependsOnHuman(jobs, root.right)
	switch {
	case leftHuman && rightHuman:
		return 0, fmt.Errorf("%w: at %q", ErrUnsolvable, rootName)
	case leftHuman:
		target, err := eval(jobs, root.right)
		if err != nil {
			return 0, err
		}
		return solve(jobs, root.left, target)
	case rightHuman:
		target, err := eval(jobs, root.left)
		if err != nil {
			return 0, err
		}
		return solve(jobs, root.right, target)
	default:
		return 0, ErrNoHuman
	}
}
