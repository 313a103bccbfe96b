// Package day07 solves No Space Left On Device: rebuild a directory tree
// from a shell transcript and size up its directories.
package day07

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for transcript replay.
var (
	// ErrBadCommand is returned for a $-line that is not cd or ls.
	ErrBadCommand = errors.New("day07: invalid command")
	// ErrBadEntry is returned for an ls output line that is neither a dir nor a file.
	ErrBadEntry = errors.New("day07: invalid directory entry")
	// ErrNotDirectory is returned when cd targets a plain file.
	ErrNotDirectory = errors.New("day07: not a directory")
	// ErrNotFound is returned when cd targets an unlisted name.
	ErrNotFound = errors.New("day07: no such directory")
	// ErrNoCandidate is returned when no directory frees enough space.
	ErrNoCandidate = errors.New("day07: no directory large enough to delete")
)

const (
	diskSize      = 70000000
	updateSize    = 30000000
	smallDirLimit = 100000
)

// node is a file (entries nil) or a directory.
type node struct {
	size    int // file size; 0 for directories
	entries map[string]*node
}

func newDir() *node {
	return &node{entries: map[string]*node{}}
}

func (n *node) isDir() bool { return n.entries != nil }

// parseEntry decodes one ls output line.
func parseEntry(line string) (string, *node, error) {
	fields := strings.Split(line, " ")
	if len(fields) != 2 {
		return "", nil, fmt.Errorf("%w: %q", ErrBadEntry, line)
	}
	if fields[0] == "dir" {
		return fields[1], newDir(), nil
	}
	size, err := strconv.Atoi(fields[0])
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q: %v", ErrBadEntry, line, err)
	}

	return fields[1], &node{size: size}, nil
}

// replay walks the transcript, tracking the directory stack and filling in
// ls listings as they appear.
func replay(lines []string) (*node, error) {
	root := newDir()
	stack := []*node{root}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		fields := strings.Split(line, " ")
		switch {
		case len(fields) == 3 && fields[0] == "$" && fields[1] == "cd":
			switch name := fields[2]; name {
			case "/":
				stack = stack[:1]
			case "..":
				if len(stack) > 1 {
					stack = stack[:len(stack)-1]
				}
			default:
				cwd := stack[len(stack)-1]
				next, ok := cwd.entries[name]
				if !ok {
					return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
				}
				if !next.isDir() {
					return nil, fmt.Errorf("%w: %q", ErrNotDirectory, name)
				}
				stack = append(stack, next)
			}
		case len(fields) == 2 && fields[0] == "$" && fields[1] == "ls":
			cwd := stack[len(stack)-1]
			for i+1 < len(lines) && !strings.HasPrefix(lines[i+1], "$") {
				i++
				name, child, err := parseEntry(lines[i])
				if err != nil {
					return nil, err
				}
				cwd.entries[name] = child
			}
		default:
			return nil, fmt.Errorf("%w: %q", ErrBadCommand, line)
		}
	}

	return root, nil
}

// dirSizes returns the total size of n and appends every directory total to
// sizes along the way.
func dirSizes(n *node, sizes *[]int) int {
	if !n.isDir() {
		return n.size
	}
	total := 0
	for _, child := range n.entries {
		total += dirSizes(child, sizes)
	}
	*sizes = append(*sizes, total)

	return total
}

// SmallDirectoriesTotal sums the sizes of all directories of at most 100000.
func SmallDirectoriesTotal(lines []string) (int, error) {
	root, err := replay(lines)
	if err != nil {
		return 0, err
	}

	var sizes []int
	dirSizes(root, &sizes)

	total := 0
	for _, size := range sizes {
		if size <= smallDirLimit {
			total += size
		}
	}

	return total, nil
}

// SmallestFreeingDirSize finds the smallest directory whose deletion leaves
// room for the update.
func SmallestFreeingDirSize(lines []string) (int, error) {
	root, err := replay(lines)
	if err != nil {
		return 0, err
	}

	var sizes []int
	used := dirSizes(root, &sizes)
	required := updateSize - (diskSize - used)

	best := 0
	found := false
	for _, size := range sizes {
		if size >= required && (!found || size < best) {
			best = size
			found = true
		}
	}
	if !found {
		return 0, ErrNoCandidate
	}

	return best, nil
}
