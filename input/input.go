// Package input holds the one helper every day package shares: reading a
// puzzle input file into a slice of lines, plus the small slicing utilities
// the fixtures and block-structured inputs need.
package input

import (
	"bufio"
	"os"
	"strings"
)

// ReadLines reads the file at path and returns its lines, without
// terminators. An unreadable file surfaces the underlying *os.PathError.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// Lines splits a literal fixture into lines, dropping a single trailing
// newline so that string fixtures read naturally in tests.
func Lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}

// Blocks groups lines into runs separated by blank lines. Several puzzles
// (calorie groups, crate drawings, monkey descriptions, packet pairs)
// structure their input this way.
func Blocks(lines []string) [][]string {
	var blocks [][]string
	var cur []string
	for _, line := range lines {
		if line == "" {
			blocks = append(blocks, cur)
			cur = nil
			continue
		}
		cur = append(cur, line)
	}
	if cur != nil || len(blocks) > 0 {
		blocks = append(blocks, cur)
	}

	return blocks
}
