// Package input holds the file-reading and line-parsing helpers shared by
// every puzzle day. Inputs are small static files, so everything is read
// eagerly into memory.
package input

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Lines reads path and returns its lines without trailing newlines.
func Lines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

// Contents reads path into a single string with normalized line endings.
func Contents(path string) (string, error) {
	lines, err := Lines(path)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// Groups reads path and splits its lines into blank-line separated blocks.
func Groups(path string) ([][]string, error) {
	lines, err := Lines(path)
	if err != nil {
		return nil, err
	}
	return SplitGroups(lines), nil
}

// SplitGroups splits lines into blocks separated by empty lines. Empty
// blocks produced by consecutive blank lines are dropped.
func SplitGroups(lines []string) [][]string {
	var groups [][]string
	var current []string
	for _, line := range lines {
		if line == "" {
			if len(current) > 0 {
				groups = append(groups, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// ParseLines applies parse to every line and collects the results. The
// first failing line aborts the parse with its 1-based line number.
func ParseLines[T any](lines []string, parse func(string) (T, error)) ([]T, error) {
	parsed := make([]T, 0, len(lines))
	for i, line := range lines {
		value, err := parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		parsed = append(parsed, value)
	}
	return parsed, nil
}

// Int parses a signed integer, accepting an explicit leading +.
func Int(s string) (int, error) {
	value, err := strconv.Atoi(strings.TrimPrefix(s, "+"))
	if err != nil {
		return 0, fmt.Errorf("parse integer %q: %w", s, err)
	}
	return value, nil
}

// Ints parses one integer per line.
func Ints(lines []string) ([]int, error) {
	return ParseLines(lines, Int)
}
