// Package puzzle provides the shared scaffolding for the daily solvers:
// input loading, the solver registry, and the small helpers every day
// package leans on (dedented test fixtures, a generic grid point).
package puzzle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Input is the raw text of one day's puzzle input. Solvers pick the view
// they need: most days consume Lines(), day 15 consumes Text().
type Input struct {
	raw string
}

// Load reads <dir>/dayNN.txt for the given day.
func Load(dir string, day int) (Input, error) {
	path := filepath.Join(dir, Filename(day))
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("puzzle: unable to read input for day %d: %w", day, err)
	}
	return Input{raw: string(data)}, nil
}

// Filename returns the conventional input file name for a day, e.g. "day07.txt".
func Filename(day int) string {
	return fmt.Sprintf("day%02d.txt", day)
}

// FromString wraps literal input text, mainly for tests.
func FromString(s string) Input {
	return Input{raw: s}
}

// Text returns the input as a single string without the trailing newline.
func (in Input) Text() string {
	return strings.TrimRight(in.raw, "\r\n")
}

// Lines returns the input split into lines. Interior blank lines are
// preserved; several days use them as section separators.
func (in Input) Lines() []string {
	text := strings.TrimRight(in.raw, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}

// Dedent turns an indented multi-line string literal into input lines:
// the common leading whitespace of non-empty lines is stripped, and
// leading/trailing empty lines are removed. This lets tests write sample
// fixtures inline at the natural code indentation.
func Dedent(s string) Input {
	lines := strings.Split(s, "\n")

	indent := -1
	for _, l := range lines {
		trimmed := strings.TrimLeft(l, " \t")
		if trimmed == "" {
			continue
		}
		n := len(l) - len(trimmed)
		if indent < 0 || n < indent {
			indent = n
		}
	}

	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if len(l) >= indent && indent > 0 {
			l = l[indent:]
		}
		out = append(out, strings.TrimRight(l, " \t"))
	}

	// Drop blank lines at both ends, keep interior ones.
	start, end := 0, len(out)
	for start < end && out[start] == "" {
		start++
	}
	for end > start && out[end-1] == "" {
		end--
	}

	return Input{raw: strings.Join(out[start:end], "\n")}
}
