// Package day12 counts the ways each damaged spring row can satisfy its
// group sizes. A memoized recursion over (position, group) keeps the
// unfolded part 2 rows tractable.
package day12

import (
	"fmt"
	"strconv"
	"strings"

	"aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{N: 12, Title: "Hot Springs", Solve: solve})
}

func solve(in puzzle.Input) (puzzle.Answers, error) {
	records, err := parseRecords(in.Lines())
	if err != nil {
		return puzzle.Answers{}, err
	}

	var p1, p2 int64
	for _, r := range records {
		p1 += r.arrangements()
		p2 += r.unfold(5).arrangements()
	}
	return puzzle.Answers{Part1: p1, Part2: p2}, nil
}

type record struct {
	Springs string
	Groups  []int
}

func parseRecords(lines []string) ([]record, error) {
	records := make([]record, 0, len(lines))
	for _, line := range lines {
		springs, rawGroups, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("day12: malformed record %q", line)
		}
		if i := strings.IndexFunc(springs, func(r rune) bool {
			return r != '.' && r != '#' && r != '?'
		}); i >= 0 {
			return nil, fmt.Errorf("day12: invalid spring %q in %q", springs[i], line)
		}

		var groups []int
		for _, f := range strings.Split(rawGroups, ",") {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("day12: malformed group in %q: %w", line, err)
			}
			groups = append(groups, n)
		}
		records = append(records, record{Springs: springs, Groups: groups})
	}
	return records, nil
}

// unfold repeats the springs joined by '?' and the groups verbatim.
func (r record) unfold(times int) record {
	springs := make([]string, times)
	groups := make([]int, 0, times*len(r.Groups))
	for i := 0; i < times; i++ {
		springs[i] = r.Springs
		groups = append(groups, r.Groups...)
	}
	return record{Springs: strings.Join(springs, "?"), Groups: groups}
}

type memoKey struct {
	pos, group int
}

func (r record) arrangements() int64 {
	memo := make(map[memoKey]int64)

	var count func(pos, group int) int64
	count = func(pos, group int) int64 {
		if pos >= len(r.Springs) {
			if group == len(r.Groups) {
				return 1
			}
			return 0
		}
		key := memoKey{pos, group}
		if n, ok := memo[key]; ok {
			return n
		}

		var n int64
		c := r.Springs[pos]
		if c == '.' || c == '?' {
			n += count(pos+1, group)
		}
		if (c == '#' || c == '?') && group < len(r.Groups) && r.fits(pos, r.Groups[group]) {
			n += count(pos+r.Groups[group]+1, group+1)
		}

		memo[key] = n
		return n
	}

	return count(0, 0)
}

// fits reports whether a group of size damaged springs can start at pos:
// no operational spring inside it and no damaged spring directly after.
func (r record) fits(pos, size int) bool {
	if pos+size > len(r.Springs) {
		return false
	}
	if strings.ContainsRune(r.Springs[pos:pos+size], '.') {
		return false
	}
	return pos+size == len(r.Springs) || r.Springs[pos+size] != '#'
}
