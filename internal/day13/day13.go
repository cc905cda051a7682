// Package day13 finds the mirror line in each ash pattern. Rows and
// columns are packed into bitmasks so a candidate line is checked by
// counting differing bits; part 2 wants the line with exactly one
// smudged cell instead of a perfect one.
package day13

import (
	"fmt"
	"math/bits"

	"aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{N: 13, Title: "Point of Incidence", Solve: solve})
}

func solve(in puzzle.Input) (puzzle.Answers, error) {
	patterns, err := parsePatterns(in.Lines())
	if err != nil {
		return puzzle.Answers{}, err
	}

	p1, p2 := 0, 0
	for i, p := range patterns {
		s1, ok := p.score(0)
		if !ok {
			return puzzle.Answers{}, fmt.Errorf("day13: pattern %d has no mirror line", i+1)
		}
		s2, ok := p.score(1)
		if !ok {
			return puzzle.Answers{}, fmt.Errorf("day13: pattern %d has no smudged mirror line", i+1)
		}
		p1 += s1
		p2 += s2
	}
	return puzzle.Answers{Part1: p1, Part2: p2}, nil
}

type pattern struct {
	Rows []uint64
	Cols []uint64
}

func parsePatterns(lines []string) ([]pattern, error) {
	var patterns []pattern
	var block []string

	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		p, err := parsePattern(block)
		if err != nil {
			return err
		}
		patterns = append(patterns, p)
		block = nil
		return nil
	}

	for _, line := range lines {
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		block = append(block, line)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return patterns, nil
}

func parsePattern(lines []string) (pattern, error) {
	width := len(lines[0])
	if width > 64 {
		return pattern{}, fmt.Errorf("day13: pattern wider than 64 cells")
	}

	p := pattern{
		Rows: make([]uint64, len(lines)),
		Cols: make([]uint64, width),
	}
	for x, line := range lines {
		if len(line) != width {
			return pattern{}, fmt.Errorf("day13: ragged pattern row %q", line)
		}
		for y := 0; y < width; y++ {
			switch line[y] {
			case '#':
				p.Rows[x] |= 1 << y
				p.Cols[y] |= 1 << x
			case '.':
			default:
				return pattern{}, fmt.Errorf("day13: invalid cell %q in %q", line[y], line)
			}
		}
	}
	return p, nil
}

// mirrorLine returns the number of masks before the mirror, or 0 when
// no line has exactly smudges differing cells across it.
func mirrorLine(masks []uint64, smudges int) int {
	for i := 1; i < len(masks); i++ {
		diff := 0
		for k := 0; i-1-k >= 0 && i+k < len(masks); k++ {
			diff += bits.OnesCount64(masks[i-1-k] ^ masks[i+k])
		}
		if diff == smudges {
			return i
		}
	}
	return 0
}

// score is 100 per row above a horizontal mirror, or 1 per column left
// of a vertical one.
func (p pattern) score(smudges int) (int, bool) {
	if rows := mirrorLine(p.Rows, smudges); rows > 0 {
		return 100 * rows, true
	}
	if cols := mirrorLine(p.Cols, smudges); cols > 0 {
		return cols, true
	}
	return 0, false
}
