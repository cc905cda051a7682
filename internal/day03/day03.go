// Package day03 scans the engine schematic for part numbers adjacent to
// symbols, and for gears: '*' symbols adjacent to exactly two parts.
package day03

import (
	"regexp"
	"strconv"

	"aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{N: 3, Title: "Gear Ratios", Solve: solve})
}

func solve(in puzzle.Input) (puzzle.Answers, error) {
	b, err := parseBoard(in.Lines())
	if err != nil {
		return puzzle.Answers{}, err
	}
	return puzzle.Answers{Part1: b.validPartSum(), Part2: b.gearRatioSum()}, nil
}

type position = puzzle.Point[int]

type enginePart struct {
	Value      int
	Start, End position // inclusive span on a single row
}

// adjacentTo reports whether any cell of the part's span touches the
// symbol, diagonals included.
func (p enginePart) adjacentTo(s symbol) bool {
	if absDiff(s.Position.X, p.Start.X) > 1 {
		return false
	}
	for y := p.Start.Y; y <= p.End.Y; y++ {
		if absDiff(s.Position.Y, y) <= 1 {
			return true
		}
	}
	return false
}

type symbol struct {
	Value    byte
	Position position
}

type board struct {
	Parts   []enginePart
	Symbols []symbol
}

var (
	partRe   = regexp.MustCompile(`[0-9]+`)
	symbolRe = regexp.MustCompile(`[^0-9.]`)
)

func parseBoard(lines []string) (board, error) {
	var b board

	for x, line := range lines {
		for _, loc := range partRe.FindAllStringIndex(line, -1) {
			value, err := strconv.Atoi(line[loc[0]:loc[1]])
			if err != nil {
				return board{}, err
			}
			b.Parts = append(b.Parts, enginePart{
				Value: value,
				Start: puzzle.Pt(x, loc[0]),
				End:   puzzle.Pt(x, loc[1]-1),
			})
		}
		for _, loc := range symbolRe.FindAllStringIndex(line, -1) {
			b.Symbols = append(b.Symbols, symbol{
				Value:    line[loc[0]],
				Position: puzzle.Pt(x, loc[0]),
			})
		}
	}

	return b, nil
}

func (b board) validParts() []enginePart {
	var valid []enginePart
	for _, p := range b.Parts {
		for _, s := range b.Symbols {
			if p.adjacentTo(s) {
				valid = append(valid, p)
				break
			}
		}
	}
	return valid
}

func (b board) validPartSum() int {
	sum := 0
	for _, p := range b.validParts() {
		sum += p.Value
	}
	return sum
}

func (b board) gearRatios() []int {
	var ratios []int
	for _, s := range b.Symbols {
		if s.Value != '*' {
			continue
		}
		ratio, adjacent := 1, 0
		for _, p := range b.Parts {
			if p.adjacentTo(s) {
				ratio *= p.Value
				adjacent++
			}
		}
		if adjacent == 2 {
			ratios = append(ratios, ratio)
		}
	}
	return ratios
}

func (b board) gearRatioSum() int {
	sum := 0
	for _, r := range b.gearRatios() {
		sum += r
	}
	return sum
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
