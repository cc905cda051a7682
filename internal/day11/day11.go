// Package day11 sums shortest paths between galaxy pairs after cosmic
// expansion: every empty row and column of the image counts as factor
// rows or columns wide.
package day11

import (
	"fmt"
	"sort"

	"aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{N: 11, Title: "Cosmic Expansion", Solve: solve})
}

func solve(in puzzle.Input) (puzzle.Answers, error) {
	img, err := parseImage(in.Lines())
	if err != nil {
		return puzzle.Answers{}, err
	}
	return puzzle.Answers{
		Part1: img.distanceSum(2),
		Part2: img.distanceSum(1_000_000),
	}, nil
}

type position = puzzle.Point[int]

type image struct {
	Galaxies  []position
	EmptyRows []int // sorted
	EmptyCols []int // sorted
}

func parseImage(lines []string) (*image, error) {
	img := &image{}
	occupiedCols := make(map[int]bool)
	width := 0

	for x, line := range lines {
		if len(line) > width {
			width = len(line)
		}
		occupied := false
		for y := 0; y < len(line); y++ {
			switch line[y] {
			case '#':
				img.Galaxies = append(img.Galaxies, puzzle.Pt(x, y))
				occupiedCols[y] = true
				occupied = true
			case '.':
			default:
				return nil, fmt.Errorf("day11: invalid tile %q at row %d col %d", line[y], x, y)
			}
		}
		if !occupied {
			img.EmptyRows = append(img.EmptyRows, x)
		}
	}

	for y := 0; y < width; y++ {
		if !occupiedCols[y] {
			img.EmptyCols = append(img.EmptyCols, y)
		}
	}

	return img, nil
}

// distanceSum adds the Manhattan distances between all galaxy pairs,
// with every empty row and column counting factor times.
func (img *image) distanceSum(factor int64) int64 {
	expanded := make([]puzzle.Point[int64], len(img.Galaxies))
	for i, g := range img.Galaxies {
		expanded[i] = puzzle.Pt(
			int64(g.X)+(factor-1)*int64(countBelow(img.EmptyRows, g.X)),
			int64(g.Y)+(factor-1)*int64(countBelow(img.EmptyCols, g.Y)),
		)
	}

	var sum int64
	for i, a := range expanded {
		for _, b := range expanded[i+1:] {
			sum += absDiff(a.X, b.X) + absDiff(a.Y, b.Y)
		}
	}
	return sum
}

func countBelow(sorted []int, v int) int {
	return sort.SearchInts(sorted, v)
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
