// Package day16 traces light beams through the mirror contraption. A
// beam state is its tile plus heading; revisiting a state means the beam
// has joined an already-traced path and can stop.
package day16

import (
	"fmt"

	"aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{N: 16, Title: "The Floor Will Be Lava", Solve: solve})
}

func solve(in puzzle.Input) (puzzle.Answers, error) {
	c, err := parseContraption(in.Lines())
	if err != nil {
		return puzzle.Answers{}, err
	}
	return puzzle.Answers{
		Part1: c.energized(beam{Pos: puzzle.Pt(0, 0), Dir: right}),
		Part2: c.maxEnergized(),
	}, nil
}

type position = puzzle.Point[int]

var (
	up    = puzzle.Pt(-1, 0)
	down  = puzzle.Pt(1, 0)
	left  = puzzle.Pt(0, -1)
	right = puzzle.Pt(0, 1)
)

type beam struct {
	Pos position
	Dir position
}

type contraption struct {
	Tiles []string
}

func parseContraption(lines []string) (*contraption, error) {
	for x, line := range lines {
		if x > 0 && len(line) != len(lines[0]) {
			return nil, fmt.Errorf("day16: ragged row %q", line)
		}
		for y := 0; y < len(line); y++ {
			switch line[y] {
			case '.', '/', '\\', '|', '-':
			default:
				return nil, fmt.Errorf("day16: invalid tile %q at row %d col %d", line[y], x, y)
			}
		}
	}
	return &contraption{Tiles: lines}, nil
}

// next returns the headings a beam leaves a tile with.
func next(tile byte, dir position) []position {
	switch tile {
	case '/':
		return []position{puzzle.Pt(-dir.Y, -dir.X)}
	case '\\':
		return []position{puzzle.Pt(dir.Y, dir.X)}
	case '|':
		if dir.Y != 0 {
			return []position{up, down}
		}
	case '-':
		if dir.X != 0 {
			return []position{left, right}
		}
	}
	return []position{dir}
}

// energized counts the tiles visited by a beam entering at start.
func (c *contraption) energized(start beam) int {
	seen := make(map[beam]bool)
	tiles := make(map[position]bool)

	stack := []beam{start}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if b.Pos.X < 0 || b.Pos.X >= len(c.Tiles) || b.Pos.Y < 0 || b.Pos.Y >= len(c.Tiles[b.Pos.X]) {
			continue
		}
		if seen[b] {
			continue
		}
		seen[b] = true
		tiles[b.Pos] = true

		for _, d := range next(c.Tiles[b.Pos.X][b.Pos.Y], b.Dir) {
			stack = append(stack, beam{Pos: puzzle.Pt(b.Pos.X+d.X, b.Pos.Y+d.Y), Dir: d})
		}
	}

	return len(tiles)
}

// maxEnergized tries a beam entering from every edge tile.
func (c *contraption) maxEnergized() int {
	best := 0
	rows := len(c.Tiles)
	if rows == 0 {
		return 0
	}
	cols := len(c.Tiles[0])

	for x := 0; x < rows; x++ {
		best = max(best, c.energized(beam{Pos: puzzle.Pt(x, 0), Dir: right}))
		best = max(best, c.energized(beam{Pos: puzzle.Pt(x, cols-1), Dir: left}))
	}
	for y := 0; y < cols; y++ {
		best = max(best, c.energized(beam{Pos: puzzle.Pt(0, y), Dir: down}))
		best = max(best, c.energized(beam{Pos: puzzle.Pt(rows-1, y), Dir: up}))
	}
	return best
}
