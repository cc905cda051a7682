// Package day18 measures the lava lagoon dug by the plan. The trench
// vertices form a polygon, so the capacity is the shoelace area plus
// half the perimeter plus one (Pick's theorem counting boundary cells).
// Part 2 decodes the real plan from the hex color codes.
package day18

import (
	"fmt"
	"strconv"
	"strings"

	"aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{N: 18, Title: "Lavaduct Lagoon", Solve: solve})
}

func solve(in puzzle.Input) (puzzle.Answers, error) {
	steps, err := parsePlan(in.Lines())
	if err != nil {
		return puzzle.Answers{}, err
	}

	decoded := make([]trench, len(steps))
	for i, s := range steps {
		decoded[i], err = s.decodeColor()
		if err != nil {
			return puzzle.Answers{}, err
		}
	}

	p1, err := lagoonCapacity(steps)
	if err != nil {
		return puzzle.Answers{}, err
	}
	p2, err := lagoonCapacity(decoded)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.Answers{Part1: p1, Part2: p2}, nil
}

type trench struct {
	Dir    byte // U, D, L, R
	Length int64
	Color  string // six hex digits
}

func parsePlan(lines []string) ([]trench, error) {
	steps := make([]trench, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 3 || len(fields[0]) != 1 {
			return nil, fmt.Errorf("day18: malformed dig step %q", line)
		}

		dir := fields[0][0]
		switch dir {
		case 'U', 'D', 'L', 'R':
		default:
			return nil, fmt.Errorf("day18: invalid direction %q in %q", dir, line)
		}

		length, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("day18: malformed length in %q: %w", line, err)
		}

		color := strings.TrimSuffix(strings.TrimPrefix(fields[2], "(#"), ")")
		if len(color) != 6 {
			return nil, fmt.Errorf("day18: malformed color in %q", line)
		}

		steps = append(steps, trench{Dir: dir, Length: length, Color: color})
	}
	return steps, nil
}

// decodeColor reads the true step out of the color code: five hex
// digits of distance and one direction digit.
func (t trench) decodeColor() (trench, error) {
	length, err := strconv.ParseInt(t.Color[:5], 16, 64)
	if err != nil {
		return trench{}, fmt.Errorf("day18: malformed hex distance %q: %w", t.Color, err)
	}

	var dir byte
	switch t.Color[5] {
	case '0':
		dir = 'R'
	case '1':
		dir = 'D'
	case '2':
		dir = 'L'
	case '3':
		dir = 'U'
	default:
		return trench{}, fmt.Errorf("day18: invalid direction digit in color %q", t.Color)
	}

	return trench{Dir: dir, Length: length}, nil
}

var deltas = map[byte]puzzle.Point[int64]{
	'U': puzzle.Pt[int64](-1, 0),
	'D': puzzle.Pt[int64](1, 0),
	'L': puzzle.Pt[int64](0, -1),
	'R': puzzle.Pt[int64](0, 1),
}

// lagoonCapacity counts every cubic meter inside or on the trench. The
// shoelace sum runs in int64: trench coordinates reach 1e7, so float64
// would start rounding the cross products.
func lagoonCapacity(steps []trench) (int64, error) {
	var shoelace, perimeter int64
	cur := puzzle.Pt[int64](0, 0)

	for _, s := range steps {
		d := deltas[s.Dir]
		next := puzzle.Pt(cur.X+d.X*s.Length, cur.Y+d.Y*s.Length)
		shoelace += cur.Y*next.X - next.Y*cur.X
		perimeter += s.Length
		cur = next
	}

	if cur != puzzle.Pt[int64](0, 0) {
		return 0, fmt.Errorf("day18: dig plan does not close, ends at %v", cur)
	}

	area := shoelace
	if area < 0 {
		area = -area
	}
	return area/2 + perimeter/2 + 1, nil
}
