// Package day10 traces the single closed pipe loop through the field.
// The farthest point is half the loop length; the enclosed area treats
// the ordered loop cells as a polygon and tests every non-loop tile for
// containment.
package day10

import (
	"bytes"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{N: 10, Title: "Pipe Maze", Solve: solve})
}

func solve(in puzzle.Input) (puzzle.Answers, error) {
	g, err := parseGrid(in.Lines())
	if err != nil {
		return puzzle.Answers{}, err
	}

	loop, err := g.loopCells()
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.Answers{
		Part1: len(loop) / 2,
		Part2: g.enclosedCount(loop),
	}, nil
}

type position = puzzle.Point[int]

var (
	north = puzzle.Pt(-1, 0)
	south = puzzle.Pt(1, 0)
	east  = puzzle.Pt(0, 1)
	west  = puzzle.Pt(0, -1)
)

// pipeEnds lists the two directions each pipe shape connects.
var pipeEnds = map[byte][2]position{
	'|': {north, south},
	'-': {east, west},
	'L': {north, east},
	'J': {north, west},
	'7': {south, west},
	'F': {south, east},
}

type grid struct {
	Cells [][]byte
	Start position
}

func parseGrid(lines []string) (*grid, error) {
	g := &grid{Cells: make([][]byte, len(lines)), Start: puzzle.Pt(-1, -1)}

	for x, line := range lines {
		g.Cells[x] = []byte(line)
		for y := 0; y < len(line); y++ {
			c := line[y]
			if c == 'S' {
				if g.Start.X >= 0 {
					return nil, fmt.Errorf("day10: multiple start tiles")
				}
				g.Start = puzzle.Pt(x, y)
				continue
			}
			if _, ok := pipeEnds[c]; !ok && c != '.' {
				return nil, fmt.Errorf("day10: invalid tile %q at row %d col %d", c, x, y)
			}
		}
	}

	if g.Start.X < 0 {
		return nil, fmt.Errorf("day10: no start tile")
	}
	return g, nil
}

func (g *grid) at(p position) byte {
	if p.X < 0 || p.X >= len(g.Cells) || p.Y < 0 || p.Y >= len(g.Cells[p.X]) {
		return '.'
	}
	return g.Cells[p.X][p.Y]
}

func add(p, d position) position {
	return puzzle.Pt(p.X+d.X, p.Y+d.Y)
}

// startShape infers the pipe hidden under S from which neighbours
// connect back to it.
func (g *grid) startShape() (byte, error) {
	var connected []position
	for _, d := range []position{north, south, east, west} {
		ends, ok := pipeEnds[g.at(add(g.Start, d))]
		if !ok {
			continue
		}
		for _, e := range ends {
			if add(add(g.Start, d), e) == g.Start {
				connected = append(connected, d)
			}
		}
	}
	if len(connected) != 2 {
		return 0, fmt.Errorf("day10: start tile has %d connections, want 2", len(connected))
	}

	for shape, ends := range pipeEnds {
		if (ends[0] == connected[0] && ends[1] == connected[1]) ||
			(ends[0] == connected[1] && ends[1] == connected[0]) {
			return shape, nil
		}
	}
	return 0, fmt.Errorf("day10: no pipe shape matches start connections")
}

// loopCells walks the loop from the start tile and returns its cells in
// traversal order.
func (g *grid) loopCells() ([]position, error) {
	shape, err := g.startShape()
	if err != nil {
		return nil, err
	}

	loop := []position{g.Start}
	prev, cur := g.Start, add(g.Start, pipeEnds[shape][0])
	for cur != g.Start {
		loop = append(loop, cur)
		ends, ok := pipeEnds[g.at(cur)]
		if !ok {
			return nil, fmt.Errorf("day10: loop runs into tile %q at %v", g.at(cur), cur)
		}
		a, b := add(cur, ends[0]), add(cur, ends[1])
		switch prev {
		case a:
			prev, cur = cur, b
		case b:
			prev, cur = cur, a
		default:
			return nil, fmt.Errorf("day10: loop broken at %v", cur)
		}
	}
	return loop, nil
}

// enclosedCount counts the tiles strictly inside the polygon formed by
// the loop. Loop tiles themselves are excluded before the containment
// test, so boundary semantics never matter.
func (g *grid) enclosedCount(loop []position) int {
	onLoop := make(map[position]bool, len(loop))
	ring := make(orb.Ring, 0, len(loop)+1)
	for _, p := range loop {
		onLoop[p] = true
		ring = append(ring, orb.Point{float64(p.Y), float64(p.X)})
	}
	ring = append(ring, ring[0])

	count := 0
	for x := range g.Cells {
		for y := range g.Cells[x] {
			p := puzzle.Pt(x, y)
			if onLoop[p] {
				continue
			}
			if planar.RingContains(ring, orb.Point{float64(y), float64(x)}) {
				count++
			}
		}
	}
	return count
}

// String renders the grid, used in failure output.
func (g *grid) String() string {
	return string(bytes.Join(g.Cells, []byte{'\n'}))
}
