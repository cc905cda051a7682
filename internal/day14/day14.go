// Package day14 rolls the round rocks around the reflector dish. The
// billion spin cycles of part 2 settle into a loop quickly, so the state
// is fingerprinted each cycle and the remainder is skipped.
package day14

import (
	"bytes"
	"fmt"

	"aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{N: 14, Title: "Parabolic Reflector Dish", Solve: solve})
}

const spinCycles = 1_000_000_000

func solve(in puzzle.Input) (puzzle.Answers, error) {
	p, err := parsePlatform(in.Lines())
	if err != nil {
		return puzzle.Answers{}, err
	}

	tilted := p.clone()
	tilted.tiltNorth()
	p1 := tilted.northLoad()

	spun := p.clone()
	spun.spin(spinCycles)

	return puzzle.Answers{Part1: p1, Part2: spun.northLoad()}, nil
}

type platform struct {
	Rows [][]byte
}

func parsePlatform(lines []string) (*platform, error) {
	p := &platform{Rows: make([][]byte, len(lines))}
	for x, line := range lines {
		if x > 0 && len(line) != len(p.Rows[0]) {
			return nil, fmt.Errorf("day14: ragged row %q", line)
		}
		if i := bytes.IndexFunc([]byte(line), func(r rune) bool {
			return r != 'O' && r != '#' && r != '.'
		}); i >= 0 {
			return nil, fmt.Errorf("day14: invalid cell %q in %q", line[i], line)
		}
		p.Rows[x] = []byte(line)
	}
	return p, nil
}

func (p *platform) clone() *platform {
	c := &platform{Rows: make([][]byte, len(p.Rows))}
	for i, row := range p.Rows {
		c.Rows[i] = append([]byte(nil), row...)
	}
	return c
}

// roll moves the rock at (x, y) as far as it can in direction (dx, dy).
func (p *platform) roll(x, y, dx, dy int) {
	for {
		nx, ny := x+dx, y+dy
		if nx < 0 || nx >= len(p.Rows) || ny < 0 || ny >= len(p.Rows[nx]) || p.Rows[nx][ny] != '.' {
			return
		}
		p.Rows[nx][ny], p.Rows[x][y] = 'O', '.'
		x, y = nx, ny
	}
}

func (p *platform) tiltNorth() {
	for x := range p.Rows {
		for y := range p.Rows[x] {
			if p.Rows[x][y] == 'O' {
				p.roll(x, y, -1, 0)
			}
		}
	}
}

func (p *platform) tiltSouth() {
	for x := len(p.Rows) - 1; x >= 0; x-- {
		for y := range p.Rows[x] {
			if p.Rows[x][y] == 'O' {
				p.roll(x, y, 1, 0)
			}
		}
	}
}

func (p *platform) tiltWest() {
	for x := range p.Rows {
		for y := range p.Rows[x] {
			if p.Rows[x][y] == 'O' {
				p.roll(x, y, 0, -1)
			}
		}
	}
}

func (p *platform) tiltEast() {
	for x := range p.Rows {
		for y := len(p.Rows[x]) - 1; y >= 0; y-- {
			if p.Rows[x][y] == 'O' {
				p.roll(x, y, 0, 1)
			}
		}
	}
}

func (p *platform) cycle() {
	p.tiltNorth()
	p.tiltWest()
	p.tiltSouth()
	p.tiltEast()
}

// spin runs n tilt cycles, fast-forwarding once a previously seen state
// recurs.
func (p *platform) spin(n int) {
	seen := map[string]int{p.String(): 0}

	for i := 1; i <= n; i++ {
		p.cycle()
		key := p.String()
		if first, ok := seen[key]; ok {
			remaining := (n - i) % (i - first)
			for j := 0; j < remaining; j++ {
				p.cycle()
			}
			return
		}
		seen[key] = i
	}
}

// northLoad weighs each round rock by its distance from the south edge.
func (p *platform) northLoad() int {
	load := 0
	for x, row := range p.Rows {
		load += bytes.Count(row, []byte{'O'}) * (len(p.Rows) - x)
	}
	return load
}

func (p *platform) String() string {
	return string(bytes.Join(p.Rows, []byte{'\n'}))
}
