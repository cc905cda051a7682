// Package day08 follows left/right instructions through the desert node
// network. Ghosts starting on every **A node reach their **Z nodes on
// independent cycles, so the joint arrival is the least common multiple
// of the individual cycle lengths.
package day08

import (
	"fmt"
	"strings"

	"aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{N: 8, Title: "Haunted Wasteland", Solve: solve})
}

func solve(in puzzle.Input) (puzzle.Answers, error) {
	n, err := parseNetwork(in.Lines())
	if err != nil {
		return puzzle.Answers{}, err
	}

	p1, err := n.steps("AAA", func(node string) bool { return node == "ZZZ" })
	if err != nil {
		return puzzle.Answers{}, err
	}
	p2, err := n.ghostSteps()
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.Answers{Part1: p1, Part2: p2}, nil
}

type network struct {
	Instructions string
	Nodes        map[string][2]string // left, right
}

func parseNetwork(lines []string) (*network, error) {
	if len(lines) < 3 {
		return nil, fmt.Errorf("day08: input too short")
	}

	n := &network{
		Instructions: lines[0],
		Nodes:        make(map[string][2]string, len(lines)-2),
	}
	for _, c := range n.Instructions {
		if c != 'L' && c != 'R' {
			return nil, fmt.Errorf("day08: invalid instruction %q", c)
		}
	}

	for _, line := range lines[2:] {
		name, branches, ok := strings.Cut(line, " = ")
		if !ok {
			return nil, fmt.Errorf("day08: malformed node %q", line)
		}
		left, right, ok := strings.Cut(strings.Trim(branches, "()"), ", ")
		if !ok {
			return nil, fmt.Errorf("day08: malformed branches in %q", line)
		}
		n.Nodes[name] = [2]string{left, right}
	}

	return n, nil
}

// steps walks from start, cycling through the instructions, until done
// reports true.
func (n *network) steps(start string, done func(string) bool) (int64, error) {
	node := start
	var count int64
	for !done(node) {
		branches, ok := n.Nodes[node]
		if !ok {
			return 0, fmt.Errorf("day08: unknown node %q", node)
		}
		if n.Instructions[count%int64(len(n.Instructions))] == 'L' {
			node = branches[0]
		} else {
			node = branches[1]
		}
		count++
	}
	return count, nil
}

func (n *network) ghostSteps() (int64, error) {
	endsInZ := func(node string) bool { return strings.HasSuffix(node, "Z") }

	total := int64(1)
	for name := range n.Nodes {
		if !strings.HasSuffix(name, "A") {
			continue
		}
		count, err := n.steps(name, endsInZ)
		if err != nil {
			return 0, err
		}
		total = lcm(total, count)
	}
	return total, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int64) int64 {
	return a / gcd(a, b) * b
}
