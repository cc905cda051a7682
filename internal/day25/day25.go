// Package day25 cuts the snow machine apart. The wiring diagram is an
// undirected graph whose minimum cut is known to be three wires, so an
// Edmonds-Karp max-flow from a fixed source to any node across the cut
// saturates at exactly three; the residual reachable set is then one of
// the two components.
package day25

import (
	"fmt"
	"strings"

	"aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{N: 25, Title: "Snowverload", Solve: solve})
}

const cutSize = 3

func solve(in puzzle.Input) (puzzle.Answers, error) {
	d, err := parseDiagram(in.Lines())
	if err != nil {
		return puzzle.Answers{}, err
	}

	product, err := d.componentSizeProduct()
	if err != nil {
		return puzzle.Answers{}, err
	}

	// Day 25 has no second part.
	return puzzle.Answers{Part1: product}, nil
}

type diagram struct {
	Names []string
	Adj   [][]int // adjacency by node index
}

func parseDiagram(lines []string) (*diagram, error) {
	d := &diagram{}
	ids := make(map[string]int)

	id := func(name string) int {
		if i, ok := ids[name]; ok {
			return i
		}
		i := len(d.Names)
		ids[name] = i
		d.Names = append(d.Names, name)
		d.Adj = append(d.Adj, nil)
		return i
	}

	for _, line := range lines {
		name, rest, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, fmt.Errorf("day25: malformed component %q", line)
		}
		neighbors := strings.Fields(rest)
		if len(neighbors) == 0 {
			return nil, fmt.Errorf("day25: component %q has no connections", line)
		}

		from := id(name)
		for _, n := range neighbors {
			to := id(n)
			d.Adj[from] = append(d.Adj[from], to)
			d.Adj[to] = append(d.Adj[to], from)
		}
	}

	return d, nil
}

// residualNetwork builds the unit-capacity residual graph: one unit in
// each direction per wire.
func (d *diagram) residualNetwork() []map[int]int {
	residual := make([]map[int]int, len(d.Adj))
	for u, neighbors := range d.Adj {
		residual[u] = make(map[int]int, len(neighbors))
		for _, v := range neighbors {
			residual[u][v]++
		}
	}
	return residual
}

// bfs marks the nodes reachable from src through positive residual
// capacity, recording parents. parent[i] < 0 means unreached.
func bfs(residual []map[int]int, src int, parent []int) {
	for i := range parent {
		parent[i] = -1
	}
	parent[src] = src

	queue := []int{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v, c := range residual[u] {
			if c > 0 && parent[v] < 0 {
				parent[v] = u
				queue = append(queue, v)
			}
		}
	}
}

// maxFlow runs Edmonds-Karp between src and dst on the residual
// network, mutating it, and gives up once the flow exceeds limit.
func maxFlow(residual []map[int]int, src, dst, limit int) int {
	parent := make([]int, len(residual))

	flow := 0
	for flow <= limit {
		bfs(residual, src, parent)
		if parent[dst] < 0 {
			return flow
		}
		for v := dst; v != src; v = parent[v] {
			residual[parent[v]][v]--
			residual[v][parent[v]]++
		}
		flow++
	}
	return flow
}

// componentSizeProduct finds a node on the far side of the three-wire
// cut and multiplies the two component sizes.
func (d *diagram) componentSizeProduct() (int, error) {
	n := len(d.Names)
	if n < 2 {
		return 0, fmt.Errorf("day25: diagram has %d components, need at least 2", n)
	}

	src := 0
	parent := make([]int, n)
	for dst := 1; dst < n; dst++ {
		residual := d.residualNetwork()
		if maxFlow(residual, src, dst, cutSize) != cutSize {
			continue // same side of the cut
		}

		// The saturated residual network separates the components.
		bfs(residual, src, parent)
		size := 0
		for _, p := range parent {
			if p >= 0 {
				size++
			}
		}
		return size * (n - size), nil
	}
	return 0, fmt.Errorf("day25: no %d-wire cut separates the diagram", cutSize)
}
