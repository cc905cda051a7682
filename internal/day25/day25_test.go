package day25

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/puzzle"
)

func testInput() puzzle.Input {
	return puzzle.Dedent(`
		jqt: rhn xhk nvd
		rsh: frs pzl lsr
		xhk: hfx
		cmg: qnr nvd lhk bvb
		rhn: xhk bvb hfx
		bvb: xhk hfx
		pzl: lsr hfx nvd
		qnr: nvd
		ntq: jqt hfx bvb xhk
		nvd: lhk
		lsr: lhk
		rzs: qnr cmg lsr rsh
		frs: qnr lhk lsr
	`)
}

func TestParseDiagram(t *testing.T) {
	d, err := parseDiagram(testInput().Lines())
	require.NoError(t, err)

	assert.Len(t, d.Names, 15)

	degree := 0
	for _, adj := range d.Adj {
		degree += len(adj)
	}
	assert.Equal(t, 2*33, degree, "33 wires, counted from both ends")
}

func TestMaxFlow(t *testing.T) {
	d, err := parseDiagram(testInput().Lines())
	require.NoError(t, err)

	ids := make(map[string]int, len(d.Names))
	for i, n := range d.Names {
		ids[n] = i
	}

	// jqt and rsh sit on opposite sides of the three-wire cut.
	flow := maxFlow(d.residualNetwork(), ids["jqt"], ids["rsh"], cutSize)
	assert.Equal(t, 3, flow)

	// jqt and xhk share a side, so more than three paths connect them.
	flow = maxFlow(d.residualNetwork(), ids["jqt"], ids["xhk"], cutSize)
	assert.Greater(t, flow, cutSize)
}

func TestComponentSizeProduct(t *testing.T) {
	d, err := parseDiagram(testInput().Lines())
	require.NoError(t, err)

	product, err := d.componentSizeProduct()
	require.NoError(t, err)
	assert.Equal(t, 54, product)
}

func TestSolve(t *testing.T) {
	answers, err := solve(testInput())
	require.NoError(t, err)

	assert.Equal(t, 54, answers.Part1)
	assert.Nil(t, answers.Part2)
}

func TestParseDiagramErrors(t *testing.T) {
	_, err := parseDiagram([]string{"jqt rhn"})
	assert.Error(t, err, "missing separator")

	_, err = parseDiagram([]string{"jqt: "})
	assert.Error(t, err, "no connections")
}
