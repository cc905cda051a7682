package day03

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/puzzle"
)

func testInput() []string {
	return puzzle.Dedent(`
		467..114..
		...*......
		..35..633.
		......#...
		617*......
		.....+.58.
		..592.....
		......755.
		...$.*....
		.664.598..
	`).Lines()
}

func TestParseBoard(t *testing.T) {
	b, err := parseBoard(testInput())
	require.NoError(t, err)

	wantParts := []enginePart{
		{Value: 467, Start: puzzle.Pt(0, 0), End: puzzle.Pt(0, 2)},
		{Value: 114, Start: puzzle.Pt(0, 5), End: puzzle.Pt(0, 7)},
		{Value: 35, Start: puzzle.Pt(2, 2), End: puzzle.Pt(2, 3)},
		{Value: 633, Start: puzzle.Pt(2, 6), End: puzzle.Pt(2, 8)},
		{Value: 617, Start: puzzle.Pt(4, 0), End: puzzle.Pt(4, 2)},
		{Value: 58, Start: puzzle.Pt(5, 7), End: puzzle.Pt(5, 8)},
		{Value: 592, Start: puzzle.Pt(6, 2), End: puzzle.Pt(6, 4)},
		{Value: 755, Start: puzzle.Pt(7, 6), End: puzzle.Pt(7, 8)},
		{Value: 664, Start: puzzle.Pt(9, 1), End: puzzle.Pt(9, 3)},
		{Value: 598, Start: puzzle.Pt(9, 5), End: puzzle.Pt(9, 7)},
	}
	wantSymbols := []symbol{
		{Value: '*', Position: puzzle.Pt(1, 3)},
		{Value: '#', Position: puzzle.Pt(3, 6)},
		{Value: '*', Position: puzzle.Pt(4, 3)},
		{Value: '+', Position: puzzle.Pt(5, 5)},
		{Value: '$', Position: puzzle.Pt(8, 3)},
		{Value: '*', Position: puzzle.Pt(8, 5)},
	}

	if diff := cmp.Diff(wantParts, b.Parts); diff != "" {
		t.Errorf("parts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantSymbols, b.Symbols); diff != "" {
		t.Errorf("symbols mismatch (-want +got):\n%s", diff)
	}
}

func TestValidParts(t *testing.T) {
	b, err := parseBoard(testInput())
	require.NoError(t, err)

	var values []int
	for _, p := range b.validParts() {
		values = append(values, p.Value)
	}
	assert.Equal(t, []int{467, 35, 633, 617, 592, 755, 664, 598}, values)
}

func TestGearRatios(t *testing.T) {
	b, err := parseBoard(testInput())
	require.NoError(t, err)

	assert.Equal(t, []int{16345, 451490}, b.gearRatios())
}

func TestPart1(t *testing.T) {
	b, err := parseBoard(testInput())
	require.NoError(t, err)

	assert.Equal(t, 4361, b.validPartSum())
}

func TestPart2(t *testing.T) {
	b, err := parseBoard(testInput())
	require.NoError(t, err)

	assert.Equal(t, 467835, b.gearRatioSum())
}
