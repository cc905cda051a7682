package day09

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/puzzle"
)

func testInput() puzzle.Input {
	return puzzle.Dedent(`
		0 3 6 9 12 15
		1 3 6 10 15 21
		10 13 16 21 30 45
	`)
}

func TestParseHistories(t *testing.T) {
	histories, err := parseHistories(testInput().Lines())
	require.NoError(t, err)

	want := [][]int64{
		{0, 3, 6, 9, 12, 15},
		{1, 3, 6, 10, 15, 21},
		{10, 13, 16, 21, 30, 45},
	}
	if diff := cmp.Diff(want, histories); diff != "" {
		t.Errorf("parseHistories mismatch (-want +got):\n%s", diff)
	}
}

func TestNextValue(t *testing.T) {
	assert.Equal(t, int64(18), nextValue([]int64{0, 3, 6, 9, 12, 15}))
	assert.Equal(t, int64(28), nextValue([]int64{1, 3, 6, 10, 15, 21}))
	assert.Equal(t, int64(68), nextValue([]int64{10, 13, 16, 21, 30, 45}))
}

func TestPreviousValue(t *testing.T) {
	assert.Equal(t, int64(-3), previousValue([]int64{0, 3, 6, 9, 12, 15}))
	assert.Equal(t, int64(0), previousValue([]int64{1, 3, 6, 10, 15, 21}))
	assert.Equal(t, int64(5), previousValue([]int64{10, 13, 16, 21, 30, 45}))
}

func TestSolve(t *testing.T) {
	answers, err := solve(testInput())
	require.NoError(t, err)

	assert.Equal(t, int64(114), answers.Part1)
	assert.Equal(t, int64(2), answers.Part2)
}

func TestNegativeDifferences(t *testing.T) {
	assert.Equal(t, int64(0), nextValue([]int64{10, 8, 6, 4, 2}))
	assert.Equal(t, int64(12), previousValue([]int64{10, 8, 6, 4, 2}))
}
