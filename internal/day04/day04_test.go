package day04

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/puzzle"
)

func testInput() []string {
	return puzzle.Dedent(`
		Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
		Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
		Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
		Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
		Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
		Card  6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
	`).Lines()
}

func TestParseCards(t *testing.T) {
	cards, err := parseCards(testInput())
	require.NoError(t, err)

	want := []card{
		{ID: 1, WinningNumbers: []int{41, 48, 83, 86, 17}, Numbers: []int{83, 86, 6, 31, 17, 9, 48, 53}},
		{ID: 2, WinningNumbers: []int{13, 32, 20, 16, 61}, Numbers: []int{61, 30, 68, 82, 17, 32, 24, 19}},
		{ID: 3, WinningNumbers: []int{1, 21, 53, 59, 44}, Numbers: []int{69, 82, 63, 72, 16, 21, 14, 1}},
		{ID: 4, WinningNumbers: []int{41, 92, 73, 84, 69}, Numbers: []int{59, 84, 76, 51, 58, 5, 54, 83}},
		{ID: 5, WinningNumbers: []int{87, 83, 26, 28, 32}, Numbers: []int{88, 30, 70, 12, 93, 22, 82, 36}},
		{ID: 6, WinningNumbers: []int{31, 18, 13, 56, 72}, Numbers: []int{74, 77, 10, 23, 35, 67, 36, 11}},
	}

	if diff := cmp.Diff(want, cards); diff != "" {
		t.Errorf("parseCards mismatch (-want +got):\n%s", diff)
	}
}

func TestCardValues(t *testing.T) {
	cards, err := parseCards(testInput())
	require.NoError(t, err)

	var values []int
	for _, c := range cards {
		values = append(values, c.value())
	}
	assert.Equal(t, []int{8, 2, 2, 1, 0, 0}, values)
}

func TestPart1(t *testing.T) {
	cards, err := parseCards(testInput())
	require.NoError(t, err)

	assert.Equal(t, 13, cardValueSum(cards))
}

func TestPart2(t *testing.T) {
	cards, err := parseCards(testInput())
	require.NoError(t, err)

	assert.Equal(t, 30, totalScratchcards(cards))
}
