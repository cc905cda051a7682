package day07

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/puzzle"
)

func testInput() []string {
	return puzzle.Dedent(`
		32T3K 765
		T55J5 684
		KK677 28
		KTJJT 220
		QQQJA 483
	`).Lines()
}

func TestParseHands(t *testing.T) {
	hands, err := parseHands(testInput())
	require.NoError(t, err)

	assert.Equal(t, []hand{
		{Cards: "32T3K", Bid: 765},
		{Cards: "T55J5", Bid: 684},
		{Cards: "KK677", Bid: 28},
		{Cards: "KTJJT", Bid: 220},
		{Cards: "QQQJA", Bid: 483},
	}, hands)
}

func TestHandType(t *testing.T) {
	for _, tc := range []struct {
		cards  string
		jokers bool
		want   handType
	}{
		{"32T3K", false, onePair},
		{"T55J5", false, threeOfAKind},
		{"KK677", false, twoPair},
		{"KTJJT", false, twoPair},
		{"QQQJA", false, threeOfAKind},
		{"T55J5", true, fourOfAKind},
		{"KTJJT", true, fourOfAKind},
		{"QQQJA", true, fourOfAKind},
		{"JJJJJ", true, fiveOfAKind},
		{"JJJJJ", false, fiveOfAKind},
	} {
		assert.Equal(t, tc.want, hand{Cards: tc.cards}.typ(tc.jokers), "%s jokers=%v", tc.cards, tc.jokers)
	}
}

func TestCardOrdering(t *testing.T) {
	// With jokers, J drops below every other card.
	assert.True(t, hand{Cards: "JKKK2"}.less(hand{Cards: "QQQQ2"}, true))
	assert.True(t, hand{Cards: "J2345"}.less(hand{Cards: "T2345"}, true))
	assert.False(t, hand{Cards: "J2345"}.less(hand{Cards: "T2345"}, false))
}

func TestPart1(t *testing.T) {
	hands, err := parseHands(testInput())
	require.NoError(t, err)

	assert.Equal(t, 6440, totalWinnings(hands, false))
}

func TestPart2(t *testing.T) {
	hands, err := parseHands(testInput())
	require.NoError(t, err)

	assert.Equal(t, 5905, totalWinnings(hands, true))
}
