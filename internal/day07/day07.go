// Package day07 ranks Camel Cards hands. With jokers enabled, J cards
// join the largest group when typing the hand but rank below every
// other card on ties.
package day07

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{N: 7, Title: "Camel Cards", Solve: solve})
}

func solve(in puzzle.Input) (puzzle.Answers, error) {
	hands, err := parseHands(in.Lines())
	if err != nil {
		return puzzle.Answers{}, err
	}
	return puzzle.Answers{
		Part1: totalWinnings(hands, false),
		Part2: totalWinnings(hands, true),
	}, nil
}

type handType int

const (
	highCard handType = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

type hand struct {
	Cards string
	Bid   int
}

func (h hand) typ(jokers bool) handType {
	counts := make(map[byte]int, 5)
	for i := 0; i < len(h.Cards); i++ {
		counts[h.Cards[i]]++
	}

	wild := 0
	if jokers {
		wild = counts['J']
		delete(counts, 'J')
	}

	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(groups)))

	if len(groups) == 0 {
		// all jokers
		return fiveOfAKind
	}
	groups[0] += wild

	switch {
	case groups[0] == 5:
		return fiveOfAKind
	case groups[0] == 4:
		return fourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return fullHouse
	case groups[0] == 3:
		return threeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return twoPair
	case groups[0] == 2:
		return onePair
	default:
		return highCard
	}
}

func cardValue(c byte, jokers bool) int {
	switch c {
	case 'A':
		return 14
	case 'K':
		return 13
	case 'Q':
		return 12
	case 'J':
		if jokers {
			return 1
		}
		return 11
	case 'T':
		return 10
	default:
		return int(c - '0')
	}
}

// less orders hands weakest first: by type, then card by card from the
// left.
func (h hand) less(other hand, jokers bool) bool {
	ht, ot := h.typ(jokers), other.typ(jokers)
	if ht != ot {
		return ht < ot
	}
	for i := 0; i < len(h.Cards) && i < len(other.Cards); i++ {
		hv, ov := cardValue(h.Cards[i], jokers), cardValue(other.Cards[i], jokers)
		if hv != ov {
			return hv < ov
		}
	}
	return false
}

func parseHands(lines []string) ([]hand, error) {
	hands := make([]hand, 0, len(lines))
	for _, line := range lines {
		cards, rawBid, ok := strings.Cut(line, " ")
		if !ok || len(cards) != 5 {
			return nil, fmt.Errorf("day07: malformed hand %q", line)
		}
		bid, err := strconv.Atoi(rawBid)
		if err != nil {
			return nil, fmt.Errorf("day07: malformed bid in %q: %w", line, err)
		}
		hands = append(hands, hand{Cards: cards, Bid: bid})
	}
	return hands, nil
}

// totalWinnings sums rank*bid with rank 1 for the weakest hand.
func totalWinnings(hands []hand, jokers bool) int {
	ranked := append([]hand(nil), hands...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].less(ranked[j], jokers) })

	total := 0
	for i, h := range ranked {
		total += (i + 1) * h.Bid
	}
	return total
}
