// Package day04 scores scratchcards: a card is worth 2^(n-1) points for
// n matching numbers, and in part 2 each match wins copies of the
// following cards.
package day04

import (
	"fmt"
	"strconv"
	"strings"

	"aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{N: 4, Title: "Scratchcards", Solve: solve})
}

func solve(in puzzle.Input) (puzzle.Answers, error) {
	cards, err := parseCards(in.Lines())
	if err != nil {
		return puzzle.Answers{}, err
	}
	return puzzle.Answers{Part1: cardValueSum(cards), Part2: totalScratchcards(cards)}, nil
}

type card struct {
	ID             int
	WinningNumbers []int
	Numbers        []int
}

func (c card) matchCount() int {
	winning := make(map[int]bool, len(c.WinningNumbers))
	for _, n := range c.WinningNumbers {
		winning[n] = true
	}

	matches := 0
	for _, n := range c.Numbers {
		if winning[n] {
			matches++
		}
	}
	return matches
}

func (c card) value() int {
	matches := c.matchCount()
	if matches == 0 {
		return 0
	}
	return 1 << (matches - 1)
}

func parseCards(lines []string) ([]card, error) {
	cards := make([]card, 0, len(lines))

	for _, line := range lines {
		title, data, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, fmt.Errorf("day04: malformed card entry %q", line)
		}
		id, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(title, "Card")))
		if err != nil {
			return nil, fmt.Errorf("day04: malformed card id in %q: %w", line, err)
		}

		rawWinning, rawNumbers, ok := strings.Cut(data, "|")
		if !ok {
			return nil, fmt.Errorf("day04: missing number separator in %q", line)
		}

		cards = append(cards, card{
			ID:             id,
			WinningNumbers: parseNumbers(rawWinning),
			Numbers:        parseNumbers(rawNumbers),
		})
	}

	return cards, nil
}

// parseNumbers tolerates the column-aligned double spaces in the input.
func parseNumbers(s string) []int {
	var numbers []int
	for _, f := range strings.Fields(s) {
		if n, err := strconv.Atoi(f); err == nil {
			numbers = append(numbers, n)
		}
	}
	return numbers
}

func cardValueSum(cards []card) int {
	sum := 0
	for _, c := range cards {
		sum += c.value()
	}
	return sum
}

// totalScratchcards counts originals plus all cascaded copies: card i
// with n matches wins one copy of each of the next n cards, multiplied
// by how many copies of card i are held.
func totalScratchcards(cards []card) int {
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}

	for i, c := range cards {
		wins := c.matchCount()
		for j := i + 1; j <= i+wins && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}

	total := 0
	for _, n := range copies {
		total += n
	}
	return total
}
