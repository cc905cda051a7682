// Package day02 checks which cube games are possible with a fixed bag
// (12 red, 13 green, 14 blue) and computes the power of the minimal cube
// set each game requires.
package day02

import (
	"fmt"
	"strconv"
	"strings"

	"aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{N: 2, Title: "Cube Conundrum", Solve: solve})
}

func solve(in puzzle.Input) (puzzle.Answers, error) {
	games, err := parseGames(in.Lines())
	if err != nil {
		return puzzle.Answers{}, err
	}

	p1 := 0
	for _, id := range possibleGames(games, 12, 13, 14) {
		p1 += id
	}

	p2 := 0
	for _, power := range setPowers(games) {
		p2 += power
	}

	return puzzle.Answers{Part1: p1, Part2: p2}, nil
}

type game struct {
	ID   int
	Sets []cubeSet
}

type cubeSet struct {
	Red, Green, Blue int
}

// minimalSet is the smallest bag that could have produced every draw of
// the game: the per-color maximum across its sets.
func (g game) minimalSet() cubeSet {
	var m cubeSet
	for _, s := range g.Sets {
		m.Red = max(m.Red, s.Red)
		m.Green = max(m.Green, s.Green)
		m.Blue = max(m.Blue, s.Blue)
	}
	return m
}

func parseGames(lines []string) ([]game, error) {
	games := make([]game, 0, len(lines))

	for _, line := range lines {
		title, rest, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, fmt.Errorf("day02: malformed game entry %q", line)
		}
		id, err := strconv.Atoi(strings.TrimPrefix(title, "Game "))
		if err != nil {
			return nil, fmt.Errorf("day02: malformed game id in %q: %w", line, err)
		}

		g := game{ID: id}
		for _, rawSet := range strings.Split(rest, "; ") {
			var s cubeSet
			for _, block := range strings.Split(rawSet, ", ") {
				rawN, color, ok := strings.Cut(block, " ")
				if !ok {
					return nil, fmt.Errorf("day02: malformed cube count %q", block)
				}
				n, err := strconv.Atoi(rawN)
				if err != nil {
					return nil, fmt.Errorf("day02: malformed cube count %q: %w", block, err)
				}
				switch color {
				case "red":
					s.Red = n
				case "green":
					s.Green = n
				case "blue":
					s.Blue = n
				default:
					return nil, fmt.Errorf("day02: invalid color %q", color)
				}
			}
			g.Sets = append(g.Sets, s)
		}

		games = append(games, g)
	}

	return games, nil
}

func possibleGames(games []game, maxRed, maxGreen, maxBlue int) []int {
	var ids []int
	for _, g := range games {
		m := g.minimalSet()
		if m.Red <= maxRed && m.Green <= maxGreen && m.Blue <= maxBlue {
			ids = append(ids, g.ID)
		}
	}
	return ids
}

func setPowers(games []game) []int {
	powers := make([]int, 0, len(games))
	for _, g := range games {
		m := g.minimalSet()
		powers = append(powers, m.Red*m.Green*m.Blue)
	}
	return powers
}
