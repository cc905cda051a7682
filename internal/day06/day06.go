// Package day06 counts the winning button holds for each boat race.
// Holding x ms in a t ms race travels x*(t-x) mm, so the winning holds
// are the integer solutions of x*(t-x) > d, found from the quadratic
// roots rather than by scanning.
package day06

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{N: 6, Title: "Wait For It", Solve: solve})
}

func solve(in puzzle.Input) (puzzle.Answers, error) {
	lines := in.Lines()

	races, err := parseRaces(lines)
	if err != nil {
		return puzzle.Answers{}, err
	}
	p1 := int64(1)
	for _, r := range races {
		p1 *= r.winningHolds()
	}

	long, err := parseSingleRace(lines)
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.Answers{Part1: p1, Part2: long.winningHolds()}, nil
}

type race struct {
	Time     int64
	Distance int64
}

// winningHolds counts holds x with x*(t-x) > d. The smallest winning
// hold is one past the lower root of x^2 - t*x + d = 0; symmetry gives
// the rest.
func (r race) winningHolds() int64 {
	disc := float64(r.Time*r.Time - 4*r.Distance)
	if disc < 0 {
		return 0
	}
	lowest := int64(math.Floor((float64(r.Time)-math.Sqrt(disc))/2)) + 1
	return r.Time - 2*lowest + 1
}

func parseRaces(lines []string) ([]race, error) {
	times, err := parseRow(lines, 0, "Time:")
	if err != nil {
		return nil, err
	}
	distances, err := parseRow(lines, 1, "Distance:")
	if err != nil {
		return nil, err
	}
	if len(times) != len(distances) {
		return nil, fmt.Errorf("day06: %d times but %d distances", len(times), len(distances))
	}

	races := make([]race, len(times))
	for i := range times {
		races[i] = race{Time: times[i], Distance: distances[i]}
	}
	return races, nil
}

func parseRow(lines []string, i int, header string) ([]int64, error) {
	if i >= len(lines) || !strings.HasPrefix(lines[i], header) {
		return nil, fmt.Errorf("day06: missing %q row", header)
	}

	var values []int64
	for _, f := range strings.Fields(lines[i][len(header):]) {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("day06: malformed number %q: %w", f, err)
		}
		values = append(values, n)
	}
	return values, nil
}

// parseSingleRace reads the rows with bad kerning: all digits of a row
// form one number.
func parseSingleRace(lines []string) (race, error) {
	times, err := parseRow(lines, 0, "Time:")
	if err != nil {
		return race{}, err
	}
	distances, err := parseRow(lines, 1, "Distance:")
	if err != nil {
		return race{}, err
	}

	t, err := joinDigits(times)
	if err != nil {
		return race{}, err
	}
	d, err := joinDigits(distances)
	if err != nil {
		return race{}, err
	}
	return race{Time: t, Distance: d}, nil
}

func joinDigits(values []int64) (int64, error) {
	var sb strings.Builder
	for _, v := range values {
		fmt.Fprintf(&sb, "%d", v)
	}
	n, err := strconv.ParseInt(sb.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("day06: joined number overflows: %w", err)
	}
	return n, nil
}
