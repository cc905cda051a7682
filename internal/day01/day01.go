// Package day01 recovers calibration values from the trebuchet
// calibration document: the first and last digit of each line form a
// two-digit number, with part 2 also counting spelled-out digits.
package day01

import (
	"fmt"
	"strings"

	"aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{N: 1, Title: "Trebuchet?!", Solve: solve})
}

func solve(in puzzle.Input) (puzzle.Answers, error) {
	lines := in.Lines()

	p1, err := calibrationSum(extractDigits(lines, false))
	if err != nil {
		return puzzle.Answers{}, err
	}
	p2, err := calibrationSum(extractDigits(lines, true))
	if err != nil {
		return puzzle.Answers{}, err
	}

	return puzzle.Answers{Part1: p1, Part2: p2}, nil
}

var spelledDigits = []struct {
	word  string
	value int
}{
	{"one", 1}, {"two", 2}, {"three", 3},
	{"four", 4}, {"five", 5}, {"six", 6},
	{"seven", 7}, {"eight", 8}, {"nine", 9},
}

// extractDigits collects, per line, every digit in order of appearance.
// Spelled-out digits may overlap ("eightwo" yields 8 then 2), which is
// why the scan advances one character at a time.
func extractDigits(lines []string, includeSpelled bool) [][]int {
	all := make([][]int, 0, len(lines))

	for _, line := range lines {
		var digits []int

		for i := 0; i < len(line); i++ {
			if c := line[i]; c >= '0' && c <= '9' {
				digits = append(digits, int(c-'0'))
				continue
			}
			if !includeSpelled {
				continue
			}
			for _, s := range spelledDigits {
				if strings.HasPrefix(line[i:], s.word) {
					digits = append(digits, s.value)
					break
				}
			}
		}

		all = append(all, digits)
	}

	return all
}

func calibrationSum(entries [][]int) (int, error) {
	sum := 0
	for i, digits := range entries {
		if len(digits) == 0 {
			return 0, fmt.Errorf("day01: line %d contains no digits", i+1)
		}
		sum += digits[0]*10 + digits[len(digits)-1]
	}
	return sum, nil
}
