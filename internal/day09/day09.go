// Package day09 extrapolates the OASIS history sequences. Each sequence
// is reduced to difference rows until a row is all zeros; the next value
// is the sum of the last column, and the previous value folds the first
// column back up with alternating signs.
package day09

import (
	"fmt"
	"strconv"
	"strings"

	"aoc2023/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{N: 9, Title: "Mirage Maintenance", Solve: solve})
}

func solve(in puzzle.Input) (puzzle.Answers, error) {
	histories, err := parseHistories(in.Lines())
	if err != nil {
		return puzzle.Answers{}, err
	}

	var p1, p2 int64
	for _, h := range histories {
		p1 += nextValue(h)
		p2 += previousValue(h)
	}
	return puzzle.Answers{Part1: p1, Part2: p2}, nil
}

func parseHistories(lines []string) ([][]int64, error) {
	histories := make([][]int64, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return nil, fmt.Errorf("day09: empty history line")
		}
		history := make([]int64, len(fields))
		for i, f := range fields {
			n, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("day09: malformed value %q: %w", f, err)
			}
			history[i] = n
		}
		histories = append(histories, history)
	}
	return histories, nil
}

// differenceRows builds the triangle of successive differences, stopping
// at the first all-zero row.
func differenceRows(history []int64) [][]int64 {
	rows := [][]int64{history}
	for {
		last := rows[len(rows)-1]
		if allZero(last) || len(last) < 2 {
			return rows
		}
		diffs := make([]int64, len(last)-1)
		for i := range diffs {
			diffs[i] = last[i+1] - last[i]
		}
		rows = append(rows, diffs)
	}
}

func nextValue(history []int64) int64 {
	var next int64
	for _, row := range differenceRows(history) {
		next += row[len(row)-1]
	}
	return next
}

func previousValue(history []int64) int64 {
	rows := differenceRows(history)
	var prev int64
	for i := len(rows) - 1; i >= 0; i-- {
		prev = rows[i][0] - prev
	}
	return prev
}

func allZero(row []int64) bool {
	for _, v := range row {
		if v != 0 {
			return false
		}
	}
	return true
}
