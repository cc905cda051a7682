// Package days pulls every daily solution into the registry via their
// init functions. Importing it is all a binary needs to do.
package days

import (
	_ "aoc2023/internal/day01"
	_ "aoc2023/internal/day02"
	_ "aoc2023/internal/day03"
	_ "aoc2023/internal/day04"
	_ "aoc2023/internal/day05"
	_ "aoc2023/internal/day06"
	_ "aoc2023/internal/day07"
	_ "aoc2023/internal/day08"
	_ "aoc2023/internal/day09"
	_ "aoc2023/internal/day10"
	_ "aoc2023/internal/day11"
	_ "aoc2023/internal/day12"
	_ "aoc2023/internal/day13"
	_ "aoc2023/internal/day14"
	_ "aoc2023/internal/day15"
	_ "aoc2023/internal/day16"
	_ "aoc2023/internal/day18"
	_ "aoc2023/internal/day19"
	_ "aoc2023/internal/day25"
)
