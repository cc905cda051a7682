package day01

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/puzzle"
)

func TestPart1(t *testing.T) {
	in := puzzle.Dedent(`
		1abc2
		pqr3stu8vwx
		a1b2c3d4e5f
		treb7uchet
	`)

	sum, err := calibrationSum(extractDigits(in.Lines(), false))
	require.NoError(t, err)
	assert.Equal(t, 142, sum)
}

func TestPart2(t *testing.T) {
	in := puzzle.Dedent(`
		two1nine
		eightwothree
		abcone2threexyz
		xtwone3four
		4nineeightseven2
		zoneight234
		7pqrstsixteen
	`)

	sum, err := calibrationSum(extractDigits(in.Lines(), true))
	require.NoError(t, err)
	assert.Equal(t, 281, sum)
}

func TestExtractDigitsOverlap(t *testing.T) {
	digits := extractDigits([]string{"eightwo"}, true)
	assert.Equal(t, [][]int{{8, 2}}, digits)
}

func TestCalibrationSumEmptyLine(t *testing.T) {
	_, err := calibrationSum([][]int{{}})
	assert.Error(t, err)
}
