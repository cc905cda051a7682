package day15

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/puzzle"
)

const testSequence = "rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7"

func TestHash(t *testing.T) {
	assert.Equal(t, 52, hash("HASH"))
	assert.Equal(t, 0, hash("rn"))
	assert.Equal(t, 0, hash("cm"))
	assert.Equal(t, 1, hash("qp"))
	assert.Equal(t, 3, hash("pc"))
}

func TestPart1(t *testing.T) {
	sum := 0
	for _, s := range strings.Split(testSequence, ",") {
		sum += hash(s)
	}
	assert.Equal(t, 1320, sum)
}

func TestRunSteps(t *testing.T) {
	boxes, err := runSteps(strings.Split(testSequence, ","))
	require.NoError(t, err)

	assert.Equal(t, []lens{{Label: "rn", Focal: 1}, {Label: "cm", Focal: 2}}, boxes[0])
	assert.Empty(t, boxes[1])
	assert.Equal(t, []lens{
		{Label: "ot", Focal: 7},
		{Label: "ab", Focal: 5},
		{Label: "pc", Focal: 6},
	}, boxes[3])
}

func TestFocusingPower(t *testing.T) {
	boxes, err := runSteps(strings.Split(testSequence, ","))
	require.NoError(t, err)

	assert.Equal(t, 145, focusingPower(boxes))
}

func TestSolve(t *testing.T) {
	answers, err := solve(puzzle.FromString(testSequence + "\n"))
	require.NoError(t, err)

	assert.Equal(t, 1320, answers.Part1)
	assert.Equal(t, 145, answers.Part2)
}

func TestRunStepsError(t *testing.T) {
	_, err := runSteps([]string{"rn"})
	assert.Error(t, err)
}
