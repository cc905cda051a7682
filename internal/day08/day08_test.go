package day08

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/puzzle"
)

func TestSteps(t *testing.T) {
	t.Run("two steps", func(t *testing.T) {
		n, err := parseNetwork(puzzle.Dedent(`
			RL

			AAA = (BBB, CCC)
			BBB = (DDD, EEE)
			CCC = (ZZZ, GGG)
			DDD = (DDD, DDD)
			EEE = (EEE, EEE)
			GGG = (GGG, GGG)
			ZZZ = (ZZZ, ZZZ)
		`).Lines())
		require.NoError(t, err)

		steps, err := n.steps("AAA", func(node string) bool { return node == "ZZZ" })
		require.NoError(t, err)
		assert.Equal(t, int64(2), steps)
	})

	t.Run("repeated instructions", func(t *testing.T) {
		n, err := parseNetwork(puzzle.Dedent(`
			LLR

			AAA = (BBB, BBB)
			BBB = (AAA, ZZZ)
			ZZZ = (ZZZ, ZZZ)
		`).Lines())
		require.NoError(t, err)

		steps, err := n.steps("AAA", func(node string) bool { return node == "ZZZ" })
		require.NoError(t, err)
		assert.Equal(t, int64(6), steps)
	})
}

func TestGhostSteps(t *testing.T) {
	n, err := parseNetwork(puzzle.Dedent(`
		LR

		11A = (11B, XXX)
		11B = (XXX, 11Z)
		11Z = (11B, XXX)
		22A = (22B, XXX)
		22B = (22C, 22C)
		22C = (22Z, 22Z)
		22Z = (22B, 22B)
		XXX = (XXX, XXX)
	`).Lines())
	require.NoError(t, err)

	steps, err := n.ghostSteps()
	require.NoError(t, err)
	assert.Equal(t, int64(6), steps)
}

func TestLCM(t *testing.T) {
	assert.Equal(t, int64(6), lcm(2, 3))
	assert.Equal(t, int64(12), lcm(4, 6))
	assert.Equal(t, int64(7), lcm(7, 7))
}

func TestParseNetworkErrors(t *testing.T) {
	_, err := parseNetwork(puzzle.Dedent(`
		LQR

		AAA = (BBB, CCC)
	`).Lines())
	assert.Error(t, err)
}
