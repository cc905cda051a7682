package day16

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc2023/internal/puzzle"
)

func testContraption(t *testing.T) *contraption {
	t.Helper()
	c, err := parseContraption(puzzle.Dedent(`
		.|...\....
		|.-.\.....
		.....|-...
		........|.
		..........
		.........\
		..../.\\..
		.-.-/..|..
		.|....-|.\
		..//.|....
	`).Lines())
	require.NoError(t, err)
	return c
}

func TestNext(t *testing.T) {
	assert.Equal(t, []position{up}, next('/', right))
	assert.Equal(t, []position{left}, next('/', down))
	assert.Equal(t, []position{down}, next('\\', right))
	assert.Equal(t, []position{right}, next('\\', down))
	assert.Equal(t, []position{up, down}, next('|', left))
	assert.Equal(t, []position{down}, next('|', down))
	assert.Equal(t, []position{left, right}, next('-', up))
	assert.Equal(t, []position{right}, next('-', right))
	assert.Equal(t, []position{right}, next('.', right))
}

func TestEnergized(t *testing.T) {
	c := testContraption(t)
	assert.Equal(t, 46, c.energized(beam{Pos: puzzle.Pt(0, 0), Dir: right}))
}

func TestMaxEnergized(t *testing.T) {
	c := testContraption(t)
	assert.Equal(t, 51, c.maxEnergized())
}

func TestBestEntryPoint(t *testing.T) {
	// The known best entry for the sample is the fourth column, heading
	// down.
	c := testContraption(t)
	assert.Equal(t, 51, c.energized(beam{Pos: puzzle.Pt(0, 3), Dir: down}))
}

func TestParseContraptionErrors(t *testing.T) {
	_, err := parseContraption([]string{"..", "..."})
	assert.Error(t, err, "ragged rows")

	_, err = parseContraption([]string{".x."})
	assert.Error(t, err, "invalid tile")
}
