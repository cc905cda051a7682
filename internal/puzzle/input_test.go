package puzzle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedent(t *testing.T) {
	t.Run("plain input", func(t *testing.T) {
		in := Dedent("abc\n123\nfoobar")
		assert.Equal(t, []string{"abc", "123", "foobar"}, in.Lines())
	})

	t.Run("strips common indentation", func(t *testing.T) {
		in := Dedent(`
			abc
			123
			foobar
		`)
		assert.Equal(t, []string{"abc", "123", "foobar"}, in.Lines())
	})

	t.Run("keeps interior empty lines", func(t *testing.T) {
		in := Dedent(`

			abc
			123

			foobar
		`)
		assert.Equal(t, []string{"abc", "123", "", "foobar"}, in.Lines())
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day03.txt"), []byte("467..114..\n...*......\n"), 0o644))

	in, err := Load(dir, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"467..114..", "...*......"}, in.Lines())

	_, err = Load(dir, 4)
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "day01.txt", Filename(1))
	assert.Equal(t, "day25.txt", Filename(25))
}

func TestText(t *testing.T) {
	assert.Equal(t, "rn=1,cm-", FromString("rn=1,cm-\n").Text())
}
