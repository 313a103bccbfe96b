package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n\nthree\n"), 0o644))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two", "", "three"}, lines)
}

func TestReadLines_Missing(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLines(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, Lines("a\nb\n"))
	require.Equal(t, []string{"a", "b"}, Lines("a\nb"))
	require.Equal(t, []string{"a", ""}, Lines("a\n\n"))
	require.Nil(t, Lines(""))
}

func TestBlocks(t *testing.T) {
	got := Blocks([]string{"a", "b", "", "c", "", "", "d"})
	require.Equal(t, [][]string{{"a", "b"}, {"c"}, nil, {"d"}}, got)

	require.Empty(t, Blocks(nil))
}
