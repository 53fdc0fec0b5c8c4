package counter

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/janpfeifer/littleGo/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCounter(t *testing.T, path string) string {
	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(contents)
}

func boardWithStones(numStones int) *Board {
	board := NewBoard(DefaultBoardSize)
	for ii := range numStones {
		board = board.Simulate(PlaceAt(ii/DefaultBoardSize, ii%DefaultBoardSize), Black)
	}
	return board
}

func TestLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)

	// Created with the number of stones.
	f, err := Open(path, boardWithStones(1))
	require.NoError(t, err)
	assert.Equal(t, path, f.Path())
	assert.Equal(t, 1, f.MoveNumber())
	assert.Equal(t, "1", readCounter(t, path))

	// +2 per turn.
	require.NoError(t, f.Advance())
	assert.Equal(t, 3, f.MoveNumber())
	assert.Equal(t, "3", readCounter(t, path))

	// Reopened: the stones are ignored, the file holds the move number.
	f, err = Open(path, boardWithStones(2))
	require.NoError(t, err)
	assert.Equal(t, 3, f.MoveNumber())

	// Until the last turn, where the file is removed.
	for f.MoveNumber() < LastTurnMoveNumber {
		require.NoError(t, f.Advance())
	}
	assert.Equal(t, 23, f.MoveNumber())
	require.NoError(t, f.Advance())
	assert.NoFileExists(t, path)

	// Removing twice is fine.
	require.NoError(t, f.Advance())
}

func TestResetOnNewGame(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte("14"), 0644))
	f, err := Open(path, boardWithStones(0))
	require.NoError(t, err)
	assert.Equal(t, 0, f.MoveNumber())
	assert.Equal(t, "0", readCounter(t, path))

	require.NoError(t, os.WriteFile(path, []byte("14\n"), 0644))
	f, err = Open(path, boardWithStones(5))
	require.NoError(t, err)
	assert.Equal(t, 14, f.MoveNumber())
}

func TestRecoverCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	for _, contents := range []string{"", "abc", "-4"} {
		require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
		f, err := Open(path, boardWithStones(6))
		require.NoError(t, err, "contents %q", contents)
		assert.Equal(t, 6, f.MoveNumber(), "contents %q", contents)
		assert.Equal(t, "6", readCounter(t, path))
	}
}

func TestOpenError(t *testing.T) {
	// A directory can't be read as a file.
	_, err := Open(t.TempDir(), boardWithStones(4))
	assert.Error(t, err)
}

func TestMemory(t *testing.T) {
	m := NewMemory(boardWithStones(3))
	assert.Equal(t, 3, m.MoveNumber())
	require.NoError(t, m.Advance())
	assert.Equal(t, 5, m.MoveNumber())
}
