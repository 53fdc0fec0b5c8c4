// Package counter keeps the number of moves of the match across the turns of a player.
//
// The host of a match starts a new player process for each turn, and only hands it the
// current and previous boards. The number of stones on the board is not the move number
// (passes and captures), so the player keeps its own count in a small file next to the
// turn files.
package counter

import (
	"os"
	"strconv"
	"strings"

	. "github.com/janpfeifer/littleGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const (
	// DefaultPath is the name of the counter file.
	DefaultPath = "num_move.txt"

	// MovesPerTurn is the number of moves between two turns of the same player.
	MovesPerTurn = 2

	// LastTurnMoveNumber is the move number at or after which the player is on its last
	// turn: the counter is removed, so the next match starts afresh.
	LastTurnMoveNumber = DefaultMaxMoves - MovesPerTurn

	// NewGameMaxStones is the number of stones below which the board is considered the
	// start of a new match, and the counter is reset.
	NewGameMaxStones = 2
)

// Counter provides the move number of the current turn, and is advanced once the player
// moved.
type Counter interface {
	// MoveNumber of the current turn.
	MoveNumber() int

	// Advance to the next turn of the player.
	Advance() error
}

var (
	_ Counter = (*File)(nil)
	_ Counter = (*Memory)(nil)
)

// File is a Counter stored in a file.
type File struct {
	path       string
	moveNumber int
}

// Open the counter file in path, for the current board:
//
//   - If the file doesn't exist, it's created with the number of stones on the board.
//   - If the board has fewer than NewGameMaxStones stones, a new match started, and the
//     counter is reset to the number of stones.
//   - If the contents of the file can't be parsed, it's recovered with the number of stones.
func Open(path string, board *Board) (*File, error) {
	f := &File{path: path, moveNumber: board.NumStones()}
	contents, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		klog.V(1).Infof("Counter file %q not found, starting at move %d", path, f.moveNumber)
		return f, f.write()
	case err != nil:
		return nil, errors.Wrapf(err, "reading counter file %q", path)
	case f.moveNumber < NewGameMaxStones:
		klog.V(1).Infof("New match, resetting counter file %q to %d", path, f.moveNumber)
		return f, f.write()
	}

	moveNumber, err := strconv.Atoi(strings.TrimSpace(string(contents)))
	if err != nil || moveNumber < 0 {
		klog.Warningf("Counter file %q has invalid contents %q, resetting it to %d", path, contents, f.moveNumber)
		return f, f.write()
	}
	f.moveNumber = moveNumber
	return f, nil
}

// Path of the counter file.
func (f *File) Path() string {
	return f.path
}

// MoveNumber implements Counter.
func (f *File) MoveNumber() int {
	return f.moveNumber
}

// Advance implements Counter. It adds MovesPerTurn to the counter, or removes the file if
// this was the last turn of the player in the match.
func (f *File) Advance() error {
	if f.moveNumber >= LastTurnMoveNumber {
		klog.V(1).Infof("Last turn at move %d, removing counter file %q", f.moveNumber, f.path)
		err := os.Remove(f.path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return errors.Wrapf(err, "removing counter file %q", f.path)
		}
		return nil
	}
	f.moveNumber += MovesPerTurn
	klog.V(1).Infof("Counter file %q updated to move %d", f.path, f.moveNumber)
	return f.write()
}

func (f *File) write() error {
	err := os.WriteFile(f.path, []byte(strconv.Itoa(f.moveNumber)), 0644)
	return errors.Wrapf(err, "writing counter file %q", f.path)
}

// Memory is a Counter kept in memory, used when the same process plays all the turns.
type Memory struct {
	moveNumber int
}

// NewMemory creates a Memory counter starting at the number of stones on the board.
func NewMemory(board *Board) *Memory {
	return &Memory{moveNumber: board.NumStones()}
}

// MoveNumber implements Counter.
func (m *Memory) MoveNumber() int {
	return m.moveNumber
}

// Advance implements Counter. It never fails.
func (m *Memory) Advance() error {
	m.moveNumber += MovesPerTurn
	return nil
}
