// Package state holds the board of a Little Go (5x5) match and its rules: legality of
// placements (suicide and KO), capture of dead groups, end of match and scoring.
//
// Boards are treated as values: every operation that changes the position returns a
// new *Board, and the original is never modified.
package state

import (
	"fmt"
	"math"
)

const (
	// DefaultBoardSize is the size of the side of the board used by the matches.
	DefaultBoardSize = 5

	// DefaultMaxMoves after which the game is finished and scored. It counts actions
	// of both players, passes included.
	DefaultMaxMoves = DefaultBoardSize*DefaultBoardSize - 1

	// DefaultKomi is added to the score of White as compensation for playing second.
	DefaultKomi = float32(DefaultBoardSize) / 2

	// NumPlayers is always 2.
	NumPlayers = 2

	// MaxBoardSize is the largest board size whose coordinates fit a Pos.
	MaxBoardSize = math.MaxInt8
)

// Stone is the content of a point of the board. Black and White are also used to
// identify the players: Black plays first.
//
// The numeric values match the encoding of the turn files: 0 for empty, 1 for Black and
// 2 for White.
type Stone uint8

const (
	Empty Stone = iota
	Black
	White
)

var (
	stoneNames   = [3]string{"Empty", "Black", "White"}
	stoneLetters = [3]string{".", "X", "O"}
)

// String returns the name of the stone or player.
func (s Stone) String() string {
	if int(s) >= len(stoneNames) {
		return fmt.Sprintf("Stone(%d)", s)
	}
	return stoneNames[s]
}

// Letter returns a one-character representation of the stone.
func (s Stone) Letter() string {
	return stoneLetters[s]
}

// Opponent returns the other player. The opponent of Empty is Empty.
func (s Stone) Opponent() Stone {
	if s == Empty {
		return Empty
	}
	return 3 - s
}

// IsPlayer returns whether s is Black or White.
func (s Stone) IsPlayer() bool {
	return s == Black || s == White
}

// Players enumerates the players in order of play.
var Players = [NumPlayers]Stone{Black, White}

// Pos packages row, column position.
type Pos [2]int8

// MakePos creates a position from int coordinates.
func MakePos(row, col int) Pos {
	return Pos{int8(row), int8(col)}
}

// Row of the position.
func (pos Pos) Row() int {
	return int(pos[0])
}

// Col (column) of the position.
func (pos Pos) Col() int {
	return int(pos[1])
}

// String returns the position in the "row,col" format used by the turn files.
func (pos Pos) String() string {
	return fmt.Sprintf("%d,%d", pos[0], pos[1])
}

var neighborRelPositions = [4]Pos{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Action is either the placement of a stone in a position or a pass.
type Action struct {
	Pos  Pos
	Pass bool
}

// PassAction is always a valid action.
var PassAction = Action{Pass: true}

// PlaceAt returns the action of placing a stone at the given row and column.
func PlaceAt(row, col int) Action {
	return Action{Pos: MakePos(row, col)}
}

// IsPass returns whether the action is a pass.
func (a Action) IsPass() bool {
	return a.Pass
}

// String returns "PASS" or the position in "row,col" format.
func (a Action) String() string {
	if a.Pass {
		return "PASS"
	}
	return a.Pos.String()
}

// Equal compares whether two actions are the same. All passes are equal.
func (a Action) Equal(a2 Action) bool {
	if a.Pass || a2.Pass {
		return a.Pass == a2.Pass
	}
	return a.Pos == a2.Pos
}
