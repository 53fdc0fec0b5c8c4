// Package statetest provides helper functions to create tests using Little Go boards.
package statetest

import (
	"fmt"

	. "github.com/janpfeifer/littleGo/internal/state"
)

// letterToStone accepts both the digits of the turn files and the letters used by
// Stone.Letter.
var letterToStone = map[rune]Stone{
	'0': Empty, '.': Empty, '-': Empty,
	'1': Black, 'X': Black, 'x': Black,
	'2': White, 'O': White, 'o': White,
}

// ParseRows converts a layout, one string per row, into rows of stones.
// It panics on unknown characters: it is meant for tests only.
func ParseRows(layout ...string) [][]Stone {
	rows := make([][]Stone, len(layout))
	for ii, line := range layout {
		for _, r := range line {
			stone, ok := letterToStone[r]
			if !ok {
				panic(fmt.Sprintf("statetest: invalid character %q in row %d: %q", r, ii, line))
			}
			rows[ii] = append(rows[ii], stone)
		}
	}
	return rows
}

// BuildBoard from a layout (see ParseRows) with the given next player. MoveNumber is set
// to the number of stones on the board.
func BuildBoard(nextPlayer Stone, layout ...string) *Board {
	b, err := NewFromRows(ParseRows(layout...), nil, nextPlayer)
	if err != nil {
		panic(fmt.Sprintf("statetest: %+v", err))
	}
	return b
}

// BuildBoardWithPrevious is like BuildBoard, but it also sets the previous position,
// used by the KO rule.
func BuildBoardWithPrevious(nextPlayer Stone, previous, layout []string) *Board {
	b, err := NewFromRows(ParseRows(layout...), ParseRows(previous...), nextPlayer)
	if err != nil {
		panic(fmt.Sprintf("statetest: %+v", err))
	}
	return b
}
