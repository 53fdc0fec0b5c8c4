package alphabeta

import (
	. "github.com/janpfeifer/littleGo/internal/state"
)

// OpeningPlies is the number of moves of the match covered by the opening book.
const OpeningPlies = 2

var (
	blackOpenings = []Pos{{2, 2}}
	whiteOpenings = []Pos{{1, 1}, {1, 3}, {3, 1}, {3, 3}}
)

// OpeningMove returns the book move for player at the start of the match: Black takes the
// center and White takes the first free point diagonal to it.
//
// It returns found=false after the first OpeningPlies moves, or if none of the book moves
// is legal (e.g. a board edited by hand), in which case the move should be searched.
func OpeningMove(board *Board, moveNumber int, player Stone) (action Action, found bool) {
	if moveNumber >= OpeningPlies || board.Size() != DefaultBoardSize {
		return
	}
	candidates := whiteOpenings
	if player == Black {
		candidates = blackOpenings
	}
	for _, pos := range candidates {
		if board.IsLegal(pos, player) {
			return Action{Pos: pos}, true
		}
	}
	return
}
