package heuristic

import (
	"github.com/janpfeifer/littleGo/internal/ai"
	. "github.com/janpfeifer/littleGo/internal/state"
)

// LibertyClamp bounds the liberty differential: beyond it more liberties stop mattering.
const LibertyClamp = 20

// StoneDifferential returns the number of stones of player minus the opponent's, with
// handicap added to White's count.
func StoneDifferential(board *Board, player Stone, handicap float32) float32 {
	own := float32(board.Count(player))
	opponent := float32(board.Count(player.Opponent()))
	if player == White {
		own += handicap
	} else {
		opponent += handicap
	}
	return own - opponent
}

// Liberties returns the sum over the groups of player of their liberties. A liberty shared
// by stones of the same group is counted once for the group.
func Liberties(board *Board, player Stone) int {
	total := 0
	for _, group := range board.Groups(player) {
		total += board.GroupLiberties(group)
	}
	return total
}

// LibertyDifferential returns the liberties of player minus the liberties of the opponent,
// clamped to [-LibertyClamp, LibertyClamp].
func LibertyDifferential(board *Board, player Stone) float32 {
	diff := float32(Liberties(board, player) - Liberties(board, player.Opponent()))
	return ai.Clamp(diff, -LibertyClamp, LibertyClamp)
}

// EdgePenalty returns the number of stones of player on the outermost ring of the board.
func EdgePenalty(board *Board, player Stone) (count int) {
	for _, pos := range board.Positions(player) {
		if board.IsOnEdge(pos) {
			count++
		}
	}
	return
}

// EulerNumber estimates the connectivity of the stones of player, using the 2x2
// quad counting method over all windows that touch the board (off-board points count
// as empty):
//
//	E = (Q1 - Q3 + 2*Qd) / 4
//
// Where Q1 and Q3 are the number of windows with exactly 1 and 3 stones of the player, and
// Qd the number of windows with exactly 2 stones in diagonal. Lower values mean better
// connected stones.
func EulerNumber(board *Board, player Stone) float32 {
	var q1, q3, qd int
	size := board.Size()
	for row := -1; row < size; row++ {
		for col := -1; col < size; col++ {
			topLeft := board.Cell(row, col) == player
			topRight := board.Cell(row, col+1) == player
			bottomLeft := board.Cell(row+1, col) == player
			bottomRight := board.Cell(row+1, col+1) == player
			switch countTrue(topLeft, topRight, bottomLeft, bottomRight) {
			case 1:
				q1++
			case 2:
				if (topLeft && bottomRight) || (topRight && bottomLeft) {
					qd++
				}
			case 3:
				q3++
			}
		}
	}
	return float32(q1-q3+2*qd) / 4
}

func countTrue(values ...bool) (count int) {
	for _, v := range values {
		if v {
			count++
		}
	}
	return
}
