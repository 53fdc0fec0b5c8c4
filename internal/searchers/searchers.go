// Package searchers defines the Searcher interface and the move ordering shared by the
// search algorithms.
package searchers

import (
	"github.com/janpfeifer/littleGo/internal/ai"
	"github.com/janpfeifer/littleGo/internal/generics"
	. "github.com/janpfeifer/littleGo/internal/state"
)

// Searcher is the interface that any of the search algorithms
// must adhere to be valid.
type Searcher interface {
	// Search returns the next action for board.NextPlayer, along with the updated Board (after taking the action)
	// and the expected score of taking that action, from the point of view of board.NextPlayer.
	//
	// The ply count used for the search is board.MoveNumber.
	//
	// If there are no legal placements it returns PassAction.
	Search(board *Board) (action Action, nextBoard *Board, score float32)
}

// OrderedActions returns the legal placements of player on board, sorted by a one-ply lookahead:
// each action is simulated and the resulting board scored by scorer, from the point of view of
// player and using the moveNumber before the action.
//
// Actions are returned from best to worst scoring. Ties keep the board's row-major discovery order.
// The simulated boards and their scores are returned aligned with the actions, so the search can
// reuse them.
func OrderedActions(board *Board, moveNumber int, player Stone, scorer ai.ValueScorer) (
	actions []Action, nextBoards []*Board, scores []float32) {
	legal := board.LegalMoves(player)
	if len(legal) == 0 {
		return
	}
	simulated := make([]*Board, len(legal))
	unordered := make([]float32, len(legal))
	for ii, action := range legal {
		simulated[ii] = board.Simulate(action, player)
		unordered[ii] = scorer.Score(simulated[ii], moveNumber, player)
	}

	ordering := generics.SliceOrdering(unordered, true) // Reverse order by score.
	actions = make([]Action, len(legal))
	nextBoards = make([]*Board, len(legal))
	scores = make([]float32, len(legal))
	for ii, idx := range ordering {
		actions[ii] = legal[idx]
		nextBoards[ii] = simulated[idx]
		scores[ii] = unordered[idx]
	}
	return
}
