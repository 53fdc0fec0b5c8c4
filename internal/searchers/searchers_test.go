package searchers

import (
	"math/rand/v2"
	"testing"

	"github.com/janpfeifer/littleGo/internal/ai/heuristic"
	. "github.com/janpfeifer/littleGo/internal/state"
	. "github.com/janpfeifer/littleGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedActions(t *testing.T) {
	scorer := heuristic.New()
	board := NewBoard(DefaultBoardSize)
	actions, nextBoards, scores := OrderedActions(board, 0, Black, scorer)
	require.Len(t, actions, 25)
	require.Len(t, nextBoards, 25)
	require.Len(t, scores, 25)

	// Interior points first, then edges, then corners; ties in row-major order.
	want := []Action{
		PlaceAt(1, 1), PlaceAt(1, 2), PlaceAt(1, 3), PlaceAt(2, 1), PlaceAt(2, 2), PlaceAt(2, 3),
		PlaceAt(3, 1), PlaceAt(3, 2), PlaceAt(3, 3),
		PlaceAt(0, 1), PlaceAt(0, 2), PlaceAt(0, 3), PlaceAt(1, 0), PlaceAt(1, 4), PlaceAt(2, 0),
		PlaceAt(2, 4), PlaceAt(3, 0), PlaceAt(3, 4), PlaceAt(4, 1), PlaceAt(4, 2), PlaceAt(4, 3),
		PlaceAt(0, 0), PlaceAt(0, 4), PlaceAt(4, 0), PlaceAt(4, 4),
	}
	assert.Equal(t, want, actions)
	assert.InDelta(t, -5, scores[0], 1e-4)
	assert.InDelta(t, -7.5, scores[9], 1e-4)
	assert.InDelta(t, -8, scores[24], 1e-4)
	for ii := 1; ii < len(scores); ii++ {
		assert.GreaterOrEqual(t, scores[ii-1], scores[ii])
	}

	// Boards are aligned with actions, and scored with the pre-move move number.
	for ii, action := range actions {
		assert.Equal(t, Black, nextBoards[ii].At(action.Pos))
		assert.Equal(t, 1, nextBoards[ii].NumStones())
		assert.Equal(t, scorer.Score(nextBoards[ii], 0, Black), scores[ii])
	}

	// Original board is not changed.
	assert.Equal(t, 0, board.NumStones())
}

func TestOrderedActionsNoMoves(t *testing.T) {
	board := BuildBoard(White,
		".X",
		"X.")
	actions, nextBoards, scores := OrderedActions(board, 2, White, heuristic.New())
	assert.Empty(t, actions)
	assert.Empty(t, nextBoards)
	assert.Empty(t, scores)
}

func TestRandomizedSearcher(t *testing.T) {
	scorer := heuristic.New()
	board := NewBoard(DefaultBoardSize)

	// No randomness: best one-ply action.
	greedy := NewRandomizedSearcher(scorer, 0, nil)
	action, nextBoard, _ := greedy.Search(board)
	assert.Equal(t, PlaceAt(1, 1), action)
	assert.Equal(t, Black, nextBoard.At(action.Pos))
	assert.Equal(t, White, nextBoard.NextPlayer)

	// With randomness, always a legal action.
	randomized := NewRandomizedSearcher(scorer, 2.0, rand.New(rand.NewPCG(1, 2)))
	for range 20 {
		action, nextBoard, _ = randomized.Search(board)
		assert.True(t, board.IsValid(action))
		assert.Equal(t, 1, nextBoard.MoveNumber)
	}

	// Nothing to play: pass.
	board = BuildBoard(White,
		".X",
		"X.")
	action, nextBoard, _ = randomized.Search(board)
	assert.Equal(t, PassAction, action)
	assert.Equal(t, Black, nextBoard.NextPlayer)
}

func TestSoftmax(t *testing.T) {
	probs := softmax([]float64{1000, 1000, -1000})
	assert.InDelta(t, 0.5, probs[0], 1e-9)
	assert.InDelta(t, 0.5, probs[1], 1e-9)
	assert.InDelta(t, 0, probs[2], 1e-9)
}
