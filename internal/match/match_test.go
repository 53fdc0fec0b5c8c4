package match

import (
	"context"
	"testing"

	"github.com/janpfeifer/littleGo/internal/players"
	_ "github.com/janpfeifer/littleGo/internal/players/default"
	. "github.com/janpfeifer/littleGo/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayers(t *testing.T, configs ...string) (matchPlayers [NumPlayers]players.Player) {
	for ii, player := range Players {
		var err error
		matchPlayers[ii], err = players.New(t.Name(), player, configs[ii])
		require.NoError(t, err)
	}
	return
}

func TestPlay(t *testing.T) {
	matchPlayers := newPlayers(t, "ab:max_depth=2,max_time=0s", "random:seed=7")
	var numSteps int
	board, err := Play(context.Background(), t.Name(), NewBoard(DefaultBoardSize), matchPlayers,
		func(board *Board, action Action, _ float32, nextBoard *Board) {
			numSteps++
			assert.Equal(t, board.MoveNumber+1, nextBoard.MoveNumber)
			assert.Equal(t, board.NextPlayer.Opponent(), nextBoard.NextPlayer)
		})
	require.NoError(t, err)
	assert.True(t, board.IsFinished())
	assert.Equal(t, numSteps, board.MoveNumber)
	assert.LessOrEqual(t, board.MoveNumber, DefaultMaxMoves)
	assert.NotEqual(t, Empty, board.Winner(), "there are no draws with a komi of 2.5")
}

func TestPlayInterrupted(t *testing.T) {
	matchPlayers := newPlayers(t, "random:seed=1", "random:seed=2")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	board, err := Play(ctx, t.Name(), NewBoard(DefaultBoardSize), matchPlayers, nil)
	assert.Error(t, err)
	assert.Equal(t, 0, board.MoveNumber)
}

func TestResults(t *testing.T) {
	r := NewResults(4)
	r.Record(0, Black) // AI-1 wins as Black.
	r.Record(1, Black) // AI-2 wins as Black.
	r.Record(1, White) // AI-1 wins as White.
	r.Record(0, Empty)
	assert.Equal(t, 4, r.Played())
	assert.Equal(t, 2, r.Wins(0))
	assert.Equal(t, 1, r.Wins(1))
	assert.Contains(t, r.String(), "Played 4 of 4: AI-1: 2 Wins (1st: 1, 2nd: 1) / AI-2: 1 Wins (1st: 1, 2nd: 0) / 1 draws (1 AI-1 as 1st, 0 AI-2 as 1st)")
	assert.Equal(t, 1, PlayerIndex(White))
}
