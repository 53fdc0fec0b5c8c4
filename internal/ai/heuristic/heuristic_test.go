package heuristic

import (
	"math/rand/v2"
	"testing"

	"github.com/janpfeifer/littleGo/internal/parameters"
	. "github.com/janpfeifer/littleGo/internal/state"
	. "github.com/janpfeifer/littleGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-4

func TestEmptyBoard(t *testing.T) {
	board := NewBoard(DefaultBoardSize)
	for _, player := range Players {
		assert.Equal(t, float32(0), EulerNumber(board, player))
		assert.Equal(t, 0, Liberties(board, player))
		assert.Equal(t, 0, EdgePenalty(board, player))
	}
	assert.Equal(t, float32(-2.5), StoneDifferential(board, Black, DefaultHandicap))
	assert.Equal(t, float32(2.5), StoneDifferential(board, White, DefaultHandicap))
}

func TestEulerNumber(t *testing.T) {
	single := BuildBoard(White,
		".....",
		".....",
		"..X..",
		".....",
		".....")
	assert.Equal(t, float32(1), EulerNumber(single, Black))
	assert.Equal(t, float32(0), EulerNumber(single, White))

	// Diagonal stones are not connected: they count as 2.
	diagonal := BuildBoard(White,
		".....",
		".X...",
		"..X..",
		".....",
		".....")
	assert.Equal(t, float32(2), EulerNumber(diagonal, Black))

	adjacent := BuildBoard(White,
		".....",
		".....",
		"..XX.",
		".....",
		".....")
	assert.Equal(t, float32(1), EulerNumber(adjacent, Black))

	// A ring has one component and one hole.
	ring := BuildBoard(White,
		".....",
		".XXX.",
		".X.X.",
		".XXX.",
		".....")
	assert.Equal(t, float32(0), EulerNumber(ring, Black))

	// Windows hanging off the board are considered: a corner stone is a single component.
	corner := BuildBoard(White,
		"X....",
		".....",
		".....",
		".....",
		"....X")
	assert.Equal(t, float32(2), EulerNumber(corner, Black))
}

func TestLiberties(t *testing.T) {
	// The only black group has a single liberty at (0,0), adjacent to two of its stones.
	board := BuildBoard(Black,
		".XO..",
		"XXO..",
		"OO...",
		".....",
		".....")
	assert.Equal(t, 1, Liberties(board, Black))
	assert.Equal(t, 6, Liberties(board, White))
	assert.Equal(t, float32(-5), LibertyDifferential(board, Black))
	assert.Equal(t, float32(5), LibertyDifferential(board, White))
}

func TestLibertyClamp(t *testing.T) {
	board := BuildBoard(White,
		"X.X.X",
		".....",
		"X.X.X",
		".....",
		"X.X.X")
	assert.Equal(t, 24, Liberties(board, Black))
	assert.Equal(t, float32(LibertyClamp), LibertyDifferential(board, Black))
	assert.Equal(t, float32(-LibertyClamp), LibertyDifferential(board, White))

	// Random boards never go beyond the clamp, and Euler number stays within its bounds.
	rng := rand.New(rand.NewPCG(42, 7))
	windows := float32((DefaultBoardSize + 1) * (DefaultBoardSize + 1))
	for range 200 {
		rows := make([][]Stone, DefaultBoardSize)
		for row := range rows {
			rows[row] = make([]Stone, DefaultBoardSize)
			for col := range rows[row] {
				rows[row][col] = Stone(rng.IntN(3))
			}
		}
		b, err := NewFromRows(rows, nil, Black)
		require.NoError(t, err)
		for _, player := range Players {
			diff := LibertyDifferential(b, player)
			assert.LessOrEqual(t, diff, float32(LibertyClamp))
			assert.GreaterOrEqual(t, diff, float32(-LibertyClamp))
			euler := EulerNumber(b, player)
			assert.LessOrEqual(t, euler, windows/2)
			assert.GreaterOrEqual(t, euler, -windows/4)
		}
	}
}

func TestEdgePenalty(t *testing.T) {
	board := BuildBoard(Black,
		"X...O",
		".X...",
		"..X.O",
		".....",
		"...X.")
	assert.Equal(t, 2, EdgePenalty(board, Black))
	assert.Equal(t, 2, EdgePenalty(board, White))
}

func TestWeights(t *testing.T) {
	w := BlackProfile.Weights(0)
	assert.Equal(t, Weights{Stone: 0, Liberty: 0.5, Edge: -2, Euler: -7}, w)
	w = BlackProfile.Weights(12)
	assert.InDelta(t, 5, w.Stone, delta)
	assert.InDelta(t, 0, w.Edge, delta)

	w = WhiteProfile.Weights(12)
	assert.InDelta(t, 8.5, w.Stone, delta)
	assert.InDelta(t, -1.5, w.Edge, delta)
	assert.Equal(t, float32(1), w.Liberty)
	assert.Equal(t, float32(-6), w.Euler)

	// Edge weight never becomes a bonus.
	assert.Equal(t, float32(0), BlackProfile.Weights(22).Edge)

	// End game: stone count dominates.
	for _, moveNumber := range []int{23, 24, 30} {
		assert.Equal(t, EndGameStoneWeight, BlackProfile.Weights(moveNumber).Stone)
		assert.Equal(t, EndGameStoneWeight, WhiteProfile.Weights(moveNumber).Stone)
	}
}

func TestScore(t *testing.T) {
	s := New()
	board := BuildBoard(White,
		".....",
		".....",
		"..X..",
		".....",
		".....")
	// stones: 0×(-1.5), liberties: 0.5×4, edge: -2×0, euler: -7×1
	assert.InDelta(t, -5, s.Score(board, 0, Black), delta)

	// White at move 1: stones 7.125×(2.5-1), liberties 1×(-4), edge 0, euler -6×0
	assert.InDelta(t, 7.125*1.5-4, s.Score(board, 1, White), delta)

	// Deterministic.
	board = BuildBoard(Black,
		"XO.O.",
		".XOX.",
		"OX.XO",
		"..O..",
		"X...X")
	for _, player := range Players {
		for moveNumber := range 25 {
			assert.Equal(t, s.Score(board, moveNumber, player), s.Score(board, moveNumber, player))
		}
	}

	// Endgame is a stone count comparison.
	// Other terms are bounded by a few hundred at most.
	assert.InDelta(t, EndGameStoneWeight*(7-6-2.5), s.Score(board, 23, Black), 200)
	assert.Contains(t, s.Explain(board, 3, Black), "Black")
	assert.Equal(t, "heuristic", s.String())
}

func TestNewFromParams(t *testing.T) {
	params := parameters.NewFromConfigString("ab,handicap=3,black.euler=-5,white.stone_base=6.5,max_time=1s")
	s, err := NewFromParams(params)
	require.NoError(t, err)
	assert.Equal(t, float32(3), s.handicap)
	assert.Equal(t, float32(-5), s.Profile(Black).Euler)
	assert.Equal(t, BlackProfile.StoneSlope, s.Profile(Black).StoneSlope)
	assert.Equal(t, float32(6.5), s.Profile(White).StoneBase)
	assert.Equal(t, parameters.Params{"ab": "", "max_time": "1s"}, params)

	// Defaults are not modified.
	assert.Equal(t, float32(-7), BlackProfile.Euler)

	_, err = NewFromParams(parameters.NewFromConfigString("white.unknown=1"))
	assert.Error(t, err)
	_, err = NewFromParams(parameters.NewFromConfigString("black.euler=x"))
	assert.Error(t, err)
}
