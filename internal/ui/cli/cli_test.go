package cli

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/janpfeifer/littleGo/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBoard(t *testing.T) {
	board := NewBoard(DefaultBoardSize).Act(PlaceAt(2, 2)).Act(PlaceAt(1, 3))
	ui := NewWithIO(strings.NewReader(""), &bytes.Buffer{}, false, false)
	rendered := ui.RenderBoard(board)
	lines := strings.Split(rendered, "\n")
	require.Len(t, lines, DefaultBoardSize+1)
	assert.Equal(t, "    0  1  2  3  4 ", lines[0])
	assert.Equal(t, " 1  .  .  .  O  . ", lines[2])
	assert.Equal(t, " 2  .  .  X  .  . ", lines[3])

	// With colors the stones are still there.
	colored := NewWithIO(strings.NewReader(""), &bytes.Buffer{}, true, false).RenderBoard(board)
	plain := ansiFilter.ReplaceAllString(colored, "")
	assert.Contains(t, plain, " X ")
	assert.Contains(t, plain, " O ")
}

func TestReadCommand(t *testing.T) {
	board := NewBoard(DefaultBoardSize).Act(PlaceAt(2, 2))
	var out bytes.Buffer
	ui := NewWithIO(strings.NewReader("hello\n2,2\n 3 , 1 \n"), &out, false, false)
	action, err := ui.ReadCommand(board)
	require.NoError(t, err)
	assert.Equal(t, PlaceAt(3, 1), action)
	assert.Contains(t, out.String(), "Failed to parse your input \"hello\"")
	assert.Contains(t, out.String(), "Placing a stone in 2,2 is not valid")

	ui = NewWithIO(strings.NewReader("PASS"), &out, false, false)
	action, err = ui.ReadCommand(board)
	require.NoError(t, err)
	assert.Equal(t, PassAction, action)

	ui = NewWithIO(strings.NewReader("a\nb\nc\n"), &out, false, false)
	_, err = ui.ReadCommand(board)
	assert.Error(t, err)

	ui = NewWithIO(strings.NewReader(""), &out, false, false)
	_, err = ui.ReadCommand(board)
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	ui := NewWithIO(strings.NewReader("0,0\n1,1\npass\n"), &out, false, false)
	board, err := ui.Run(NewBoard(2))
	require.NoError(t, err)
	assert.True(t, board.IsFinished())
	assert.Equal(t, White, board.Winner())
	assert.Contains(t, out.String(), "WHITE PLAYER WINS")
	assert.Contains(t, out.String(), "Available actions")

	// Input ends before the match.
	ui = NewWithIO(strings.NewReader("0,0\n"), &out, false, false)
	_, err = ui.Run(NewBoard(2))
	assert.Error(t, err)
}

func TestCheckNoAvailableAction(t *testing.T) {
	board, err := NewFromRows([][]Stone{{Empty, Black}, {Black, Empty}}, nil, White)
	require.NoError(t, err)
	var out bytes.Buffer
	ui := NewWithIO(strings.NewReader(""), &out, false, false)
	newBoard, passed := ui.CheckNoAvailableAction(board)
	assert.True(t, passed)
	assert.Equal(t, Black, newBoard.NextPlayer)
	assert.Contains(t, out.String(), "White Player has no available placements")

	_, passed = ui.CheckNoAvailableAction(newBoard)
	assert.False(t, passed)
}
