package state

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Board is the position of a match. Use it through its methods: a Board is never
// modified after it is handed out, new positions are always new *Board objects.
type Board struct {
	size  int
	cells []Stone

	// previous holds the cells before the last action, used for the KO rule.
	// It is nil if unknown (e.g. the start of a match).
	previous []Stone

	// MoveNumber counts the actions (passes included) taken in the match so far.
	MoveNumber int

	// MaxMoves after which the match is finished.
	MaxMoves int

	// NextPlayer is the player to act: either Black or White.
	NextPlayer Stone

	// Komi is the compensation added to White's score.
	Komi float32

	// passes counts consecutive passes: two in a row finish the match.
	passes int
}

// NewBoard creates an empty board of the given size, with Black to play.
func NewBoard(size int) *Board {
	return &Board{
		size:       size,
		cells:      make([]Stone, size*size),
		MaxMoves:   size*size - 1,
		NextPlayer: Black,
		Komi:       float32(size) / 2,
	}
}

// NewFromRows creates a board from its rows of stones, and optionally the rows of
// the previous position (for the KO rule); previous can be nil.
//
// MoveNumber is set to the number of stones on the board.
func NewFromRows(rows, previous [][]Stone, nextPlayer Stone) (*Board, error) {
	size := len(rows)
	if size == 0 {
		return nil, errors.New("board must have at least one row")
	}
	if !nextPlayer.IsPlayer() {
		return nil, errors.Errorf("invalid next player %d", nextPlayer)
	}
	b := NewBoard(size)
	b.NextPlayer = nextPlayer
	if err := fillCells(b.cells, rows, size); err != nil {
		return nil, errors.WithMessage(err, "current board")
	}
	if previous != nil {
		b.previous = make([]Stone, size*size)
		if err := fillCells(b.previous, previous, size); err != nil {
			return nil, errors.WithMessage(err, "previous board")
		}
	}
	b.MoveNumber = b.NumStones()
	return b, nil
}

func fillCells(cells []Stone, rows [][]Stone, size int) error {
	if len(rows) != size {
		return errors.Errorf("expected %d rows, got %d", size, len(rows))
	}
	for row, stones := range rows {
		if len(stones) != size {
			return errors.Errorf("row %d has %d points, expected %d", row, len(stones), size)
		}
		for col, stone := range stones {
			if stone > White {
				return errors.Errorf("invalid stone %d at %d,%d", stone, row, col)
			}
			cells[row*size+col] = stone
		}
	}
	return nil
}

// Clone makes a copy of the board that can be modified.
func (b *Board) Clone() *Board {
	newB := &Board{}
	*newB = *b
	newB.cells = slices.Clone(b.cells)
	return newB
}

// Size of the side of the board.
func (b *Board) Size() int {
	return b.size
}

// InBounds returns whether the row and column are within the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// At returns the stone at the given position. It must be in bounds.
func (b *Board) At(pos Pos) Stone {
	return b.cells[b.index(pos)]
}

// Cell returns the stone at the given row and column, or Empty if it is out of bounds.
func (b *Board) Cell(row, col int) Stone {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[row*b.size+col]
}

// IsOnEdge returns whether the position is on the outermost ring of the board.
func (b *Board) IsOnEdge(pos Pos) bool {
	last := b.size - 1
	return pos.Row() == 0 || pos.Row() == last || pos.Col() == 0 || pos.Col() == last
}

func (b *Board) index(pos Pos) int {
	return pos.Row()*b.size + pos.Col()
}

func (b *Board) posOf(idx int) Pos {
	return MakePos(idx/b.size, idx%b.size)
}

// Count returns the number of stones of the given color on the board.
func (b *Board) Count(stone Stone) (count int) {
	for _, s := range b.cells {
		if s == stone {
			count++
		}
	}
	return
}

// NumStones returns the number of stones of both players on the board.
func (b *Board) NumStones() int {
	return b.Count(Black) + b.Count(White)
}

// Positions returns all positions holding the given stone, in row-major order.
func (b *Board) Positions(stone Stone) (positions []Pos) {
	for idx, s := range b.cells {
		if s == stone {
			positions = append(positions, b.posOf(idx))
		}
	}
	return
}

// Neighbors returns the up-to-4 positions adjacent to pos that are in the board.
func (b *Board) Neighbors(pos Pos) []Pos {
	neighbors := make([]Pos, 0, len(neighborRelPositions))
	for _, rel := range neighborRelPositions {
		row, col := pos.Row()+rel.Row(), pos.Col()+rel.Col()
		if b.InBounds(row, col) {
			neighbors = append(neighbors, MakePos(row, col))
		}
	}
	return neighbors
}

// SameCells returns whether both boards have the same stones in the same places.
func (b *Board) SameCells(b2 *Board) bool {
	return slices.Equal(b.cells, b2.cells)
}

// PreviousIs returns whether the position before the last action equals the cells of
// the given board. It returns false if the previous position is not known.
func (b *Board) PreviousIs(b2 *Board) bool {
	return b.previous != nil && slices.Equal(b.previous, b2.cells)
}

// Rows returns a copy of the board as a slice of rows.
func (b *Board) Rows() [][]Stone {
	rows := make([][]Stone, b.size)
	for row := range rows {
		rows[row] = slices.Clone(b.cells[row*b.size : (row+1)*b.size])
	}
	return rows
}

// PreviousRows returns a copy of the position before the last action as a slice of rows,
// or nil if it is not known.
func (b *Board) PreviousRows() [][]Stone {
	if b.previous == nil {
		return nil
	}
	rows := make([][]Stone, b.size)
	for row := range rows {
		rows[row] = slices.Clone(b.previous[row*b.size : (row+1)*b.size])
	}
	return rows
}

// String returns the board as rows of digits, the same encoding used by the turn files.
func (b *Board) String() string {
	var sb strings.Builder
	for idx, s := range b.cells {
		sb.WriteByte('0' + byte(s))
		if idx%b.size == b.size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
