// Package turnio reads and writes the files used by the host of a match to exchange one
// turn with a player process.
//
// The input file has the side to move in the first line ("1" for Black, "2" for White),
// followed by the rows of the board before the opponent's last move and then the rows of
// the current board. Each row is a string of digits: 0 for empty, 1 for Black and 2 for White.
//
// The output file holds a single line, either "PASS" or the position "row,col" where to
// place a stone.
package turnio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	. "github.com/janpfeifer/littleGo/internal/state"
	"github.com/pkg/errors"
)

const (
	// DefaultInputPath is the input file name used by the host.
	DefaultInputPath = "input.txt"

	// DefaultOutputPath is the output file name expected by the host.
	DefaultOutputPath = "output.txt"

	passToken = "PASS"
)

// Read parses a turn for a board of the given size. The returned board has the previous
// position set (for the KO rule) and NextPlayer set to the side to move. Its MoveNumber is
// the number of stones on the board.
func Read(r io.Reader, size int) (*Board, error) {
	if err := CheckSize(size); err != nil {
		return nil, err
	}
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading turn")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if want := 1 + 2*size; len(lines) != want {
		return nil, errors.Errorf("turn should have %d lines (side to move and 2 boards of %d rows), got %d",
			want, size, len(lines))
	}

	side, err := strconv.Atoi(lines[0])
	if err != nil || side < 0 || side > 2 || !Stone(side).IsPlayer() {
		return nil, errors.Errorf("invalid side to move %q in line 1, expected 1 or 2", lines[0])
	}
	previous, err := parseRows(lines[1:1+size], 2)
	if err != nil {
		return nil, errors.WithMessage(err, "previous board")
	}
	current, err := parseRows(lines[1+size:], 2+size)
	if err != nil {
		return nil, errors.WithMessage(err, "current board")
	}
	return NewFromRows(current, previous, Stone(side))
}

// parseRows converts lines of digits to rows of stones. firstLine is only used for error
// messages.
func parseRows(lines []string, firstLine int) ([][]Stone, error) {
	rows := make([][]Stone, len(lines))
	for ii, line := range lines {
		if len(line) != len(lines) {
			return nil, errors.Errorf("line %d %q should have %d digits", firstLine+ii, line, len(lines))
		}
		rows[ii] = make([]Stone, len(line))
		for col, c := range []byte(line) {
			if c < '0' || c > '2' {
				return nil, errors.Errorf("line %d %q: invalid point %q, expected 0, 1 or 2", firstLine+ii, line, c)
			}
			rows[ii][col] = Stone(c - '0')
		}
	}
	return rows, nil
}

// ReadFile is like Read, but reads from the file in path.
func ReadFile(path string, size int) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening turn file %q", path)
	}
	defer func() { _ = f.Close() }()
	board, err := Read(f, size)
	if err != nil {
		return nil, errors.WithMessagef(err, "turn file %q", path)
	}
	return board, nil
}

// WriteTurn writes the board as a turn for board.NextPlayer, in the format parsed by Read.
// If the previous position of the board is not known, the current one is repeated.
func WriteTurn(w io.Writer, board *Board) error {
	previous := board.PreviousRows()
	if previous == nil {
		previous = board.Rows()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n", board.NextPlayer)
	for _, rows := range [][][]Stone{previous, board.Rows()} {
		for _, row := range rows {
			for _, stone := range row {
				sb.WriteByte('0' + byte(stone))
			}
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "writing turn")
}

// WriteTurnFile is like WriteTurn, but (over)writes the file in path.
func WriteTurnFile(path string, board *Board) error {
	var sb strings.Builder
	if err := WriteTurn(&sb, board); err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, []byte(sb.String()), 0644), "writing turn file %q", path)
}

// Write writes the action in the output format.
func Write(w io.Writer, action Action) error {
	_, err := fmt.Fprintln(w, FormatAction(action))
	return errors.Wrap(err, "writing action")
}

// WriteFile (over)writes the file in path with the action.
func WriteFile(path string, action Action) error {
	err := os.WriteFile(path, []byte(FormatAction(action)+"\n"), 0644)
	return errors.Wrapf(err, "writing action to %q", path)
}

// FormatAction returns the action as written in the output file.
func FormatAction(action Action) string {
	if action.IsPass() {
		return passToken
	}
	return fmt.Sprintf("%d,%d", action.Pos.Row(), action.Pos.Col())
}

// ParseAction parses an action in the output format. It is lenient with case and spaces:
// "pass" and " 2, 3 " are accepted.
func ParseAction(s string) (Action, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, passToken) {
		return PassAction, nil
	}
	rowStr, colStr, found := strings.Cut(s, ",")
	if !found {
		return Action{}, errors.Errorf("invalid action %q, expected \"row,col\" or \"PASS\"", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return Action{}, errors.Wrapf(err, "invalid row in action %q", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return Action{}, errors.Wrapf(err, "invalid column in action %q", s)
	}
	if row < 0 || col < 0 || row > MaxBoardSize || col > MaxBoardSize {
		return Action{}, errors.Errorf("action %q out of range", s)
	}
	return PlaceAt(row, col), nil
}

// ReadActionFile reads the action written in the file in path.
func ReadActionFile(path string) (Action, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Action{}, errors.Wrapf(err, "reading action file %q", path)
	}
	action, err := ParseAction(string(contents))
	return action, errors.WithMessagef(err, "action file %q", path)
}

// CheckSize returns an error if size is not a valid board size: from 1 to MaxBoardSize.
func CheckSize(size int) error {
	if size <= 0 || size > MaxBoardSize {
		return errors.Errorf("invalid board size %d, it must be between 1 and %d", size, MaxBoardSize)
	}
	return nil
}
