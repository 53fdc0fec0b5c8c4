// Package cli implements a command-line UI for the game.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/littleGo/internal/generics"
	. "github.com/janpfeifer/littleGo/internal/state"
	"github.com/janpfeifer/littleGo/internal/turnio"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// CharsPerColumn is the width of each point of the board.
const CharsPerColumn = 3

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return lipgloss.Width(ansiFilter.ReplaceAllString(s, ""))
}

func centerString(s string, fit int) string {
	if len(s) >= fit {
		return s
	}
	marginLeft := (fit - len(s)) / 2
	marginRight := fit - len(s) - marginLeft
	return strings.Repeat(" ", marginLeft) + s + strings.Repeat(" ", marginRight)
}

var (
	parsingErrorMsg = "failed to read command 3 times"

	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	stoneStyles = [3]lipgloss.Style{
		Empty: emptyStyle,
		Black: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("0")),
		White: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15")),
	}
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("3")).
			Padding(0, 1)
)

// UI renders boards and reads the human's actions.
type UI struct {
	color, clearScreen bool
	reader             *bufio.Reader
	out                io.Writer
}

// New creates a UI that reads from the standard input and prints to the standard output.
func New(color bool, clearScreen bool) *UI {
	return NewWithIO(os.Stdin, os.Stdout, color, clearScreen)
}

// NewWithIO creates a UI reading the human's actions from in and printing to out.
func NewWithIO(in io.Reader, out io.Writer, color bool, clearScreen bool) *UI {
	return &UI{
		color:       color,
		clearScreen: clearScreen,
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

// printCentered prints the block centered in the terminal, if the output is a terminal.
func (ui *UI) printCentered(block string) {
	lines := strings.Split(block, "\n")
	terminalWidth := 0
	if f, ok := ui.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		terminalWidth, _, _ = term.GetSize(int(f.Fd()))
	}
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	indent := max((terminalWidth-blockWidth)/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			_, _ = fmt.Fprintln(ui.out)
			continue
		}
		_, _ = fmt.Fprintf(ui.out, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// CheckNoAvailableAction passes automatically if the next player has no placement available.
func (ui *UI) CheckNoAvailableAction(board *Board) (*Board, bool) {
	if len(board.LegalMoves(board.NextPlayer)) > 0 {
		return board, false
	}

	// Nothing to play, pass.
	_, _ = fmt.Fprintln(ui.out)
	ui.PrintPlayer(board)
	_, _ = fmt.Fprintln(ui.out, " has no available placements, passing.")
	_, _ = fmt.Fprintln(ui.out)
	board = board.Act(PassAction)
	return board, true
}

// RunNextMove prints the board, and reads and plays the human's action.
func (ui *UI) RunNextMove(board *Board) (*Board, error) {
	for {
		ui.Print(board, true)
		_, _ = fmt.Fprintln(ui.out)
		action, err := ui.ReadCommand(board)
		if err != nil && err.Error() == parsingErrorMsg {
			continue
		}
		if err != nil {
			return board, errors.WithMessage(err, "reading human action")
		}
		return board.Act(action), nil
	}
}

// Run a match between humans until it is finished.
func (ui *UI) Run(board *Board) (*Board, error) {
	for {
		board, _ = ui.CheckNoAvailableAction(board)
		if board.IsFinished() {
			ui.PrintWinner(board)
			return board, nil
		}
		var err error
		board, err = ui.RunNextMove(board)
		if err != nil {
			return board, err
		}
	}
}

// PrintWinner prints the result of the match.
func (ui *UI) PrintWinner(b *Board) {
	winner := b.Winner()
	_, _ = fmt.Fprintln(ui.out)
	ui.printCentered(fmt.Sprintf("Black %g x %g White (komi %g): %s", b.Score(Black), b.Score(White), b.Komi, b.FinishReason()))
	if winner == Empty {
		ui.printCentered(
			lipgloss.NewStyle().
				Background(lipgloss.Color("13")).
				Foreground(lipgloss.Color("0")).
				Padding(1, 2).
				Render("*** DRAW ***"))
	} else {
		ui.printCentered(fmt.Sprintf("%s *** %s PLAYER WINS!! Congratulations! *** %s\n",
			ui.colorStart(winner), strings.ToUpper(winner.String()), ui.colorEnd()))
	}
	_, _ = fmt.Fprintln(ui.out)
}

// ReadCommand reads the human's action: "row,col" or "pass". It gives up after 3 invalid inputs.
func (ui *UI) ReadCommand(b *Board) (action Action, err error) {
	// ANSI escape codes for:
	// - \033[45m: Set background color to magenta (purple-ish)
	// - \033[0m:  Reset all attributes to defaults
	const (
		inputAreaColor = "\033[30;45;2m"        // Purplish background
		inputAreaReset = "\033[39;49;0m\033[0K" // Reset color and clear to the end-of-line.
		inputWidth     = 10                     // Width of the input area
	)

	legal := generics.SetWith(b.LegalMoves(b.NextPlayer)...)
	for numErrs := 0; numErrs < 3; numErrs++ {
		_, _ = fmt.Fprint(ui.out, "    ")
		ui.PrintPlayer(b)
		_, _ = fmt.Fprint(ui.out, " action > ")
		if ui.color {
			// Print "input area" in purple, and move the cursor back to the beginning of the input area.
			_, _ = fmt.Fprintf(ui.out, "%s%s", inputAreaColor, strings.Repeat(" ", inputWidth))
			_, _ = fmt.Fprintf(ui.out, "\033[%dD", inputWidth-1) // Left 1 char padding.
		}

		var text string
		text, err = ui.reader.ReadString('\n')
		if ui.color {
			_, _ = fmt.Fprint(ui.out, inputAreaReset) // We don't want the purple color to leak.
		}
		if err != nil && (err != io.EOF || strings.TrimSpace(text) == "") {
			return
		}
		text = strings.TrimSpace(text)

		action, err = turnio.ParseAction(text)
		if err != nil {
			_, _ = fmt.Fprintf(ui.out, "    * Failed to parse your input %q, type \"row,col\" or \"pass\".\n", text)
			continue
		}
		if !action.IsPass() && !legal.Has(action) {
			_, _ = fmt.Fprintf(ui.out, "    * Placing a stone in %s is not valid.\n", action)
			continue
		}
		err = nil
		return
	}
	err = errors.New(parsingErrorMsg)
	return
}

// Print the move number, the board and, optionally, the available actions.
func (ui *UI) Print(board *Board, includeAvailableActions bool) {
	if ui.clearScreen {
		_, _ = fmt.Fprint(ui.out, "\033c")
	}
	if ui.color {
		_, _ = fmt.Fprint(ui.out, "\033[37;03;1m")
	}
	_, _ = fmt.Fprintf(ui.out, "\nMove #%d%s\n\n", board.MoveNumber, ui.colorEnd())

	ui.PrintBoard(board)
	_, _ = fmt.Fprintln(ui.out)
	ui.PrintScores(board)

	if !board.IsFinished() {
		if includeAvailableActions {
			_, _ = fmt.Fprintln(ui.out)
			ui.PrintPlayer(board)
			_, _ = fmt.Fprintln(ui.out, " turn to play")
			ui.printActions(board)
		} else {
			_, _ = fmt.Fprint(ui.out, "\tTurn to play: ")
			ui.PrintPlayer(board)
			_, _ = fmt.Fprintln(ui.out)
		}
	}
}

// PrintPlayer prints the name of the next player, in its color.
func (ui *UI) PrintPlayer(board *Board) {
	_, _ = fmt.Fprintf(ui.out, "%s%s Player%s", ui.colorStart(board.NextPlayer), board.NextPlayer, ui.colorEnd())
}

// PrintSpacedPlayer is like PrintPlayer. Both player names have the same width, so no
// padding is needed.
func (ui *UI) PrintSpacedPlayer(board *Board) {
	ui.PrintPlayer(board)
}

// PrintScores prints the current score of each player.
func (ui *UI) PrintScores(board *Board) {
	for _, player := range Players {
		komi := ""
		if player == White {
			komi = fmt.Sprintf(" (%d stones + komi %g)", board.Count(White), board.Komi)
		}
		_, _ = fmt.Fprintf(ui.out, "%s%s Player%s score: %g%s\n",
			ui.colorStart(player), player, ui.colorEnd(), board.Score(player), komi)
	}
}

// PrintBoard prints the board centered in the terminal.
func (ui *UI) PrintBoard(board *Board) {
	ui.printCentered(ui.RenderBoard(board))
}

// RenderBoard returns the board with the row and column numbers, as used to input actions.
func (ui *UI) RenderBoard(board *Board) string {
	size := board.Size()
	lines := make([]string, 0, size+1)
	header := strings.Repeat(" ", CharsPerColumn)
	for col := range size {
		header += centerString(strconv.Itoa(col), CharsPerColumn)
	}
	lines = append(lines, ui.style(headerStyle, header))
	for row := range size {
		cells := make([]string, 0, size+1)
		cells = append(cells, ui.style(headerStyle, centerString(strconv.Itoa(row), CharsPerColumn)))
		for col := range size {
			stone := board.Cell(row, col)
			cells = append(cells, ui.style(stoneStyles[stone], centerString(stone.Letter(), CharsPerColumn)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if !ui.color {
		return grid
	}
	return boardStyle.Render(grid)
}

func (ui *UI) style(style lipgloss.Style, s string) string {
	if !ui.color {
		return s
	}
	return style.Render(s)
}

func (ui *UI) colorStart(player Stone) string {
	if !ui.color {
		return ""
	}
	if player == Black {
		return "\033[97;40;1m"
	}
	return "\033[30;107;1m"
}

func (ui *UI) colorEnd() string {
	if !ui.color {
		return ""
	}
	return "\033[39;49;0m"
}

func (ui *UI) printActions(b *Board) {
	actions := b.LegalMoves(b.NextPlayer)
	_, _ = fmt.Fprint(ui.out, "- Available actions:\n")
	if len(actions) == 0 {
		_, _ = fmt.Fprintln(ui.out, "  - No placements available, only pass.")
		return
	}
	positions := generics.SliceMap(actions, func(a Action) string { return a.String() })
	_, _ = fmt.Fprintf(ui.out, "  - Place a stone in one of the positions [%s], or pass.\n", strings.Join(positions, " "))
	_, _ = fmt.Fprintf(ui.out, "    Example: type '%s' to place a stone in row %d, column %d, or 'pass'.\n",
		actions[0], actions[0].Pos.Row(), actions[0].Pos.Col())
}
