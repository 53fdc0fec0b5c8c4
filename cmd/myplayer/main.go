// myplayer plays one turn of a Little Go match hosted by an external program: it reads the
// turn from the input file, searches for the best action and writes it to the output file.
//
// The move number of the match, which can't be derived from the boards, is kept in a counter
// file between turns.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/janpfeifer/littleGo/internal/counter"
	"github.com/janpfeifer/littleGo/internal/players"
	_ "github.com/janpfeifer/littleGo/internal/players/default"
	"github.com/janpfeifer/littleGo/internal/profilers"
	. "github.com/janpfeifer/littleGo/internal/state"
	"github.com/janpfeifer/littleGo/internal/turnio"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagInput   = flag.String("input", turnio.DefaultInputPath, "Input file with the side to move, the previous and the current boards.")
	flagOutput  = flag.String("output", turnio.DefaultOutputPath, "Output file where to write the action.")
	flagCounter = flag.String("counter", counter.DefaultPath, "File keeping the move number between turns. "+
		"If empty, the move number is the number of stones on the board.")
	flagConfig = flag.String("config", "", "AI configuration, see players.New. Default is \"ab\".")
	flagSize   = flag.Int("size", DefaultBoardSize, "Size of the board.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if err := turnio.CheckSize(*flagSize); err != nil {
		klog.Exitf("Invalid -size: %v", err)
	}
	profilers.Setup(context.Background())
	defer profilers.OnQuit()
	start := time.Now()

	board, err := turnio.ReadFile(*flagInput, *flagSize)
	if err != nil {
		klog.Exitf("Failed to read turn: %+v", err)
	}
	moveCounter := must.M1(openCounter(board))
	board.MoveNumber = moveCounter.MoveNumber()
	if klog.V(1).Enabled() {
		klog.Infof("Move #%d, %s to play:\n%s", board.MoveNumber, board.NextPlayer, board)
	}

	player := must.M1(players.New(fmt.Sprintf("turn-%d", board.MoveNumber), board.NextPlayer, *flagConfig))
	action, _, score := player.Play(board)
	player.Finalize()

	must.M(turnio.WriteFile(*flagOutput, action))
	must.M(moveCounter.Advance())
	klog.V(1).Infof("Played %s (score=%.2f) in %s", action, score, time.Since(start))
}

// openCounter returns the counter file, or an in-memory one if -counter is empty.
func openCounter(board *Board) (counter.Counter, error) {
	if *flagCounter == "" {
		return counter.NewMemory(board), nil
	}
	f, err := counter.Open(*flagCounter, board)
	if err != nil {
		return nil, err
	}
	return f, nil
}
