// compare plays a series of matches between two AI configurations, alternating colors, and
// reports the tally of wins.
package main

import (
	"context"
	"flag"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/janpfeifer/littleGo/internal/match"
	"github.com/janpfeifer/littleGo/internal/players"
	_ "github.com/janpfeifer/littleGo/internal/players/default"
	"github.com/janpfeifer/littleGo/internal/profilers"
	. "github.com/janpfeifer/littleGo/internal/state"
	"github.com/janpfeifer/littleGo/internal/ui/cli"
	"github.com/janpfeifer/littleGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

var (
	flagPlayer1Config = flag.String("ai1", "", "1st player configuration.")
	flagPlayer2Config = flag.String("ai2", "", "2nd player configuration.")
	flagNumMatches    = flag.Int("num_matches", 100, "Number of matches to play.")
	flagParallelism   = flag.Int("parallelism", 0, "If > 0 ignore GOMAXPROCS and play "+
		"these many matches simultaneously.")
	flagPrintSteps = flag.Bool("print_steps", false, "Print board at each step. "+
		"Very verbose, and you probably want to set flagParallelism to 1.")
	flagMaxMoves = flag.Int(
		"max_moves", DefaultMaxMoves, "Max moves before the game is finished and scored.")
)

// Globals
var (
	// globalCtx used everywhere. It is cancelled when the program is about to exit either by
	// an interrupt (ctrl+C) or by reaching the end.
	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *flagPlayer1Config == "" || *flagPlayer2Config == "" {
		klog.Exitf("You must configure both players to compare with flags -ai1 and -ai2")
	}
	if *flagNumMatches <= 0 || *flagMaxMoves <= 0 {
		klog.Exitf("Invalid -num_matches=%d or -max_moves=%d", *flagNumMatches, *flagMaxMoves)
	}

	// Capture Control+C
	var globalCancel func()
	globalCtx, globalCancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(globalCancel, 5*time.Second)
	defer globalCancel()

	// Profilers: HTTP profiler server and CPU profile.
	profilers.Setup(globalCtx)
	defer profilers.OnQuit()

	// Check configurations before starting.
	for aiIdx, config := range aiConfigs() {
		p, err := players.New("check", Black, config)
		if err != nil {
			klog.Exitf("Invalid configuration for AI-%d: %+v", aiIdx+1, err)
		}
		p.Finalize()
	}
	must.M(runMatches(globalCtx))
}

func aiConfigs() [2]string {
	return [2]string{*flagPlayer1Config, *flagPlayer2Config}
}

// createMatchPlayers creates new players for a match: the searchers keep state, so they can't
// be shared among matches running in parallel.
func createMatchPlayers(matchName string, ai1st int) (matchPlayers [NumPlayers]players.Player, err error) {
	configs := aiConfigs()
	for ii, player := range Players {
		config := configs[(ai1st+ii)%2]
		klog.V(1).Infof("%s: creating AI for %s from %q", matchName, player, config)
		matchPlayers[ii], err = players.New(matchName, player, config)
		if err != nil {
			return
		}
	}
	return
}

func runMatches(ctx context.Context) error {
	r := match.NewResults(*flagNumMatches)
	var wg errgroup.Group
	wg.SetLimit(getParallelism())
	fmt.Printf("\r%s\033[0K", r)

	for matchIdx := range *flagNumMatches {
		wg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			ai1st := matchIdx % 2
			matchName := fmt.Sprintf("Match-%05d", matchIdx)
			matchPlayers, err := createMatchPlayers(matchName, ai1st)
			if err != nil {
				return err
			}
			winner, err := runMatch(ctx, matchName, matchPlayers)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			r.Record(ai1st, winner)
			fmt.Printf("\r%s\033[0K", r)
			return nil
		})
	}
	err := wg.Wait()
	fmt.Printf("\r%s\033[0K\n", r)
	if ctx.Err() != nil {
		fmt.Printf("Interrupted: %s\n", ctx.Err())
		return nil
	}
	return err
}

var (
	stepUI   = cli.New(false, false)
	muStepUI sync.Mutex
)

// runMatch plays one match, and returns the winner (Empty for a draw).
func runMatch(ctx context.Context, matchName string, matchPlayers [NumPlayers]players.Player) (winner Stone, err error) {
	board := NewBoard(DefaultBoardSize)
	board.MaxMoves = *flagMaxMoves
	var onStep match.StepFn
	if *flagPrintSteps {
		onStep = func(board *Board, action Action, score float32, nextBoard *Board) {
			muStepUI.Lock()
			defer muStepUI.Unlock()
			fmt.Printf("%s, move #%d: %s plays %s (score=%.2f)\n\n", matchName, board.MoveNumber, board.NextPlayer, action, score)
			stepUI.PrintBoard(nextBoard)
			fmt.Println()
			fmt.Println("------------------")
		}
	}
	board, err = match.Play(ctx, matchName, board, matchPlayers, onStep)
	if err != nil {
		return Empty, errors.WithMessagef(err, "running %s", matchName)
	}
	return board.Winner(), nil
}

// getParallelism returns the parallelism.
func getParallelism() (parallelism int) {
	parallelism = runtime.GOMAXPROCS(0)
	if *flagParallelism > 0 {
		parallelism = *flagParallelism
	}
	return
}
