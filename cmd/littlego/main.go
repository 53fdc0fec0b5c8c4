// littlego plays Little Go (5x5) in the terminal: human vs AI, human vs human (-hotseat) or
// AI vs AI (-watch).
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/janpfeifer/littleGo/internal/ai/heuristic"
	"github.com/janpfeifer/littleGo/internal/match"
	"github.com/janpfeifer/littleGo/internal/players"
	_ "github.com/janpfeifer/littleGo/internal/players/default"
	"github.com/janpfeifer/littleGo/internal/profilers"
	. "github.com/janpfeifer/littleGo/internal/state"
	"github.com/janpfeifer/littleGo/internal/turnio"
	"github.com/janpfeifer/littleGo/internal/ui/cli"
	"github.com/janpfeifer/littleGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagHotseat   = flag.Bool("hotseat", false, "Hotseat match: human vs human")
	flagWatch     = flag.Bool("watch", false, "Watch mode: AI vs AI playing")
	flagFirst     = flag.String("first", "", "Who plays first: human or ai. Default is random.")
	flagAIConfig  = flag.String("config", "ab", "AI configuration against which to play")
	flagAIConfig2 = flag.String("config2", "ab", "Second AI configuration, if playing AI vs AI with --watch")
	flagMaxMoves  = flag.Int(
		"max_moves", DefaultMaxMoves, "Max moves before the game is finished and scored.")
	flagQuiet    = flag.Bool("quiet", false, "Quiet mode for when watching AI play, only the actions and the last board position is printed.")
	flagExplain  = flag.Bool("explain", false, "Print the heuristic terms of the board after each AI move.")
	flagSaveTurn = flag.String("save_turn", "", "If set, before each AI move the turn is saved in this file, "+
		"in the format read by myplayer, so it can be reproduced.")

	// aiPlayers: if nil, it's a human playing.
	aiPlayers = [NumPlayers]players.Player{nil, nil}
	matchName = "The Match"

	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagMaxMoves <= 0 {
		klog.Exitf("Invalid --max_moves=%d", *flagMaxMoves)
	}

	// Capture Control+C
	var cancel func()
	globalCtx, cancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	profilers.Setup(globalCtx)
	defer profilers.OnQuit()

	// Create players.
	createPlayers()
	defer func() {
		for _, p := range aiPlayers {
			if p != nil {
				p.Finalize()
			}
		}
	}()

	// Create board and UI.
	board := NewBoard(DefaultBoardSize)
	board.MaxMoves = *flagMaxMoves
	ui := cli.New(true, false)

	// Loop over match.
	for !board.IsFinished() {
		if globalCtx.Err() != nil {
			klog.Exitf("Match interrupted: %v", globalCtx.Err())
		}
		aiPlayer := aiPlayers[match.PlayerIndex(board.NextPlayer)]
		if aiPlayer == nil {
			if newBoard, skip := ui.CheckNoAvailableAction(board); skip {
				board = newBoard
				continue
			}
			newBoard, err := ui.RunNextMove(board)
			if err != nil {
				klog.Exitf("Failed to run match: %+v", err)
			}
			board = newBoard
			continue
		}

		// AI plays.
		if *flagSaveTurn != "" {
			must.M(turnio.WriteTurnFile(*flagSaveTurn, board))
		}
		if *flagWatch && !*flagQuiet {
			ui.Print(board, false)
			fmt.Print("\tAI action: ")
		} else {
			ui.PrintSpacedPlayer(board)
			fmt.Print(" AI action: ")
		}
		s := spinning.New(globalCtx)
		action, newBoard, score := aiPlayer.Play(board)
		elapsed := s.Done()
		fmt.Printf(" %s (score=%.3f, %.1fs)\n", action, score, elapsed.Seconds())
		if *flagExplain {
			fmt.Printf("\t%s\n", explainerFor(aiPlayer).Explain(newBoard, board.MoveNumber, board.NextPlayer))
		}
		board = newBoard
		fmt.Println()
	}

	ui.Print(board, false)
	ui.PrintWinner(board)
}

// explainer is implemented by scorers that can break down their score in terms.
type explainer interface {
	Explain(board *Board, moveNumber int, player Stone) string
}

// explainerFor returns the scorer used by aiPlayer, so the explanation shows its configured
// weights. It falls back to the default heuristic for players without one.
func explainerFor(aiPlayer players.Player) explainer {
	if e, ok := players.ScorerOf(aiPlayer).(explainer); ok {
		return e
	}
	return heuristic.New()
}

// createPlayers in aiPlayers.
func createPlayers() {
	if *flagHotseat && *flagWatch {
		klog.Exitf("--hotseat and --watch cannot be used together")
	}
	if *flagHotseat {
		// Both players are human, nothing to do.
		return
	}

	// Create AI player:
	var aiPlayer Stone
	if *flagWatch {
		aiPlayer = Black
	} else {
		switch strings.ToLower(*flagFirst) {
		case "human":
			aiPlayer = White
		case "ai":
			aiPlayer = Black
		case "":
			aiPlayer = Players[rand.IntN(NumPlayers)]
		default:
			klog.Exitf("invalid --first=%q, only valid values are \"human\" or \"ai\"", *flagFirst)
		}
	}
	aiPlayers[match.PlayerIndex(aiPlayer)] = must.M1(players.New(matchName, aiPlayer, *flagAIConfig))
	if !*flagWatch {
		return
	}

	// Create second AI
	otherPlayer := aiPlayer.Opponent()
	aiPlayers[match.PlayerIndex(otherPlayer)] = must.M1(players.New(matchName, otherPlayer, *flagAIConfig2))
}
