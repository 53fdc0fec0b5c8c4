// Package match runs matches between players, and keeps the tally of a series of matches.
package match

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/janpfeifer/littleGo/internal/players"
	. "github.com/janpfeifer/littleGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// StepFn is called after each action of a match, with the board before and after the action.
type StepFn func(board *Board, action Action, score float32, nextBoard *Board)

// Play runs the match from board until it is finished, and returns the final board.
// matchPlayers are indexed by the player: matchPlayers[0] plays Black, matchPlayers[1] plays White.
//
// The players are finalized at the end of the match. If ctx is cancelled, it returns the board
// so far and the context error.
func Play(ctx context.Context, matchName string, board *Board, matchPlayers [NumPlayers]players.Player, onStep StepFn) (*Board, error) {
	defer func() {
		for _, p := range matchPlayers {
			p.Finalize()
		}
	}()
	if klog.V(1).Enabled() {
		klog.Infof("Starting match %s", matchName)
		defer klog.Infof("Finished match %s", matchName)
	}
	for !board.IsFinished() {
		if err := ctx.Err(); err != nil {
			klog.V(1).Infof("Match %s interrupted: %s", matchName, err)
			return board, errors.Wrapf(err, "match %s interrupted at move #%d", matchName, board.MoveNumber)
		}
		player := matchPlayers[PlayerIndex(board.NextPlayer)]
		if klog.V(2).Enabled() {
			klog.Infof("%s: %s at move #%d (#legal moves=%d)",
				matchName, board.NextPlayer, board.MoveNumber, len(board.LegalMoves(board.NextPlayer)))
		}
		action, nextBoard, score := player.Play(board)
		if !board.IsValid(action) {
			return board, errors.Errorf("match %s: %s played invalid action %s at move #%d",
				matchName, board.NextPlayer, action, board.MoveNumber)
		}
		if onStep != nil {
			onStep(board, action, score, nextBoard)
		}
		board = nextBoard
	}
	return board, nil
}

// PlayerIndex returns 0 for Black and 1 for White.
func PlayerIndex(player Stone) int {
	return int(player) - int(Black)
}

// Results of a series of matches between two AIs, that alternate colors. It is safe for
// concurrent use.
type Results struct {
	mu                   sync.Mutex
	start                time.Time
	winsAs1st, winsAs2nd [2]int
	draws                [2]int
	played, total        int
}

// NewResults creates the tally for total matches.
func NewResults(total int) *Results {
	return &Results{start: time.Now(), total: total}
}

// Record the result of a match: ai1st is the index (0 or 1) of the AI that played Black,
// and winner is the winner of the match (Empty for a draw).
func (r *Results) Record(ai1st int, winner Stone) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.played++
	switch winner {
	case Empty:
		r.draws[ai1st]++
	case Black:
		r.winsAs1st[ai1st]++
	default:
		r.winsAs2nd[1-ai1st]++
	}
}

// Wins returns the number of wins of the AI with the given index (0 or 1).
func (r *Results) Wins(aiIdx int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.winsAs1st[aiIdx] + r.winsAs2nd[aiIdx]
}

// Played returns the number of matches recorded so far.
func (r *Results) Played() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.played
}

// String implements fmt.Stringer.
func (r *Results) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var parts []string
	parts = append(parts, fmt.Sprintf("Played %d of %d: ", r.played, r.total))
	for aiIdx := range 2 {
		parts = append(parts,
			fmt.Sprintf("AI-%d: %d Wins (1st: %d, 2nd: %d) / ",
				aiIdx+1, r.winsAs1st[aiIdx]+r.winsAs2nd[aiIdx],
				r.winsAs1st[aiIdx], r.winsAs2nd[aiIdx]))
	}
	parts = append(parts, fmt.Sprintf("%d draws (%d AI-1 as 1st, %d AI-2 as 1st) - ",
		r.draws[0]+r.draws[1], r.draws[0], r.draws[1]))
	parts = append(parts, time.Since(r.start).Round(time.Millisecond).String())
	return strings.Join(parts, "")
}
