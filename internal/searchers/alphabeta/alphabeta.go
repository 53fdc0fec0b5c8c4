// Package alphabeta implements an iterative deepening alpha-beta pruning Searcher.
//
// See: wikipedia.org/wiki/Alpha-beta_pruning
package alphabeta

import (
	"time"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/littleGo/internal/ai"
	"github.com/janpfeifer/littleGo/internal/searchers"
	. "github.com/janpfeifer/littleGo/internal/state"
	"k8s.io/klog/v2"
)

const (
	// DefaultMaxTime is the soft time budget of a search: the time is only checked when
	// reaching a node, so a search may overrun it a bit.
	DefaultMaxTime = 9500 * time.Millisecond

	// DefaultBaseMaxDepth is the maximum depth of the iterative deepening in the first
	// half of the match. See Searcher.MaxDepthFor.
	DefaultBaseMaxDepth = 4

	// DeepeningStartMove is the move number after which the maximum depth grows.
	DeepeningStartMove = 8

	// DeepeningMovesPerPly is the number of moves after DeepeningStartMove that adds
	// one ply to the maximum depth.
	DeepeningMovesPerPly = 4

	// EndGameMove is the move number of the end of the match, used to clamp the depth
	// of the search: there is no point in looking beyond it.
	EndGameMove = DefaultMaxMoves
)

// Searcher implements the searchers.Searcher interface.
// It is used by players.SearcherScorer, along with the scorer, to implement an AI player (players.Player interface).
//
// A Searcher keeps the state of the search being executed, so it must not be used concurrently.
type Searcher struct {
	scorer       ai.ValueScorer
	maxTime      time.Duration
	baseMaxDepth int
	fixedDepth   int
	pruning      bool
	openingBook  bool
	now          func() time.Time

	// Per-search state.
	start    time.Time
	timedOut bool
	stats    Stats
}

// Assert that Searcher implements searchers.Searcher.
var _ searchers.Searcher = (*Searcher)(nil)

// Stats stores running stats collected during the search: for benchmarking, monitoring and debugging purposes.
type Stats struct {
	// Nodes "played" during search: each successor board created.
	Nodes int

	// Evals is the number of boards evaluated at the leaves, or at nodes without moves.
	Evals int

	// Prunes counts the cutoffs.
	Prunes int

	// Timeouts counts nodes evaluated statically because the time budget was exceeded.
	Timeouts int

	// CompletedDepth is the deepest iteration whose result was used.
	CompletedDepth int
}

// New returns an iterative deepening alpha-beta pruning searchers.Searcher.
// There are many other optional configurations, see methods Searcher.With...
//
// The one obligatory parameter is the scorer used to evaluate the leaves and to order
// the moves.
func New(scorer ai.ValueScorer) *Searcher {
	if scorer == nil {
		exceptions.Panicf("alphabeta.New requires a scorer")
	}
	return &Searcher{
		scorer:       scorer,
		maxTime:      DefaultMaxTime,
		baseMaxDepth: DefaultBaseMaxDepth,
		pruning:      true,
		openingBook:  true,
		now:          time.Now,
	}
}

// WithMaxTime sets the soft time budget per search. Set to 0 to disable the time limit,
// in which case the search is limited only by the maximum depth.
//
// The default is DefaultMaxTime.
func (ab *Searcher) WithMaxTime(maxTime time.Duration) *Searcher {
	ab.maxTime = max(maxTime, 0)
	return ab
}

// WithBaseMaxDepth sets the maximum depth of the iterative deepening early in the match.
// The default is DefaultBaseMaxDepth.
func (ab *Searcher) WithBaseMaxDepth(depth int) *Searcher {
	ab.baseMaxDepth = depth
	return ab
}

// WithMaxDepth fixes the maximum depth of the iterative deepening, regardless of the
// move number. The depth is still clamped near the end of the match.
//
// Set to 0 (the default) to grow the maximum depth along the match, see MaxDepthFor.
func (ab *Searcher) WithMaxDepth(depth int) *Searcher {
	ab.fixedDepth = max(depth, 0)
	return ab
}

// WithPruning enables or disables alpha-beta cutoffs. Without pruning, it's a plain minimax
// search, with the same results but much slower. Default is true.
func (ab *Searcher) WithPruning(pruning bool) *Searcher {
	ab.pruning = pruning
	return ab
}

// WithOpeningBook enables or disables the fixed opening moves. Default is true.
func (ab *Searcher) WithOpeningBook(openingBook bool) *Searcher {
	ab.openingBook = openingBook
	return ab
}

// WithClock sets the function used to read the current time, for tests.
func (ab *Searcher) WithClock(now func() time.Time) *Searcher {
	ab.now = now
	return ab
}

// Stats returns the stats of the last search.
func (ab *Searcher) Stats() Stats {
	return ab.stats
}

// String returns a description of the searcher configuration.
func (ab *Searcher) String() string {
	return "alphabeta"
}

// MaxDepthFor returns the maximum depth of the iterative deepening at the given move number:
// the base max depth, plus one ply for each DeepeningMovesPerPly moves after DeepeningStartMove.
// Fractions of a ply don't count.
func (ab *Searcher) MaxDepthFor(moveNumber int) int {
	if ab.fixedDepth > 0 {
		return ab.fixedDepth
	}
	return ab.baseMaxDepth + max(0, moveNumber-DeepeningStartMove)/DeepeningMovesPerPly
}

// ClampDepth limits depth to the number of moves left in the match, but at least 1.
func ClampDepth(depth, moveNumber int) int {
	return min(depth, max(1, EndGameMove-moveNumber))
}

// Search implements the searchers.Searcher interface.
//
// The first moves of the match are taken from the opening book. Otherwise, it runs alpha-beta
// searches of increasing depth, while there is time left and up to MaxDepthFor(board.MoveNumber).
// Each completed depth replaces the best action found so far. A depth interrupted by the time budget
// ends the search: the move it returned, searched partially, is still played.
func (ab *Searcher) Search(board *Board) (action Action, nextBoard *Board, score float32) {
	ab.start = ab.now()
	ab.stats = Stats{}
	moveNumber := board.MoveNumber
	player := board.NextPlayer

	if ab.openingBook {
		if opening, found := OpeningMove(board, moveNumber, player); found {
			klog.V(1).Infof("Move #%d: %s plays %s from opening book", moveNumber, player, opening)
			return opening, board.Act(opening), ab.scorer.Score(board.Simulate(opening, player), moveNumber, player)
		}
	}

	maxDepth := ab.MaxDepthFor(moveNumber)
	clampedMax := ClampDepth(maxDepth, moveNumber)
	action, score = PassAction, ai.MinScore
	for depth := 1; depth <= clampedMax; depth++ {
		if depth > 1 && ab.timeExceeded() {
			break
		}
		ab.timedOut = false
		depthAction, depthScore := ab.searchToDepth(board, moveNumber, player, depth)
		if ab.timedOut {
			if !depthAction.IsPass() {
				action, score = depthAction, depthScore
			}
			klog.V(1).Infof("Move #%d: search at depth %d interrupted after %s, playing %s (last completed depth %d)",
				moveNumber, depth, ab.now().Sub(ab.start), action, ab.stats.CompletedDepth)
			break
		}
		action, score = depthAction, depthScore
		ab.stats.CompletedDepth = depth
		klog.V(2).Infof("Move #%d: depth %d searched, best action %s (score=%.2f)", moveNumber, depth, action, score)
	}

	elapsed := ab.now().Sub(ab.start)
	if klog.V(1).Enabled() {
		klog.Infof("Move #%d: %s plays %s (score=%.2f, depth=%d of %d, elapsed=%s)",
			moveNumber, player, action, score, ab.stats.CompletedDepth, maxDepth, elapsed)
	}
	if klog.V(2).Enabled() {
		klog.Infof("Counts: %+v", ab.stats)
		if seconds := elapsed.Seconds(); seconds > 0 {
			klog.Infof("  nodes/s=%.1f, evals/s=%.1f", float64(ab.stats.Nodes)/seconds, float64(ab.stats.Evals)/seconds)
		}
	}
	return action, board.Act(action), score
}

// SearchToDepth runs one alpha-beta search of the given depth (clamped by ClampDepth), without
// opening book nor iterative deepening. It returns PassAction if player has no legal moves.
func (ab *Searcher) SearchToDepth(board *Board, moveNumber int, player Stone, depth int) (Action, float32) {
	ab.start = ab.now()
	ab.stats = Stats{}
	ab.timedOut = false
	return ab.searchToDepth(board, moveNumber, player, depth)
}

// searchToDepth is the root of the alpha-beta search: it is always a maximizing node for player.
func (ab *Searcher) searchToDepth(board *Board, moveNumber int, player Stone, depth int) (
	bestAction Action, bestScore float32) {
	depth = ClampDepth(depth, moveNumber)
	actions, nextBoards, _ := searchers.OrderedActions(board, moveNumber, player, ab.scorer)
	ab.stats.Nodes += len(nextBoards)
	if len(actions) == 0 {
		return PassAction, ab.evaluate(board, moveNumber, player)
	}

	alpha, beta := ai.MinScore, ai.MaxScore
	bestAction, bestScore = actions[0], ai.MinScore
	for ii, action := range actions {
		score := ab.recursion(nextBoards[ii], depth-1, moveNumber+1, alpha, beta, false, player)
		if score > bestScore {
			bestScore, bestAction = score, action
		}
		if ab.pruning && bestScore > alpha {
			alpha = bestScore
		}
	}
	return
}

// recursion of the alpha-beta pruning algorithm, with depthLeft plies to go. Scores are always
// from the point of view of rootPlayer: it maximizes on its turn, and minimizes on the opponent's.
func (ab *Searcher) recursion(board *Board, depthLeft, moveNumber int, alpha, beta float32,
	maximizing bool, rootPlayer Stone) float32 {
	if depthLeft <= 0 {
		return ab.evaluate(board, moveNumber, rootPlayer)
	}
	if ab.timeExceeded() {
		ab.timedOut = true
		ab.stats.Timeouts++
		return ab.evaluate(board, moveNumber, rootPlayer)
	}

	mover := rootPlayer
	if !maximizing {
		mover = rootPlayer.Opponent()
	}
	actions, nextBoards, _ := searchers.OrderedActions(board, moveNumber, mover, ab.scorer)
	ab.stats.Nodes += len(nextBoards)
	if len(actions) == 0 {
		// Passing is not explored: the node is evaluated as a leaf.
		return ab.evaluate(board, moveNumber, rootPlayer)
	}

	if maximizing {
		bestScore := ai.MinScore
		for ii := range actions {
			score := ab.recursion(nextBoards[ii], depthLeft-1, moveNumber+1, alpha, beta, false, rootPlayer)
			bestScore = max(bestScore, score)
			if !ab.pruning {
				continue
			}
			alpha = max(alpha, score)
			if beta <= alpha {
				ab.stats.Prunes++
				break
			}
		}
		return bestScore
	}

	bestScore := ai.MaxScore
	for ii := range actions {
		score := ab.recursion(nextBoards[ii], depthLeft-1, moveNumber+1, alpha, beta, true, rootPlayer)
		bestScore = min(bestScore, score)
		if !ab.pruning {
			continue
		}
		beta = min(beta, score)
		if beta <= alpha {
			ab.stats.Prunes++
			break
		}
	}
	return bestScore
}

func (ab *Searcher) evaluate(board *Board, moveNumber int, player Stone) float32 {
	ab.stats.Evals++
	return ab.scorer.Score(board, moveNumber, player)
}

// timeExceeded returns whether the time budget of the current search is over.
func (ab *Searcher) timeExceeded() bool {
	return ab.maxTime > 0 && ab.now().Sub(ab.start) > ab.maxTime
}
