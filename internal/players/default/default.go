// Package _default registers the default players that can be included in any
// front-end for littleGo.
//
// Currently, it includes:
//
//   - "ab": heuristic scorer + iterative deepening alpha-beta pruning search.
//   - "random": heuristic scorer + one-ply randomized choice.
package _default

import (
	"math/rand/v2"

	"github.com/janpfeifer/littleGo/internal/ai/heuristic"
	"github.com/janpfeifer/littleGo/internal/parameters"
	"github.com/janpfeifer/littleGo/internal/players"
	"github.com/janpfeifer/littleGo/internal/searchers"
	"github.com/janpfeifer/littleGo/internal/searchers/alphabeta"
	"github.com/janpfeifer/littleGo/internal/state"
)

func init() {
	players.RegisterModule("ab", &AlphaBeta{})
	players.RegisterModule("random", &Random{})
}

// AlphaBeta builds players using alphabeta.Searcher with the heuristic scorer.
//
// Parameters, besides the heuristic.NewFromParams ones:
//
//   - max_time (time.Duration): soft time budget per move. Default is alphabeta.DefaultMaxTime.
//     Set to 0 to search only limited by depth.
//   - max_depth (int): fixed maximum depth of the iterative deepening. Default is 0, which means it
//     grows along the match, starting from base_depth.
//   - base_depth (int): maximum depth early in the match. Default is alphabeta.DefaultBaseMaxDepth.
//   - pruning (bool): whether to use alpha-beta cutoffs. Default is true.
//   - opening (bool): whether to use the opening book. Default is true.
type AlphaBeta struct{}

// Assert AlphaBeta implements Module.
var _ players.Module = (*AlphaBeta)(nil)

// NewPlayer implements players.Module.
func (m *AlphaBeta) NewPlayer(matchName string, player state.Stone, params parameters.Params) (players.Player, error) {
	scorer, err := heuristic.NewFromParams(params)
	if err != nil {
		return nil, err
	}
	maxTime, err := parameters.PopParamOr(params, "max_time", alphabeta.DefaultMaxTime)
	if err != nil {
		return nil, err
	}
	maxDepth, err := parameters.PopParamOr(params, "max_depth", 0)
	if err != nil {
		return nil, err
	}
	baseDepth, err := parameters.PopParamOr(params, "base_depth", alphabeta.DefaultBaseMaxDepth)
	if err != nil {
		return nil, err
	}
	pruning, err := parameters.PopParamOr(params, "pruning", true)
	if err != nil {
		return nil, err
	}
	opening, err := parameters.PopParamOr(params, "opening", true)
	if err != nil {
		return nil, err
	}
	searcher := alphabeta.New(scorer).
		WithMaxTime(maxTime).
		WithMaxDepth(maxDepth).
		WithBaseMaxDepth(baseDepth).
		WithPruning(pruning).
		WithOpeningBook(opening)
	return players.NewSearcherScorer(matchName, player, searcher, scorer), nil
}

// Random builds players that choose one-ply moves at random, weighted by the heuristic scorer.
//
// Parameters, besides the heuristic.NewFromParams ones:
//
//   - randomness (float): temperature of the softmax over the scores of the moves: 0 always plays
//     the best scoring move, larger values play more randomly. Default is 1.
//   - seed (int): seed of the random number generator. Default is 0, which means a random seed.
type Random struct{}

// Assert Random implements Module.
var _ players.Module = (*Random)(nil)

// NewPlayer implements players.Module.
func (m *Random) NewPlayer(matchName string, player state.Stone, params parameters.Params) (players.Player, error) {
	scorer, err := heuristic.NewFromParams(params)
	if err != nil {
		return nil, err
	}
	randomness, err := parameters.PopParamOr(params, "randomness", 1.0)
	if err != nil {
		return nil, err
	}
	seed, err := parameters.PopParamOr(params, "seed", 0)
	if err != nil {
		return nil, err
	}
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewPCG(uint64(seed), 0))
	}
	searcher := searchers.NewRandomizedSearcher(scorer, randomness, rng)
	return players.NewSearcherScorer(matchName, player, searcher, scorer), nil
}
