// Package heuristic implements a hand-tuned positional evaluation of Little Go boards.
//
// The score combines four terms, from the point of view of the player being evaluated:
//
//   - stone differential (with a handicap for White, who plays second);
//   - liberty differential, clamped to [-LibertyClamp, LibertyClamp];
//   - edge penalty: own stones on the outer ring;
//   - Euler number of the own stones (connectivity), see EulerNumber.
//
// The weights of each term depend on the color being evaluated (see Profile) and on the
// move number: they are linearly interpolated from their early values towards their late
// values over the match. From EndGameMoveNumber on, the stone differential dominates.
package heuristic

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/janpfeifer/littleGo/internal/ai"
	. "github.com/janpfeifer/littleGo/internal/state"
)

const (
	// DefaultHandicap added to White's stone count.
	DefaultHandicap = float32(2.5)

	// WeightsHorizon is the move number at which the weights reach their late-game values.
	WeightsHorizon = 24

	// EndGameMoveNumber from which the stone weight is EndGameStoneWeight.
	EndGameMoveNumber = 23

	// EndGameStoneWeight makes the evaluation a stone count comparison at the end of the match.
	EndGameStoneWeight = float32(10000)
)

// Profile holds the tuned weights for one color.
//
// At move m, with t = m/WeightsHorizon:
//
//	stone weight = StoneBase + StoneSlope*t
//	edge weight  = min(0, EdgeBase + EdgeSlope*t)
//
// Liberty and Euler weights are constant.
type Profile struct {
	StoneBase, StoneSlope float32
	Liberty               float32
	EdgeBase, EdgeSlope   float32
	Euler                 float32
}

var (
	// BlackProfile are the weights tuned for playing Black.
	BlackProfile = Profile{StoneBase: 0, StoneSlope: 10, Liberty: 0.5, EdgeBase: -2, EdgeSlope: 4, Euler: -7}

	// WhiteProfile are the weights tuned for playing White.
	WhiteProfile = Profile{StoneBase: 7, StoneSlope: 3, Liberty: 1, EdgeBase: -3, EdgeSlope: 3, Euler: -6}
)

// Weights of each of the terms for one evaluation.
type Weights struct {
	Stone, Liberty, Edge, Euler float32
}

// Weights at the given move number.
func (p Profile) Weights(moveNumber int) Weights {
	t := float32(moveNumber) / WeightsHorizon
	w := Weights{
		Stone:   p.StoneBase + p.StoneSlope*t,
		Liberty: p.Liberty,
		Edge:    math32.Min(0, p.EdgeBase+p.EdgeSlope*t),
		Euler:   p.Euler,
	}
	if moveNumber >= EndGameMoveNumber {
		w.Stone = EndGameStoneWeight
	}
	return w
}

// Terms are the unweighted values of the evaluation terms.
type Terms struct {
	Stones, Liberties float32
	Edge              int
	Euler             float32
}

// Evaluate computes all the terms for player, given the handicap.
func Evaluate(board *Board, player Stone, handicap float32) Terms {
	return Terms{
		Stones:    StoneDifferential(board, player, handicap),
		Liberties: LibertyDifferential(board, player),
		Edge:      EdgePenalty(board, player),
		Euler:     EulerNumber(board, player),
	}
}

// Weighted returns the weighted sum of the terms.
func (t Terms) Weighted(w Weights) float32 {
	return w.Stone*t.Stones + w.Liberty*t.Liberties + w.Edge*float32(t.Edge) + w.Euler*t.Euler
}

// Scorer implements ai.ValueScorer with the heuristic evaluation.
type Scorer struct {
	// profiles indexed by Stone: only Black and White are used.
	profiles [3]Profile
	handicap float32
}

// Assert Scorer is an ai.ValueScorer.
var _ ai.ValueScorer = (*Scorer)(nil)

// New returns a Scorer with the default profiles and handicap.
func New() *Scorer {
	s := &Scorer{handicap: DefaultHandicap}
	s.profiles[Black] = BlackProfile
	s.profiles[White] = WhiteProfile
	return s
}

// WithProfile sets the weights used when evaluating for player.
func (s *Scorer) WithProfile(player Stone, profile Profile) *Scorer {
	s.profiles[player] = profile
	return s
}

// WithHandicap sets the value added to White's stone count.
func (s *Scorer) WithHandicap(handicap float32) *Scorer {
	s.handicap = handicap
	return s
}

// Profile returns the weights used for player.
func (s *Scorer) Profile(player Stone) Profile {
	return s.profiles[player]
}

// Score implements ai.ValueScorer.
func (s *Scorer) Score(board *Board, moveNumber int, player Stone) float32 {
	return Evaluate(board, player, s.handicap).Weighted(s.profiles[player].Weights(moveNumber))
}

// Explain returns a human-readable breakdown of the evaluation.
func (s *Scorer) Explain(board *Board, moveNumber int, player Stone) string {
	terms := Evaluate(board, player, s.handicap)
	w := s.profiles[player].Weights(moveNumber)
	parts := []string{
		fmt.Sprintf("stones=%.1f×%.2f", terms.Stones, w.Stone),
		fmt.Sprintf("liberties=%.0f×%.2f", terms.Liberties, w.Liberty),
		fmt.Sprintf("edge=%d×%.2f", terms.Edge, w.Edge),
		fmt.Sprintf("euler=%.2f×%.2f", terms.Euler, w.Euler),
	}
	return fmt.Sprintf("%s: %s => %.2f", player, strings.Join(parts, ", "), terms.Weighted(w))
}

// String implements ai.ValueScorer.
func (s *Scorer) String() string {
	return "heuristic"
}
