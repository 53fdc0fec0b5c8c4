// Package ai (Artificial Intelligence) defines standard interfaces that AIs for the game
// have to implement.
package ai

import (
	"github.com/chewxy/math32"
	. "github.com/janpfeifer/littleGo/internal/state"
)

// ValueScorer returns a score (value) for a board, from the point of view of the given player:
// higher values favor player.
//
// The moveNumber is passed separately from the board because the searchers score the
// same position at different depths of the match (and boards read from the turn files
// don't know their move number).
//
// Implementations must be pure: the same inputs always return the same score.
type ValueScorer interface {
	Score(board *Board, moveNumber int, player Stone) float32
	String() string
}

var (
	// MaxScore is larger than any score returned by a ValueScorer, and it is used as
	// the initial bound of searches.
	MaxScore = math32.Inf(1)

	// MinScore is the negative of MaxScore.
	MinScore = math32.Inf(-1)
)

// Clamp returns x limited to the range [minValue, maxValue].
func Clamp(x, minValue, maxValue float32) float32 {
	return math32.Max(minValue, math32.Min(x, maxValue))
}
