package searchers

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/littleGo/internal/ai"
	. "github.com/janpfeifer/littleGo/internal/state"
	"k8s.io/klog/v2"
)

// NewRandomizedSearcher returns a one-ply Searcher that samples actions according to a softmax
// of their OrderedActions scores. It is a cheap opponent, useful to compare against and to
// generate varied matches.
//
// Args:
//
//   - scorer: used to score the boards after each action.
//   - randomness (>=0): it is applied as a divisor to the scores before the softmax. The larger the
//     value the more it leads to randomness (exploration), and lower values lead to "pick the best
//     scoring move" (exploitation), with zero meaning no randomness.
//   - rng: source of randomness. If nil, a randomly seeded one is created.
func NewRandomizedSearcher(scorer ai.ValueScorer, randomness float64, rng *rand.Rand) Searcher {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &randomizedSearcher{scorer: scorer, randomness: randomness, rng: rng}
}

// randomizedSearcher samples one of the actions available.
type randomizedSearcher struct {
	scorer     ai.ValueScorer
	randomness float64
	rng        *rand.Rand
}

// Assert randomizedSearcher is a Searcher.
var _ Searcher = &randomizedSearcher{}

// Search implements the Searcher interface.
func (rs *randomizedSearcher) Search(board *Board) (action Action, nextBoard *Board, score float32) {
	actions, _, scores := OrderedActions(board, board.MoveNumber, board.NextPlayer, rs.scorer)
	if len(actions) == 0 {
		return PassAction, board.Act(PassAction), rs.scorer.Score(board, board.MoveNumber, board.NextPlayer)
	}
	if rs.randomness <= 0 {
		// Without randomness, take the best scoring action.
		return actions[0], board.Act(actions[0]), scores[0]
	}

	// Calculate probability for each action.
	logits := make([]float64, len(scores))
	for ii, score := range scores {
		logits[ii] = float64(score) / rs.randomness
	}
	probabilities := softmax(logits)

	// Select from probabilities.
	chance := rs.rng.Float64()
	for actionIdx, value := range probabilities {
		if chance > value && actionIdx < len(probabilities)-1 {
			chance -= value
			continue
		}
		if klog.V(2).Enabled() {
			klog.Infof("randomizedSearcher selection: action=%s, score=%.2f, probability=%.3f",
				actions[actionIdx], scores[actionIdx], value)
		}
		return actions[actionIdx], board.Act(actions[actionIdx]), scores[actionIdx]
	}
	// It should not reach here.
	exceptions.Panicf("nothing selected!? remaining chance=%f, probabilities=%v", chance, probabilities)
	return
}

func softmax(values []float64) (probs []float64) {
	probs = make([]float64, len(values))
	var sum float64

	// Subtract maxValue from all values keep the probability the same, but makes for more numerically stable
	// values.
	maxValue := slices.Max(values)
	for ii, value := range values {
		probs[ii] = math.Exp(value - maxValue)
		sum += probs[ii]
	}
	for ii := range probs {
		probs[ii] /= sum
	}
	return
}
