package players

import (
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/littleGo/internal/ai"
	"github.com/janpfeifer/littleGo/internal/searchers"
	. "github.com/janpfeifer/littleGo/internal/state"
	"k8s.io/klog/v2"
)

// SearcherScorer is a standard set up for an AI: a searcher and a scorer.
// It implements the Player interface.
type SearcherScorer struct {
	MatchName string
	Player    Stone
	Searcher  searchers.Searcher
	Scorer    ai.ValueScorer
}

// Assert that SearchScorer is a Player.
var _ Player = &SearcherScorer{}

// NewSearcherScorer returns a Player that uses searcher to choose its actions. The scorer is
// the one used by the searcher, and it's only kept for logging.
func NewSearcherScorer(matchName string, player Stone, searcher searchers.Searcher, scorer ai.ValueScorer) *SearcherScorer {
	if searcher == nil || scorer == nil {
		exceptions.Panicf("NewSearcherScorer(%q) requires a searcher and a scorer", matchName)
	}
	return &SearcherScorer{MatchName: matchName, Player: player, Searcher: searcher, Scorer: scorer}
}

// Play implements the Player interface: it chooses an action given a Board.
func (s *SearcherScorer) Play(b *Board) (action Action, board *Board, score float32) {
	if b.NextPlayer != s.Player {
		exceptions.Panicf("match %q: player %s asked to play for %s at move #%d",
			s.MatchName, s.Player, b.NextPlayer, b.MoveNumber)
	}
	action, board, score = s.Searcher.Search(b)
	if klog.V(2).Enabled() {
		klog.Infof("%s: move #%d: AI %s (%s) playing %s, score=%.3f",
			s.MatchName, b.MoveNumber, s.Player, s.Scorer, action, score)
	}
	return
}

// Finalize is called at the end of a match.
func (s *SearcherScorer) Finalize() {
	if klog.V(1).Enabled() {
		klog.Infof("%s: player %s (scorer=%s) finalized", s.MatchName, s.Player, s.Scorer)
	}
	s.Scorer = nil
	s.Searcher = nil
}

// ScorerOf returns the scorer used by p, or nil if p is not a SearcherScorer.
func ScorerOf(p Player) ai.ValueScorer {
	if s, ok := p.(*SearcherScorer); ok {
		return s.Scorer
	}
	return nil
}
