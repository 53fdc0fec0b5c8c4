package heuristic

import (
	"slices"
	"strings"

	"github.com/janpfeifer/littleGo/internal/generics"
	"github.com/janpfeifer/littleGo/internal/parameters"
	. "github.com/janpfeifer/littleGo/internal/state"
	"github.com/pkg/errors"
)

// profileFields maps the configuration names of the Profile fields.
var profileFields = map[string]func(p *Profile) *float32{
	"stone_base":  func(p *Profile) *float32 { return &p.StoneBase },
	"stone_slope": func(p *Profile) *float32 { return &p.StoneSlope },
	"liberty":     func(p *Profile) *float32 { return &p.Liberty },
	"edge_base":   func(p *Profile) *float32 { return &p.EdgeBase },
	"edge_slope":  func(p *Profile) *float32 { return &p.EdgeSlope },
	"euler":       func(p *Profile) *float32 { return &p.Euler },
}

// NewFromParams creates a Scorer with default weights, overridden by the parameters
// it recognizes, which are removed from params:
//
//   - handicap (float): value added to White's stone count, default 2.5.
//   - <color>.<field> (float): with color "black" or "white" and field one of
//     stone_base, stone_slope, liberty, edge_base, edge_slope, euler. E.g.: "black.euler=-5".
func NewFromParams(params parameters.Params) (*Scorer, error) {
	s := New()
	handicap, err := parameters.PopParamOr(params, "handicap", s.handicap)
	if err != nil {
		return nil, err
	}
	s.WithHandicap(handicap)

	for _, key := range params.Keys() {
		colorName, fieldName, found := strings.Cut(key, ".")
		if !found {
			continue
		}
		var player Stone
		switch colorName {
		case "black":
			player = Black
		case "white":
			player = White
		default:
			continue
		}
		field, ok := profileFields[fieldName]
		if !ok {
			return nil, errors.Errorf("unknown heuristic weight %q, valid names are %q", key,
				slices.Collect(generics.SortedKeys(profileFields)))
		}
		value, err := parameters.PopParamOr(params, key, float32(0))
		if err != nil {
			return nil, err
		}
		*field(&s.profiles[player]) = value
	}
	return s, nil
}
