// Package players provides a factory of AI players from configuration strings.
// It also allows player providers to register themselves.
package players

import (
	"slices"
	"strings"

	"github.com/janpfeifer/littleGo/internal/generics"
	"github.com/janpfeifer/littleGo/internal/parameters"
	. "github.com/janpfeifer/littleGo/internal/state"
	"github.com/pkg/errors"
)

// Player is anything that is able to play the game.
type Player interface {
	// Play returns the action chosen for board.NextPlayer, the next board position (after the action
	// is taken) and the score of the action, from the point of view of the player.
	Play(board *Board) (action Action, nextBoard *Board, score float32)

	// Finalize is called at the end of a match.
	Finalize()
}

// Module must implement NewPlayer called at the start of a match.
// matchName is used for logging and debugging.
//
// NewPlayer must remove from params the parameters it used: any parameter left is reported
// as unknown.
type Module interface {
	NewPlayer(matchName string, player Stone, params parameters.Params) (Player, error)
}

// moduleRegistration is a reference to the module and its name.
type moduleRegistration struct {
	Module
	Name string
}

var (
	// Registered external modules.
	keywordToModules = make(map[string]moduleRegistration)
)

// RegisterModule so it can be used by any of the front-ends to play littleGo.
func RegisterModule(name string, module Module) {
	keywordToModules[name] = moduleRegistration{Name: name, Module: module}
}

// RegisteredModules returns the names of the registered modules, sorted.
func RegisteredModules() []string {
	return slices.Collect(generics.SortedKeys(keywordToModules))
}

var (
	// DefaultPlayerConfig is used if no configuration was given to the AI. The value may be changed by the
	// UI built.
	DefaultPlayerConfig = "ab"
)

// New creates a new AI player given the configuration string.
//
// Args:
//
//	config: the AI module name optionally followed by a colon (":") and a comma-separated list of parameters
//		with optional values associated. E.g.: "ab:max_time=5s,max_depth=3".
//		If empty, the default is given by DefaultPlayerConfig (usually "ab", if not changed by the program).
//
// More details on the config are dependent on the module used.
func New(matchName string, player Stone, config string) (Player, error) {
	if config == "" {
		config = DefaultPlayerConfig
	}

	// Find moduleName.
	moduleName := config
	if moduleSplit := strings.Index(config, ":"); moduleSplit != -1 {
		moduleName = config[:moduleSplit]
		config = config[moduleSplit+1:]
	} else {
		config = ""
	}
	if len(keywordToModules) == 0 {
		return nil, errors.New("no registered AI modules. Perhaps you need to import _ \"github.com/janpfeifer/littleGo/internal/players/default\" to your binary ?")
	}
	module, ok := keywordToModules[moduleName]
	if !ok {
		return nil, errors.Errorf("unknown AI player %q, registered players are %q", moduleName, RegisteredModules())
	}

	params := parameters.NewFromConfigString(config)
	p, err := module.NewPlayer(matchName, player, params)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create AI player %q", moduleName)
	}

	// Check that all parameters were processed.
	if len(params) > 0 {
		p.Finalize()
		return nil, errors.Errorf("unknown parameters \"%s\" for AI player %q",
			strings.Join(params.Keys(), "\", \""), moduleName)
	}
	return p, nil
}
