// Package players provides a factory of AI players from configuration strings.
// It also allows player providers to register themselves.
package players

import (
	"fmt"
	"github.com/janpfeifer/minimaxGo/internal/generics"
	"github.com/janpfeifer/minimaxGo/internal/parameters"
	"github.com/janpfeifer/minimaxGo/internal/state"
	"github.com/pkg/errors"
	"slices"
	"strings"
	"sync"
)

// Player is anything that is able to play the game.
type Player interface {
	// Play returns the move chosen for the board's next player, and the expected score
	// (from state.PlayerFirst's perspective).
	Play(board state.Board) (move state.Pos, score int, err error)

	// Finalize is called at the end of a match.
	Finalize()

	// String returns a description of the player, used in logs and in the UI.
	String() string
}

// Module must implement NewPlayer called at the start of a match.
// matchId is unique among matches, and matchName is used for logging and debugging.
//
// Modules must consume (pop) the parameters they use: leftover parameters are reported as
// errors by New.
type Module interface {
	NewPlayer(matchId uint64, matchName string, playerNum state.PlayerNum, params parameters.Params) (Player, error)
}

var (
	muRegistry sync.Mutex

	// Registered external modules.
	keywordToModules = make(map[string]Module)
)

// RegisterModule so it can be used by any of the front-ends.
// Usually called in the init() function of the module's package.
func RegisterModule(name string, module Module) {
	muRegistry.Lock()
	defer muRegistry.Unlock()
	keywordToModules[name] = module
}

// Modules returns the sorted names of the registered modules.
func Modules() []string {
	muRegistry.Lock()
	defer muRegistry.Unlock()
	return slices.Collect(generics.SortedKeys(keywordToModules))
}

var (
	// DefaultPlayerConfig is used if no configuration was given to the AI. The value may be changed by the
	// UI built.
	DefaultPlayerConfig = "minimax,max_depth=3"
)

// New creates a new AI player given the configuration string.
//
// Args:
//
//   - config: the AI module name followed by a comma (",") or a colon (":"), followed by a comma-separated list
//     of optional parameters with optional values associated. E.g.: "minimax,max_depth=5,randomness=0.5".
//     If empty, the default is given by DefaultPlayerConfig.
//
// More details on the config are dependent on the module used.
func New(matchId uint64, matchName string, playerNum state.PlayerNum, config string) (Player, error) {
	if config == "" {
		config = DefaultPlayerConfig
	}

	// Find moduleName.
	moduleName := config
	if moduleSplit := strings.IndexAny(config, ":,"); moduleSplit != -1 {
		moduleName = config[:moduleSplit]
		config = config[moduleSplit+1:]
	} else {
		config = ""
	}
	moduleName = strings.TrimSpace(moduleName)
	muRegistry.Lock()
	module, ok := keywordToModules[moduleName]
	muRegistry.Unlock()
	if !ok {
		if len(Modules()) == 0 {
			return nil, errors.New("no registered AI players. Perhaps you need to import _ \"github.com/janpfeifer/minimaxGo/internal/players/default\" to your binary ?")
		}
		return nil, errors.Errorf("unknown AI player %q, registered players: %q", moduleName, Modules())
	}

	params := parameters.NewFromConfigString(config)
	player, err := module.NewPlayer(matchId, matchName, playerNum, params)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create AI player %q", moduleName)
	}
	if err = parameters.CheckAllUsed(params); err != nil {
		return nil, errors.WithMessagef(err, "AI player %q", moduleName)
	}
	return player, nil
}

// ConfigWithSeed returns config with a "seed" parameter appended, unless seed is 0 or config
// already sets one.
func ConfigWithSeed(config string, seed uint64) string {
	if config == "" {
		config = DefaultPlayerConfig
	}
	if seed == 0 || strings.Contains(config, "seed=") {
		return config
	}
	separator := ","
	if !strings.ContainsAny(config, ",:") {
		separator = ":"
	}
	return fmt.Sprintf("%s%sseed=%d", config, separator, seed)
}
