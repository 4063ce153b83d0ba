// Package _default registers the default players that can be included in any
// front-end for minimaxGo.
//
// Currently, it includes "minimax" and "random".
package _default

import (
	"fmt"
	"github.com/janpfeifer/minimaxGo/internal/parameters"
	"github.com/janpfeifer/minimaxGo/internal/players"
	"github.com/janpfeifer/minimaxGo/internal/searchers"
	"github.com/janpfeifer/minimaxGo/internal/searchers/minimax"
	"github.com/janpfeifer/minimaxGo/internal/state"
	"github.com/pkg/errors"
	"math/rand/v2"
)

func init() {
	players.RegisterModule("minimax", &Minimax{})
	players.RegisterModule("random", &Random{})
}

// Minimax creates players backed by minimax.Searcher.
//
// Parameters:
//
//   - max_depth (int): Max depth of search in plies, default is minimax.DefaultMaxDepth.
//   - randomness (float): Temperature of the softmax over the moves scores used to pick the move,
//     see searchers.NewRandomizedSearcher. Default is 0, meaning the best move is always taken.
//   - seed (uint64): Seed for the random number generator. By default, it is randomly seeded.
type Minimax struct{}

// Assert Minimax implements Module.
var _ players.Module = (*Minimax)(nil)

// NewPlayer implements players.Module.
func (m *Minimax) NewPlayer(_ uint64, matchName string, playerNum state.PlayerNum, params parameters.Params) (players.Player, error) {
	maxDepth, err := parameters.PopParamOr(params, "max_depth", minimax.DefaultMaxDepth)
	if err != nil {
		return nil, err
	}
	if maxDepth <= 0 {
		return nil, errors.Errorf("minimax: max_depth must be > 0, got %d", maxDepth)
	}
	randomness, err := parameters.PopParamOr(params, "randomness", float32(0))
	if err != nil {
		return nil, err
	}
	rng, err := popRand(params)
	if err != nil {
		return nil, err
	}
	var searcher searchers.Searcher = minimax.New().WithMaxDepth(maxDepth).WithRand(rng)
	searcher = searchers.NewRandomizedSearcher(searcher, randomness, rng)
	name := fmt.Sprintf("minimax(depth=%d)", maxDepth)
	if randomness > 0 {
		name = fmt.Sprintf("minimax(depth=%d, randomness=%g)", maxDepth, randomness)
	}
	return players.NewSearcherPlayer(searcher, name, matchName, playerNum), nil
}

// Random creates players that play uniformly random legal moves.
//
// Parameters:
//
//   - seed (uint64): Seed for the random number generator. By default, it is randomly seeded.
type Random struct{}

// Assert Random implements Module.
var _ players.Module = (*Random)(nil)

// NewPlayer implements players.Module.
func (r *Random) NewPlayer(_ uint64, matchName string, playerNum state.PlayerNum, params parameters.Params) (players.Player, error) {
	rng, err := popRand(params)
	if err != nil {
		return nil, err
	}
	return players.NewSearcherPlayer(searchers.NewRandomSearcher(rng), "random", matchName, playerNum), nil
}

// popRand returns a generator seeded with the "seed" parameter, or nil if it is not set.
func popRand(params parameters.Params) (*rand.Rand, error) {
	if _, found := params["seed"]; !found {
		return nil, nil
	}
	seed, err := parameters.PopParamOr(params, "seed", uint64(0))
	if err != nil {
		return nil, err
	}
	return rand.New(rand.NewPCG(seed, seed)), nil
}
