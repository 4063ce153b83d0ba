// Package searchers defines the Searcher interface implemented by the search algorithms
// (see sub-package minimax), and a few generic searchers built on top of it.
package searchers

import (
	"github.com/janpfeifer/minimaxGo/internal/state"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned for boards without cells, invalid players or non-positive search depths.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoLegalMoves is returned when the player to move has no legal moves: hosts usually
	// turn it into a pass.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrGameOver is returned when searching from a terminal board. The score returned along
	// is the board's final score.
	ErrGameOver = errors.New("game is over")
)

// Searcher is the interface that any of the search algorithms
// must adhere to be valid.
type Searcher interface {
	// Search returns the move player should take on the given board and its expected score
	// (always from state.PlayerFirst's perspective).
	//
	// movesScores, if not nil, holds the expected score of each move returned by
	// board.LegalMoves(player), in the same order.
	//
	// The board is not modified.
	Search(board state.Board, player state.PlayerNum) (move state.Pos, score int, movesScores []int, err error)
}

// CheckSearchable validates the common preconditions of a search, and returns the legal
// moves of player.
//
// If the board is terminal it returns an error wrapping ErrGameOver.
func CheckSearchable(board state.Board, player state.PlayerNum) ([]state.Pos, error) {
	if board == nil || board.NumCells() == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "board has no cells")
	}
	if !player.IsValid() {
		return nil, errors.Wrapf(ErrInvalidArgument, "player %s", player)
	}
	if board.IsTerminal() {
		return nil, errors.Wrapf(ErrGameOver, "final score %d", board.Score())
	}
	moves := board.LegalMoves(player)
	if len(moves) == 0 {
		return nil, errors.Wrapf(ErrNoLegalMoves, "player %s", player)
	}
	return moves, nil
}
