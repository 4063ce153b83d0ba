// Package othello implements the 8x8 Othello (Reversi) rules as a state.Board.
//
// PlayerFirst plays the black discs ("B") and PlayerSecond the white ones ("W").
// Coordinates are 0-based (row, column).
package othello

import (
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/minimaxGo/internal/state"
	"github.com/pkg/errors"
)

// Size of the board on each side.
const Size = 8

// Symbols used to print each cell.
var Symbols = [3]string{".", "B", "W"}

// Directions are the 8 compass directions a capture can run along.
var Directions = [8]state.Pos{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board of an Othello match.
type Board struct {
	grid       state.Grid
	nextPlayer state.PlayerNum
}

// Assert Board is a state.Board.
var _ state.Board = (*Board)(nil)

// NewBoard returns the standard opening position, with PlayerFirst to move.
func NewBoard() *Board {
	b := &Board{grid: state.NewGrid(Size, Size), nextPlayer: state.PlayerFirst}
	const mid = Size / 2
	b.grid.Set(state.Pos{mid - 1, mid - 1}, state.CellFirst)
	b.grid.Set(state.Pos{mid, mid}, state.CellFirst)
	b.grid.Set(state.Pos{mid - 1, mid}, state.CellSecond)
	b.grid.Set(state.Pos{mid, mid - 1}, state.CellSecond)
	return b
}

// FromCells creates a board from the 64 cells given in row-major order.
func FromCells(cells []state.Cell, nextPlayer state.PlayerNum) (*Board, error) {
	grid, err := state.GridFromCells(Size, Size, cells)
	if err != nil {
		return nil, errors.WithMessage(err, "othello")
	}
	if !nextPlayer.IsValid() {
		return nil, errors.Errorf("othello: invalid next player %s", nextPlayer)
	}
	return &Board{grid: grid, nextPlayer: nextPlayer}, nil
}

// Dims implements state.Board.
func (b *Board) Dims() (rows, cols int) { return b.grid.Dims() }

// NumCells implements state.Board.
func (b *Board) NumCells() int { return b.grid.NumCells() }

// Cell implements state.Board.
func (b *Board) Cell(pos state.Pos) state.Cell { return b.grid.Cell(pos) }

// NextPlayer implements state.Board.
func (b *Board) NextPlayer() state.PlayerNum { return b.nextPlayer }

// Count returns the number of cells with the given contents.
func (b *Board) Count(c state.Cell) int { return b.grid.Count(c) }

// runLength returns the number of opponent discs that would be captured by player
// placing a disc at pos, along direction dir: the run of opponent discs must be
// immediately followed by one of player's discs, otherwise nothing is captured.
func (b *Board) runLength(player state.PlayerNum, pos, dir state.Pos) int {
	own, opp := state.CellOf(player), state.CellOf(player.Opponent())
	count := 0
	for cur := pos.Add(dir); b.grid.InBounds(cur); cur = cur.Add(dir) {
		switch b.grid.Cell(cur) {
		case opp:
			count++
		case own:
			return count
		default:
			return 0
		}
	}
	// Reached the edge without finding one of player's discs.
	return 0
}

// IsLegal returns whether player can place a disc at pos: it must be empty and capture
// at least one opponent disc.
func (b *Board) IsLegal(player state.PlayerNum, pos state.Pos) bool {
	if !b.grid.InBounds(pos) || b.grid.Cell(pos) != state.Empty {
		return false
	}
	for _, dir := range Directions {
		if b.runLength(player, pos, dir) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves implements state.Board.
func (b *Board) LegalMoves(player state.PlayerNum) []state.Pos {
	var moves []state.Pos
	b.grid.Positions(func(pos state.Pos) bool {
		if b.IsLegal(player, pos) {
			moves = append(moves, pos)
		}
		return true
	})
	return moves
}

// CanMove returns whether player has at least one legal move.
func (b *Board) CanMove(player state.PlayerNum) bool {
	found := false
	b.grid.Positions(func(pos state.Pos) bool {
		found = b.IsLegal(player, pos)
		return !found
	})
	return found
}

// Flips returns the opponent discs that would be flipped if player placed a disc at pos.
func (b *Board) Flips(player state.PlayerNum, pos state.Pos) []state.Pos {
	var flips []state.Pos
	for _, dir := range Directions {
		n := b.runLength(player, pos, dir)
		cur := pos
		for range n {
			cur = cur.Add(dir)
			flips = append(flips, cur)
		}
	}
	return flips
}

// Act implements state.Board: it places player's disc at move and flips every captured run.
//
// It doesn't check that the move captures anything: a non-capturing placement simply
// adds the disc. It panics if the position is out of the board or occupied.
func (b *Board) Act(player state.PlayerNum, move state.Pos) state.Board {
	newB := b.clone()
	newB.nextPlayer = player.Opponent()
	if move.IsPass() {
		return newB
	}
	if !b.grid.InBounds(move) || b.grid.Cell(move) != state.Empty {
		exceptions.Panicf("othello: %s can't play at %s:\n%s", player, move, b)
	}
	own := state.CellOf(player)
	newB.grid.Set(move, own)
	for _, pos := range b.Flips(player, move) {
		newB.grid.Set(pos, own)
	}
	return newB
}

// Score implements state.Board: number of PlayerFirst discs minus the number of PlayerSecond discs.
//
// It is used both as the final score and as the (weak) heuristic for intermediary positions.
func (b *Board) Score() int {
	return b.grid.Sum()
}

// IsTerminal implements state.Board: the board is full.
//
// A position where neither player can move but the board is not full is not considered
// terminal here: hosts (see game.Session) detect it and end the match.
func (b *Board) IsTerminal() bool {
	return b.grid.IsFull()
}

// Clone implements state.Board.
func (b *Board) Clone() state.Board {
	return b.clone()
}

func (b *Board) clone() *Board {
	return &Board{grid: b.grid.Clone(), nextPlayer: b.nextPlayer}
}

// String implements state.Board.
func (b *Board) String() string {
	return b.grid.Format(Symbols)
}
