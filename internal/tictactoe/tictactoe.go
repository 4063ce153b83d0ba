// Package tictactoe implements the 3x3 Tic-Tac-Toe rules as a state.Board.
//
// PlayerFirst plays "X" and PlayerSecond plays "O".
package tictactoe

import (
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/minimaxGo/internal/state"
	"github.com/pkg/errors"
)

// Size of the board on each side.
const Size = 3

// WinLines lists the 8 lines (3 rows, 3 columns and 2 diagonals) that win the game.
var WinLines = [8][3]state.Pos{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// Symbols used to print each cell.
var Symbols = [3]string{".", "X", "O"}

// Board of a Tic-Tac-Toe match.
type Board struct {
	grid       state.Grid
	nextPlayer state.PlayerNum
}

// Assert Board is a state.Board.
var _ state.Board = (*Board)(nil)

// NewBoard returns an empty board, with PlayerFirst to move.
func NewBoard() *Board {
	return &Board{grid: state.NewGrid(Size, Size), nextPlayer: state.PlayerFirst}
}

// FromCells creates a board from the 9 cells given in row-major order.
func FromCells(cells []state.Cell, nextPlayer state.PlayerNum) (*Board, error) {
	grid, err := state.GridFromCells(Size, Size, cells)
	if err != nil {
		return nil, errors.WithMessage(err, "tictactoe")
	}
	if !nextPlayer.IsValid() {
		return nil, errors.Errorf("tictactoe: invalid next player %s", nextPlayer)
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

// LegalMoves implements state.Board: any empty cell. It doesn't depend on the player.
func (b *Board) LegalMoves(_ state.PlayerNum) []state.Pos {
	return b.grid.EmptyPositions()
}

// Act implements state.Board.
func (b *Board) Act(player state.PlayerNum, move state.Pos) state.Board {
	newB := b.clone()
	newB.nextPlayer = player.Opponent()
	if move.IsPass() {
		return newB
	}
	if !b.grid.InBounds(move) || b.grid.Cell(move) != state.Empty {
		exceptions.Panicf("tictactoe: %s can't play at %s:\n%s", player, move, b)
	}
	newB.grid.Set(move, state.CellOf(player))
	return newB
}

// WinningLine returns the first completed line and whether there is one.
func (b *Board) WinningLine() (line [3]state.Pos, found bool) {
	for _, line = range WinLines {
		c := b.grid.Cell(line[0])
		if c != state.Empty && c == b.grid.Cell(line[1]) && c == b.grid.Cell(line[2]) {
			return line, true
		}
	}
	return [3]state.Pos{}, false
}

// Winner returns the owner of a completed line, or PlayerInvalid if there is none.
func (b *Board) Winner() state.PlayerNum {
	line, found := b.WinningLine()
	if !found {
		return state.PlayerInvalid
	}
	return b.grid.Cell(line[0]).Owner()
}

// Score implements state.Board: +1 if PlayerFirst completed a line, -1 if PlayerSecond did, 0 otherwise.
func (b *Board) Score() int {
	winner := b.Winner()
	if winner == state.PlayerInvalid {
		return 0
	}
	return winner.Sign()
}

// IsTerminal implements state.Board: someone completed a line or the board is full.
func (b *Board) IsTerminal() bool {
	_, won := b.WinningLine()
	return won || b.grid.IsFull()
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
