// Package state holds the game-agnostic description of a board game position: players,
// cells, positions and the Board interface that searchers and hosts work with.
//
// Each game (see packages tictactoe and othello) implements Board.
package state

import (
	"fmt"
	"sort"
)

const (
	// NumPlayers currently limited to 2.
	NumPlayers = 2
)

// PlayerNum is the either 0 or 1 corresponding to the first player to move or the second player to move.
//
// Scores are always given from the point of view of PlayerFirst: positive values favor PlayerFirst,
// negative values favor PlayerSecond.
type PlayerNum uint8

const (
	PlayerFirst PlayerNum = iota
	PlayerSecond

	// PlayerInvalid represents an invalid PlayerNum. It's also used as "no winner".
	PlayerInvalid
)

var playerNames = [3]string{"First", "Second", "Invalid"}

// String returns "First", "Second" or "Invalid".
func (p PlayerNum) String() string {
	if p > PlayerInvalid {
		return fmt.Sprintf("PlayerNum(%d)", uint8(p))
	}
	return playerNames[p]
}

// Opponent returns the other player.
func (p PlayerNum) Opponent() PlayerNum {
	return 1 - p
}

// IsValid returns whether p is PlayerFirst or PlayerSecond.
func (p PlayerNum) IsValid() bool {
	return p < PlayerInvalid
}

// Sign returns +1 for PlayerFirst and -1 for PlayerSecond: the direction in which
// the player wants the score to go.
func (p PlayerNum) Sign() int {
	if p == PlayerFirst {
		return 1
	}
	return -1
}

// WinnerFromScore returns the player favored by a final score, or PlayerInvalid if it is a draw.
func WinnerFromScore(score int) PlayerNum {
	switch {
	case score > 0:
		return PlayerFirst
	case score < 0:
		return PlayerSecond
	}
	return PlayerInvalid
}

// Cell is the content of one position of the board: empty or owned by one of the players.
type Cell uint8

const (
	Empty Cell = iota
	CellFirst
	CellSecond
)

// CellOf returns the cell value owned by the given player.
func CellOf(player PlayerNum) Cell {
	return Cell(player + 1)
}

// Owner returns the player owning the cell, or PlayerInvalid if the cell is empty.
func (c Cell) Owner() PlayerNum {
	if c == Empty {
		return PlayerInvalid
	}
	return PlayerNum(c - 1)
}

// Value is +1 for cells owned by PlayerFirst, -1 for PlayerSecond and 0 for empty cells.
func (c Cell) Value() int {
	switch c {
	case CellFirst:
		return 1
	case CellSecond:
		return -1
	}
	return 0
}

// String returns a one letter representation.
func (c Cell) String() string {
	return [3]string{".", "X", "O"}[c]
}

// Pos packages row, column position. Both are 0-based.
type Pos [2]int8

// PassMove is used by hosts to record a player passing its turn, when it has no legal moves.
// It is never returned by Board.LegalMoves.
var PassMove = Pos{-1, -1}

// Row of the position.
func (pos Pos) Row() int8 {
	return pos[0]
}

// Col of the position.
func (pos Pos) Col() int8 {
	return pos[1]
}

// IsPass returns whether pos is the PassMove.
func (pos Pos) IsPass() bool {
	return pos == PassMove
}

// Add returns the position displaced by delta.
func (pos Pos) Add(delta Pos) Pos {
	return Pos{pos[0] + delta[0], pos[1] + delta[1]}
}

// String returns a text representation of Pos.
func (pos Pos) String() string {
	if pos.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("(%d, %d)", pos[0], pos[1])
}

// PosSort sorts according to row first and then column.
func PosSort(poss []Pos) {
	sort.Slice(poss, func(i, j int) bool {
		if poss[i][0] != poss[j][0] {
			return poss[i][0] < poss[j][0]
		}
		return poss[i][1] < poss[j][1]
	})
}

// PosStrings converts each position to its string representation.
func PosStrings(poss []Pos) []string {
	strs := make([]string, len(poss))
	for ii, pos := range poss {
		strs[ii] = pos.String()
	}
	return strs
}

// Board is the capability set a game has to provide for the searchers and the hosts.
//
// Boards are values as far as the searchers are concerned: Act never modifies the receiver,
// it returns a new Board.
type Board interface {
	// Dims returns the number of rows and columns of the grid.
	Dims() (rows, cols int)

	// NumCells is rows*cols.
	NumCells() int

	// Cell returns the contents at the given position. It panics if pos is out of the board.
	Cell(pos Pos) Cell

	// NextPlayer returns the player to move.
	NextPlayer() PlayerNum

	// LegalMoves returns the positions where player can play, in row-major order.
	// Occupied cells are never included.
	LegalMoves(player PlayerNum) []Pos

	// Act returns a new Board with player's move applied, and the opponent as the next player.
	// If move is PassMove it only hands the turn to the opponent.
	// The receiver is not modified.
	Act(player PlayerNum, move Pos) Board

	// Score of the board from PlayerFirst's perspective.
	Score() int

	// IsTerminal returns whether the match is over for this board, according to the game rules.
	IsTerminal() bool

	// Clone makes a deep copy of the board.
	Clone() Board

	// String returns a compact multi-line representation, for logging.
	String() string
}
