// Package statetest provides helper functions to create tests using board states.
package statetest

import (
	. "github.com/janpfeifer/minimaxGo/internal/state"
	"github.com/pkg/errors"
	"strings"
)

// ParseLayout converts a text drawing of a board into cells in row-major order.
//
// Each non-blank line is a row, and each non-space character a cell:
// "X", "B" or "1" for PlayerFirst; "O", "W" or "2" for PlayerSecond; "." or "-" for empty.
func ParseLayout(layout string) (cells []Cell, rows, cols int, err error) {
	for _, line := range strings.Split(layout, "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line == "" {
			continue
		}
		if cols == 0 {
			cols = len(line)
		} else if len(line) != cols {
			return nil, 0, 0, errors.Errorf("row %d has %d cells, expected %d", rows, len(line), cols)
		}
		for _, r := range line {
			switch r {
			case 'X', 'x', 'B', 'b', '1':
				cells = append(cells, CellFirst)
			case 'O', 'o', 'W', 'w', '2':
				cells = append(cells, CellSecond)
			case '.', '-':
				cells = append(cells, Empty)
			default:
				return nil, 0, 0, errors.Errorf("invalid cell %q in row %d", r, rows)
			}
		}
		rows++
	}
	return
}

// MustParseLayout is like ParseLayout, but panics on error.
func MustParseLayout(layout string) []Cell {
	cells, _, _, err := ParseLayout(layout)
	if err != nil {
		panic(err)
	}
	return cells
}

// Snapshot returns a copy of all the cells of the board, in row-major order, so
// it can be compared after operations that are not supposed to modify the board.
func Snapshot(b Board) []Cell {
	rows, cols := b.Dims()
	cells := make([]Cell, 0, rows*cols)
	for row := range rows {
		for col := range cols {
			cells = append(cells, b.Cell(Pos{int8(row), int8(col)}))
		}
	}
	return cells
}
