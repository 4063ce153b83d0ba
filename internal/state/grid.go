package state

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"slices"
	"strings"
)

// Grid is a dense rows x cols board of cells, shared by the games implementations.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// NewGrid creates an empty grid.
func NewGrid(rows, cols int) Grid {
	return Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
}

// GridFromCells creates a grid with the given cells, in row-major order.
func GridFromCells(rows, cols int, cells []Cell) (Grid, error) {
	if len(cells) != rows*cols {
		return Grid{}, errors.Errorf("grid %dx%d requires %d cells, got %d", rows, cols, rows*cols, len(cells))
	}
	for ii, c := range cells {
		if c > CellSecond {
			return Grid{}, errors.Errorf("invalid cell value %d at index %d", c, ii)
		}
	}
	return Grid{rows: rows, cols: cols, cells: slices.Clone(cells)}, nil
}

// Dims returns the number of rows and columns.
func (g *Grid) Dims() (rows, cols int) {
	return g.rows, g.cols
}

// NumCells returns rows*cols.
func (g *Grid) NumCells() int {
	return len(g.cells)
}

// InBounds returns whether pos is inside the grid.
func (g *Grid) InBounds(pos Pos) bool {
	return pos[0] >= 0 && int(pos[0]) < g.rows && pos[1] >= 0 && int(pos[1]) < g.cols
}

func (g *Grid) index(pos Pos) int {
	if !g.InBounds(pos) {
		exceptions.Panicf("position %s out of %dx%d grid", pos, g.rows, g.cols)
	}
	return int(pos[0])*g.cols + int(pos[1])
}

// Cell returns the contents of the cell at pos.
func (g *Grid) Cell(pos Pos) Cell {
	return g.cells[g.index(pos)]
}

// Set the contents of the cell at pos.
func (g *Grid) Set(pos Pos, c Cell) {
	g.cells[g.index(pos)] = c
}

// Clone returns a deep copy.
func (g *Grid) Clone() Grid {
	return Grid{rows: g.rows, cols: g.cols, cells: slices.Clone(g.cells)}
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) (count int) {
	for _, cell := range g.cells {
		if cell == c {
			count++
		}
	}
	return
}

// IsFull returns whether there are no empty cells left.
func (g *Grid) IsFull() bool {
	return !slices.Contains(g.cells, Empty)
}

// Sum of the cell values: number of PlayerFirst cells minus number of PlayerSecond cells.
func (g *Grid) Sum() (sum int) {
	for _, cell := range g.cells {
		sum += cell.Value()
	}
	return
}

// Positions iterates over all positions in row-major order, calling fn until it returns false.
func (g *Grid) Positions(fn func(pos Pos) bool) {
	for row := range g.rows {
		for col := range g.cols {
			if !fn(Pos{int8(row), int8(col)}) {
				return
			}
		}
	}
}

// EmptyPositions returns all empty positions in row-major order.
func (g *Grid) EmptyPositions() []Pos {
	poss := make([]Pos, 0, len(g.cells))
	g.Positions(func(pos Pos) bool {
		if g.Cell(pos) == Empty {
			poss = append(poss, pos)
		}
		return true
	})
	return poss
}

// Equal returns whether both grids have the same dimensions and contents.
func (g *Grid) Equal(g2 *Grid) bool {
	return g.rows == g2.rows && g.cols == g2.cols && slices.Equal(g.cells, g2.cells)
}

// Format returns one line per row, with each cell represented by symbols[cell].
func (g *Grid) Format(symbols [3]string) string {
	var sb strings.Builder
	for row := range g.rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range g.cols {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(symbols[g.cells[row*g.cols+col]])
		}
	}
	return sb.String()
}
