package state_test

import (
	. "github.com/janpfeifer/minimaxGo/internal/state"
	. "github.com/janpfeifer/minimaxGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestPlayerNum(t *testing.T) {
	assert.Equal(t, PlayerSecond, PlayerFirst.Opponent())
	assert.Equal(t, PlayerFirst, PlayerSecond.Opponent())
	assert.Equal(t, 1, PlayerFirst.Sign())
	assert.Equal(t, -1, PlayerSecond.Sign())
	assert.True(t, PlayerSecond.IsValid())
	assert.False(t, PlayerInvalid.IsValid())
	assert.Equal(t, "First", PlayerFirst.String())
	assert.Equal(t, "Invalid", PlayerInvalid.String())
}

func TestWinnerFromScore(t *testing.T) {
	assert.Equal(t, PlayerFirst, WinnerFromScore(3))
	assert.Equal(t, PlayerSecond, WinnerFromScore(-1))
	assert.Equal(t, PlayerInvalid, WinnerFromScore(0))
}

func TestCell(t *testing.T) {
	assert.Equal(t, CellFirst, CellOf(PlayerFirst))
	assert.Equal(t, CellSecond, CellOf(PlayerSecond))
	assert.Equal(t, PlayerSecond, CellSecond.Owner())
	assert.Equal(t, PlayerInvalid, Empty.Owner())
	assert.Equal(t, 1, CellFirst.Value())
	assert.Equal(t, -1, CellSecond.Value())
	assert.Equal(t, 0, Empty.Value())
}

func TestPos(t *testing.T) {
	pos := Pos{2, 3}
	assert.Equal(t, int8(2), pos.Row())
	assert.Equal(t, int8(3), pos.Col())
	assert.Equal(t, Pos{1, 4}, pos.Add(Pos{-1, 1}))
	assert.Equal(t, "(2, 3)", pos.String())
	assert.True(t, PassMove.IsPass())
	assert.Equal(t, "pass", PassMove.String())

	poss := []Pos{{1, 0}, {0, 2}, {0, 1}}
	PosSort(poss)
	assert.Equal(t, []Pos{{0, 1}, {0, 2}, {1, 0}}, poss)
	assert.Equal(t, []string{"(0, 1)", "(0, 2)", "(1, 0)"}, PosStrings(poss))
}

func TestGrid(t *testing.T) {
	cells, rows, cols, err := ParseLayout(`
		X O .
		. X .
	`)
	require.NoError(t, err)
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)

	g, err := GridFromCells(rows, cols, cells)
	require.NoError(t, err)
	assert.Equal(t, 6, g.NumCells())
	assert.Equal(t, CellSecond, g.Cell(Pos{0, 1}))
	assert.Equal(t, 2, g.Count(CellFirst))
	assert.Equal(t, 3, g.Count(Empty))
	assert.Equal(t, 1, g.Sum())
	assert.False(t, g.IsFull())
	assert.Equal(t, []Pos{{0, 2}, {1, 0}, {1, 2}}, g.EmptyPositions())
	assert.True(t, g.InBounds(Pos{1, 2}))
	assert.False(t, g.InBounds(Pos{2, 0}))
	assert.False(t, g.InBounds(Pos{0, -1}))
	assert.Panics(t, func() { g.Cell(Pos{3, 3}) })

	// Clones are independent.
	g2 := g.Clone()
	g2.Set(Pos{0, 2}, CellSecond)
	assert.Equal(t, Empty, g.Cell(Pos{0, 2}))
	assert.False(t, g.Equal(&g2))
	assert.Equal(t, "X O O\n. X .", g2.Format([3]string{".", "X", "O"}))

	_, err = GridFromCells(2, 2, cells)
	require.Error(t, err)
}

func TestParseLayoutErrors(t *testing.T) {
	_, _, _, err := ParseLayout("X O\nX")
	require.Error(t, err)
	_, _, _, err = ParseLayout("X ?")
	require.Error(t, err)
}
