package searchers_test

import (
	"github.com/janpfeifer/minimaxGo/internal/othello"
	"github.com/janpfeifer/minimaxGo/internal/searchers"
	"github.com/janpfeifer/minimaxGo/internal/searchers/minimax"
	"github.com/janpfeifer/minimaxGo/internal/state"
	"github.com/janpfeifer/minimaxGo/internal/state/statetest"
	"github.com/janpfeifer/minimaxGo/internal/tictactoe"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand/v2"
	"testing"
)

func tttBoard(layout string, next state.PlayerNum) *tictactoe.Board {
	return must.M1(tictactoe.FromCells(statetest.MustParseLayout(layout), next))
}

func TestRandomizedZeroTemperature(t *testing.T) {
	base := minimax.New()
	assert.True(t, searchers.NewRandomizedSearcher(base, 0, nil) == searchers.Searcher(base))
	assert.False(t, searchers.NewRandomizedSearcher(base, 0.5, nil) == searchers.Searcher(base))
}

func TestRandomizedKeepsWinningMove(t *testing.T) {
	b := tttBoard(`
		X X .
		O O .
		. . .`, state.PlayerFirst)
	rng := rand.New(rand.NewPCG(1, 1))
	rs := searchers.NewRandomizedSearcher(minimax.New().WithMaxDepth(2).WithRand(rng), 100, rng)
	for range 50 {
		move, score, _, err := rs.Search(b, state.PlayerFirst)
		require.NoError(t, err)
		require.Equal(t, state.Pos{0, 2}, move)
		require.Equal(t, 1, score)
	}
}

func TestRandomizedTemperature(t *testing.T) {
	// O must block at (0, 2), every other move loses.
	b := tttBoard(`
		X X .
		O . .
		. . .`, state.PlayerSecond)
	block := state.Pos{0, 2}
	rng := rand.New(rand.NewPCG(3, 7))
	base := minimax.New().WithMaxDepth(2).WithRand(rng)

	cold := searchers.NewRandomizedSearcher(base, 0.01, rng)
	for range 20 {
		move, score, _, err := cold.Search(b, state.PlayerSecond)
		require.NoError(t, err)
		require.Equal(t, block, move)
		require.Equal(t, 0, score)
	}

	hot := searchers.NewRandomizedSearcher(base, 10, rng)
	moves := b.LegalMoves(state.PlayerSecond)
	counts := make(map[state.Pos]int)
	for range 200 {
		move, _, _, err := hot.Search(b, state.PlayerSecond)
		require.NoError(t, err)
		require.Contains(t, moves, move)
		counts[move]++
	}
	assert.Greater(t, len(counts), 1, "high temperature should explore other moves")
}

func TestRandomSearcher(t *testing.T) {
	rs := searchers.NewRandomSearcher(rand.New(rand.NewPCG(0, 0)))
	b := othello.NewBoard()
	moves := b.LegalMoves(state.PlayerFirst)
	seen := make(map[state.Pos]bool)
	for range 100 {
		move, score, movesScores, err := rs.Search(b, state.PlayerFirst)
		require.NoError(t, err)
		require.Contains(t, moves, move)
		assert.Equal(t, 3, score)
		assert.Nil(t, movesScores)
		seen[move] = true
	}
	assert.Len(t, seen, len(moves))

	full := tttBoard(`
		X O X
		X O O
		O X X`, state.PlayerFirst)
	_, _, _, err := rs.Search(full, state.PlayerFirst)
	require.ErrorIs(t, err, searchers.ErrGameOver)
}

func TestCheckSearchable(t *testing.T) {
	_, err := searchers.CheckSearchable(nil, state.PlayerFirst)
	require.ErrorIs(t, err, searchers.ErrInvalidArgument)

	moves, err := searchers.CheckSearchable(tictactoe.NewBoard(), state.PlayerFirst)
	require.NoError(t, err)
	assert.Len(t, moves, 9)
}
