package minimax_test

import (
	"github.com/janpfeifer/minimaxGo/internal/othello"
	"github.com/janpfeifer/minimaxGo/internal/searchers"
	"github.com/janpfeifer/minimaxGo/internal/searchers/minimax"
	"github.com/janpfeifer/minimaxGo/internal/state"
	"github.com/janpfeifer/minimaxGo/internal/state/statetest"
	"github.com/janpfeifer/minimaxGo/internal/tictactoe"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
	"math/rand/v2"
	"slices"
	"testing"
)

func init() {
	klog.InitFlags(nil)
}

func tttBoard(layout string, next state.PlayerNum) *tictactoe.Board {
	return must.M1(tictactoe.FromCells(statetest.MustParseLayout(layout), next))
}

func TestWinInOne(t *testing.T) {
	b := tttBoard(`
		X X .
		O O .
		. . .`, state.PlayerFirst)
	want := state.Pos{0, 2}
	for _, depth := range []int{1, 3} {
		for seed := range uint64(20) {
			searcher := minimax.New().WithMaxDepth(depth).WithSeed(seed)
			move, score, movesScores, err := searcher.Search(b, state.PlayerFirst)
			require.NoError(t, err)
			require.Equalf(t, want, move, "depth=%d, seed=%d", depth, seed)
			assert.Equal(t, 1, score)
			require.Len(t, movesScores, len(b.LegalMoves(state.PlayerFirst)))
			assert.Equal(t, 1, movesScores[slices.Index(b.LegalMoves(state.PlayerFirst), want)])
			assert.Equal(t, 1, searcher.Stats().Ties)
		}
	}
}

func TestSecondPlayerMinimizes(t *testing.T) {
	b := tttBoard(`
		X X .
		O O .
		X . .`, state.PlayerSecond)
	move, score, err := minimax.ChooseMove(b, state.PlayerSecond, 2, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	assert.Equal(t, state.Pos{1, 2}, move)
	assert.Equal(t, -1, score)
}

func TestCenterOpening(t *testing.T) {
	// X took the center: O must answer on a corner, any edge lets X force a win.
	b := tictactoe.NewBoard().Act(state.PlayerFirst, state.Pos{1, 1})
	corners := []state.Pos{{0, 0}, {0, 2}, {2, 0}, {2, 2}}
	for seed := range uint64(5) {
		searcher := minimax.New().WithMaxDepth(9).WithSeed(seed)
		move, score, movesScores, err := searcher.Search(b, state.PlayerSecond)
		require.NoError(t, err)
		assert.Containsf(t, corners, move, "seed=%d", seed)
		assert.Equal(t, 0, score)

		// Edges score a win for X.
		for ii, m := range b.LegalMoves(state.PlayerSecond) {
			if slices.Contains(corners, m) {
				assert.Equal(t, 0, movesScores[ii], "move %s", m)
			} else {
				assert.Equal(t, 1, movesScores[ii], "move %s", m)
			}
		}

		// Scripted opponent: X can't force a win after O's answer.
		next := b.Act(state.PlayerSecond, move)
		_, xScore, err := minimax.ChooseMove(next, state.PlayerFirst, 9, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, xScore)
	}
}

func TestFullGameIsDraw(t *testing.T) {
	// Perfect play from both sides always ends in a draw.
	rng := rand.New(rand.NewPCG(3, 5))
	var b state.Board = tictactoe.NewBoard()
	for !b.IsTerminal() {
		player := b.NextPlayer()
		move, _, err := minimax.ChooseMove(b, player, 9, rng)
		require.NoError(t, err)
		b = b.Act(player, move)
	}
	assert.Equal(t, 0, b.Score(), "final board:\n%s", b)
}

func TestDeterministicWithSeed(t *testing.T) {
	boards := []state.Board{tictactoe.NewBoard(), othello.NewBoard()}
	for _, b := range boards {
		for seed := range uint64(10) {
			move1, score1, err := minimax.ChooseMove(b, state.PlayerFirst, 3, rand.New(rand.NewPCG(seed, 0)))
			require.NoError(t, err)
			move2, score2, err := minimax.ChooseMove(b, state.PlayerFirst, 3, rand.New(rand.NewPCG(seed, 0)))
			require.NoError(t, err)
			assert.Equal(t, move1, move2)
			assert.Equal(t, score1, score2)
		}
	}
}

func TestMoveIsLegal(t *testing.T) {
	rng := rand.New(rand.NewPCG(17, 42))
	searcher := minimax.New().WithMaxDepth(2).WithRand(rng)
	for _, newBoard := range []func() state.Board{
		func() state.Board { return tictactoe.NewBoard() },
		func() state.Board { return othello.NewBoard() },
	} {
		for range 3 {
			b := newBoard()
			for !b.IsTerminal() {
				player := b.NextPlayer()
				moves := b.LegalMoves(player)
				before := statetest.Snapshot(b)
				move, _, _, err := searcher.Search(b, player)
				if len(moves) == 0 {
					require.ErrorIs(t, err, searchers.ErrNoLegalMoves)
					if len(b.LegalMoves(player.Opponent())) == 0 {
						break
					}
					b = b.Act(player, state.PassMove)
					continue
				}
				require.NoError(t, err)
				require.Contains(t, moves, move)
				require.Equal(t, before, statetest.Snapshot(b), "search must not modify the board")
				b = b.Act(player, moves[rng.IntN(len(moves))])
			}
		}
	}
}

func TestOthelloOpening(t *testing.T) {
	b := othello.NewBoard()
	searcher := minimax.New().WithMaxDepth(1).WithSeed(7)
	move, score, movesScores, err := searcher.Search(b, state.PlayerFirst)
	require.NoError(t, err)
	assert.Contains(t, []state.Pos{{2, 4}, {3, 5}, {4, 2}, {5, 3}}, move)
	// Every opening move flips exactly one disc.
	assert.Equal(t, 3, score)
	assert.Equal(t, []int{3, 3, 3, 3}, movesScores)

	stats := searcher.Stats()
	assert.Equal(t, 5, stats.Nodes)
	assert.Equal(t, 4, stats.Leaves)
	assert.Equal(t, 1, stats.Depth)
	assert.Equal(t, 4, stats.Ties)
}

func TestOthelloDepth2(t *testing.T) {
	// After any opening move, the best answer of the second player flips one disc back.
	b := othello.NewBoard()
	searcher := minimax.New().WithMaxDepth(2).WithSeed(1)
	_, score, movesScores, err := searcher.Search(b, state.PlayerFirst)
	require.NoError(t, err)
	assert.Equal(t, 0, score)
	assert.Equal(t, []int{0, 0, 0, 0}, movesScores)
	assert.Equal(t, 2, searcher.Stats().Depth)
}

func TestErrors(t *testing.T) {
	// Non-positive depth on an ongoing match.
	_, _, err := minimax.ChooseMove(tictactoe.NewBoard(), state.PlayerFirst, 0, nil)
	require.ErrorIs(t, err, searchers.ErrInvalidArgument)

	// Invalid player.
	_, _, err = minimax.ChooseMove(tictactoe.NewBoard(), state.PlayerInvalid, 1, nil)
	require.ErrorIs(t, err, searchers.ErrInvalidArgument)

	// Terminal board: the final score is returned, regardless of depth.
	won := tttBoard(`
		X X X
		O O .
		. . .`, state.PlayerSecond)
	for _, depth := range []int{0, 3} {
		move, score, err := minimax.ChooseMove(won, state.PlayerSecond, depth, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, searchers.ErrGameOver))
		assert.Equal(t, 1, score)
		assert.True(t, move.IsPass())
	}

	// No legal moves for the player.
	cells := make([]state.Cell, othello.Size*othello.Size)
	cells[0] = state.CellFirst
	stuck := must.M1(othello.FromCells(cells, state.PlayerSecond))
	_, _, err = minimax.ChooseMove(stuck, state.PlayerSecond, 3, nil)
	require.ErrorIs(t, err, searchers.ErrNoLegalMoves)
}
