// Package minimax implements a plain (no pruning) minimax searchers.Searcher.
//
// The whole game tree up to the max depth is built on every search and then discarded.
// Nodes are kept in an arena (a slice) and refer to their children by index: the children
// of a node are always contiguous, and always stored after their parent.
//
// Scores are always from state.PlayerFirst's point of view: PlayerFirst maximizes and
// PlayerSecond minimizes. Leaves are scored with Board.Score(), which for non-terminal
// boards acts as the game's heuristic.
package minimax

import (
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/minimaxGo/internal/searchers"
	"github.com/janpfeifer/minimaxGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"math/rand/v2"
	"time"
)

// DefaultMaxDepth for search.
const DefaultMaxDepth = 3

// Searcher implements the searchers.Searcher interface.
//
// It is not safe for concurrent use: create one per player.
type Searcher struct {
	maxDepth int
	rng      *rand.Rand
	stats    Stats

	// arena is reused across searches.
	arena []node
}

// Assert that Searcher implements searchers.Searcher.
var _ searchers.Searcher = (*Searcher)(nil)

// Stats stores stats collected during the last search: for benchmarking, monitoring and debugging purposes.
type Stats struct {
	// Nodes created, including the root.
	Nodes int

	// Leaves is the number of nodes not expanded: terminal, at max depth or without legal moves.
	Leaves int

	// Depth is the deepest ply reached.
	Depth int

	// Ties is the number of root moves sharing the best score.
	Ties int

	Elapsed time.Duration
}

// node of the search tree.
type node struct {
	board       state.Board
	mover       state.PlayerNum
	move        state.Pos
	score       int
	firstChild  int32
	numChildren int32
}

// New returns a minimax based searchers.Searcher, with DefaultMaxDepth and a randomly
// seeded random number generator.
// See methods Searcher.With... for other configurations.
func New() *Searcher {
	return &Searcher{
		maxDepth: DefaultMaxDepth,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// WithMaxDepth sets the max depth of search: the unit here are plies (ply singular). Each player
// playing counts as one ply. See https://en.wikipedia.org/wiki/Ply_(game_theory).
//
// The default is 3 (DefaultMaxDepth). Searching a non-terminal board with maxDepth <= 0 returns
// an error.
func (s *Searcher) WithMaxDepth(maxDepth int) *Searcher {
	s.maxDepth = maxDepth
	return s
}

// WithRand sets the random number generator used to break ties between equally scored moves.
// A nil value is ignored.
func (s *Searcher) WithRand(rng *rand.Rand) *Searcher {
	if rng != nil {
		s.rng = rng
	}
	return s
}

// WithSeed is a shortcut to WithRand with a PCG generator seeded with seed.
func (s *Searcher) WithSeed(seed uint64) *Searcher {
	return s.WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// MaxDepth returns the configured max depth.
func (s *Searcher) MaxDepth() int { return s.maxDepth }

// Stats of the last search.
func (s *Searcher) Stats() Stats { return s.stats }

// ChooseMove searches board to depth plies, and returns player's move and its expected score.
// rng is used to break ties, and if nil a randomly seeded one is used.
func ChooseMove(board state.Board, player state.PlayerNum, depth int, rng *rand.Rand) (state.Pos, int, error) {
	move, score, _, err := New().WithMaxDepth(depth).WithRand(rng).Search(board, player)
	return move, score, err
}

// Search implements the searchers.Searcher interface.
//
// movesScores holds the minimax score of each of board.LegalMoves(player).
// If the board is terminal, it returns its final score along with an error wrapping searchers.ErrGameOver.
func (s *Searcher) Search(board state.Board, player state.PlayerNum) (move state.Pos, score int, movesScores []int, err error) {
	start := time.Now()
	move = state.PassMove
	if board != nil && board.NumCells() > 0 && board.IsTerminal() {
		score = board.Score()
	} else if s.maxDepth <= 0 {
		err = errors.Wrapf(searchers.ErrInvalidArgument, "minimax max depth must be > 0, got %d", s.maxDepth)
		return
	}
	if _, err = searchers.CheckSearchable(board, player); err != nil {
		return
	}

	s.stats = Stats{}
	s.arena = append(s.arena[:0], node{
		board:      board.Clone(),
		mover:      player,
		move:       state.PassMove,
		firstChild: -1,
	})
	s.expand(0, 0)
	s.backup()

	root := s.arena[0]
	score = root.score
	movesScores = make([]int, root.numChildren)
	ties := make([]int32, 0, root.numChildren)
	for ii := range root.numChildren {
		child := &s.arena[root.firstChild+ii]
		movesScores[ii] = child.score
		if child.score == score {
			ties = append(ties, root.firstChild+ii)
		}
	}
	s.stats.Ties = len(ties)
	var chosen int32
	if len(ties) == 0 {
		// Can't happen with the scores backed up from the children, but a random move is still a move.
		chosen = root.firstChild + s.rng.Int32N(root.numChildren)
	} else {
		chosen = ties[s.rng.IntN(len(ties))]
	}
	move = s.arena[chosen].move
	s.stats.Nodes = len(s.arena)
	s.stats.Elapsed = time.Since(start)

	// Release the boards.
	clear(s.arena)
	s.arena = s.arena[:0]

	if klog.V(2).Enabled() {
		klog.Infof("minimax(depth=%d): %s plays %s, score=%d, stats=%+v",
			s.maxDepth, player, move, score, s.stats)
		if s.stats.Elapsed > 0 {
			klog.Infof("  nodes/s=%.1f", float64(s.stats.Nodes)/s.stats.Elapsed.Seconds())
		}
	}
	return
}

// expand creates the children of the node at nodeIdx, located at the given depth, and recursively
// expands the non-terminal ones.
func (s *Searcher) expand(nodeIdx int32, depth int) {
	if depth >= s.maxDepth {
		s.stats.Leaves++
		return
	}
	parent := s.arena[nodeIdx]
	moves := parent.board.LegalMoves(parent.mover)
	if len(moves) == 0 {
		s.stats.Leaves++
		return
	}
	firstChild := int32(len(s.arena))
	for _, move := range moves {
		childBoard := parent.board.Act(parent.mover, move)
		s.arena = append(s.arena, node{
			board:      childBoard,
			mover:      parent.mover.Opponent(),
			move:       move,
			score:      childBoard.Score(),
			firstChild: -1,
		})
	}
	s.arena[nodeIdx].firstChild = firstChild
	s.stats.Depth = max(s.stats.Depth, depth+1)
	s.arena[nodeIdx].numChildren = int32(len(moves))
	for childIdx := firstChild; childIdx < firstChild+int32(len(moves)); childIdx++ {
		if s.arena[childIdx].board.IsTerminal() {
			s.stats.Leaves++
			continue
		}
		s.expand(childIdx, depth+1)
	}
}

// backup propagates the scores from the leaves to the root: children always come after
// their parents in the arena, so a reverse traversal visits every child before its parent.
func (s *Searcher) backup() {
	for nodeIdx := len(s.arena) - 1; nodeIdx >= 0; nodeIdx-- {
		n := &s.arena[nodeIdx]
		if n.numChildren == 0 {
			continue
		}
		if int(n.firstChild) <= nodeIdx {
			exceptions.Panicf("minimax: node #%d has children starting at #%d", nodeIdx, n.firstChild)
		}
		best := s.arena[n.firstChild].score
		for _, child := range s.arena[n.firstChild+1 : n.firstChild+n.numChildren] {
			if n.mover == state.PlayerFirst {
				best = max(best, child.score)
			} else {
				best = min(best, child.score)
			}
		}
		n.score = best
	}
}
