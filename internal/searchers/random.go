package searchers

import (
	"github.com/janpfeifer/minimaxGo/internal/state"
	"math/rand/v2"
)

// RandomSearcher plays a uniformly random legal move. It is mostly used as a baseline
// opponent.
type RandomSearcher struct {
	rng *rand.Rand
}

// Assert RandomSearcher is a Searcher.
var _ Searcher = (*RandomSearcher)(nil)

// NewRandomSearcher creates a RandomSearcher. If rng is nil, a randomly seeded one is used.
func NewRandomSearcher(rng *rand.Rand) *RandomSearcher {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandomSearcher{rng: rng}
}

// Search implements Searcher. The score returned is the score of the board after the move,
// and movesScores is always nil.
func (rs *RandomSearcher) Search(board state.Board, player state.PlayerNum) (move state.Pos, score int, movesScores []int, err error) {
	var moves []state.Pos
	moves, err = CheckSearchable(board, player)
	if err != nil {
		if board != nil && board.NumCells() > 0 {
			score = board.Score()
		}
		return state.PassMove, score, nil, err
	}
	move = moves[rs.rng.IntN(len(moves))]
	score = board.Act(player, move).Score()
	return
}
