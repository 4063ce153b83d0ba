package searchers

import (
	"github.com/chewxy/math32"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/minimaxGo/internal/state"
	"k8s.io/klog/v2"
	"math/rand/v2"
	"slices"
)

// NewRandomizedSearcher adds randomness to the move taken by an existing Searcher.
// Args:
//
//   - searcher: Baseline Searcher. It must return the scores of each move.
//   - temperature (>=0): Amount of randomness to use: it is applied as a divisor to the
//     scores returned by the Searcher (made relative to the player), except if there is a
//     winning move. The larger the value the more it leads to randomness (exploration), and
//     lower values lead to "pick the best scoring move" (exploitation), with zero meaning no
//     randomness.
//   - rng: source of randomness. If nil, a randomly seeded one is used.
func NewRandomizedSearcher(searcher Searcher, temperature float32, rng *rand.Rand) Searcher {
	if temperature <= 0 {
		// Without randomness, simply return the original Searcher.
		return searcher
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &randomizedSearcher{searcher: searcher, temperature: temperature, rng: rng}
}

// randomizedSearcher is a meta Searcher, that samples the move from a softmax of the scores.
type randomizedSearcher struct {
	searcher    Searcher
	temperature float32
	rng         *rand.Rand
}

// Assert randomizedSearcher is a Searcher.
var _ Searcher = &randomizedSearcher{}

// Search implements the Searcher interface.
func (rs *randomizedSearcher) Search(board state.Board, player state.PlayerNum) (move state.Pos, score int, movesScores []int, err error) {
	move, score, movesScores, err = rs.searcher.Search(board, player)
	if err != nil || len(movesScores) <= 1 {
		return
	}
	moves := board.LegalMoves(player)
	if len(movesScores) != len(moves) {
		exceptions.Panicf("randomizedSearcher: Searcher returned %d movesScores, but board has %d moves!?", len(movesScores), len(moves))
	}

	// A move that ends the match in player's favor is never randomized away.
	if next := board.Act(player, move); next.IsTerminal() && state.WinnerFromScore(next.Score()) == player {
		return
	}

	logits := make([]float32, len(movesScores))
	sign := float32(player.Sign())
	for ii, s := range movesScores {
		logits[ii] = sign * float32(s) / rs.temperature
	}
	probabilities := softmax(logits)

	chance := rs.rng.Float32()
	for moveIdx, value := range probabilities {
		if chance > value && moveIdx < len(probabilities)-1 {
			chance -= value
			continue
		}
		if klog.V(2).Enabled() {
			klog.Infof("randomizedSearcher selection: move=%s, score=%d (base move %s, score %d)",
				moves[moveIdx], movesScores[moveIdx], move, score)
		}
		return moves[moveIdx], movesScores[moveIdx], movesScores, nil
	}
	// It should not reach here.
	exceptions.Panicf("Nothing selected!? remaining chance=%f, probabilities=%v", chance, probabilities)
	return
}

func softmax(values []float32) (probs []float32) {
	probs = make([]float32, len(values))
	var sum float32

	// Subtracting the max value keeps the probabilities the same, but makes the
	// exponentials numerically stable.
	maxValue := slices.Max(values)
	for ii, value := range values {
		probs[ii] = math32.Exp(value - maxValue)
		sum += probs[ii]
	}
	for ii := range probs {
		probs[ii] /= sum
	}
	return
}
