package game

import (
	"fmt"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/minimaxGo/internal/othello"
	"github.com/janpfeifer/minimaxGo/internal/state"
	"github.com/janpfeifer/minimaxGo/internal/tictactoe"
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

// Variant of the game being played.
type Variant string

const (
	TicTacToe Variant = "tictactoe"
	Othello   Variant = "othello"
)

// Variants lists all supported variants.
var Variants = []Variant{TicTacToe, Othello}

// ParseVariant converts s (case-insensitive) to a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case TicTacToe, Othello:
		return v, nil
	case "ttt", "tic-tac-toe":
		return TicTacToe, nil
	case "reversi":
		return Othello, nil
	}
	return "", errors.Errorf("unknown game %q, valid values are %q", s, Variants)
}

// NewBoard returns the initial board of the variant.
func (v Variant) NewBoard() state.Board {
	switch v {
	case TicTacToe:
		return tictactoe.NewBoard()
	case Othello:
		return othello.NewBoard()
	}
	exceptions.Panicf("unknown game variant %q", string(v))
	return nil
}

// Symbols used to display the cells of the variant.
func (v Variant) Symbols() [3]string {
	if v == Othello {
		return othello.Symbols
	}
	return tictactoe.Symbols
}

// Difficulty of the AI opponent: each one maps to a search depth, dependent on the variant.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

type difficultyDepth struct {
	difficulty Difficulty
	depth      int
}

var variantDifficulties = map[Variant][]difficultyDepth{
	TicTacToe: {{Easy, 1}, {Hard, 3}},
	Othello:   {{Easy, 1}, {Medium, 3}, {Hard, 5}},
}

// Difficulties returns the difficulties available for the variant, from the easiest to the hardest.
func (v Variant) Difficulties() []Difficulty {
	var ds []Difficulty
	for _, dd := range variantDifficulties[v] {
		ds = append(ds, dd.difficulty)
	}
	return ds
}

// DefaultDifficulty is "hard" for Tic-Tac-Toe and "easy" for Othello.
func (v Variant) DefaultDifficulty() Difficulty {
	if v == TicTacToe {
		return Hard
	}
	return Easy
}

// Depth returns the search depth associated with the difficulty.
// Difficulty is case-insensitive, and can also be given directly as a depth ("4").
func (v Variant) Depth(difficulty Difficulty) (int, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(string(difficulty))))
	for _, dd := range variantDifficulties[v] {
		if dd.difficulty == d {
			return dd.depth, nil
		}
	}
	if depth, err := strconv.Atoi(string(d)); err == nil && depth > 0 {
		return depth, nil
	}
	return 0, errors.Errorf("unknown difficulty %q for %s, valid values are %q or a positive depth",
		difficulty, v, v.Difficulties())
}

// AIConfig returns the players configuration string for a minimax player at the given depth.
func AIConfig(depth int) string {
	return fmt.Sprintf("minimax,max_depth=%d", depth)
}
