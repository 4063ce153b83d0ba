// Package game implements a match session: the live board of one of the game variants, turn
// sequencing (including Othello passes), difficulty and the tally of results across matches.
//
// It is the host of the searchers: it validates the moves of humans and AI players alike
// before applying them to its board.
package game

import (
	"fmt"
	"github.com/janpfeifer/minimaxGo/internal/players"
	"github.com/janpfeifer/minimaxGo/internal/state"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	ErrOutOfRange   = errors.New("position out of the board")
	ErrCellOccupied = errors.New("cell already occupied")
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameFinished = errors.New("match is finished")
)

// Move recorded in the history of a match. Pos is state.PassMove for passes.
type Move struct {
	Player state.PlayerNum
	Pos    state.Pos
}

// String implements fmt.Stringer.
func (m Move) String() string {
	return fmt.Sprintf("%s:%s", m.Player, m.Pos)
}

// Tally of the results of the matches played in a session, from the point of view of the
// human player.
type Tally struct {
	Wins, Losses, Draws int
}

// String implements fmt.Stringer.
func (t Tally) String() string {
	return fmt.Sprintf("Win: %d Lose: %d Draw: %d", t.Wins, t.Losses, t.Draws)
}

// Total number of matches in the tally.
func (t Tally) Total() int {
	return t.Wins + t.Losses + t.Draws
}

// Session holds a match being played, and the results of the previous ones.
//
// It is not safe for concurrent use.
type Session struct {
	variant    Variant
	human      state.PlayerNum
	difficulty Difficulty
	depth      int

	board    state.Board
	history  []Move
	finished bool
	tally    Tally
}

// NewSession creates a session for the given variant, with the default difficulty.
// The tally is counted from human's point of view.
func NewSession(variant Variant, human state.PlayerNum) *Session {
	s := &Session{variant: variant, human: human}
	s.difficulty = variant.DefaultDifficulty()
	s.depth, _ = variant.Depth(s.difficulty)
	s.Reset()
	return s
}

// Variant being played.
func (s *Session) Variant() Variant { return s.variant }

// Human returns the player whose point of view is used for the tally.
func (s *Session) Human() state.PlayerNum { return s.human }

// Board returns the current board. It must not be modified.
func (s *Session) Board() state.Board { return s.board }

// NextPlayer to move.
func (s *Session) NextPlayer() state.PlayerNum { return s.board.NextPlayer() }

// IsFinished returns whether the current match is over.
func (s *Session) IsFinished() bool { return s.finished }

// Tally of results so far.
func (s *Session) Tally() Tally { return s.tally }

// History of the moves of the current match, including passes.
func (s *Session) History() []Move { return s.history }

// Difficulty returns the current difficulty and the corresponding search depth.
func (s *Session) Difficulty() (Difficulty, int) { return s.difficulty, s.depth }

// SetDifficulty changes the search depth used by AIConfig. It can be changed in the middle of a match.
func (s *Session) SetDifficulty(difficulty Difficulty) error {
	depth, err := s.variant.Depth(difficulty)
	if err != nil {
		return err
	}
	s.difficulty, s.depth = difficulty, depth
	klog.V(1).Infof("difficulty set to %s (depth=%d)", difficulty, depth)
	return nil
}

// AIConfig returns the players configuration for the current difficulty.
func (s *Session) AIConfig() string {
	return AIConfig(s.depth)
}

// Reset starts a new match, keeping the tally and the difficulty.
func (s *Session) Reset() {
	s.board = s.variant.NewBoard()
	s.history = nil
	s.finished = false
}

// SetBoard replaces the current match with one starting at board, e.g. to continue an
// analysis position. Passes and end of match are handled as after any move.
func (s *Session) SetBoard(board state.Board) {
	s.board = board.Clone()
	s.history = nil
	s.finished = false
	s.advance()
}

// Result of the current match: final score and winner (state.PlayerInvalid for a draw).
// Only meaningful if the match is finished.
func (s *Session) Result() (score int, winner state.PlayerNum) {
	score = s.board.Score()
	return score, state.WinnerFromScore(score)
}

// Validate checks whether the next player can play at pos.
func (s *Session) Validate(pos state.Pos) error {
	if s.finished {
		return ErrGameFinished
	}
	rows, cols := s.board.Dims()
	if pos.Row() < 0 || int(pos.Row()) >= rows || pos.Col() < 0 || int(pos.Col()) >= cols {
		return errors.Wrapf(ErrOutOfRange, "%s on a %dx%d board", pos, rows, cols)
	}
	if s.board.Cell(pos) != state.Empty {
		return errors.Wrapf(ErrCellOccupied, "%s", pos)
	}
	for _, move := range s.board.LegalMoves(s.board.NextPlayer()) {
		if move == pos {
			return nil
		}
	}
	return errors.Wrapf(ErrIllegalMove, "%s for %s", pos, s.board.NextPlayer())
}

// Play the next player's move at pos. After the move, if the following player has no legal moves
// it automatically passes, and if neither player can move the match is finished.
func (s *Session) Play(pos state.Pos) error {
	if err := s.Validate(pos); err != nil {
		return err
	}
	player := s.board.NextPlayer()
	s.board = s.board.Act(player, pos)
	s.history = append(s.history, Move{Player: player, Pos: pos})
	s.advance()
	return nil
}

// PlayWith asks p for the next player's move and plays it.
func (s *Session) PlayWith(p players.Player) (move state.Pos, score int, err error) {
	if s.finished {
		return state.PassMove, s.board.Score(), ErrGameFinished
	}
	move, score, err = p.Play(s.board)
	if err != nil {
		return state.PassMove, score, errors.WithMessagef(err, "player %s failed", p)
	}
	if err = s.Play(move); err != nil {
		return move, score, errors.WithMessagef(err, "player %s chose an invalid move", p)
	}
	return
}

// advance checks for the end of the match and handles passes.
func (s *Session) advance() {
	if s.board.IsTerminal() {
		s.finish()
		return
	}
	player := s.board.NextPlayer()
	if len(s.board.LegalMoves(player)) > 0 {
		return
	}
	if len(s.board.LegalMoves(player.Opponent())) == 0 {
		// Nobody can move.
		s.finish()
		return
	}
	klog.V(1).Infof("%s has no legal moves and passes", player)
	s.board = s.board.Act(player, state.PassMove)
	s.history = append(s.history, Move{Player: player, Pos: state.PassMove})
}

// Passed returns whether the last move in the history was a pass.
func (s *Session) Passed() bool {
	return len(s.history) > 0 && s.history[len(s.history)-1].Pos.IsPass()
}

func (s *Session) finish() {
	s.finished = true
	score, winner := s.Result()
	switch winner {
	case s.human:
		s.tally.Wins++
	case s.human.Opponent():
		s.tally.Losses++
	default:
		s.tally.Draws++
	}
	klog.V(1).Infof("match finished: score=%d, winner=%s, tally: %s", score, winner, s.tally)
}
