package players

import (
	"fmt"
	"github.com/janpfeifer/minimaxGo/internal/searchers"
	"github.com/janpfeifer/minimaxGo/internal/state"
	"k8s.io/klog/v2"
)

// SearcherPlayer is the standard set up for an AI: it simply plays what its searchers.Searcher suggests.
// It implements the Player interface.
type SearcherPlayer struct {
	Searcher  searchers.Searcher
	Name      string
	MatchName string
	PlayerNum state.PlayerNum

	moveNumber int
}

// NewSearcherPlayer returns a Player that uses searcher to play as playerNum.
func NewSearcherPlayer(searcher searchers.Searcher, name, matchName string, playerNum state.PlayerNum) *SearcherPlayer {
	return &SearcherPlayer{Searcher: searcher, Name: name, MatchName: matchName, PlayerNum: playerNum}
}

// Assert that SearcherPlayer is a Player.
var _ Player = &SearcherPlayer{}

// Play implements the Player interface: it chooses a move for the board's next player.
func (p *SearcherPlayer) Play(board state.Board) (move state.Pos, score int, err error) {
	player := board.NextPlayer()
	if player != p.PlayerNum {
		klog.Warningf("%s: %s playing for %s", p.MatchName, p, player)
	}
	move, score, _, err = p.Searcher.Search(board, player)
	if err != nil {
		return
	}
	p.moveNumber++
	if klog.V(1).Enabled() {
		klog.Infof("%s: move #%d: AI (%s) playing %s, score=%d", p.MatchName, p.moveNumber, p, move, score)
	}
	return
}

// Finalize is called at the end of a match.
func (p *SearcherPlayer) Finalize() {
	if klog.V(1).Enabled() {
		klog.Infof("%s: player %s finalized after %d moves", p.MatchName, p, p.moveNumber)
	}
	p.Searcher = nil
}

// String implements fmt.Stringer and Player.
func (p *SearcherPlayer) String() string {
	return fmt.Sprintf("%s[%s]", p.Name, p.PlayerNum)
}
