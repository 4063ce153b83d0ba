// Package cli implements a command-line UI for the games.
package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/minimaxGo/internal/game"
	"github.com/janpfeifer/minimaxGo/internal/generics"
	"github.com/janpfeifer/minimaxGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return len([]rune(ansiFilter.ReplaceAllString(s, "")))
}

// terminalWidth returns the width of the terminal, or 0 if out is not a terminal.
func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func (ui *UI) printCentered(block string) {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	blockWidth := 0
	for _, line := range lines {
		blockWidth = max(blockWidth, displayWidth(line))
	}
	indent := max((terminalWidth(ui.out)-blockWidth)/2, 0)
	for _, line := range lines {
		if len(line) == 0 {
			_, _ = fmt.Fprintln(ui.out)
			continue
		}
		_, _ = fmt.Fprintf(ui.out, "%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// UI renders boards and reads the commands of human players.
type UI struct {
	color, clearScreen bool
	symbols            [3]string
	reader             *bufio.Reader
	out                io.Writer
}

// New creates a UI reading from stdin and writing to stdout. symbols are used to display the
// empty cells and the pieces of each player.
func New(color, clearScreen bool, symbols [3]string) *UI {
	return &UI{
		color:       color,
		clearScreen: clearScreen,
		symbols:     symbols,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}
}

// WithIO changes where the UI reads commands from and writes to.
func (ui *UI) WithIO(in io.Reader, out io.Writer) *UI {
	ui.reader = bufio.NewReader(in)
	ui.out = out
	return ui
}

var (
	letterMoveParser = regexp.MustCompile(`^([a-z])[\s,]*(\d+)$`)
	numberMoveParser = regexp.MustCompile(`^(\d+)[\s,]+(\d+)$`)
)

// ParseMove converts the text typed by the user to a position in a board with the given dimensions.
//
// It accepts a column letter followed by a 1-based row number ("c4"), or the 1-based row and
// column numbers separated by spaces or a comma ("4 3").
func ParseMove(text string, rows, cols int) (pos state.Pos, err error) {
	text = strings.ToLower(strings.TrimSpace(text))
	var row, col int
	if matches := letterMoveParser.FindStringSubmatch(text); len(matches) == 3 {
		col = int(matches[1][0]-'a') + 1
		row, err = strconv.Atoi(matches[2])
	} else if matches = numberMoveParser.FindStringSubmatch(text); len(matches) == 3 {
		row, err = strconv.Atoi(matches[1])
		if err == nil {
			col, err = strconv.Atoi(matches[2])
		}
	} else {
		return state.PassMove, errors.Errorf("can't parse %q as a position: use a column letter and a row number (\"b3\"), or the row and column numbers (\"3 2\")", text)
	}
	if err != nil {
		return state.PassMove, errors.Wrapf(err, "can't parse %q as a position", text)
	}
	if row < 1 || row > rows || col < 1 || col > cols {
		return state.PassMove, errors.Wrapf(game.ErrOutOfRange, "%q is not in the %dx%d board", text, rows, cols)
	}
	return state.Pos{int8(row - 1), int8(col - 1)}, nil
}

// PosName returns the position in the "c4" notation accepted by ParseMove.
func PosName(pos state.Pos) string {
	if pos.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("%c%d", 'a'+rune(pos.Col()), pos.Row()+1)
}

// CommandType enumerates the commands a human player can give.
type CommandType int

const (
	CommandMove CommandType = iota
	CommandReset
	CommandDifficulty
	CommandQuit
)

// Command read from the user.
type Command struct {
	Type CommandType

	// Pos is set for CommandMove.
	Pos state.Pos

	// Difficulty is set for CommandDifficulty.
	Difficulty game.Difficulty
}

// ErrTooManyParsingErrors is returned by ReadCommand when the user fails to type a valid command 3 times.
var ErrTooManyParsingErrors = errors.New("failed to read command 3 times")

// ReadCommand reads a command for the next player of the board.
//
// Legality of the moves is not checked: it's left for game.Session.
func (ui *UI) ReadCommand(b state.Board) (cmd Command, err error) {
	// ANSI escape codes for:
	// - \033[30;45;2m: black over magenta, dim.
	// - \033[39;49;0m\033[0K: reset colors and clear to the end-of-line.
	const (
		inputAreaColor = "\033[30;45;2m"
		inputAreaReset = "\033[39;49;0m\033[0K"
		inputWidth     = 8
	)
	rows, cols := b.Dims()
	for numErrs := 0; numErrs < 3; numErrs++ {
		_, _ = fmt.Fprint(ui.out, "    ")
		ui.PrintPlayer(b.NextPlayer())
		_, _ = fmt.Fprint(ui.out, " move > ")
		if ui.color {
			// Print "input area" in purple, and move the cursor back to the beginning of the input area.
			_, _ = fmt.Fprintf(ui.out, "%s%s\033[%dD", inputAreaColor, strings.Repeat(" ", inputWidth), inputWidth-1)
		}

		var text string
		text, err = ui.reader.ReadString('\n')
		if ui.color {
			_, _ = fmt.Fprint(ui.out, inputAreaReset)
		}
		if err != nil && (err != io.EOF || strings.TrimSpace(text) == "") {
			return
		}
		err = nil
		text = strings.ToLower(strings.TrimSpace(text))
		switch text {
		case "":
			numErrs--
			continue
		case "q", "quit", "exit":
			return Command{Type: CommandQuit}, nil
		case "r", "reset", "restart":
			return Command{Type: CommandReset}, nil
		case string(game.Easy), string(game.Medium), string(game.Hard):
			return Command{Type: CommandDifficulty, Difficulty: game.Difficulty(text)}, nil
		case "h", "help", "?":
			ui.PrintHelp()
			numErrs--
			continue
		}
		var pos state.Pos
		pos, err = ParseMove(text, rows, cols)
		if err != nil {
			_, _ = fmt.Fprintf(ui.out, "    * %v\n", err)
			continue
		}
		return Command{Type: CommandMove, Pos: pos}, nil
	}
	err = ErrTooManyParsingErrors
	return
}

// PrintHelp lists the commands accepted by ReadCommand.
func (ui *UI) PrintHelp() {
	_, _ = fmt.Fprint(ui.out, `    Commands:
      - "b3" or "3 2": play at row 3, column 2.
      - "easy", "medium" or "hard": change the AI difficulty.
      - "reset": restart the match.
      - "quit": leave.
`)
}

// Print the board and whose turn it is. If legalMoves is given, they are marked on the board and listed.
func (ui *UI) Print(s *game.Session, legalMoves []state.Pos) {
	if ui.clearScreen {
		_, _ = fmt.Fprint(ui.out, "\033c")
	}
	b := s.Board()
	difficulty, depth := s.Difficulty()
	_, _ = fmt.Fprintf(ui.out, "\n%s - move #%d - difficulty %s (depth %d) - %s\n\n",
		s.Variant(), len(s.History())+1, difficulty, depth, s.Tally())
	ui.PrintBoard(b, legalMoves)
	_, _ = fmt.Fprintln(ui.out)
	if s.IsFinished() {
		return
	}
	_, _ = fmt.Fprint(ui.out, "\tTurn to play: ")
	ui.PrintPlayer(b.NextPlayer())
	_, _ = fmt.Fprintf(ui.out, " (score %d)\n", b.Score())
	if len(legalMoves) > 0 {
		_, _ = fmt.Fprintf(ui.out, "\tValid moves: %s\n", strings.Join(PosNames(legalMoves), ", "))
	}
}

// PosNames converts each position to its PosName.
func PosNames(poss []state.Pos) []string {
	return generics.SliceMap(poss, PosName)
}

// PrintBoard prints the board centered in the terminal.
func (ui *UI) PrintBoard(b state.Board, legalMoves []state.Pos) {
	ui.printCentered(ui.RenderBoard(b, legalMoves))
}

// RenderBoard returns the board with column letters on top and row numbers on the left.
// Legal moves are marked with "*".
func (ui *UI) RenderBoard(b state.Board, legalMoves []state.Pos) string {
	var buf bytes.Buffer
	rows, cols := b.Dims()
	legal := generics.SetWith(legalMoves...)
	buf.WriteString("   ")
	for col := range cols {
		_, _ = fmt.Fprintf(&buf, " %c", 'a'+rune(col))
	}
	buf.WriteString("\n")
	for row := range rows {
		_, _ = fmt.Fprintf(&buf, "%2d ", row+1)
		for col := range cols {
			pos := state.Pos{int8(row), int8(col)}
			buf.WriteString(" ")
			cell := b.Cell(pos)
			switch {
			case cell != state.Empty:
				buf.WriteString(ui.colorStart(cell.Owner()) + ui.symbols[cell] + ui.colorEnd())
			case legal.Has(pos):
				buf.WriteString("*")
			default:
				buf.WriteString(ui.symbols[state.Empty])
			}
		}
		buf.WriteString("\n")
	}
	return buf.String()
}

// PrintPlayer prints the player's name along with its symbol.
func (ui *UI) PrintPlayer(player state.PlayerNum) {
	_, _ = fmt.Fprintf(ui.out, "%s%s Player (%s)%s", ui.colorStart(player), player, ui.symbols[state.CellOf(player)], ui.colorEnd())
}

// PrintPass informs that player had no legal moves and passed.
func (ui *UI) PrintPass(player state.PlayerNum) {
	_, _ = fmt.Fprintln(ui.out)
	ui.PrintPlayer(player)
	_, _ = fmt.Fprintln(ui.out, " has no valid moves, passing.")
}

// PrintWinner prints the result of a finished match.
func (ui *UI) PrintWinner(s *game.Session) {
	score, winner := s.Result()
	_, _ = fmt.Fprintln(ui.out)
	style := lipgloss.NewStyle().Padding(1, 2)
	var msg string
	if winner == state.PlayerInvalid {
		msg = fmt.Sprintf("*** DRAW (score %d) ***", score)
		if ui.color {
			style = style.Background(lipgloss.Color("13")).Foreground(lipgloss.Color("0"))
		}
	} else {
		msg = fmt.Sprintf("*** %s PLAYER (%s) WINS!! (score %d) ***",
			strings.ToUpper(winner.String()), ui.symbols[state.CellOf(winner)], score)
		if ui.color {
			style = style.Background(lipgloss.Color(playerColors[winner])).Foreground(lipgloss.Color("0"))
		}
	}
	ui.printCentered(style.Render(msg))
	_, _ = fmt.Fprintln(ui.out)
	ui.PrintTally(s.Tally())
}

// PrintTally prints the results so far.
func (ui *UI) PrintTally(tally game.Tally) {
	style := lipgloss.NewStyle().Bold(ui.color)
	ui.printCentered(style.Render(tally.String()))
}

// playerColors are the ANSI colors for the background of each player.
var playerColors = [2]string{"1", "2"}

func (ui *UI) colorStart(player state.PlayerNum) string {
	if !ui.color || !player.IsValid() {
		return ""
	}
	return fmt.Sprintf("\033[30;4%s;1m", playerColors[player])
}

func (ui *UI) colorEnd() string {
	if !ui.color {
		return ""
	}
	return "\033[39;49;0m"
}
