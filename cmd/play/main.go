// play is a terminal front-end to play Tic-Tac-Toe or Othello against the minimax AI,
// against another human (--hotseat) or to watch two AIs playing (--watch).
//
// Settings can also be given in a YAML file (--config_file) or with MINIMAX_* environment
// variables: flags explicitly set take precedence.
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/janpfeifer/minimaxGo/internal/config"
	"github.com/janpfeifer/minimaxGo/internal/game"
	"github.com/janpfeifer/minimaxGo/internal/players"
	_ "github.com/janpfeifer/minimaxGo/internal/players/default"
	"github.com/janpfeifer/minimaxGo/internal/profilers"
	"github.com/janpfeifer/minimaxGo/internal/state"
	"github.com/janpfeifer/minimaxGo/internal/ui/cli"
	"github.com/janpfeifer/minimaxGo/internal/ui/spinning"
	"github.com/pkg/errors"
	"io"
	"k8s.io/klog/v2"
	"math/rand/v2"
	"os"
	"time"
)

var (
	flagConfigFile = flag.String("config_file", "", "YAML file with the settings. MINIMAX_* environment variables override it.")
	flagGame       = flag.String("game", "tictactoe", "Game to play: tictactoe or othello.")
	flagDifficulty = flag.String("difficulty", "", "AI difficulty: easy, medium (othello only), hard or a search depth. "+
		"The default is hard for tictactoe and easy for othello.")
	flagAIConfig  = flag.String("config", "", "AI configuration against which to play, e.g. \"minimax,max_depth=4,randomness=0.5\". It overrides --difficulty.")
	flagAIConfig2 = flag.String("config2", "", "Second AI configuration, if playing AI vs AI with --watch. Defaults to --config.")
	flagFirst     = flag.String("first", "human", "Who plays first: human, ai or random.")
	flagHotseat   = flag.Bool("hotseat", false, "Hotseat match: human vs human.")
	flagWatch     = flag.Bool("watch", false, "Watch mode: AI vs AI playing.")
	flagSeed      = flag.Uint64("seed", 0, "Seed for the AI players. 0 means random.")
	flagNoColor   = flag.Bool("no_color", false, "Disable colors in the terminal.")
	flagClear     = flag.Bool("clear", false, "Clear the screen before printing the board.")

	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Usage = func() {
		_, _ = fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(flag.CommandLine.Output(), "\n%s", config.Usage())
	}
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		klog.Exitf("Failed to configure: %+v", err)
	}

	// Capture Control+C
	var cancel func()
	globalCtx, cancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	profilers.Setup(globalCtx)
	defer profilers.OnQuit()

	m, err := newMatch(cfg)
	if err != nil {
		klog.Exitf("Failed to start: %+v", err)
	}
	if err = m.run(); err != nil && !errors.Is(err, io.EOF) {
		klog.Exitf("Failed to run match: %+v", err)
	}
	spinning.Reset()
}

// loadConfig from --config_file and the environment, and overrides it with the flags explicitly set.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*flagConfigFile)
	if err != nil {
		return nil, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "game":
			cfg.Game = *flagGame
		case "difficulty":
			cfg.Difficulty = *flagDifficulty
		case "config":
			cfg.AIConfig = *flagAIConfig
		case "first":
			cfg.First = *flagFirst
		case "seed":
			cfg.Seed = *flagSeed
		case "no_color":
			cfg.NoColor = *flagNoColor
		}
	})
	if err = cfg.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid flags")
	}
	return cfg, nil
}

// match holds the front-end state.
type match struct {
	cfg     *config.Config
	session *game.Session
	ui      *cli.UI

	// aiPlayers: if nil, it's a human playing.
	aiPlayers [2]players.Player
	matchId   uint64
}

func newMatch(cfg *config.Config) (*match, error) {
	if *flagHotseat && *flagWatch {
		return nil, errors.New("--hotseat and --watch cannot be used together")
	}
	variant := cfg.Variant()
	human := state.PlayerFirst
	switch cfg.First {
	case config.FirstAI:
		human = state.PlayerSecond
	case config.FirstRandom:
		human = state.PlayerNum(rand.IntN(2))
	}
	m := &match{
		cfg:     cfg,
		session: game.NewSession(variant, human),
		ui:      cli.New(!cfg.NoColor, *flagClear, variant.Symbols()),
	}
	if cfg.Difficulty != "" {
		if err := m.session.SetDifficulty(game.Difficulty(cfg.Difficulty)); err != nil {
			return nil, err
		}
	}
	if err := m.createPlayers(); err != nil {
		return nil, err
	}
	return m, nil
}

// aiConfig returns the configuration of the AI: the explicit one if given, otherwise the one
// for the current difficulty.
func (m *match) aiConfig(configOverride string) string {
	if configOverride != "" {
		return configOverride
	}
	if m.cfg.AIConfig != "" {
		return m.cfg.AIConfig
	}
	return m.session.AIConfig()
}

// createPlayers (or re-create) the AI players.
func (m *match) createPlayers() (err error) {
	for playerNum, p := range m.aiPlayers {
		if p != nil {
			p.Finalize()
			m.aiPlayers[playerNum] = nil
		}
	}
	if *flagHotseat {
		// Both players are human, nothing to do.
		return nil
	}
	matchName := fmt.Sprintf("match-%d", m.matchId)
	aiPlayerNum := m.session.Human().Opponent()
	if *flagWatch {
		aiPlayerNum = state.PlayerFirst
	}
	m.aiPlayers[aiPlayerNum], err = players.New(m.matchId, matchName, aiPlayerNum,
		players.ConfigWithSeed(m.aiConfig(""), m.cfg.Seed))
	if err != nil || !*flagWatch {
		return
	}

	// Second AI.
	seed2 := m.cfg.Seed
	if seed2 != 0 {
		seed2++
	}
	otherPlayerNum := aiPlayerNum.Opponent()
	m.aiPlayers[otherPlayerNum], err = players.New(m.matchId, matchName, otherPlayerNum,
		players.ConfigWithSeed(m.aiConfig(*flagAIConfig2), seed2))
	return
}

// run the match loop until the user quits, or the end of the match when watching.
func (m *match) run() error {
	for {
		if globalCtx.Err() != nil {
			return nil
		}
		if m.session.IsFinished() {
			m.ui.Print(m.session, nil)
			m.ui.PrintWinner(m.session)
			if *flagWatch {
				return nil
			}
			fmt.Println("    Type \"reset\" to play again, or \"quit\".")
		} else if aiPlayer := m.aiPlayers[m.session.NextPlayer()]; aiPlayer != nil {
			if err := m.playAI(aiPlayer); err != nil {
				return err
			}
			continue
		}

		b := m.session.Board()
		var legalMoves []state.Pos
		if !m.session.IsFinished() {
			legalMoves = b.LegalMoves(b.NextPlayer())
			m.ui.Print(m.session, legalMoves)
			fmt.Println()
		}
		cmd, err := m.ui.ReadCommand(b)
		if errors.Is(err, cli.ErrTooManyParsingErrors) {
			m.ui.PrintHelp()
			continue
		}
		if err != nil {
			return err
		}
		switch cmd.Type {
		case cli.CommandQuit:
			return nil
		case cli.CommandReset:
			m.session.Reset()
			m.matchId++
			if err = m.createPlayers(); err != nil {
				return err
			}
		case cli.CommandDifficulty:
			if err = m.session.SetDifficulty(cmd.Difficulty); err != nil {
				fmt.Printf("    * %v\n", err)
				continue
			}
			if m.cfg.AIConfig == "" {
				if err = m.createPlayers(); err != nil {
					return err
				}
			}
		case cli.CommandMove:
			player := b.NextPlayer()
			if err = m.session.Play(cmd.Pos); err != nil {
				fmt.Printf("    * %s can't play at %s: %v\n", player, cli.PosName(cmd.Pos), err)
				continue
			}
			m.printPass()
		}
	}
}

// playAI plays the AI's move, with a spinner while it thinks.
func (m *match) playAI(aiPlayer players.Player) error {
	b := m.session.Board()
	if *flagWatch {
		m.ui.Print(m.session, nil)
	}
	fmt.Printf("\tAI %s: ", aiPlayer)
	s := spinning.New(globalCtx)
	move, score, err := m.session.PlayWith(aiPlayer)
	s.Done()
	if err != nil {
		fmt.Println()
		return errors.WithMessagef(err, "AI failed to play on board:\n%s", b)
	}
	fmt.Printf(" %s (score=%d)\n", cli.PosName(move), score)
	m.printPass()
	return nil
}

func (m *match) printPass() {
	if m.session.Passed() && !m.session.IsFinished() {
		history := m.session.History()
		m.ui.PrintPass(history[len(history)-1].Player)
	}
}
