// compare plays AI-vs-AI matches between two player configurations, alternating who plays first,
// and prints the results.
//
// Example:
//
//	$ go run ./cmd/compare --game=othello --config="minimax,max_depth=3" --config2="minimax,max_depth=1" --num_matches=20
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/janpfeifer/minimaxGo/internal/game"
	"github.com/janpfeifer/minimaxGo/internal/players"
	_ "github.com/janpfeifer/minimaxGo/internal/players/default"
	"github.com/janpfeifer/minimaxGo/internal/profilers"
	"github.com/janpfeifer/minimaxGo/internal/state"
	"github.com/janpfeifer/minimaxGo/internal/ui/cli"
	"github.com/janpfeifer/minimaxGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	flagGame          = flag.String("game", "tictactoe", "Game to play: tictactoe or othello.")
	flagPlayer1Config = flag.String("config", "", "1st AI configuration, e.g. \"minimax,max_depth=3\".")
	flagPlayer2Config = flag.String("config2", "", "2nd AI configuration.")
	flagNumMatches    = flag.Int("num_matches", 100, "Number of matches to play.")
	flagParallelism   = flag.Int("parallelism", 0, "If > 0 ignore GOMAXPROCS and play "+
		"these many matches simultaneously.")
	flagSeed = flag.Uint64("seed", 0, "If > 0, each AI of each match is seeded deterministically from it, "+
		"unless the configuration already sets a seed.")
	flagPrintSteps = flag.Bool("print_steps", false, "Print board at each step. "+
		"Very verbose, and you probably want to set --parallelism=1.")
)

// Globals
var (
	// globalCtx used everywhere. It is cancelled when the program is about to exit either by
	// an interrupt (ctrl+C) or by reaching the end.
	globalCtx = context.Background()
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *flagPlayer1Config == "" || *flagPlayer2Config == "" {
		klog.Fatal("You must configure both players to compare with flags --config and --config2")
	}
	variant := must.M1(game.ParseVariant(*flagGame))

	// Capture Control+C
	var globalCancel func()
	globalCtx, globalCancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(globalCancel, 5*time.Second)
	defer globalCancel()

	// Profilers: HTTP profiler server and CPU profile.
	profilers.Setup(globalCtx)
	defer profilers.OnQuit()

	// Check the configurations before starting.
	for _, config := range []string{*flagPlayer1Config, *flagPlayer2Config} {
		p, err := players.New(0, "check", state.PlayerFirst, config)
		if err != nil {
			klog.Exitf("Invalid AI configuration %q: %+v", config, err)
		}
		p.Finalize()
	}
	must.M(runMatches(globalCtx, variant, [2]string{*flagPlayer1Config, *flagPlayer2Config}))
}

// Results of the matches, from the point of view of the 2 configurations.
type Results struct {
	mu                   sync.Mutex
	start                time.Time
	winsAs1st, winsAs2nd [2]int
	draws                [2]int
	played, total        int
}

func (r *Results) String() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("Played %d of %d: ", r.played, r.total))
	for playerIdx := range 2 {
		parts = append(parts,
			fmt.Sprintf("AI-%d: %d Wins (1st: %d, 2nd: %d) / ",
				playerIdx+1, r.winsAs1st[playerIdx]+r.winsAs2nd[playerIdx],
				r.winsAs1st[playerIdx], r.winsAs2nd[playerIdx]))
	}
	parts = append(parts, fmt.Sprintf("%d draws (%d AI-1 as 1st, %d AI-2 as 1st) - ",
		r.draws[0]+r.draws[1], r.draws[0], r.draws[1]))
	parts = append(parts, time.Since(r.start).Round(time.Millisecond).String())
	parts = append(parts, "\033[0K")
	return strings.Join(parts, "")
}

// record the winner of a match, where aiFirst is the index of the configuration that played first.
func (r *Results) record(aiFirst int, winner state.PlayerNum) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if winner == state.PlayerInvalid {
		r.draws[aiFirst]++
	} else {
		aiWinner := aiFirst
		if winner == state.PlayerSecond {
			aiWinner = 1 - aiFirst
		}
		if aiWinner == aiFirst {
			r.winsAs1st[aiWinner]++
		} else {
			r.winsAs2nd[aiWinner]++
		}
	}
	r.played++
	fmt.Printf("\r%s", r)
}

func runMatches(ctx context.Context, variant game.Variant, configs [2]string) error {
	r := &Results{
		start: time.Now(),
		total: *flagNumMatches,
	}
	var wg errgroup.Group
	wg.SetLimit(getParallelism())
	fmt.Printf("\r%s", r)

	for matchIdx := range r.total {
		wg.Go(func() error {
			// Odd matches are played with the configurations swapped.
			aiFirst := matchIdx % 2
			matchConfigs := configs
			if aiFirst == 1 {
				matchConfigs[0], matchConfigs[1] = matchConfigs[1], matchConfigs[0]
			}
			winner, err := runMatch(ctx, variant, matchIdx, matchConfigs)
			if err != nil || ctx.Err() != nil {
				return err
			}
			r.record(aiFirst, winner)
			return nil
		})
	}
	err := wg.Wait()
	fmt.Printf("\r%s", r)
	fmt.Println()
	if ctx.Err() != nil {
		fmt.Printf("Interrupted: %s\n", ctx.Err())
		return nil
	}
	return err
}

var (
	stepUI   *cli.UI
	muStepUI sync.Mutex
)

// runMatch plays one match with new players created from configs, and returns the winner.
func runMatch(ctx context.Context, variant game.Variant, matchIdx int, configs [2]string) (winner state.PlayerNum, err error) {
	if ctx.Err() != nil {
		// Already interrupted.
		return state.PlayerInvalid, nil
	}
	matchName := fmt.Sprintf("Match-%05d", matchIdx)
	if klog.V(1).Enabled() {
		klog.Infof("Starting %s", matchName)
		defer klog.Infof("Finished %s", matchName)
	}
	var aiPlayers [2]players.Player
	for playerNum := range state.PlayerNum(state.NumPlayers) {
		aiPlayers[playerNum], err = players.New(uint64(matchIdx), matchName, playerNum,
			players.ConfigWithSeed(configs[playerNum], matchSeed(matchIdx, playerNum)))
		if err != nil {
			return state.PlayerInvalid, err
		}
		defer aiPlayers[playerNum].Finalize()
	}

	session := game.NewSession(variant, state.PlayerFirst)
	for !session.IsFinished() {
		if ctx.Err() != nil {
			klog.V(1).Infof("%s interrupted: %s", matchName, ctx.Err())
			return state.PlayerInvalid, nil
		}
		player := aiPlayers[session.NextPlayer()]
		move, score, err := session.PlayWith(player)
		if err != nil {
			return state.PlayerInvalid, err
		}
		if *flagPrintSteps {
			muStepUI.Lock()
			if stepUI == nil {
				stepUI = cli.New(true, false, variant.Symbols())
			}
			fmt.Printf("\n%s, move #%d: %s plays %s (score=%d)\n\n", matchName, len(session.History()), player, cli.PosName(move), score)
			stepUI.PrintBoard(session.Board(), nil)
			fmt.Println("------------------")
			muStepUI.Unlock()
		}
	}
	_, winner = session.Result()
	return winner, nil
}

// matchSeed returns the seed of the AI of playerNum in the given match, or 0 if --seed is not set.
func matchSeed(matchIdx int, playerNum state.PlayerNum) uint64 {
	if *flagSeed == 0 {
		return 0
	}
	return *flagSeed + 2*uint64(matchIdx) + uint64(playerNum)
}

// getParallelism returns the parallelism.
func getParallelism() (parallelism int) {
	parallelism = runtime.GOMAXPROCS(0)
	if *flagParallelism > 0 {
		parallelism = *flagParallelism
	}
	return
}
