package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ballcatch/internal/core"
	"github.com/vovakirdan/ballcatch/internal/elm"
	"github.com/vovakirdan/ballcatch/internal/games/catch"
)

var (
	flagTicks   int
	flagScript  string
	flagWidth   int
	flagHeight  int
	flagVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless, deterministic game",
	Long: `Run the game without a terminal and print where it ended.

The script is played one character per tick, then the game idles:
  .  idle          l  left        r  right
  c  center        e  enter       x  escape

The run stops after --ticks ticks or when the game asks to quit.
Equal seeds, scripts and configurations give equal results.

Examples:
  ballcatch simulate --seed 7
  ballcatch simulate --ticks 600 --script e....l....r --verbose`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of ticks to run")
	simulateCmd.Flags().StringVar(&flagScript, "script", "e", "Input script, one character per tick")
	simulateCmd.Flags().IntVar(&flagWidth, "width", 80, "Screen width")
	simulateCmd.Flags().IntVar(&flagHeight, "height", 24, "Screen height")
	simulateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log at debug level")
}

// simulation is the outcome of a headless run.
type simulation struct {
	Ticks  int
	Mode   catch.Mode
	Score  int
	Caught int
	Balls  int
	Quit   bool
	Stats  elm.Stats
	Err    error
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	script, err := parseScript(flagScript)
	if err != nil {
		return err
	}

	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	catch.SetLogger(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "simulate",
		Level:           level,
	}))

	game, err := newGame(cfg)
	if err != nil {
		return err
	}
	rc := core.RuntimeConfig{
		ScreenW:  flagWidth,
		ScreenH:  flagHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	res := simulate(game, rc, script, flagTicks)
	printSimulation(cmd.OutOrStdout(), res)
	if res.Err != nil {
		return fmt.Errorf("simulation failed: %w", res.Err)
	}
	return nil
}

// simulate resets game and steps it through script, then idles.
func simulate(game *catch.Game, rc core.RuntimeConfig, script []core.InputFrame, ticks int) simulation {
	game.Reset(rc)

	var res simulation
	for res.Ticks < ticks {
		in := core.NewInputFrame()
		if res.Ticks < len(script) {
			in = script[res.Ticks]
		}
		step := game.Step(in)
		res.Ticks++
		if step.Quit {
			res.Quit = true
			break
		}
	}

	s := game.Scene()
	res.Mode = s.Mode
	res.Score = s.UI.Score
	res.Caught = s.Caught
	res.Balls = len(s.Balls)
	res.Stats = game.Stats()
	res.Err = game.Err()
	return res
}

// parseScript turns a script string into one input frame per character.
func parseScript(script string) ([]core.InputFrame, error) {
	frames := make([]core.InputFrame, 0, len(script))
	for i, r := range script {
		frame := core.NewInputFrame()
		switch r {
		case '.':
		case 'l':
			frame.Set(core.ActionLeft)
		case 'r':
			frame.Set(core.ActionRight)
		case 'c':
			frame.Set(core.ActionCenter)
		case 'e':
			frame.Set(core.ActionConfirm)
		case 'x':
			frame.Set(core.ActionBack)
		default:
			return nil, fmt.Errorf("script: unknown input %q at position %d", r, i)
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

func printSimulation(w io.Writer, s simulation) {
	fmt.Fprintf(w, "ticks:      %d\n", s.Ticks)
	fmt.Fprintf(w, "mode:       %s\n", s.Mode)
	fmt.Fprintf(w, "score:      %d\n", s.Score)
	fmt.Fprintf(w, "caught:     %d\n", s.Caught)
	fmt.Fprintf(w, "balls:      %d\n", s.Balls)
	fmt.Fprintf(w, "quit:       %t\n", s.Quit)
	fmt.Fprintf(w, "dispatches: %d\n", s.Stats.Dispatches)
	fmt.Fprintf(w, "renders:    %d\n", s.Stats.Renders)
	if s.Err != nil {
		fmt.Fprintf(w, "error:      %v\n", s.Err)
	}
}
