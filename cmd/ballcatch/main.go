// ballcatch is a terminal ball-and-paddle game: catch the falling balls
// with a bar that stands in one of three columns.
//
// Usage:
//
//	ballcatch                - Play (same as "ballcatch play")
//	ballcatch play           - Play in the terminal
//	ballcatch simulate       - Run a headless, deterministic game
//	ballcatch config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Custom configuration YAML
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
//	--max-renders <n>   - Renders allowed per dispatch
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ballcatch/internal/config"
	"github.com/vovakirdan/ballcatch/internal/games/catch"
	"github.com/vovakirdan/ballcatch/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagMaxRenders int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ballcatch",
	Short: "Ball Catch - catch falling balls in your terminal",
	Long: `Ball Catch drops balls down three columns. Move the bar under them
before they leave the field.

Available commands:
  play      - Play in the terminal (default)
  simulate  - Headless deterministic run
  config    - Print the effective configuration

Examples:
  ballcatch
  ballcatch play --difficulty hard
  ballcatch simulate --seed 42 --ticks 3000 --script e..l..r
  ballcatch config > ~/.ballcatch/configs/catch.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (play: 0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagMaxRenders, "max-renders", 0, "Renders allowed per dispatch (0 = from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration from the global flags.
func loadConfig() (config.CatchConfig, error) {
	path, err := config.ExpandHome(flagConfig)
	if err != nil {
		return config.CatchConfig{}, err
	}
	cfg, err := config.LoadCatch(path)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyCatchPreset(&cfg, preset)

	if flagMaxRenders != 0 {
		cfg.Runtime.MaxRenders = flagMaxRenders
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newGame creates the game through the registry with cfg applied.
func newGame(cfg config.CatchConfig) (*catch.Game, error) {
	catch.SetConfig(cfg)
	g, err := registry.Create(catch.ID)
	if err != nil {
		return nil, err
	}
	game, ok := g.(*catch.Game)
	if !ok {
		return nil, fmt.Errorf("game %q has unexpected type %T", catch.ID, g)
	}
	return game, nil
}
