package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ballcatch/internal/config"
	"github.com/vovakirdan/ballcatch/internal/core"
	"github.com/vovakirdan/ballcatch/internal/games/catch"
	"github.com/vovakirdan/ballcatch/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Ball Catch in full-screen mode.

Controls:
  Left/H/A     - Move the bar one column left
  Right/L/D    - Move the bar one column right
  Down/J/S     - Put the bar back in the middle
  Enter/Space  - Start, resume, restart after game over
  Esc          - Pause; leave when paused or after game over
  Ctrl+S       - Save a text screenshot
  ?            - Show all keys
  Q/Ctrl+C     - Quit
  Mouse click  - Click the status banner to start or resume

Difficulty options:
  easy   - Slower balls, a wider bar, starts at the lowest difficulty
  normal - Start at 30% difficulty, progresses to max
  hard   - Faster balls, a narrower bar, starts at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  ballcatch play
  ballcatch play --difficulty easy
  ballcatch play --config ./my-catch.yaml --log-file ~/.ballcatch/play.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLog(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	catch.SetLogger(logger)

	game, err := newGame(cfg)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if err := tui.Run(game, rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openLog returns a file logger, or a discarding one for an empty path.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "ballcatch",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
