package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

var (
	flagFPS     int
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: snake).

Controls:
  Arrows/WASD  - Steer
  P/Esc        - Pause
  R            - Restart (after game over)
  ?            - Toggle key help
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --fps 30 --log ./snake.log
  snake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", tui.DefaultFPS, "Frames rendered per second")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write session logs to this file")
}

// runTUI is the terminal runner, replaced in tests.
var runTUI = tui.Run

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "snake"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("%w %q, run 'snake list' to see available games", registry.ErrUnknownGame, gameID)
	}

	// The alternate screen owns the terminal, so logs only go to --log.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	snakeCfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	seed, err := resolveSeed()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := snakeCfg.ToRuntime(seed, width, height)

	game, err := registry.Create(gameID, cfg)
	if err != nil {
		return err
	}

	if err := runTUI(game, cfg, tui.Options{FPS: flagFPS, Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
