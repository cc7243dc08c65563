// snake is a terminal snake game on a wrapping grid.
//
// Usage:
//
//	snake play [game]        - Play a game (default: snake)
//	snake list               - List available games
//	snake config             - Print the effective configuration
//	snake simulate           - Run a headless scripted session
//
// Global flags:
//
//	--config <path>     - Path to a snake.yaml config file
//	--seed <value>      - RNG seed for reproducible gameplay (0 = OS entropy)
//	--log-level <name>  - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/gridsnake/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a wrapping grid snake game for your terminal",
	Long: `Snake runs the classic game on a toroidal grid: leaving one edge
re-enters on the opposite side, and only running into yourself ends the game.

Available commands:
  play      - Play the game
  list      - Show all available games
  config    - Print the effective configuration as YAML
  simulate  - Replay a key script headlessly and print the final state

Examples:
  snake play
  snake play --seed 42 --fps 30
  snake config --config ./configs/snake.yaml
  snake simulate --seed 7 --keys "RRDDLL" --ticks 20`,
	SilenceUsage:  true,
	SilenceErrors: true, // main prints the error once
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random from OS entropy)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	}), nil
}

// loadConfig loads the snake config from --config or the default search path.
func loadConfig(logger *log.Logger) (config.SnakeConfig, error) {
	cfg, source, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}

// resolveSeed returns --seed, or a fresh seed from the OS when it is 0.
func resolveSeed() (int64, error) {
	if flagSeed != 0 {
		return flagSeed, nil
	}
	return core.NewSeed()
}
