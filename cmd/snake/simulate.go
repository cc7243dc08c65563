package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

var (
	flagKeys   string
	flagTicks  int
	flagRender bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless scripted session",
	Long: `Replays a key script without a terminal UI and prints the final state.

Each script rune is fed before one tick: U, D, L, R steer and any other
rune (for example '.') sends nothing. Ticks beyond the script run without
input. Combine with --seed to reproduce a session exactly.

Examples:
  snake simulate --seed 42 --keys "..DD..LL" --ticks 30
  snake simulate --seed 42 --ticks 100 --render`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagKeys, "keys", "", "Key script, one rune per tick (U/D/L/R, '.' = none)")
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Ticks to run (default: length of --keys)")
	simulateCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final board")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
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

	ticks := flagTicks
	if ticks <= 0 {
		ticks = len([]rune(flagKeys))
	}

	simulate(cmd.OutOrStdout(), snakeCfg, seed, core.ParseKeys(flagKeys), ticks, flagRender)
	return nil
}

// simulate runs a session for the given number of ticks, feeding at most
// one key before each tick, and writes the final state to w.
func simulate(w io.Writer, sc config.SnakeConfig, seed int64, keys []core.Key, ticks int, render bool) snake.Snapshot {
	cellW := max(1, sc.CellSize)
	cfg := sc.ToRuntime(seed, sc.Grid.Width*cellW, sc.Grid.Height+2)
	game := snake.New(cfg)

	for i := range ticks {
		if i < len(keys) {
			game.HandleInput(keys[i])
		}
		game.Tick()
	}

	fmt.Fprintf(w, "Seed: %d\n", seed)
	fmt.Fprint(w, game.DebugState())
	if render {
		screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
		game.Render(screen)
		fmt.Fprintln(w, screen.String())
	}
	return game.Snapshot()
}
