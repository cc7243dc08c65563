// Package config provides YAML-based configuration loading for the snake
// game: board size, start cell, tick rate and render cell size.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid     GridConfig  `yaml:"grid"`
	CellSize int         `yaml:"cell_size"` // Terminal columns per cell
	TickRate int         `yaml:"tick_rate"` // Simulation steps per second
	Start    StartConfig `yaml:"start"`
}

// GridConfig defines the board dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// StartConfig defines the initial head cell.
type StartConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Validate checks the values the simulation relies on.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return fmt.Errorf("%w: grid must be positive, got %dx%d", ErrInvalid, c.Grid.Width, c.Grid.Height)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalid, c.CellSize)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.TickRate)
	case !(core.Cell{X: c.Start.X, Y: c.Start.Y}).In(c.Grid.Width, c.Grid.Height):
		return fmt.Errorf("%w: start (%d,%d) outside %dx%d grid", ErrInvalid, c.Start.X, c.Start.Y, c.Grid.Width, c.Grid.Height)
	case c.Start.X < 1:
		// The first body segment is placed at start.x-1 without wrapping.
		return fmt.Errorf("%w: start.x must be at least 1, got %d", ErrInvalid, c.Start.X)
	}
	return nil
}

// ToRuntime converts the configuration into the runtime config handed to
// games. The seed must already be resolved.
func (c SnakeConfig) ToRuntime(seed int64, screenW, screenH int) core.RuntimeConfig {
	return core.RuntimeConfig{
		GridW:    c.Grid.Width,
		GridH:    c.Grid.Height,
		StartX:   c.Start.X,
		StartY:   c.Start.Y,
		CellSize: c.CellSize,
		TickRate: c.TickRate,
		ScreenW:  screenW,
		ScreenH:  screenH,
		Seed:     seed,
	}
}
