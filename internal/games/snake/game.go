package snake

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

// BackgroundColor is the color of empty board cells.
const BackgroundColor = core.ColorGreen

// Game owns one snake session: the snake, the food, the RNG and the
// score counters. All methods are meant to be called from a single loop.
type Game struct {
	cfg       core.RuntimeConfig
	rng       core.RNG
	snake     *Snake
	food      Food
	tick      uint64
	score     int
	highScore int
	gameOver  bool
}

func init() {
	registry.Register("snake", "Snake", func(cfg core.RuntimeConfig) registry.Game {
		return New(cfg)
	})
}

// New creates a game seeded from cfg.Seed and places the snake and food.
func New(cfg core.RuntimeConfig) *Game {
	return newWithRNG(cfg, rand.New(rand.NewSource(uint64(cfg.Seed))))
}

func newWithRNG(cfg core.RuntimeConfig, rng core.RNG) *Game {
	g := &Game{
		cfg: cfg,
		rng: rng,
	}
	g.Reset()
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset starts a new session. The high score and the RNG stream carry over.
func (g *Game) Reset() {
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.snake = NewSnake(core.Cell{X: g.cfg.StartX, Y: g.cfg.StartY}, g.cfg.GridW, g.cfg.GridH)
	g.food = NewFood(core.RandomCell(g.rng, g.cfg.GridW, g.cfg.GridH))
}

// Tick advances the simulation by one step. It does nothing once the
// game is over.
func (g *Game) Tick() {
	if g.gameOver {
		return
	}
	g.tick++

	switch g.snake.Advance(g.food) {
	case OutcomeAteFood:
		g.food.Relocate(g.rng, g.cfg.GridW, g.cfg.GridH)
		g.score++
		g.raiseHighScore()
	case OutcomeAteSelf:
		g.gameOver = true
		g.raiseHighScore()
	}
}

func (g *Game) raiseHighScore() {
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

// HandleInput forwards direction keys to the snake and ignores the rest.
// Input after game over is dropped so the final state stays frozen.
func (g *Game) HandleInput(k core.Key) {
	if g.gameOver {
		return
	}
	if dir, ok := core.DirectionFromKey(k); ok {
		g.snake.SetPendingDirection(dir)
	}
}

// Head returns the snake's head cell.
func (g *Game) Head() core.Cell {
	return g.snake.Head()
}

// Body returns the snake's body cells, front to back.
func (g *Game) Body() []core.Cell {
	return g.snake.Body()
}

// Food returns the food cell.
func (g *Game) Food() core.Cell {
	return g.food.Cell()
}

// Score returns the current session score.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score since the process started.
func (g *Game) HighScore() int {
	return g.highScore
}

// GameOver reports whether the snake has run into itself.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Ticks returns how many steps ran in the current session.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// Hints returns every colored board cell: snake body, head, then food.
func (g *Game) Hints() []RenderHint {
	return append(g.snake.Hints(), g.food.Hint())
}

// Background returns the color of empty board cells.
func (g *Game) Background() core.Color {
	return BackgroundColor
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		GameOver:  g.gameOver,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	head := g.snake.Head()
	food := g.food.Cell()
	fmt.Fprintf(&b, "Tick: %d, Score: %d, High: %d\n", g.tick, g.score, g.highScore)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Last: %s\n", g.snake.Len(), g.snake.Direction(), g.snake.LastDirection())
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", head.X, head.Y, food.X, food.Y)
	fmt.Fprintf(&b, "Outcome: %s, GameOver: %v\n", g.snake.Outcome(), g.gameOver)
	return b.String()
}
