package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	HighScore int
	SnakeLen  int
	Head      core.Cell
	Tail      core.Cell
	Dir       core.Direction
	LastDir   core.Direction
	Pending   Pending
	Outcome   Outcome
	Food      core.Cell
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.gameOver {
		state = StateGameOver
	}

	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		HighScore: g.highScore,
		SnakeLen:  g.snake.Len(),
		Head:      g.snake.Head(),
		Tail:      g.snake.body.Back(),
		Dir:       g.snake.Direction(),
		LastDir:   g.snake.LastDirection(),
		Pending:   g.snake.Pending(),
		Outcome:   g.snake.Outcome(),
		Food:      g.food.Cell(),
		State:     state,
	}
}
