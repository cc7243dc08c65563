package core

// RuntimeConfig contains configuration passed to games at initialization.
// Grid values are simulation inputs; ScreenW/ScreenH and CellSize only
// affect rendering.
type RuntimeConfig struct {
	GridW    int   // Board width in cells
	GridH    int   // Board height in cells
	StartX   int   // Initial head column
	StartY   int   // Initial head row
	CellSize int   // Terminal columns per board cell
	TickRate int   // Logical simulation ticks per second
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	Seed     int64 // RNG seed, must be resolved before the game is built
}

// DefaultConfig returns a RuntimeConfig for a 30x20 board at 8 ticks/s.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridW:    30,
		GridH:    20,
		StartX:   7,
		StartY:   10,
		CellSize: 2,
		TickRate: 8,
		ScreenW:  80,
		ScreenH:  24,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score seen by this process
	GameOver  bool // Whether the game has ended
}
