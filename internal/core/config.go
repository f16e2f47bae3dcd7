package core

// RuntimeConfig contains configuration passed to the game by its host.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells (terminal) or pixels (window)
	ScreenH  int   // Screen height in cells or pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarises a game for its host after each tick.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the host has suspended ticking

	Level   int  // Environment or level reached
	Ticks   int  // Simulation ticks this run
	NewBest bool // The finished run set a new high score
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
