package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Simulation ticks per second (default 60)
	Seed      int64 // RNG seed; 0 means the platform layer picks one
	Character int   // Selected catalog index for the player sprite
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the platform-facing summary of a game.
type GameState struct {
	Score    int  // Current score
	Started  bool // False until the first start command
	GameOver bool // Whether the run has reached a terminal state
	Won      bool // Terminal state was a win (pursuit variant)
	Paused   bool // Whether the game is paused
}

// Running reports whether the platform should keep scheduling ticks.
func (s GameState) Running() bool {
	return s.Started && !s.GameOver && !s.Paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
