package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Target frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Distance travelled in whole pixels
	GameOver bool    // Whether the run has reached a verdict
	Won      bool    // Verdict was a win (only meaningful when GameOver)
	Paused   bool    // Whether the game is paused
	Elapsed  float64 // Seconds of unpaused play before the verdict
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
