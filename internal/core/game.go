package core

// Game is the interface the platform drives once per rendered frame.
// Implementations contain pure logic with no terminal dependencies; the
// platform handles input mapping, timing, and display.
type Game interface {
	// ID returns a unique identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after a verdict.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by dt seconds of frame time.
	Step(in InputFrame, dt float64) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
