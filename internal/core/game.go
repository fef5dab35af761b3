package core

// Game is the interface the platform layers drive.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game, used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset returns the game to its title screen.
	// The RuntimeConfig provides the RNG seed for the next runs.
	Reset(cfg RuntimeConfig)

	// Step applies one input frame and, while a run is in progress,
	// advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
