package core

import "time"

// DefaultTickInterval is the fixed simulation step used when none is configured.
const DefaultTickInterval = 16 * time.Millisecond

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for deterministic simulation; screen size only affects rendering.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Fixed simulation step
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: DefaultTickInterval,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// GameState is the platform-facing summary of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Playing  bool // Whether the tick loop should be running
	GameOver bool // Whether the last run has ended
}

// Event is a bit set of things that happened during one Step.
// Hosts use it for side effects such as sound.
type Event uint8

const (
	EventStart Event = 1 << iota // A run began
	EventJump                    // The avatar flapped
	EventScore                   // At least one obstacle was cleared
	EventCrash                   // The run ended
)

// Has returns true if all bits of other are set.
func (e Event) Has(other Event) bool {
	return e&other == other
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State  GameState
	Events Event
}
