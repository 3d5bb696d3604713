package core

import "time"

// RuntimeConfig contains driver settings passed to a game at initialization.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickRate     int           // Driver ticks per second (default 60)
	MaxFrameTime time.Duration // Upper bound on the elapsed time handed to one tick
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickRate:     60,
		MaxFrameTime: 100 * time.Millisecond,
	}
}

// Outcome is the state of a run. It is derived every frame and never persisted.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeLost
	OutcomeWon
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run has ended. Terminal outcomes never revert.
func (o Outcome) Terminal() bool {
	return o == OutcomeLost || o == OutcomeWon
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Outcome  Outcome       // Playing, Lost or Won
	Paused   bool          // Whether the game is paused
	Elapsed  time.Duration // Simulated run time while playing
	Progress float64       // Fraction of the course covered, 0..1
}

// GameOver reports whether the run has ended either way.
func (s GameState) GameOver() bool {
	return s.Outcome.Terminal()
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
