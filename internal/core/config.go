package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level, 1-based for display
	Started  bool // Whether the first game has been started
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Cue is a presentation hint produced by a simulation tick.
// The platform decides how (or whether) to react, e.g. by ringing the bell.
type Cue int

const (
	CueMove   Cue = iota // piece moved or rotated
	CueDrop              // piece hard-dropped
	CuePoints            // cells matched
	CueFinish            // game ended
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueMove:
		return "move"
	case CueDrop:
		return "drop"
	case CuePoints:
		return "points"
	case CueFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
	Cues  []Cue
	Quit  bool // The game asked the platform to exit
}
