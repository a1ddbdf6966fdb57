package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	TickPeriod time.Duration // Simulation tick period (default 100ms)
	Seed       int64         // RNG seed for deterministic gameplay
	PlayerName string        // Name recorded on the leaderboard
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickPeriod: 100 * time.Millisecond,
		Seed:       0, // 0 means use current time in platform layer
		PlayerName: "Anonymous",
	}
}

// Cue is a fire-and-forget sound event raised by the simulation.
type Cue int

const (
	CueNone Cue = iota
	CueCollision
	CueDelivery
	CueRefuel
)

// String returns a human-readable cue name.
func (c Cue) String() string {
	switch c {
	case CueCollision:
		return "collision"
	case CueDelivery:
		return "delivery"
	case CueRefuel:
		return "refuel"
	default:
		return "none"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended in a win
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue // Sound cues raised during this step
}

// RoundReport summarises a finished round for history storage.
type RoundReport struct {
	Role       string
	Outcome    string
	Score      int
	Duration   time.Duration
	Deliveries int
}
