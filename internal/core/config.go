package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState is the read-only status summary a game reports to the platform.
type GameState struct {
	Score    int    // Current score
	Lives    int    // Remaining lives
	Status   string // Status tag (e.g. "ready", "running", "over", "win")
	GameOver bool   // Whether the session has ended (lost or won)
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventBrickDestroyed EventKind = iota + 1
	EventLifeLost
	EventGameOver
	EventWin
	EventLaunch
	EventReset
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	case EventWin:
		return "win"
	case EventLaunch:
		return "launch"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is a notable outcome of a tick. ID is game-defined (e.g. a body ID).
type Event struct {
	Kind EventKind
	ID   int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
