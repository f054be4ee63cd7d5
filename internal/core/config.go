package core

// RuntimeConfig contains configuration passed to the game by the platform.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters
	ScreenH  int // Terminal height in characters
	TickRate int // Frames per second the frontend drives (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameDelta returns the nominal seconds per frame for the tick rate.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Lives    int    // Remaining lives
	GameOver bool   // Whether the game has ended (won or lost)
	Won      bool   // Whether every exit was captured
	Paused   bool   // Whether the simulation is halted
	Status   string // Controller state name, e.g. "active"
}

// EventKind classifies something that happened during a tick.
type EventKind string

const (
	EventStart    EventKind = "start"
	EventHop      EventKind = "hop"
	EventDeath    EventKind = "death"
	EventCapture  EventKind = "capture"
	EventContinue EventKind = "continue"
	EventWin      EventKind = "win"
	EventLose     EventKind = "lose"
)

// Event is a notable transition reported by a tick.
type Event struct {
	Kind  EventKind
	Cause string // death cause, empty otherwise
	Row   int    // grid row where it happened
	Col   int    // grid column where it happened
	Lives int    // lives remaining after the event
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
