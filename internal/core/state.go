package core

// Mode is the top-level state of the game.
type Mode int

const (
	ModeMenu    Mode = iota // Title screen, waiting for start or quit
	ModePlaying             // A run is in progress
	ModeEnd                 // Game over screen, or quitting
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeEnd:
		return "end"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Mode  Mode // Current mode
	Score int  // Obstacles passed in the current or last run
}

// StepResult is returned by Game.Tick() after each rendered frame.
type StepResult struct {
	State GameState
	Quit  bool // The game asked the host to terminate
}
