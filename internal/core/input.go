package core

// Key represents a semantic key event, abstracted from physical key presses.
// Hosts map raw terminal keys to one of these through the configured bindings.
type Key int

const (
	KeyNone    Key = iota
	KeyStart       // P - start a new run from the menu or game-over screen
	KeyQuit        // Q - exit the game from the menu or game-over screen
	KeyImpulse     // Space - flap upward
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyStart:
		return "Start"
	case KeyQuit:
		return "Quit"
	case KeyImpulse:
		return "Impulse"
	default:
		return "Unknown"
	}
}

// Frame is the input delivered to the game on one rendered frame.
// At most one key is reported per frame.
type Frame struct {
	ElapsedMs float64 // Milliseconds since the previous frame
	Key       Key     // Key pressed since the previous frame, or KeyNone
}
