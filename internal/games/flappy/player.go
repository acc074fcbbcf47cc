package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Physics constants, applied once per fixed step in single precision
const (
	Gravity          = 0.2  // Downward acceleration per step
	TerminalVelocity = 2.0  // Gravity is only applied while below this speed
	FlyVelocity      = -2.0 // Velocity set by an impulse (negative = up)
)

// Player start position for every run
const (
	StartX = 0
	StartY = 25
)

// Visual style of the player
const (
	PlayerChar = '@'
	PlayerFG   = core.ColorYellow
	PlayerBG   = core.ColorBlue
)

// Player is the sprite the user steers through the obstacles.
type Player struct {
	X        int     // Distance travelled since the run started
	Y        int     // Rendered row, the truncated YReal
	YReal    float32 // Authoritative vertical position
	Velocity float32 // Vertical speed (positive = down)
}

// NewPlayer creates a player at rest at (x, y).
func NewPlayer(x, y int) Player {
	return Player{
		X:     x,
		Y:     y,
		YReal: float32(y),
	}
}

// Update advances the player by one fixed step: gravity, fall, forward.
// The cap is checked before adding, so velocity may end one step above it.
func (p *Player) Update() {
	if p.Velocity < TerminalVelocity {
		p.Velocity += Gravity
	}
	p.YReal += p.Velocity
	p.Y = int(p.YReal)
	p.X++
}

// Fly replaces the current vertical speed with an upward impulse.
func (p *Player) Fly() {
	p.Velocity = FlyVelocity
}

// Render draws the player at its fixed screen column.
func (p Player) Render(dst core.Surface, column int) {
	dst.Set(column, p.Y, PlayerFG, PlayerBG, PlayerChar)
}
