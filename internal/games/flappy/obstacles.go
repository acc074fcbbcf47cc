package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Gap placement and narrowing
const (
	GapMinY     = 10 // Lowest gap centre (inclusive)
	GapMaxY     = 40 // Highest gap centre (exclusive)
	BaseGapSize = 20 // Gap size at score 0
	MinGapSize  = 3  // Gap never narrows below this
)

// Visual style of the walls
const (
	WallChar = '|'
	WallFG   = core.ColorDarkGreen
	WallBG   = core.ColorBlack
)

// Rand is the randomness source used to place gaps.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Obstacle is a vertical wall with a single gap for the player to pass through.
type Obstacle struct {
	X    int // Absolute horizontal position of the wall
	GapY int // Vertical centre of the gap
	Size int // Height of the gap
}

// GapSize returns the gap size for an obstacle created at the given score.
// It narrows by one per point down to MinGapSize.
func GapSize(score int) int {
	return core.Max(MinGapSize, BaseGapSize-score)
}

// NewObstacle creates a wall at x with a random gap centre in [GapMinY, GapMaxY).
func NewObstacle(x, score int, rng Rand) Obstacle {
	return Obstacle{
		X:    x,
		GapY: GapMinY + rng.Intn(GapMaxY-GapMinY),
		Size: GapSize(score),
	}
}

// Render draws the wall relative to the camera, which follows the player.
// Rows inside the gap are left blank.
func (o Obstacle) Render(dst core.Surface, playerX, screenH int) {
	screenX := o.X - playerX
	halfSize := o.Size / 2
	for y := 0; y < o.GapY-halfSize; y++ {
		dst.Set(screenX, y, WallFG, WallBG, WallChar)
	}
	for y := o.GapY + halfSize; y < screenH; y++ {
		dst.Set(screenX, y, WallFG, WallBG, WallChar)
	}
}

// HitCheck reports whether the player crashes into this wall.
// Collision is only tested on the step where the player's absolute column
// equals the wall; it is not a swept test.
func (o Obstacle) HitCheck(p Player, column int) bool {
	halfSize := o.Size / 2
	xMatch := p.X+column == o.X
	above := p.Y < o.GapY-halfSize
	below := p.Y > o.GapY+halfSize
	return xMatch && (above || below)
}
