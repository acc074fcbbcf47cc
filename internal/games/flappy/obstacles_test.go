package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// fixedRand always returns v modulo n.
type fixedRand struct {
	v int
}

func (r fixedRand) Intn(n int) int {
	return r.v % n
}

func TestGapSize(t *testing.T) {
	tests := []struct {
		score    int
		expected int
	}{
		{0, 20},
		{1, 19},
		{10, 10},
		{16, 4},
		{17, 3},
		{18, 3},
		{100, 3},
	}

	for _, tc := range tests {
		if got := GapSize(tc.score); got != tc.expected {
			t.Errorf("GapSize(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
}

func TestGapSizeMonotonic(t *testing.T) {
	prev := GapSize(0)
	for s := 1; s < 200; s++ {
		size := GapSize(s)
		if size > prev {
			t.Fatalf("GapSize(%d) = %d grew from %d", s, size, prev)
		}
		if size < MinGapSize {
			t.Fatalf("GapSize(%d) = %d below floor", s, size)
		}
		prev = size
	}
}

func TestNewObstacle(t *testing.T) {
	o := NewObstacle(100, 17, fixedRand{v: 5})

	if o.X != 100 {
		t.Errorf("X = %d, expected 100", o.X)
	}
	if o.Size != 3 {
		t.Errorf("Size = %d, expected 3", o.Size)
	}
	if o.GapY != 15 {
		t.Errorf("GapY = %d, expected 15", o.GapY)
	}
}

func TestNewObstacleGapRange(t *testing.T) {
	if o := NewObstacle(0, 0, fixedRand{v: 0}); o.GapY != GapMinY {
		t.Errorf("lowest draw gave GapY %d, expected %d", o.GapY, GapMinY)
	}
	if o := NewObstacle(0, 0, fixedRand{v: 29}); o.GapY != GapMaxY-1 {
		t.Errorf("highest draw gave GapY %d, expected %d", o.GapY, GapMaxY-1)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		o := NewObstacle(0, 0, rng)
		if o.GapY < GapMinY || o.GapY >= GapMaxY {
			t.Fatalf("GapY %d outside [%d, %d)", o.GapY, GapMinY, GapMaxY)
		}
	}
}

func TestHitCheck(t *testing.T) {
	// Gap centre 25, size 10: passable rows are 20..30 inclusive
	o := Obstacle{X: 80, GapY: 25, Size: 10}
	const column = 20

	tests := []struct {
		name     string
		playerX  int
		playerY  int
		expected bool
	}{
		{"aligned above gap", 60, 19, true},
		{"aligned top edge of gap", 60, 20, false},
		{"aligned gap centre", 60, 25, false},
		{"aligned bottom edge of gap", 60, 30, false},
		{"aligned below gap", 60, 31, true},
		{"aligned far above screen", 60, -5, true},
		{"one step before wall", 59, 0, false},
		{"one step after wall", 61, 49, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Player{X: tc.playerX, Y: tc.playerY}
			if got := o.HitCheck(p, column); got != tc.expected {
				t.Errorf("HitCheck(x=%d, y=%d) = %v, expected %v", tc.playerX, tc.playerY, got, tc.expected)
			}
		})
	}
}

func TestHitCheckOddSize(t *testing.T) {
	// Size 3 halves to 1: passable rows 24..26
	o := Obstacle{X: 20, GapY: 25, Size: 3}
	for y := 20; y <= 30; y++ {
		expected := y < 24 || y > 26
		if got := o.HitCheck(Player{X: 0, Y: y}, 20); got != expected {
			t.Errorf("HitCheck(y=%d) = %v, expected %v", y, got, expected)
		}
	}
}

func TestObstacleRender(t *testing.T) {
	screen := core.NewScreen(80, 50)
	o := Obstacle{X: 40, GapY: 25, Size: 10}

	o.Render(screen, 10, screen.Height())

	const screenX = 30
	for y := 0; y < 50; y++ {
		cell := screen.GetCell(screenX, y)
		wall := y < 20 || y >= 30
		if wall {
			if cell.Rune != WallChar || cell.FG != WallFG || cell.BG != WallBG {
				t.Errorf("row %d: expected wall cell, got %+v", y, cell)
			}
		} else if cell.Rune != ' ' {
			t.Errorf("row %d: expected gap, got %q", y, cell.Rune)
		}
	}

	// Nothing drawn in other columns
	if screen.Get(screenX+1, 0) != ' ' || screen.Get(screenX-1, 0) != ' ' {
		t.Error("wall should occupy a single column")
	}
}

func TestObstacleRenderOffScreen(t *testing.T) {
	screen := core.NewScreen(80, 50)
	o := Obstacle{X: 80, GapY: 25, Size: 10}

	// Wall is at screen column 80, one past the right edge
	o.Render(screen, 0, screen.Height())

	for y := 0; y < 50; y++ {
		if screen.Get(79, y) != ' ' {
			t.Fatalf("off-screen wall drew into column 79 at row %d", y)
		}
	}
}
