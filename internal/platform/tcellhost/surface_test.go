package tcellhost

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func cellAt(screen tcell.Screen, x, y int) (rune, tcell.Color, tcell.Color) {
	r, _, st, _ := screen.GetContent(x, y)
	fg, bg, _ := st.Decompose()
	return r, fg, bg
}

func TestSurfaceSet(t *testing.T) {
	screen := newSimScreen(t, 80, 50)
	s := NewSurface(screen, 80, 50)

	s.Set(20, 25, core.ColorYellow, core.ColorBlue, '@')

	r, fg, bg := cellAt(screen, 20, 25)
	if r != '@' {
		t.Errorf("rune = %q, expected '@'", r)
	}
	if fg != tcell.ColorYellow || bg != tcell.ColorBlue {
		t.Errorf("colors = %v on %v, expected yellow on blue", fg, bg)
	}
}

func TestSurfaceClipsToGameArea(t *testing.T) {
	screen := newSimScreen(t, 100, 60)
	s := NewSurface(screen, 80, 50)

	s.Set(85, 10, core.ColorWhite, core.ColorRed, 'X')
	s.Set(10, 55, core.ColorWhite, core.ColorRed, 'X')
	s.Set(-1, 0, core.ColorWhite, core.ColorRed, 'X')

	if r, _, _ := cellAt(screen, 85, 10); r == 'X' {
		t.Error("cell right of the game area should not be drawn")
	}
	if r, _, _ := cellAt(screen, 10, 55); r == 'X' {
		t.Error("cell below the game area should not be drawn")
	}
}

func TestSurfaceClearBG(t *testing.T) {
	screen := newSimScreen(t, 80, 50)
	s := NewSurface(screen, 80, 50)

	s.Set(3, 3, core.ColorYellow, core.ColorBlue, '@')
	s.ClearBG(core.ColorNavy)

	for _, p := range [][2]int{{0, 0}, {3, 3}, {79, 49}} {
		r, _, bg := cellAt(screen, p[0], p[1])
		if r != ' ' || bg != tcell.ColorNavy {
			t.Errorf("cell %v = %q on %v, expected blank navy", p, r, bg)
		}
	}

	s.Clear()
	if _, _, bg := cellAt(screen, 3, 3); bg != tcell.ColorDefault {
		t.Errorf("Clear background = %v, expected default", bg)
	}
}

func TestSurfaceDrawTextKeepsBackground(t *testing.T) {
	screen := newSimScreen(t, 80, 50)
	s := NewSurface(screen, 80, 50)

	s.ClearBG(core.ColorNavy)
	s.DrawText(0, 1, "Score: 3")

	for i, want := range "Score: 3" {
		r, fg, bg := cellAt(screen, i, 1)
		if r != want {
			t.Errorf("cell %d = %q, expected %q", i, r, want)
		}
		if fg != tcell.ColorDefault || bg != tcell.ColorNavy {
			t.Errorf("cell %d colors = %v on %v, expected default on navy", i, fg, bg)
		}
	}
}

func TestSurfaceDrawTextClips(t *testing.T) {
	screen := newSimScreen(t, 20, 5)
	s := NewSurface(screen, 10, 5)

	s.DrawText(7, 0, "abcdef")
	if r, _, _ := cellAt(screen, 9, 0); r != 'c' {
		t.Errorf("last visible cell = %q, expected 'c'", r)
	}
	if r, _, _ := cellAt(screen, 10, 0); r == 'd' {
		t.Error("text beyond the game area should be clipped")
	}

	s.DrawText(-2, 1, "xyz")
	if r, _, _ := cellAt(screen, 0, 1); r != 'z' {
		t.Errorf("cell 0 = %q, expected 'z'", r)
	}
}

func TestSurfaceDrawTextCentered(t *testing.T) {
	screen := newSimScreen(t, 80, 50)
	s := NewSurface(screen, 80, 50)

	s.DrawTextCentered(5, "~Flappy~")
	if r, _, _ := cellAt(screen, 36, 5); r != '~' {
		t.Errorf("cell 36 = %q, expected title start", r)
	}
	if r, _, _ := cellAt(screen, 37, 5); r != 'F' {
		t.Errorf("cell 37 = %q, expected 'F'", r)
	}
}

func TestTcellColorFallback(t *testing.T) {
	if got := tcellColor(core.Color(200)); got != tcell.ColorDefault {
		t.Errorf("unknown color = %v, expected default", got)
	}
	if got := tcellColor(core.ColorDarkGreen); got != tcell.ColorDarkGreen {
		t.Errorf("dark green = %v", got)
	}
}
