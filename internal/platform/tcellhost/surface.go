// Package tcellhost runs the game directly on a tcell screen.
package tcellhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// colors maps core.Color to the tcell palette.
var colors = map[core.Color]tcell.Color{
	core.ColorDefault:   tcell.ColorDefault,
	core.ColorBlack:     tcell.ColorBlack,
	core.ColorWhite:     tcell.ColorWhite,
	core.ColorYellow:    tcell.ColorYellow,
	core.ColorBlue:      tcell.ColorBlue,
	core.ColorNavy:      tcell.ColorNavy,
	core.ColorDarkGreen: tcell.ColorDarkGreen,
	core.ColorRed:       tcell.ColorRed,
	core.ColorGray:      tcell.ColorGray,
}

func tcellColor(c core.Color) tcell.Color {
	if tc, ok := colors[c]; ok {
		return tc
	}
	return tcell.ColorDefault
}

func style(fg, bg core.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(bg))
}

// Surface draws game frames onto a tcell screen, clipped to the game area.
type Surface struct {
	screen tcell.Screen
	width  int
	height int
}

var _ core.Surface = (*Surface)(nil)

// NewSurface wraps screen with a width x height drawing area at the origin.
func NewSurface(screen tcell.Screen, width, height int) *Surface {
	return &Surface{screen: screen, width: width, height: height}
}

func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set implements core.Surface.
func (s *Surface) Set(x, y int, fg, bg core.Color, glyph rune) {
	if !s.inBounds(x, y) {
		return
	}
	s.screen.SetContent(x, y, glyph, nil, style(fg, bg))
}

// Clear implements core.Surface.
func (s *Surface) Clear() {
	s.ClearBG(core.ColorDefault)
}

// ClearBG implements core.Surface.
func (s *Surface) ClearBG(bg core.Color) {
	st := style(core.ColorDefault, bg)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

// DrawText implements core.Surface.
// Text keeps the background already on screen.
func (s *Surface) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		cx := x + i
		i++
		if !s.inBounds(cx, y) {
			continue
		}
		_, _, st, _ := s.screen.GetContent(cx, y)
		_, bg, _ := st.Decompose()
		s.screen.SetContent(cx, y, r, nil, tcell.StyleDefault.Background(bg))
	}
}

// DrawTextCentered implements core.Surface.
func (s *Surface) DrawTextCentered(y int, text string) {
	s.DrawText(core.CenterX(s.width, text), y, text)
}
