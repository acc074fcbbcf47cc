package core

import (
	"strings"
)

// Surface is the drawing contract between the game and a host.
// Implementations must ignore out-of-bounds coordinates.
type Surface interface {
	// Set places a glyph with explicit colors at (x, y).
	Set(x, y int, fg, bg Color, glyph rune)

	// Clear blanks the whole surface with the default background.
	Clear()

	// ClearBG blanks the whole surface with the given background.
	ClearBG(bg Color)

	// DrawText writes text starting at (x, y).
	DrawText(x, y int, text string)

	// DrawTextCentered writes text horizontally centered on row y.
	DrawTextCentered(y int, text string)
}

// Cell is a single character position on the screen.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// blank returns an empty cell with the given background.
func blank(bg Color) Cell {
	return Cell{Rune: ' ', FG: ColorDefault, BG: bg}
}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// using simple rune operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// Ensure Screen implements Surface
var _ Surface = (*Screen)(nil)

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with spaces on the default background.
func (s *Screen) Clear() {
	s.ClearBG(ColorDefault)
}

// ClearBG fills the entire screen with spaces on the given background.
func (s *Screen) ClearBG(bg Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank(bg)
		}
	}
}

// inBounds reports whether (x, y) lies on the screen.
func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places a glyph at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, fg, bg Color, glyph rune) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = Cell{Rune: glyph, FG: fg, BG: bg}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the full cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blank(ColorDefault)
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Text takes the default foreground and keeps the background already
// under it. Characters beyond the screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		cx := x + i
		i++
		if !s.inBounds(cx, y) {
			continue
		}
		s.cells[y][cx] = Cell{Rune: r, FG: ColorDefault, BG: s.cells[y][cx].BG}
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText(CenterX(s.width, text), y, text)
}

// CenterX returns the column at which text starts when centered on a
// row of the given width.
func CenterX(width int, text string) int {
	return (width - len([]rune(text))) / 2
}

// String converts the screen buffer to a plain string without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
