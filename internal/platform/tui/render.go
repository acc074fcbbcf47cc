package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// palette maps core.Color to terminal colors.
// ColorDefault is absent: it leaves the terminal's own color in place.
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:     lipgloss.Color("#000000"),
	core.ColorWhite:     lipgloss.Color("#ffffff"),
	core.ColorYellow:    lipgloss.Color("#ffff00"),
	core.ColorBlue:      lipgloss.Color("#0000ff"),
	core.ColorNavy:      lipgloss.Color("#000080"),
	core.ColorDarkGreen: lipgloss.Color("#006400"),
	core.ColorRed:       lipgloss.Color("#ff0000"),
	core.ColorGray:      lipgloss.Color("#808080"),
}

type colorPair struct {
	fg, bg core.Color
}

// styleFor builds the lipgloss style for a foreground/background pair.
func styleFor(p colorPair) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := palette[p.fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := palette[p.bg]; ok {
		style = style.Background(c)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(map[colorPair]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := colorPair{cell.FG, cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.FG, cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = styleFor(start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
