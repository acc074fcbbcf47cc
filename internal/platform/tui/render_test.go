package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRenderScreenDimensions(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.ClearBG(core.ColorNavy)
	s.Set(2, 1, core.ColorYellow, core.ColorBlue, '@')
	s.DrawText(0, 0, "Score")

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, expected 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 10 {
			t.Errorf("line %d visible width = %d, expected 10", i, w)
		}
	}
	if !strings.Contains(lines[0], "Score") {
		t.Errorf("line 0 = %q, expected text", lines[0])
	}
	if !strings.Contains(lines[1], "@") {
		t.Errorf("line 1 = %q, expected player", lines[1])
	}
}

func TestStyleForColors(t *testing.T) {
	style := styleFor(colorPair{fg: core.ColorYellow, bg: core.ColorBlue})
	if style.GetForeground() != lipgloss.Color("#ffff00") {
		t.Errorf("foreground = %v, expected yellow", style.GetForeground())
	}
	if style.GetBackground() != lipgloss.Color("#0000ff") {
		t.Errorf("background = %v, expected blue", style.GetBackground())
	}
}

func TestStyleForDefaultLeavesTerminalColor(t *testing.T) {
	style := styleFor(colorPair{fg: core.ColorDefault, bg: core.ColorDefault})
	if _, ok := style.GetForeground().(lipgloss.NoColor); !ok {
		t.Errorf("default foreground = %v, expected NoColor", style.GetForeground())
	}
	if _, ok := style.GetBackground().(lipgloss.NoColor); !ok {
		t.Errorf("default background = %v, expected NoColor", style.GetBackground())
	}
}

func TestPaletteCoversGameColors(t *testing.T) {
	for _, c := range []core.Color{
		core.ColorBlack, core.ColorWhite, core.ColorYellow, core.ColorBlue,
		core.ColorNavy, core.ColorDarkGreen, core.ColorRed, core.ColorGray,
	} {
		if _, ok := palette[c]; !ok {
			t.Errorf("palette missing %v", c)
		}
	}
	if _, ok := palette[core.ColorDefault]; ok {
		t.Error("default color should not be in the palette")
	}
}
