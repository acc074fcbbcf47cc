// Package tui runs the game on Bubble Tea.
// It maps key messages to game keys, drives the session from a tick
// command and renders the screen buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of one rendered frame.
// The gap between consecutive ticks is the frame's elapsed time.
type TickMsg time.Time

// frameInterval is the delay between frames at rate frames per second.
func frameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 1
	}
	return time.Second / time.Duration(rate)
}

// elapsedMs returns the milliseconds between two tick timestamps.
// The first tick of a run has no predecessor and reports 0.
func elapsedMs(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 0
	}
	return float64(now.Sub(prev)) / float64(time.Millisecond)
}

// nextFrame schedules the tick for the next rendered frame.
func nextFrame(rate int) tea.Cmd {
	return tea.Tick(frameInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
