package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Name is the backend name of this host.
const Name = "tea"

func init() {
	registry.Register(Name, func() platform.Host { return Host{} })
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	session  *platform.Session
	screen   *core.Screen
	keys     KeyMap
	tickRate int
	pending  core.Key  // Last game key pressed since the previous tick
	lastTick time.Time // Zero until the first tick arrives
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(s *platform.Session) Model {
	cfg := s.Config()
	return Model{
		session:  s,
		screen:   core.NewScreen(cfg.Screen.Width, cfg.Screen.Height),
		keys:     NewKeyMap(cfg.Keys),
		tickRate: cfg.Timing.TickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return nextFrame(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the key for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Interrupt) {
		m.session.Logger().Info("interrupted", "mode", m.session.State().Mode)
		m.quitting = true
		return m, tea.Quit
	}

	if k := m.keys.Map(msg); k != core.KeyNone {
		m.pending = k
	}
	return m, nil
}

// handleTick runs one frame of the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := elapsedMs(m.lastTick, now)
	m.lastTick = now

	res := m.session.Tick(core.Frame{ElapsedMs: elapsed, Key: m.pending}, m.screen)
	m.pending = core.KeyNone

	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nextFrame(m.tickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// Screen returns the buffer the game draws into.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// Host runs sessions in a Bubble Tea program on the alternate screen.
type Host struct{}

// Name implements platform.Host.
func (Host) Name() string {
	return Name
}

// Description implements platform.Host.
func (Host) Description() string {
	return "Bubble Tea program with lipgloss colors"
}

// Run implements platform.Host.
func (Host) Run(ctx context.Context, s *platform.Session) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("tui: stdout is not a terminal")
	}

	p := tea.NewProgram(
		NewModel(s),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
