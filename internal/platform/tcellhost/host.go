package tcellhost

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Name is the backend name of this host.
const Name = "tcell"

func init() {
	registry.Register(Name, func() platform.Host { return Host{} })
}

// Host runs sessions on a tcell screen with a ticker-driven loop.
type Host struct {
	// NewScreen opens the terminal. Nil means tcell.NewScreen.
	NewScreen func() (tcell.Screen, error)
}

// Name implements platform.Host.
func (Host) Name() string {
	return Name
}

// Description implements platform.Host.
func (Host) Description() string {
	return "tcell screen with a ticker loop"
}

// Run implements platform.Host.
func (h Host) Run(ctx context.Context, s *platform.Session) error {
	newScreen := h.NewScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("tcellhost: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellhost: cannot init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	return newLoop(screen, s).run(ctx, events)
}

// loop holds the per-frame state of a running session.
type loop struct {
	screen   tcell.Screen
	session  *platform.Session
	surface  *Surface
	keys     platform.KeyMap
	pending  core.Key
	lastTick time.Time
}

func newLoop(screen tcell.Screen, s *platform.Session) *loop {
	cfg := s.Config()
	return &loop{
		screen:  screen,
		session: s,
		surface: NewSurface(screen, cfg.Screen.Width, cfg.Screen.Height),
		keys:    platform.NewKeyMap(cfg.Keys),
	}
}

// run renders frames at the configured tick rate until the game quits,
// the user interrupts or ctx is cancelled.
func (l *loop) run(ctx context.Context, events <-chan tcell.Event) error {
	interval := time.Second / time.Duration(l.session.Config().Timing.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if l.key(ev.Key(), ev.Rune()) {
					return nil
				}
			case *tcell.EventResize:
				l.screen.Sync()
			}

		case now := <-ticker.C:
			if l.frame(now) {
				return nil
			}
		}
	}
}

// key records a key press for the next frame.
// Returns true on ctrl+c, which leaves the loop in any mode.
func (l *loop) key(k tcell.Key, r rune) bool {
	if k == tcell.KeyCtrlC {
		l.session.Logger().Info("interrupted", "mode", l.session.State().Mode)
		return true
	}
	if gk := l.keys.Lookup(keyName(k, r)); gk != core.KeyNone {
		l.pending = gk
	}
	return false
}

// frame runs one game tick and shows it. Returns true when the game quits.
func (l *loop) frame(now time.Time) bool {
	var elapsed float64
	if !l.lastTick.IsZero() {
		elapsed = float64(now.Sub(l.lastTick)) / float64(time.Millisecond)
	}
	l.lastTick = now

	res := l.session.Tick(core.Frame{ElapsedMs: elapsed, Key: l.pending}, l.surface)
	l.pending = core.KeyNone
	l.screen.Show()
	return res.Quit
}

// keyName converts a tcell key to the name used in key bindings.
func keyName(k tcell.Key, r rune) string {
	switch k {
	case tcell.KeyRune:
		return string(r)
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	}
	return ""
}
