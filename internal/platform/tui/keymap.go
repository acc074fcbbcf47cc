package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap holds the game's key bindings.
// Interrupt is not configurable: it always leaves the program, in any mode.
type KeyMap struct {
	Start     key.Binding
	Quit      key.Binding
	Impulse   key.Binding
	Interrupt key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(kc config.KeyConfig) KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys(kc.Start...),
			key.WithHelp(helpKeys(kc.Start), "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys(kc.Quit...),
			key.WithHelp(helpKeys(kc.Quit), "quit"),
		),
		Impulse: key.NewBinding(
			key.WithKeys(kc.Impulse...),
			key.WithHelp(helpKeys(kc.Impulse), "flap"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
	}
}

// Map translates a key message to a game key.
// Returns KeyNone for unbound keys and for the interrupt.
func (k KeyMap) Map(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Impulse):
		return core.KeyImpulse
	case key.Matches(msg, k.Start):
		return core.KeyStart
	case key.Matches(msg, k.Quit):
		return core.KeyQuit
	}
	return core.KeyNone
}

// helpKeys shows the first configured name, spelling out space.
func helpKeys(names []string) string {
	if len(names) == 0 {
		return ""
	}
	if names[0] == " " {
		return "space"
	}
	return names[0]
}
