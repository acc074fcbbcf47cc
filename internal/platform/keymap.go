package platform

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap translates key names to game keys.
// Names follow bubbletea's KeyMsg.String() form: "p", " ", "esc".
type KeyMap struct {
	keys map[string]core.Key
}

// NewKeyMap builds a key map from the configured bindings.
// When a name is bound twice, the later group wins (start, quit, impulse).
func NewKeyMap(kc config.KeyConfig) KeyMap {
	km := KeyMap{keys: make(map[string]core.Key)}
	bind := func(names []string, k core.Key) {
		for _, n := range names {
			km.keys[n] = k
		}
	}
	bind(kc.Start, core.KeyStart)
	bind(kc.Quit, core.KeyQuit)
	bind(kc.Impulse, core.KeyImpulse)
	return km
}

// Lookup returns the game key bound to name, or KeyNone.
func (km KeyMap) Lookup(name string) core.Key {
	return km.keys[name]
}
