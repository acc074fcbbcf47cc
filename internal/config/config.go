// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a loaded config fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Screen ScreenConfig `yaml:"screen"`
	Player PlayerConfig `yaml:"player"`
	Timing TimingConfig `yaml:"timing"`
	Keys   KeyConfig    `yaml:"keys"`
}

// ScreenConfig defines the logical character grid the game draws on.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Column int `yaml:"column"` // Fixed screen column of the player glyph
}

// TimingConfig defines the simulation and render cadence.
type TimingConfig struct {
	FrameDurationMs float64 `yaml:"frame_duration_ms"` // Physics step threshold
	TickRate        int     `yaml:"tick_rate"`         // Rendered frames per second
}

// KeyConfig lists the key names bound to each game key.
// Names follow Bubble Tea's KeyMsg.String() convention ("p", " ", "esc").
// Ctrl+C is reserved for aborting and cannot be bound.
type KeyConfig struct {
	Start   []string `yaml:"start"`
	Quit    []string `yaml:"quit"`
	Impulse []string `yaml:"impulse"`
}

// Validate checks that the config describes a playable game.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen must be positive, got %dx%d", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	case c.Player.Column < 0 || c.Player.Column >= c.Screen.Width:
		return fmt.Errorf("%w: player column %d outside screen width %d", ErrInvalidConfig, c.Player.Column, c.Screen.Width)
	case c.Timing.FrameDurationMs <= 0:
		return fmt.Errorf("%w: frame_duration_ms must be positive, got %v", ErrInvalidConfig, c.Timing.FrameDurationMs)
	case c.Timing.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.Timing.TickRate)
	case len(c.Keys.Start) == 0:
		return fmt.Errorf("%w: no key bound to start", ErrInvalidConfig)
	case len(c.Keys.Quit) == 0:
		return fmt.Errorf("%w: no key bound to quit", ErrInvalidConfig)
	case len(c.Keys.Impulse) == 0:
		return fmt.Errorf("%w: no key bound to impulse", ErrInvalidConfig)
	}
	return nil
}
