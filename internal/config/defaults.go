package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default game configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: ScreenConfig{
			Width:  80,
			Height: 50,
		},
		Player: PlayerConfig{
			Column: 20,
		},
		Timing: TimingConfig{
			FrameDurationMs: 75,
			TickRate:        60,
		},
		Keys: KeyConfig{
			Start:   []string{"p", "P"},
			Quit:    []string{"q", "Q"},
			Impulse: []string{" "},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
