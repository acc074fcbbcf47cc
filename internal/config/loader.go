package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the built-in defaults as a config source.
const SourceEmbedded = "embedded defaults"

// LoadFlappy loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.flappy/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// A file only needs to set the fields it changes; the rest keep their defaults.
func LoadFlappy(customPath string) (FlappyConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseFlappy(data)
		if err != nil {
			return FlappyConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return validated(cfg, customPath)
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("flappy.yaml"), filepath.Join("configs", "flappy.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseFlappy(data); err == nil {
			return validated(cfg, path)
		}
	}

	// Use embedded default YAML
	cfg, err := parseFlappy(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return validated(cfg, SourceEmbedded)
}

// parseFlappy decodes YAML on top of the hardcoded defaults.
func parseFlappy(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

func validated(cfg FlappyConfig, source string) (FlappyConfig, string, error) {
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, "", fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, source, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", filename)
}
