package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snake-rat/internal/core"
)

const configFile = "snakerat.yaml"

// Playable ranges enforced by Validate.
const (
	MinGridSize   = 5
	MaxGridSize   = 60
	MinTickMillis = 20
	MaxTickMillis = 5000
)

// LoadSnakeRat loads the snake-rat configuration.
// Search order: customPath -> ~/.snakerat/configs/snakerat.yaml -> ./configs/snakerat.yaml -> embedded default
// Values missing from a file keep their defaults.
func LoadSnakeRat(customPath string) (SnakeRatConfig, error) {
	cfg := DefaultSnakeRatConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultSnakeRatConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			continue
		}
		if err := fileCfg.Validate(); err != nil {
			continue
		}
		return fileCfg, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeRatYAML, &cfg); err != nil {
		return DefaultSnakeRatConfig(), nil // Fallback to hardcoded if embed fails
	}
	if err := cfg.Validate(); err != nil {
		return DefaultSnakeRatConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snakerat", "configs", filename)
}

// Validate clamps numeric values into playable ranges and rejects
// values that cannot be repaired.
func (c *SnakeRatConfig) Validate() error {
	c.Grid.Size = core.Clamp(c.Grid.Size, MinGridSize, MaxGridSize)
	c.Start.X = core.Clamp(c.Start.X, 0, c.Grid.Size-1)
	c.Start.Y = core.Clamp(c.Start.Y, 0, c.Grid.Size-1)

	c.Start.Direction = strings.ToLower(strings.TrimSpace(c.Start.Direction))
	switch c.Start.Direction {
	case "":
		c.Start.Direction = "up"
	case "up", "down", "left", "right":
	default:
		return fmt.Errorf("start.direction %q must be up, down, left or right", c.Start.Direction)
	}

	if c.Food.MaxAttempts < 0 {
		c.Food.MaxAttempts = 0
	}
	c.Timing.TickMillis = core.Clamp(c.Timing.TickMillis, MinTickMillis, MaxTickMillis)

	c.Difficulty.InitialLevel = clampF(c.Difficulty.InitialLevel, 0.0, 1.0)
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none":
	case "":
		c.Difficulty.Progression.Type = "none"
	default:
		return fmt.Errorf("difficulty.progression.type %q must be score, time or none", c.Difficulty.Progression.Type)
	}
	return nil
}

// TickInterval returns the configured base wait of the game loop.
func (c SnakeRatConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMillis) * time.Millisecond
}

// Marshal renders the configuration as YAML.
func (c SnakeRatConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// ParsePreset validates a difficulty preset name. An empty name is allowed
// and means "keep the configured difficulty".
func ParsePreset(name string) (DifficultyPreset, error) {
	preset := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	switch preset {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return preset, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplySnakeRatPreset modifies the config based on a difficulty preset.
func ApplySnakeRatPreset(cfg *SnakeRatConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
