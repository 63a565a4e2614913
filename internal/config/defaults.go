package config

import (
	_ "embed"
)

//go:embed defaults/snakerat.yaml
var defaultSnakeRatYAML []byte

// DefaultSnakeRatConfig returns the default snake-rat configuration.
// It mirrors defaults/snakerat.yaml.
func DefaultSnakeRatConfig() SnakeRatConfig {
	return SnakeRatConfig{
		Grid: GridConfig{
			Size: 20,
		},
		Start: StartConfig{
			X:         10,
			Y:         10,
			Direction: "up",
		},
		Food: FoodConfig{
			StartX: 12,
			StartY: 12,
		},
		Timing: TimingConfig{
			TickMillis: 200,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeRatYAML
}
