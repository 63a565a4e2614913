// Package config provides YAML-based game configuration loading and
// difficulty management for snake-rat.
package config

// SnakeRatConfig contains all configuration for the snake-rat game.
type SnakeRatConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Start      StartConfig      `yaml:"start"`
	Food       FoodConfig       `yaml:"food"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the playing field.
type GridConfig struct {
	Size int `yaml:"size"` // Cells per side, the field is always square
}

// StartConfig defines where a new snake appears.
type StartConfig struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Direction string `yaml:"direction"` // up, down, left or right
}

// FoodConfig defines how the rat is placed.
type FoodConfig struct {
	StartX      int  `yaml:"start_x"`
	StartY      int  `yaml:"start_y"`
	RandomStart bool `yaml:"random_start"` // Ignore start_x/start_y and spawn randomly
	MaxAttempts int  `yaml:"max_attempts"` // Random draws before scanning for free cells (0 = auto)
}

// TimingConfig defines the input wait of the game loop.
type TimingConfig struct {
	TickMillis int `yaml:"tick_ms"` // Longest wait for a key before the snake moves on its own
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Points/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra speed at max difficulty (1.0 = twice as fast)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
