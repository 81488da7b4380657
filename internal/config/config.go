// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// CatchConfig contains all configuration for the Ball Catch game.
type CatchConfig struct {
	Physics    CatchPhysics     `yaml:"physics"`
	Spawn      CatchSpawn       `yaml:"spawn"`
	Bar        CatchBar         `yaml:"bar"`
	Runtime    CatchRuntime     `yaml:"runtime"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CatchPhysics defines ball movement.
type CatchPhysics struct {
	BallSpeed float64 `yaml:"ball_speed"` // Falling speed in cells per second
	MaxStep   float64 `yaml:"max_step"`   // Upper bound for one simulated step, seconds
}

// CatchSpawn defines the vertical distance between consecutive balls.
// Offsets are drawn uniformly from [min, max).
type CatchSpawn struct {
	InitialMin float64 `yaml:"initial_min"`
	InitialMax float64 `yaml:"initial_max"`
	Min        float64 `yaml:"min"`
	Max        float64 `yaml:"max"`
}

// CatchBar defines the paddle.
type CatchBar struct {
	Row    int `yaml:"row"`    // Rows above the bottom edge
	Width  int `yaml:"width"`  // Width in cells
	Margin int `yaml:"margin"` // Distance of the side columns from the edges
}

// CatchRuntime tunes the update loop.
type CatchRuntime struct {
	MaxRenders int `yaml:"max_renders"` // Render ceiling per dispatch
}

// Validate reports configuration values the game cannot run with.
func (c CatchConfig) Validate() error {
	var errs []error
	if c.Physics.BallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.ball_speed must be positive, got %v", c.Physics.BallSpeed))
	}
	if c.Physics.MaxStep <= 0 {
		errs = append(errs, fmt.Errorf("physics.max_step must be positive, got %v", c.Physics.MaxStep))
	}
	if c.Spawn.InitialMin <= 0 || c.Spawn.InitialMin > c.Spawn.InitialMax {
		errs = append(errs, fmt.Errorf("spawn.initial_min/initial_max must satisfy 0 < min <= max, got %v..%v", c.Spawn.InitialMin, c.Spawn.InitialMax))
	}
	if c.Spawn.Min <= 0 || c.Spawn.Min > c.Spawn.Max {
		errs = append(errs, fmt.Errorf("spawn.min/max must satisfy 0 < min <= max, got %v..%v", c.Spawn.Min, c.Spawn.Max))
	}
	if c.Bar.Width < 1 {
		errs = append(errs, fmt.Errorf("bar.width must be at least 1, got %d", c.Bar.Width))
	}
	if c.Bar.Row < 0 || c.Bar.Margin < 0 {
		errs = append(errs, fmt.Errorf("bar.row and bar.margin must not be negative"))
	}
	if c.Runtime.MaxRenders < 1 {
		errs = append(errs, fmt.Errorf("runtime.max_renders must be at least 1, got %d", c.Runtime.MaxRenders))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid catch config: %w", err)
	}
	return nil
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
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	SpacingReduction float64 `yaml:"spacing_reduction"` // Spawn distance removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "no preset".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

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
