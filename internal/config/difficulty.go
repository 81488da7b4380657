package config

import "math"

// Difficulty calculates dynamic game parameters based on score/time.
// It is a comparable value so a reducer can carry it inside state.
type Difficulty struct {
	cfg DifficultyConfig
}

// NewDifficulty creates a difficulty calculator. The initial level is
// clamped to [0, 1].
func NewDifficulty(cfg DifficultyConfig) Difficulty {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0.0, 1.0)
	return Difficulty{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d Difficulty) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d Difficulty) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.cfg.InitialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.cfg.InitialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.cfg.InitialLevel + progress*(1.0-d.cfg.InitialLevel)
}

// Speed scales baseSpeed from base to base * (1 + speed_multiplier).
func (d Difficulty) Speed(baseSpeed float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Spacing returns the spawn distance for the current difficulty level.
// The distance shrinks by up to spacing_reduction but never below floor.
func (d Difficulty) Spacing(baseSpacing, floor float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return math.Max(floor, baseSpacing-level*d.cfg.Scaling.SpacingReduction)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
