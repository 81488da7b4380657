package config

import (
	_ "embed"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the built-in Ball Catch configuration. It
// mirrors defaults/catch.yaml and is used when the embedded file cannot be
// parsed.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Physics: CatchPhysics{
			BallSpeed: 6.0,
			MaxStep:   0.1,
		},
		Spawn: CatchSpawn{
			InitialMin: 6.0,
			InitialMax: 12.0,
			Min:        3.0,
			Max:        18.0,
		},
		Bar: CatchBar{
			Row:    1,
			Width:  7,
			Margin: 4,
		},
		Runtime: CatchRuntime{
			MaxRenders: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.5,
				SpacingReduction: 4.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCatchYAML
}
