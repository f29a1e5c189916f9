package config

import (
	_ "embed"
)

//go:embed defaults/flapgate.yaml
var defaultYAML []byte

// Default returns the default configuration, tuned for an 80x24 terminal
// at 60 ticks per second.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:      0.25,
			FlapImpulse:  -1.8,
			MaxFallSpeed: 3.0,
			ScrollSpeed:  0.8,
		},
		Obstacles: Obstacles{
			Width:        5,
			Spacing:      50,
			GapHeight:    10,
			TopMargin:    1,
			GroundMargin: 2,
			CullMargin:   5,
		},
		Body: Body{
			X:      10,
			Radius: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				GapReduction:     4,
				SpacingReduction: 15,
			},
		},
	}
}
