package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file
// cannot be decoded.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Field: FieldConfig{
			Width:   800,
			Height:  300,
			GroundY: 260,
		},
		Player: PlayerConfig{
			X:      100,
			Width:  40,
			Height: 40,
		},
		Physics: PhysicsConfig{
			Gravity:         0.6,
			JumpForce:       -11,
			DoubleJumpForce: -9,
		},
		Speed: SpeedConfig{
			Start:    6,
			Increase: 0.003,
		},
		Obstacles: ObstacleConfig{
			MinWidth:         30,
			MaxWidth:         50,
			MaxHeight:        60,
			MinHeightBase:    20,
			MinHeightDivisor: 50,
			MinHeightCap:     45,
		},
		Spawn: SpawnConfig{
			InitialInterval: 90,
			BaseInterval:    90,
			ScoreDivisor:    15,
			MinInterval:     40,
			Jitter:          0.2,
		},
		Milestones: MilestoneConfig{
			Step: 100,
		},
		Effects: EffectsConfig{
			BurstTicks:  30,
			BurstRadius: 60,
			FlashTicks:  20,
		},
	}
}
