package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// Must stay in sync with defaults/runner.yaml.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			JumpSpeed:  20,
			Gravity:    -52,
			FloorSpeed: -10,
		},
		Obstacles: RunnerObstacles{
			SpawnX:      20,
			Stagger:     0.5,
			MinInterval: 2,
			MaxInterval: 2,
			MinCount:    3,
			MaxCount:    5,
			MinScale:    0.5,
			MaxScale:    1.0,
			Width:       1.0,
			Height:      2.0,
			Depth:       1.0,
			Culling:     true,
			CullX:       -15,
		},
		Bird: RunnerBird{
			SpawnX:          -5,
			MinY:            5,
			MaxY:            6,
			RespawnInterval: 14,
			Speed:           2,
		},
		Player: RunnerPlayer{
			X:      0,
			Width:  1,
			Height: 2,
		},
		Score: RunnerScore{
			Rate:   20,
			Digits: 5,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
