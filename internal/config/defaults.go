package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It mirrors
// defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: FlappyField{
			Width:    400,
			Height:   600,
			TickRate: 60,
		},
		Physics: FlappyPhysics{
			Gravity:         0.5,
			ImpulseVelocity: -10,
		},
		Player: FlappyPlayer{
			X:    50,
			Size: 30,
		},
		Obstacles: FlappyObstacles{
			Width:         60,
			GapHeight:     150,
			Speed:         3,
			SpawnInterval: 90,
			MinMargin:     50,
		},
		Source: "builtin",
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
