package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  30,
			Height: 20,
		},
		Snake: SnakeSettings{
			InitialLength: 6,
		},
		Loop: LoopConfig{
			TickMS: 75,
		},
		Food: FoodConfig{
			AvoidSnake: true,
		},
		Particles: ParticleConfig{
			Burst:    20,
			Decay:    0.95,
			MinAlpha: 0.1,
			Spread:   0.4,
			MinSize:  0.1,
			MaxSize:  0.4,
		},
		Animation: AnimationConfig{
			GlowStep:       0.05,
			PulseStep:      0.1,
			PulseAmplitude: 0.1,
		},
		Theme: "neon",
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
