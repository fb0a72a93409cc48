// Package config provides YAML-based game configuration loading and
// validation for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Snake     SnakeSettings   `yaml:"snake"`
	Loop      LoopConfig      `yaml:"loop"`
	Food      FoodConfig      `yaml:"food"`
	Particles ParticleConfig  `yaml:"particles"`
	Animation AnimationConfig `yaml:"animation"`
	Theme     string          `yaml:"theme"`
}

// BoardConfig defines the playfield size in grid units.
// A zero dimension is fitted to the terminal at reset.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeSettings defines the snake's starting shape.
type SnakeSettings struct {
	InitialLength int `yaml:"initial_length"`
}

// LoopConfig defines the fixed tick interval.
type LoopConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// FoodConfig defines food placement.
type FoodConfig struct {
	// AvoidSnake restricts food placement to cells not covered by the body.
	// When false any cell may be chosen, including ones under the snake.
	AvoidSnake bool `yaml:"avoid_snake"`
}

// ParticleConfig defines the burst spawned when food is eaten.
// Distances are in grid units; one unit is one board cell.
type ParticleConfig struct {
	Burst    int     `yaml:"burst"`     // Particles per burst
	Decay    float64 `yaml:"decay"`     // Size and opacity multiplier per tick
	MinAlpha float64 `yaml:"min_alpha"` // Particles below this opacity are removed
	Spread   float64 `yaml:"spread"`    // Velocity range per axis, centered on zero
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
}

// AnimationConfig defines the head glow and food pulse speeds.
type AnimationConfig struct {
	GlowStep       float64 `yaml:"glow_step"`
	PulseStep      float64 `yaml:"pulse_step"`
	PulseAmplitude float64 `yaml:"pulse_amplitude"`
}

// Tick returns the loop interval as a duration.
func (c SnakeConfig) Tick() time.Duration {
	return time.Duration(c.Loop.TickMS) * time.Millisecond
}

// Validate checks that the configuration can drive a game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Snake.InitialLength < 1:
		return fmt.Errorf("%w: snake.initial_length must be at least 1, got %d", ErrInvalidConfig, c.Snake.InitialLength)
	case c.Board.Width < 0 || c.Board.Height < 0:
		return fmt.Errorf("%w: board size must not be negative, got %dx%d", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	case c.Board.Width != 0 && c.Board.Width < c.Snake.InitialLength:
		return fmt.Errorf("%w: board.width %d cannot hold a snake of length %d", ErrInvalidConfig, c.Board.Width, c.Snake.InitialLength)
	case c.Loop.TickMS <= 0:
		return fmt.Errorf("%w: loop.tick_ms must be positive, got %d", ErrInvalidConfig, c.Loop.TickMS)
	case c.Particles.Burst < 0:
		return fmt.Errorf("%w: particles.burst must not be negative, got %d", ErrInvalidConfig, c.Particles.Burst)
	case c.Particles.Decay <= 0 || c.Particles.Decay >= 1:
		return fmt.Errorf("%w: particles.decay must be in (0, 1), got %g", ErrInvalidConfig, c.Particles.Decay)
	case c.Particles.MinAlpha <= 0 || c.Particles.MinAlpha >= 1:
		return fmt.Errorf("%w: particles.min_alpha must be in (0, 1), got %g", ErrInvalidConfig, c.Particles.MinAlpha)
	case c.Particles.MinSize < 0 || c.Particles.MaxSize < c.Particles.MinSize:
		return fmt.Errorf("%w: particles size range [%g, %g] is invalid", ErrInvalidConfig, c.Particles.MinSize, c.Particles.MaxSize)
	case c.Animation.GlowStep <= 0 || c.Animation.GlowStep > 1:
		return fmt.Errorf("%w: animation.glow_step must be in (0, 1], got %g", ErrInvalidConfig, c.Animation.GlowStep)
	case c.Animation.PulseStep <= 0:
		return fmt.Errorf("%w: animation.pulse_step must be positive, got %g", ErrInvalidConfig, c.Animation.PulseStep)
	}
	return nil
}
