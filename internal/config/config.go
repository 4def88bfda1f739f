// Package config provides YAML-based configuration for the game: field
// geometry, physics and obstacle tuning, with embedded defaults and a
// search-path loader.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// FlappyConfig contains all tuning for a run. Values are fixed for the
// lifetime of a run; a new config means a new game.
type FlappyConfig struct {
	Field     FlappyField     `yaml:"field"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Player    FlappyPlayer    `yaml:"player"`
	Obstacles FlappyObstacles `yaml:"obstacles"`

	// Source records where the config was loaded from, for logging.
	Source string `yaml:"-"`
}

// FlappyField defines the playfield and the tick rate the tuning assumes.
type FlappyField struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"`
}

// FlappyPhysics defines the actor's motion parameters.
type FlappyPhysics struct {
	Gravity         float64 `yaml:"gravity"`
	ImpulseVelocity float64 `yaml:"impulse_velocity"`
}

// FlappyPlayer defines the actor's fixed column and square size.
type FlappyPlayer struct {
	X    float64 `yaml:"x"`
	Size float64 `yaml:"size"`
}

// FlappyObstacles defines obstacle geometry and cadence.
type FlappyObstacles struct {
	Width         float64 `yaml:"width"`
	GapHeight     int     `yaml:"gap_height"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval int     `yaml:"spawn_interval"`
	MinMargin     int     `yaml:"min_margin"`
}

// Validate checks the config once at startup. The gap placement range must
// be non-empty: field height has to fit the gap plus both margins.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must be positive, got %dx%d", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	case c.Field.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.Field.TickRate)
	case c.Player.Size <= 0:
		return fmt.Errorf("%w: player size must be positive, got %g", ErrInvalidConfig, c.Player.Size)
	case c.Obstacles.Width <= 0:
		return fmt.Errorf("%w: obstacle width must be positive, got %g", ErrInvalidConfig, c.Obstacles.Width)
	case c.Obstacles.GapHeight <= 0:
		return fmt.Errorf("%w: gap_height must be positive, got %d", ErrInvalidConfig, c.Obstacles.GapHeight)
	case c.Obstacles.MinMargin < 0:
		return fmt.Errorf("%w: min_margin must not be negative, got %d", ErrInvalidConfig, c.Obstacles.MinMargin)
	case c.Obstacles.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn_interval must be positive, got %d", ErrInvalidConfig, c.Obstacles.SpawnInterval)
	case c.Obstacles.Speed <= 0:
		return fmt.Errorf("%w: obstacle speed must be positive, got %g", ErrInvalidConfig, c.Obstacles.Speed)
	}

	if need := c.Obstacles.GapHeight + 2*c.Obstacles.MinMargin; c.Field.Height < need {
		return fmt.Errorf("%w: field height %d cannot fit gap %d with margins %d (need %d)",
			ErrInvalidConfig, c.Field.Height, c.Obstacles.GapHeight, c.Obstacles.MinMargin, need)
	}
	return nil
}

// ForTickRate returns a copy retuned for a host that ticks at rate instead
// of Field.TickRate, keeping per-second pacing. Gravity scales with the
// square of the tick ratio. Integration is discrete, so trajectories match
// closely but not exactly.
func (c FlappyConfig) ForTickRate(rate int) FlappyConfig {
	if rate <= 0 || rate == c.Field.TickRate || c.Field.TickRate <= 0 {
		return c
	}

	k := float64(c.Field.TickRate) / float64(rate)
	out := c
	out.Field.TickRate = rate
	out.Physics.Gravity = c.Physics.Gravity * k * k
	out.Physics.ImpulseVelocity = c.Physics.ImpulseVelocity * k
	out.Obstacles.Speed = c.Obstacles.Speed * k
	out.Obstacles.SpawnInterval = int(math.Max(1, math.Round(float64(c.Obstacles.SpawnInterval)/k)))
	return out
}
