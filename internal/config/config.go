// Package config provides YAML-based game configuration loading and
// validation for the flappy game.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	World     FlappyWorld     `yaml:"world"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Player    FlappyPlayer    `yaml:"player"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
}

// FlappyWorld defines the logical playfield size.
type FlappyWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity      float64       `yaml:"gravity"`       // Added to velocity every tick
	JumpImpulse  float64       `yaml:"jump_impulse"`  // Velocity set by a flap (negative = up)
	TickInterval time.Duration `yaml:"tick_interval"` // Fixed simulation step
}

// FlappyPlayer defines the avatar's fixed column and rendering tilt.
type FlappyPlayer struct {
	X               float64 `yaml:"x"`
	HalfWidth       float64 `yaml:"half_width"`
	StartY          float64 `yaml:"start_y"`
	MaxTiltVelocity float64 `yaml:"max_tilt_velocity"` // Render-only velocity clamp
	TiltDegrees     float64 `yaml:"tilt_degrees"`      // Degrees of tilt per unit of velocity
}

// FlappyObstacles defines the obstacle pool.
type FlappyObstacles struct {
	Count        int     `yaml:"count"`
	Width        float64 `yaml:"width"`
	Spacing      float64 `yaml:"spacing"`
	StartX       float64 `yaml:"start_x"`
	Speed        float64 `yaml:"speed"`
	GapHeight    float64 `yaml:"gap_height"`
	MinGapOffset int     `yaml:"min_gap_offset"` // Inclusive
	MaxGapOffset int     `yaml:"max_gap_offset"` // Exclusive
}

// Validate rejects configurations the simulation cannot run with.
func (c FlappyConfig) Validate() error {
	if err := c.checkFinite(); err != nil {
		return err
	}

	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive, got %vx%v", ErrInvalid, c.World.Width, c.World.Height)
	case c.Physics.TickInterval <= 0:
		return fmt.Errorf("%w: physics.tick_interval must be positive, got %s", ErrInvalid, c.Physics.TickInterval)
	case c.Player.HalfWidth <= 0:
		return fmt.Errorf("%w: player.half_width must be positive, got %v", ErrInvalid, c.Player.HalfWidth)
	case c.Player.StartY < 0 || c.Player.StartY > c.World.Height:
		return fmt.Errorf("%w: player.start_y must lie within the world, got %v", ErrInvalid, c.Player.StartY)
	case c.Player.MaxTiltVelocity < 0:
		return fmt.Errorf("%w: player.max_tilt_velocity must not be negative, got %v", ErrInvalid, c.Player.MaxTiltVelocity)
	case c.Obstacles.Count <= 0:
		return fmt.Errorf("%w: obstacles.count must be positive, got %d", ErrInvalid, c.Obstacles.Count)
	case c.Obstacles.Width <= 0:
		return fmt.Errorf("%w: obstacles.width must be positive, got %v", ErrInvalid, c.Obstacles.Width)
	case c.Obstacles.Spacing <= 0:
		return fmt.Errorf("%w: obstacles.spacing must be positive, got %v", ErrInvalid, c.Obstacles.Spacing)
	case c.Obstacles.Speed <= 0:
		return fmt.Errorf("%w: obstacles.speed must be positive, got %v", ErrInvalid, c.Obstacles.Speed)
	case c.Obstacles.GapHeight <= 0:
		return fmt.Errorf("%w: obstacles.gap_height must be positive, got %v", ErrInvalid, c.Obstacles.GapHeight)
	case c.Obstacles.MinGapOffset < 0:
		return fmt.Errorf("%w: obstacles.min_gap_offset must not be negative, got %d", ErrInvalid, c.Obstacles.MinGapOffset)
	case c.Obstacles.MaxGapOffset <= c.Obstacles.MinGapOffset:
		return fmt.Errorf("%w: obstacles gap offset range [%d, %d) is empty",
			ErrInvalid, c.Obstacles.MinGapOffset, c.Obstacles.MaxGapOffset)
	}
	return nil
}

// checkFinite rejects NaN and infinite values, which the range checks in
// Validate do not catch.
func (c FlappyConfig) checkFinite() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.jump_impulse", c.Physics.JumpImpulse},
		{"player.x", c.Player.X},
		{"player.half_width", c.Player.HalfWidth},
		{"player.start_y", c.Player.StartY},
		{"player.max_tilt_velocity", c.Player.MaxTiltVelocity},
		{"player.tilt_degrees", c.Player.TiltDegrees},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.spacing", c.Obstacles.Spacing},
		{"obstacles.start_x", c.Obstacles.StartX},
		{"obstacles.speed", c.Obstacles.Speed},
		{"obstacles.gap_height", c.Obstacles.GapHeight},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number, got %v", ErrInvalid, f.name, f.value)
		}
	}
	return nil
}
