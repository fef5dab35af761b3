package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{
			Width:  800,
			Height: 800,
		},
		Physics: FlappyPhysics{
			Gravity:      0.25,
			JumpImpulse:  -8,
			TickInterval: 16 * time.Millisecond,
		},
		Player: FlappyPlayer{
			X:               100,
			HalfWidth:       20,
			StartY:          300,
			MaxTiltVelocity: 15,
			TiltDegrees:     10,
		},
		Obstacles: FlappyObstacles{
			Count:        3,
			Width:        80,
			Spacing:      300,
			StartX:       800,
			Speed:        5,
			GapHeight:    200,
			MinGapOffset: 100,
			MaxGapOffset: 600,
		},
	}
}
