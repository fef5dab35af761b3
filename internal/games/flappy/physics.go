package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// AvatarState is the avatar's vertical position and velocity in world units.
// Positive Y points down.
type AvatarState struct {
	Y        float64
	Velocity float64
}

// Body integrates the avatar under constant gravity.
type Body struct {
	AvatarState
	gravity float64
	impulse float64
}

// NewBody creates a body at rest at startY.
func NewBody(p config.FlappyPhysics, startY float64) Body {
	return Body{
		AvatarState: AvatarState{Y: startY},
		gravity:     p.Gravity,
		impulse:     p.JumpImpulse,
	}
}

// Tick applies one step of semi-implicit Euler: velocity first, then position.
func (b *Body) Tick() {
	b.Velocity += b.gravity
	b.Y += b.Velocity
}

// Jump overwrites the current velocity with the flap impulse.
func (b *Body) Jump() {
	b.Velocity = b.impulse
}

// Reset puts the body at rest at y.
func (b *Body) Reset(y float64) {
	b.AvatarState = AvatarState{Y: y}
}

// Tilt returns the render rotation in degrees for the given player settings.
// The velocity clamp only affects drawing, never the physics.
func (s AvatarState) Tilt(p config.FlappyPlayer) float64 {
	return core.ClampF(s.Velocity, -p.MaxTiltVelocity, p.MaxTiltVelocity) * p.TiltDegrees
}
