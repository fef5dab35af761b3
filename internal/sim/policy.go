package sim

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Policy decides the input for the next tick from the latest snapshot.
type Policy interface {
	Decide(s flappy.Snapshot) core.InputFrame
}

// PolicyFunc adapts a function to the Policy interface.
type PolicyFunc func(s flappy.Snapshot) core.InputFrame

// Decide calls f(s).
func (f PolicyFunc) Decide(s flappy.Snapshot) core.InputFrame {
	return f(s)
}

// Idle never flaps.
var Idle Policy = PolicyFunc(func(flappy.Snapshot) core.InputFrame {
	return core.NewInputFrame()
})

// Autopilot is a demo controller. It flaps whenever the avatar is predicted
// to sink below the bottom of the next gap.
//
// A flap lifts the avatar by more than half a gap, so the bottom of the gap
// is the only safe target: aiming at the centre overshoots into the upper
// pipe. The autopilot does not plan across gaps: it follows steps of up to
// 250 units between neighbouring gaps, and a steeper step usually ends the
// run, so random gaps rarely last more than a handful of points.
type Autopilot struct {
	cfg       config.FlappyConfig
	margin    float64 // Distance kept above the bottom of the gap
	lookahead float64 // Ticks of velocity used for the prediction
}

// NewAutopilot creates an autopilot for the given world.
func NewAutopilot(cfg config.FlappyConfig) *Autopilot {
	return &Autopilot{cfg: cfg, margin: 10, lookahead: 2}
}

// Decide implements Policy.
func (a *Autopilot) Decide(s flappy.Snapshot) core.InputFrame {
	frame := core.NewInputFrame()
	if s.Phase != flappy.PhasePlaying {
		return frame
	}

	target := a.cfg.World.Height / 2
	if o, ok := a.nextObstacle(s.Obstacles); ok {
		target = o.GapOffset + a.cfg.Obstacles.GapHeight - a.margin
	}

	predicted := s.Avatar.Y + s.Avatar.Velocity*a.lookahead
	if predicted > target {
		frame.Set(core.ActionJump)
	}
	return frame
}

// nextObstacle returns the leftmost obstacle the avatar has not fully passed.
func (a *Autopilot) nextObstacle(obstacles []flappy.Obstacle) (flappy.Obstacle, bool) {
	rear := a.cfg.Player.X - a.cfg.Player.HalfWidth

	var best flappy.Obstacle
	found := false
	for _, o := range obstacles {
		if o.X+a.cfg.Obstacles.Width < rear {
			continue
		}
		if !found || o.X < best.X {
			best = o
			found = true
		}
	}
	return best, found
}
