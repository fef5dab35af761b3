package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Verdict is the outcome of a collision check.
type Verdict int

const (
	Alive Verdict = iota
	Dead
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	if v == Dead {
		return "Dead"
	}
	return "Alive"
}

// Checker decides whether the avatar survived a tick.
type Checker struct {
	bounds    core.Span // Vertical playfield
	avatar    core.Span // Fixed horizontal extent of the avatar
	pipeWidth float64
	gapHeight float64
}

// NewChecker builds a checker from the game configuration.
func NewChecker(cfg config.FlappyConfig) Checker {
	return Checker{
		bounds:    core.Span{Min: 0, Max: cfg.World.Height},
		avatar:    core.NewSpan(cfg.Player.X, cfg.Player.HalfWidth),
		pipeWidth: cfg.Obstacles.Width,
		gapHeight: cfg.Obstacles.GapHeight,
	}
}

// Evaluate returns Dead if the avatar left the playfield vertically or
// overlaps any obstacle outside its gap. All obstacles are scanned.
func (c Checker) Evaluate(avatar AvatarState, obstacles []Obstacle) Verdict {
	if c.OutOfBounds(avatar.Y) {
		return Dead
	}
	for _, o := range obstacles {
		if c.HitsPipe(avatar.Y, o) {
			return Dead
		}
	}
	return Alive
}

// OutOfBounds returns true if y is above the top or below the bottom edge.
func (c Checker) OutOfBounds(y float64) bool {
	return !c.bounds.Contains(y)
}

// HitsPipe returns true if the avatar column overlaps o and y is outside its gap.
func (c Checker) HitsPipe(y float64, o Obstacle) bool {
	pipe := core.Span{Min: o.X, Max: o.X + c.pipeWidth}
	if !c.avatar.Overlaps(pipe) {
		return false
	}
	gap := core.Span{Min: o.GapOffset, Max: o.GapOffset + c.gapHeight}
	return !gap.Contains(y)
}
