package desktop

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Glyph size of the debug font in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// capOverhang is how far a pipe cap sticks out on each side.
const capOverhang = 4

// capHeight is the height of a pipe cap.
const capHeight = 24

// Rect is an axis-aligned rectangle in window pixels.
type Rect struct {
	X, Y, W, H float32
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// PipeRects returns the upper and lower pipe of o. The world is drawn at
// one pixel per unit, so the rectangles are the obstacle's world bounds.
func PipeRects(o flappy.Obstacle, cfg config.FlappyConfig) (top, bottom Rect) {
	w := float32(cfg.Obstacles.Width)
	gapTop := float32(o.GapOffset)
	gapBottom := float32(o.GapOffset + cfg.Obstacles.GapHeight)

	top = Rect{X: float32(o.X), Y: 0, W: w, H: gapTop}
	bottom = Rect{X: float32(o.X), Y: gapBottom, W: w, H: float32(cfg.World.Height) - gapBottom}
	return top, bottom
}

// CapRects returns the caps drawn at the gap edges of o.
func CapRects(o flappy.Obstacle, cfg config.FlappyConfig) (top, bottom Rect) {
	x := float32(o.X) - capOverhang
	w := float32(cfg.Obstacles.Width) + 2*capOverhang
	gapTop := float32(o.GapOffset)
	gapBottom := float32(o.GapOffset + cfg.Obstacles.GapHeight)

	top = Rect{X: x, Y: gapTop - capHeight, W: w, H: capHeight}
	bottom = Rect{X: x, Y: gapBottom, W: w, H: capHeight}
	return top, bottom
}

// Keys holds the controls pressed during one frame.
type Keys struct {
	Confirm bool
	Jump    bool
	Restart bool
	Click   bool // Left mouse button or a touch
	Mute    bool
	Quit    bool
}

// Frame converts the pressed keys into an input frame for state.
// A click stands for whichever action the state expects.
func (k Keys) Frame(state core.GameState) core.InputFrame {
	frame := core.NewInputFrame()
	if k.Confirm {
		frame.Set(core.ActionConfirm)
	}
	if k.Jump {
		frame.Set(core.ActionJump)
	}
	if k.Restart {
		frame.Set(core.ActionRestart)
	}
	if k.Click {
		frame.Set(core.PrimaryAction(state))
	}
	return frame
}

// ticksPerSecond converts a tick interval to the nearest whole update rate.
func ticksPerSecond(interval time.Duration) int {
	if interval <= 0 {
		interval = core.DefaultTickInterval
	}
	return max(int(math.Round(float64(time.Second)/float64(interval))), 1)
}

// overlayLines returns the text shown on top of the world.
func overlayLines(s flappy.Snapshot, best int, newBest, muted bool) []string {
	switch s.Phase {
	case flappy.PhaseStart:
		lines := []string{
			"FLAPPY BIRD",
			"",
			"Press ENTER or click to start",
			"SPACE to flap  |  M to mute  |  Q to quit",
		}
		if best > 0 {
			lines = append(lines, "", fmt.Sprintf("Best: %d", best))
		}
		if muted {
			lines = append(lines, "(muted)")
		}
		return lines

	case flappy.PhaseGameOver:
		lines := []string{"Game Over", "", fmt.Sprintf("Score: %d", s.Score)}
		if newBest {
			lines = append(lines, "New best!")
		} else if best > 0 {
			lines = append(lines, fmt.Sprintf("Best: %d", best))
		}
		return append(lines, "", "Press R to restart")
	}
	return nil
}

// centeredOrigin returns where lines[line] starts when the whole block is
// centered in a w by h window.
func centeredOrigin(lines []string, line int, w, h int) (x, y int) {
	x = (w - len(lines[line])*glyphW) / 2
	y = (h-len(lines)*glyphH)/2 + line*glyphH
	return max(x, 0), max(y, 0)
}
