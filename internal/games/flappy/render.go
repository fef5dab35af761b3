package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BodyChar      = '●'
	BeakLevel     = '▶'
	BeakRising    = '◥'
	BeakFalling   = '◢'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
)

// tiltThreshold is the tilt in degrees past which the beak glyph changes.
const tiltThreshold = 45

// Renderer draws snapshots into a character screen, scaling the world to fit.
type Renderer struct {
	cfg config.FlappyConfig
}

// NewRenderer creates a renderer for the given world configuration.
func NewRenderer(cfg config.FlappyConfig) Renderer {
	return Renderer{cfg: cfg}
}

// Render draws s to dst. The world is only drawn while a run is in progress.
func (r Renderer) Render(dst *core.Screen, s Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	switch s.Phase {
	case PhaseStart:
		r.drawCenteredMessage(dst, "FLAPPY BIRD", "Press ENTER to Start", "SPACE to flap  |  Q to quit")

	case PhasePlaying:
		for _, o := range s.Obstacles {
			r.drawPipe(dst, o)
		}
		r.drawAvatar(dst, s.Avatar)
		dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", s.Score), core.ColorWhite)

	case PhaseGameOver:
		r.drawCenteredMessage(dst, "Game Over", fmt.Sprintf("Score: %d", s.Score), "Press R to restart")
	}
}

// col maps a world x coordinate to a screen column.
func (r Renderer) col(dst *core.Screen, x float64) int {
	return int(math.Floor(x * float64(dst.Width()) / r.cfg.World.Width))
}

// row maps a world y coordinate to a screen row.
func (r Renderer) row(dst *core.Screen, y float64) int {
	return int(math.Floor(y * float64(dst.Height()) / r.cfg.World.Height))
}

// drawPipe renders a single obstacle: a top section above the gap and a
// bottom section below it.
func (r Renderer) drawPipe(dst *core.Screen, o Obstacle) {
	x0 := r.col(dst, o.X)
	x1 := core.Max(r.col(dst, o.X+r.cfg.Obstacles.Width), x0+1)
	gapTop := r.row(dst, o.GapOffset)
	gapBottom := r.row(dst, o.GapOffset+r.cfg.Obstacles.GapHeight)
	w := x1 - x0

	dst.FillRect(core.NewRect(x0, 0, w, gapTop), PipeChar, core.ColorGreen)
	dst.FillRect(core.NewRect(x0, gapBottom, w, dst.Height()-gapBottom), PipeChar, core.ColorGreen)

	for x := x0; x < x1; x++ {
		if gapTop > 0 {
			dst.SetColored(x, gapTop-1, PipeCapTop, core.ColorBrightGreen)
		}
		if gapBottom < dst.Height() {
			dst.SetColored(x, gapBottom, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

// drawAvatar renders the bird with a beak that follows the tilt.
func (r Renderer) drawAvatar(dst *core.Screen, a AvatarState) {
	x := r.col(dst, r.cfg.Player.X)
	y := core.Clamp(r.row(dst, a.Y), 0, dst.Height()-1)

	beak := BeakLevel
	switch tilt := a.Tilt(r.cfg.Player); {
	case tilt <= -tiltThreshold:
		beak = BeakRising
	case tilt >= tiltThreshold:
		beak = BeakFalling
	}

	dst.SetColored(x-1, y, BodyChar, core.ColorBrightYellow)
	dst.SetColored(x, y, beak, core.ColorYellow)
}

// drawCenteredMessage draws a boxed message in the center of the screen.
// The first line is the title; the rest follow after a blank line.
func (r Renderer) drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGray)

	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorWhite)
	}
}
