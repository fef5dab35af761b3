package desktop

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	skyColor      = color.RGBA{R: 0x4e, G: 0xc0, B: 0xca, A: 0xff}
	pipeColor     = color.RGBA{R: 0x5c, G: 0xbf, B: 0x2a, A: 0xff}
	pipeEdgeColor = color.RGBA{R: 0x2d, G: 0x6a, B: 0x12, A: 0xff}
	fallbackColor = color.RGBA{R: 0xf7, G: 0xd3, B: 0x08, A: 0xff}
)

// Window is an ebiten.Game that shows one session.
type Window struct {
	session *Session
	sprite  *ebiten.Image
	touches []ebiten.TouchID
}

// NewWindow creates a window for session. A sprite that cannot be decoded
// is replaced by a plain square.
func NewWindow(session *Session) *Window {
	w := &Window{session: session}

	img, err := assets.Bird()
	if err != nil {
		session.opts.Logger.Warn("could not load sprite", "error", err)
		return w
	}
	w.sprite = ebiten.NewImageFromImage(img)
	return w
}

// Update polls input and advances the game by one tick.
func (w *Window) Update() error {
	keys := w.pollKeys()
	if keys.Quit {
		return ebiten.Termination
	}
	if keys.Mute {
		w.session.ToggleMute()
	}

	w.session.Step(keys.Frame(w.session.State()))
	return nil
}

func (w *Window) pollKeys() Keys {
	w.touches = inpututil.AppendJustPressedTouchIDs(w.touches[:0])
	jump := inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW)

	return Keys{
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Jump:    jump,
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Click:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(w.touches) > 0,
		Mute:    inpututil.IsKeyJustPressed(ebiten.KeyM),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	s := w.session.Snapshot()

	if s.Phase == flappy.PhasePlaying {
		for _, o := range s.Obstacles {
			w.drawPipe(screen, o)
		}
		w.drawAvatar(screen, s.Avatar)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", s.Score), 10, 10)
		return
	}

	lines := overlayLines(s, w.session.Best(), w.session.NewBest(), w.session.Muted())
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	for i, line := range lines {
		x, y := centeredOrigin(lines, i, sw, sh)
		ebitenutil.DebugPrintAt(screen, line, x, y)
	}
}

func (w *Window) drawPipe(screen *ebiten.Image, o flappy.Obstacle) {
	cfg := w.session.Config()

	top, bottom := PipeRects(o, cfg)
	capTop, capBottom := CapRects(o, cfg)
	for _, r := range []Rect{top, bottom, capTop, capBottom} {
		if r.Empty() {
			continue
		}
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, pipeColor, false)
		vector.StrokeRect(screen, r.X, r.Y, r.W, r.H, 2, pipeEdgeColor, false)
	}
}

func (w *Window) drawAvatar(screen *ebiten.Image, a flappy.AvatarState) {
	p := w.session.Config().Player
	size := 2 * p.HalfWidth

	if w.sprite == nil {
		vector.DrawFilledRect(screen, float32(p.X-p.HalfWidth), float32(a.Y-p.HalfWidth),
			float32(size), float32(size), fallbackColor, false)
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = avatarGeoM(a, p.X, p.HalfWidth, a.Tilt(p), w.sprite.Bounds())
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(w.sprite, op)
}

// avatarGeoM scales the sprite to the avatar size, rotates it by tilt
// degrees around its center and places the center at (x, a.Y).
func avatarGeoM(a flappy.AvatarState, x, halfWidth, tilt float64, bounds image.Rectangle) ebiten.GeoM {
	sw, sh := float64(bounds.Dx()), float64(bounds.Dy())

	var g ebiten.GeoM
	g.Translate(-sw/2, -sh/2)
	if sw > 0 {
		g.Scale(2*halfWidth/sw, 2*halfWidth/sw)
	}
	g.Rotate(tilt * math.Pi / 180)
	g.Translate(x, a.Y)
	return g
}

// Layout keeps the logical screen at the world size.
func (w *Window) Layout(_, _ int) (int, int) {
	world := w.session.Config().World
	return int(world.Width), int(world.Height)
}

// Run opens the window and blocks until it is closed.
func Run(session *Session, interval time.Duration) error {
	w := NewWindow(session)
	world := session.Config().World

	ebiten.SetWindowSize(int(world.Width), int(world.Height))
	ebiten.SetWindowTitle(session.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(ticksPerSecond(interval))
	if img, err := assets.Bird(); err == nil {
		ebiten.SetWindowIcon([]image.Image{img})
	}

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
