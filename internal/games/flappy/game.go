// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// GameID is the identifier used for score storage.
const GameID = "flappy"

// Game owns the whole simulation: phase, avatar, obstacles and score.
type Game struct {
	cfg     config.FlappyConfig
	phase   Phase
	body    Body
	pool    *ObstaclePool
	checker Checker
	score   int
	ticks   int // Ticks since the current run started
	scratch []Obstacle
}

// New creates a game seeded with seed. The configuration is validated.
func New(cfg config.FlappyConfig, seed int64) (*Game, error) {
	return NewWithRand(cfg, rand.New(rand.NewSource(seed)))
}

// NewWithRand creates a game that draws gap offsets from rng.
func NewWithRand(cfg config.FlappyConfig, rng Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("flappy: nil random source")
	}
	return &Game{
		cfg:     cfg,
		phase:   PhaseStart,
		body:    NewBody(cfg.Physics, cfg.Player.StartY),
		pool:    NewObstaclePool(cfg.Obstacles, rng),
		checker: NewChecker(cfg),
		scratch: make([]Obstacle, 0, cfg.Obstacles.Count),
	}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Avatar returns the avatar state.
func (g *Game) Avatar() AvatarState {
	return g.body.AvatarState
}

// Score returns the obstacles cleared in the current or last run.
func (g *Game) Score() int {
	return g.score
}

// Ticks returns the number of ticks in the current or last run.
func (g *Game) Ticks() int {
	return g.ticks
}

// Reset returns to the title screen. A non-zero seed reseeds gap placement.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.Seed != 0 {
		g.pool.rng = rand.New(rand.NewSource(cfg.Seed))
	}
	g.phase = PhaseStart
	g.body.Reset(g.cfg.Player.StartY)
	g.pool.Reset()
	g.score = 0
	g.ticks = 0
}

// Handle applies a single input action. Actions that are not valid in the
// current phase are ignored and reported as not consumed.
func (g *Game) Handle(a core.Action) bool {
	switch a {
	case core.ActionConfirm:
		return g.Confirm()
	case core.ActionJump:
		return g.Impulse()
	case core.ActionRestart:
		return g.Restart()
	}
	return false
}

// Step applies the frame's actions, then runs one tick if a run is in progress.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events core.Event

	if in.Has(core.ActionConfirm) && g.Confirm() {
		events |= core.EventStart
	}
	if in.Has(core.ActionJump) && g.Impulse() {
		events |= core.EventJump
	}
	if in.Has(core.ActionRestart) {
		g.Restart()
	}

	if g.phase == PhasePlaying {
		res := g.Tick()
		if res.Scored > 0 {
			events |= core.EventScore
		}
		if res.Verdict == Dead {
			events |= core.EventCrash
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Playing:  g.phase == PhasePlaying,
		GameOver: g.phase == PhaseGameOver,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	NewRenderer(g.cfg).Render(dst, g.Snapshot())
}

var _ core.Game = (*Game)(nil)
