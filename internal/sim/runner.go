// Package sim runs the game without a display, stepping it on its own
// goroutine at the fixed tick interval.
package sim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Options configures a Runner.
type Options struct {
	Interval time.Duration // Fixed step; defaults to the game's tick interval
	MaxTicks int           // Stop after this many ticks; 0 means until game over
	Policy   Policy        // Defaults to Idle
	Logger   *log.Logger   // Optional

	// OnStep is called on the simulation goroutine after every step.
	OnStep func(flappy.Snapshot, core.Event)
}

// Result summarizes a finished run.
type Result struct {
	Score   int
	Ticks   int
	Jumps   int
	Phase   flappy.Phase
	Elapsed time.Duration
}

// Crashed reports whether the run ended in a collision.
func (r Result) Crashed() bool {
	return r.Phase == flappy.PhaseGameOver
}

// Runner owns a game for the duration of a run. Other goroutines observe
// it only through Snapshots.
type Runner struct {
	game    *flappy.Game
	stepper *core.Stepper
	opts    Options
	pub     flappy.Publisher
}

// NewRunner creates a runner for game.
func NewRunner(game *flappy.Game, opts Options) (*Runner, error) {
	if game == nil {
		return nil, errors.New("sim: nil game")
	}
	if opts.MaxTicks < 0 {
		return nil, fmt.Errorf("sim: negative tick limit %d", opts.MaxTicks)
	}
	if opts.Interval == 0 {
		opts.Interval = game.Config().Physics.TickInterval
	}
	if opts.Policy == nil {
		opts.Policy = Idle
	}

	stepper, err := core.NewStepper(opts.Interval)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	r := &Runner{game: game, stepper: stepper, opts: opts}
	r.pub.Publish(game.Snapshot())
	return r, nil
}

// Snapshots returns the publisher readers poll for the latest state.
func (r *Runner) Snapshots() *flappy.Publisher {
	return &r.pub
}

// Run starts a fresh run and steps it until game over, the tick limit or
// ctx cancellation. A cancelled run still returns its partial result.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	jumps := 0

	r.game.Reset(core.RuntimeConfig{})
	r.step(core.FrameOf(core.ActionConfirm))

	if r.opts.Logger != nil {
		r.opts.Logger.Debug("run started", "interval", r.stepper.Interval(), "max_ticks", r.opts.MaxTicks)
	}

	running := func() bool {
		if r.game.Phase() != flappy.PhasePlaying {
			return false
		}
		return r.opts.MaxTicks == 0 || r.game.Ticks() < r.opts.MaxTicks
	}

	err := r.stepper.Run(ctx, running, func() {
		latest, _ := r.pub.Latest()
		frame := r.opts.Policy.Decide(latest)
		if r.step(frame).Has(core.EventJump) {
			jumps++
		}
	})

	res := Result{
		Score:   r.game.Score(),
		Ticks:   r.game.Ticks(),
		Jumps:   jumps,
		Phase:   r.game.Phase(),
		Elapsed: time.Since(start),
	}

	if r.opts.Logger != nil {
		r.opts.Logger.Info("run finished",
			"score", res.Score,
			"ticks", res.Ticks,
			"jumps", res.Jumps,
			"phase", res.Phase,
			"elapsed", res.Elapsed.Round(time.Millisecond),
		)
	}

	if err != nil {
		return res, fmt.Errorf("sim: run interrupted: %w", err)
	}
	return res, nil
}

func (r *Runner) step(frame core.InputFrame) core.Event {
	res := r.game.Step(frame)
	snap := r.game.Snapshot()
	r.pub.Publish(snap)
	if r.opts.OnStep != nil {
		r.opts.OnStep(snap, res.Events)
	}
	return res.Events
}
