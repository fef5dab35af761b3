package sim

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// fixedRand always returns the same value.
type fixedRand int

func (r fixedRand) Intn(n int) int { return int(r) % n }

// cycleRand returns its values in turn.
type cycleRand struct {
	values []int
	calls  int
}

func (r *cycleRand) Intn(n int) int {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v % n
}

func newGame(t *testing.T, gap flappy.Rand) *flappy.Game {
	t.Helper()
	g, err := flappy.NewWithRand(config.DefaultFlappyConfig(), gap)
	if err != nil {
		t.Fatalf("NewWithRand() failed: %v", err)
	}
	return g
}

func TestNewRunnerValidation(t *testing.T) {
	if _, err := NewRunner(nil, Options{}); err == nil {
		t.Error("nil game should be rejected")
	}
	if _, err := NewRunner(newGame(t, fixedRand(0)), Options{MaxTicks: -1}); err == nil {
		t.Error("negative tick limit should be rejected")
	}
	if _, err := NewRunner(newGame(t, fixedRand(0)), Options{Interval: -time.Second}); err == nil {
		t.Error("negative interval should be rejected")
	}
}

func TestIdleRunEndsAfter63Ticks(t *testing.T) {
	r, err := NewRunner(newGame(t, fixedRand(0)), Options{Interval: time.Millisecond})
	if err != nil {
		t.Fatalf("NewRunner() failed: %v", err)
	}

	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.Ticks != 63 || res.Score != 0 || res.Jumps != 0 {
		t.Errorf("result = %+v, expected 63 ticks, no score, no jumps", res)
	}
	if !res.Crashed() {
		t.Errorf("phase = %v, expected GAME_OVER", res.Phase)
	}

	last, ok := r.Snapshots().Latest()
	if !ok || last.Phase != flappy.PhaseGameOver || last.Ticks != 63 {
		t.Errorf("latest snapshot = %+v", last)
	}
}

func TestAutopilotClearsConstantGaps(t *testing.T) {
	// Every gap is [200, 400].
	g := newGame(t, fixedRand(100))
	r, err := NewRunner(g, Options{
		Interval: time.Millisecond,
		MaxTicks: 600,
		Policy:   NewAutopilot(g.Config()),
	})
	if err != nil {
		t.Fatalf("NewRunner() failed: %v", err)
	}

	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.Crashed() {
		t.Fatalf("autopilot crashed: %+v", res)
	}
	if res.Ticks != 600 {
		t.Errorf("ticks = %d, expected the limit of 600", res.Ticks)
	}
	// Recycles happen at ticks 177, 237, ..., 597.
	if res.Score != 8 {
		t.Errorf("score = %d, expected 8", res.Score)
	}
	if res.Jumps == 0 {
		t.Error("autopilot never flapped")
	}
}

func TestAutopilotFollowsGapSteps(t *testing.T) {
	tests := []struct {
		name   string
		values []int
	}{
		{"step down", []int{0, 200}},
		{"step up", []int{200, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Gaps alternate between [100, 300] and [300, 500].
			g := newGame(t, &cycleRand{values: tc.values})
			r, err := NewRunner(g, Options{
				Interval: time.Millisecond,
				MaxTicks: 600,
				Policy:   NewAutopilot(g.Config()),
			})
			if err != nil {
				t.Fatalf("NewRunner() failed: %v", err)
			}

			res, err := r.Run(context.Background())
			if err != nil {
				t.Fatalf("Run() failed: %v", err)
			}
			if res.Crashed() || res.Score != 8 {
				t.Errorf("result = %+v, expected 8 points without a crash", res)
			}
		})
	}
}

func TestAutopilotMissesSteepDrops(t *testing.T) {
	// Run resets the pool, so the course starts at the fourth value: the
	// first gap is [100, 300] and the next one drops to [400, 600].
	g := newGame(t, &cycleRand{values: []int{300, 0}})
	r, err := NewRunner(g, Options{
		Interval: time.Millisecond,
		MaxTicks: 600,
		Policy:   NewAutopilot(g.Config()),
	})
	if err != nil {
		t.Fatalf("NewRunner() failed: %v", err)
	}

	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !res.Crashed() || res.Score != 1 || res.Ticks != 196 {
		t.Errorf("result = %+v, expected a crash at the first drop", res)
	}
}

func TestAutopilotDecisions(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	a := NewAutopilot(cfg)
	gap := []flappy.Obstacle{{X: 300, GapOffset: 200}}

	tests := []struct {
		name string
		snap flappy.Snapshot
		jump bool
	}{
		{"not playing", flappy.Snapshot{Phase: flappy.PhaseStart, Avatar: flappy.AvatarState{Y: 700}}, false},
		{"above target", flappy.Snapshot{Phase: flappy.PhasePlaying, Avatar: flappy.AvatarState{Y: 300}, Obstacles: gap}, false},
		{"below gap centre", flappy.Snapshot{Phase: flappy.PhasePlaying, Avatar: flappy.AvatarState{Y: 340, Velocity: 2}, Obstacles: gap}, false},
		{"below target", flappy.Snapshot{Phase: flappy.PhasePlaying, Avatar: flappy.AvatarState{Y: 395}, Obstacles: gap}, true},
		{"falling toward target", flappy.Snapshot{Phase: flappy.PhasePlaying, Avatar: flappy.AvatarState{Y: 380, Velocity: 6}, Obstacles: gap}, true},
		{"rising past target", flappy.Snapshot{Phase: flappy.PhasePlaying, Avatar: flappy.AvatarState{Y: 395, Velocity: -8}, Obstacles: gap}, false},
		{"no obstacles uses mid height", flappy.Snapshot{Phase: flappy.PhasePlaying, Avatar: flappy.AvatarState{Y: 450}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Decide(tc.snap).Has(core.ActionJump); got != tc.jump {
				t.Errorf("jump = %v, expected %v", got, tc.jump)
			}
		})
	}
}

func TestAutopilotIgnoresPassedObstacles(t *testing.T) {
	a := NewAutopilot(config.DefaultFlappyConfig())

	// The first obstacle is behind the avatar; the second has a high gap.
	snap := flappy.Snapshot{
		Phase:  flappy.PhasePlaying,
		Avatar: flappy.AvatarState{Y: 250},
		Obstacles: []flappy.Obstacle{
			{X: -30, GapOffset: 500},
			{X: 270, GapOffset: 50},
		},
	}
	if !a.Decide(snap).Has(core.ActionJump) {
		t.Error("autopilot should aim for the gap ahead")
	}
}

func TestRunCancelled(t *testing.T) {
	g := newGame(t, fixedRand(100))
	r, err := NewRunner(g, Options{Interval: time.Hour})
	if err != nil {
		t.Fatalf("NewRunner() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	var steps int
	r.opts.OnStep = func(flappy.Snapshot, core.Event) {
		steps++
		if steps == 2 {
			cancel()
		}
	}

	res, err := r.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, expected context.Canceled", err)
	}
	// The confirm step plus one stepped tick.
	if res.Ticks != 2 || res.Phase != flappy.PhasePlaying {
		t.Errorf("partial result = %+v", res)
	}
}

func TestOnStepSeesEvents(t *testing.T) {
	g := newGame(t, fixedRand(0))
	var events core.Event
	r, err := NewRunner(g, Options{
		Interval: time.Millisecond,
		OnStep: func(_ flappy.Snapshot, ev core.Event) {
			events |= ev
		},
	})
	if err != nil {
		t.Fatalf("NewRunner() failed: %v", err)
	}

	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !events.Has(core.EventStart) || !events.Has(core.EventCrash) {
		t.Errorf("events = %b, expected start and crash", events)
	}
}

func TestRunnerCanRunTwice(t *testing.T) {
	r, err := NewRunner(newGame(t, fixedRand(0)), Options{Interval: time.Millisecond})
	if err != nil {
		t.Fatalf("NewRunner() failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		res, err := r.Run(context.Background())
		if err != nil || res.Ticks != 63 {
			t.Errorf("run %d: %+v, %v", i, res, err)
		}
	}
}
