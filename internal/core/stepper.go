package core

import (
	"context"
	"fmt"
	"time"
)

// Stepper drives a simulation at a fixed interval, independent of rendering.
type Stepper struct {
	interval time.Duration
}

// NewStepper creates a stepper that waits interval between steps.
func NewStepper(interval time.Duration) (*Stepper, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("core: tick interval must be positive, got %s", interval)
	}
	return &Stepper{interval: interval}, nil
}

// Interval returns the fixed step interval.
func (s *Stepper) Interval() time.Duration {
	return s.interval
}

// Run calls step once per interval while running returns true.
// The guard is re-checked after every step, so the loop exits without
// waiting another interval once the guard turns false.
// Returns the context error if ctx is done first.
func (s *Stepper) Run(ctx context.Context, running func() bool, step func()) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for running() {
		if err := ctx.Err(); err != nil {
			return err
		}

		step()
		if !running() {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
