package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewStepperRejectsNonPositive(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Millisecond} {
		if _, err := NewStepper(d); err == nil {
			t.Errorf("NewStepper(%s) should fail", d)
		}
	}
}

func TestStepperStopsWhenGuardTurnsFalse(t *testing.T) {
	s, err := NewStepper(time.Millisecond)
	if err != nil {
		t.Fatalf("NewStepper() failed: %v", err)
	}

	steps := 0
	err = s.Run(context.Background(),
		func() bool { return steps < 5 },
		func() { steps++ },
	)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if steps != 5 {
		t.Errorf("expected 5 steps, got %d", steps)
	}
}

func TestStepperNeverStepsWhenGuardStartsFalse(t *testing.T) {
	s, _ := NewStepper(time.Millisecond)

	called := false
	err := s.Run(context.Background(), func() bool { return false }, func() { called = true })
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if called {
		t.Error("step should not run when guard is false")
	}
}

func TestStepperExitsWithoutExtraWait(t *testing.T) {
	// A long interval would block the test if the loop waited after the last step.
	s, _ := NewStepper(time.Hour)

	steps := 0
	done := make(chan error, 1)
	go func() {
		done <- s.Run(context.Background(), func() bool { return steps < 1 }, func() { steps++ })
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() failed: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run() waited an interval after the guard turned false")
	}
}

func TestStepperCancellation(t *testing.T) {
	s, _ := NewStepper(time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	steps := 0
	err := s.Run(ctx,
		func() bool { return true },
		func() {
			steps++
			if steps == 3 {
				cancel()
			}
		},
	)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if steps != 3 {
		t.Errorf("expected 3 steps before cancellation, got %d", steps)
	}
}
