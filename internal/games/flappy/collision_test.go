package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestCheckerPipeCollision(t *testing.T) {
	c := NewChecker(config.DefaultFlappyConfig())

	// Pipe spans [90, 170], avatar spans [80, 120], gap is [200, 400].
	pipe := []Obstacle{{X: 90, GapOffset: 200}}

	tests := []struct {
		name string
		y    float64
		want Verdict
	}{
		{"above gap", 50, Dead},
		{"inside gap", 300, Alive},
		{"top edge of gap", 200, Alive},
		{"bottom edge of gap", 400, Alive},
		{"just above gap", 199.5, Dead},
		{"below gap", 450, Dead},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Evaluate(AvatarState{Y: tc.y}, pipe)
			if got != tc.want {
				t.Errorf("Evaluate(y=%v) = %v, expected %v", tc.y, got, tc.want)
			}
		})
	}
}

func TestCheckerNoHorizontalOverlap(t *testing.T) {
	c := NewChecker(config.DefaultFlappyConfig())

	tests := []struct {
		name string
		x    float64
		want Verdict
	}{
		{"pipe ahead", 121, Alive},
		{"pipe touching front", 120, Dead},
		{"pipe touching back", 0, Dead},
		{"pipe passed", -0.5, Alive},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// y=50 is outside the gap, so only the horizontal test matters.
			got := c.Evaluate(AvatarState{Y: 50}, []Obstacle{{X: tc.x, GapOffset: 200}})
			if got != tc.want {
				t.Errorf("Evaluate(pipe x=%v) = %v, expected %v", tc.x, got, tc.want)
			}
		})
	}
}

func TestCheckerOutOfBounds(t *testing.T) {
	c := NewChecker(config.DefaultFlappyConfig())

	// Obstacles far away never matter for bounds.
	far := []Obstacle{{X: 600, GapOffset: 300}, {X: 900, GapOffset: 100}}

	tests := []struct {
		y    float64
		want Verdict
	}{
		{-1, Dead},
		{801, Dead},
		{0, Alive},
		{800, Alive},
		{400, Alive},
	}

	for _, tc := range tests {
		if got := c.Evaluate(AvatarState{Y: tc.y}, far); got != tc.want {
			t.Errorf("Evaluate(y=%v) = %v, expected %v", tc.y, got, tc.want)
		}
		if got := c.Evaluate(AvatarState{Y: tc.y}, nil); got != tc.want {
			t.Errorf("Evaluate(y=%v, no obstacles) = %v, expected %v", tc.y, got, tc.want)
		}
	}
}

func TestCheckerScansAllObstacles(t *testing.T) {
	c := NewChecker(config.DefaultFlappyConfig())

	obstacles := []Obstacle{
		{X: 600, GapOffset: 0},
		{X: 900, GapOffset: 0},
		{X: 100, GapOffset: 500}, // Last one overlaps and y=300 is outside [500, 700]
	}
	if got := c.Evaluate(AvatarState{Y: 300}, obstacles); got != Dead {
		t.Errorf("Evaluate() = %v, expected Dead from the last obstacle", got)
	}
}

func TestVerdictString(t *testing.T) {
	if Alive.String() != "Alive" || Dead.String() != "Dead" {
		t.Errorf("unexpected verdict names %q, %q", Alive, Dead)
	}
}
