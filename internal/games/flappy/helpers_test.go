package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// seqRand returns a fixed sequence of values, wrapped into [0, n).
type seqRand struct {
	vals  []int
	calls int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.calls%len(r.vals)] % n
	r.calls++
	return v
}

// newTestGame creates a game whose gaps always start at MinGapOffset+offset.
func newTestGame(t *testing.T, cfg config.FlappyConfig, offset int) *Game {
	t.Helper()
	g, err := NewWithRand(cfg, &seqRand{vals: []int{offset}})
	if err != nil {
		t.Fatalf("NewWithRand() failed: %v", err)
	}
	return g
}
