package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func newTestPool(positions ...float64) *ObstaclePool {
	cfg := config.DefaultFlappyConfig().Obstacles
	cfg.Count = len(positions)
	p := NewObstaclePool(cfg, &seqRand{vals: []int{50}})
	for i, x := range positions {
		p.obstacles[i].X = x
	}
	return p
}

func TestPoolInitialLayout(t *testing.T) {
	p := NewObstaclePool(config.DefaultFlappyConfig().Obstacles, &seqRand{vals: []int{0, 250, 499}})

	if p.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", p.Len())
	}

	wantX := []float64{800, 1100, 1400}
	wantGap := []float64{100, 350, 599}
	for i := 0; i < p.Len(); i++ {
		o := p.At(i)
		if o.X != wantX[i] {
			t.Errorf("obstacle %d: X = %v, expected %v", i, o.X, wantX[i])
		}
		if o.GapOffset != wantGap[i] {
			t.Errorf("obstacle %d: GapOffset = %v, expected %v", i, o.GapOffset, wantGap[i])
		}
	}
}

func TestPoolAdvance(t *testing.T) {
	p := newTestPool(800, 1100, 1400)
	p.Advance(5)

	for i, want := range []float64{795, 1095, 1395} {
		if got := p.At(i).X; got != want {
			t.Errorf("obstacle %d: X = %v, expected %v", i, got, want)
		}
	}
}

func TestPoolRecycleSingle(t *testing.T) {
	p := newTestPool(-81, 200, 500)

	if n := p.Recycle(); n != 1 {
		t.Fatalf("Recycle() = %d, expected 1", n)
	}

	if got := p.At(0); got.X != 800 || got.GapOffset != 150 {
		t.Errorf("recycled obstacle = %+v, expected X=800 GapOffset=150", got)
	}
	if p.At(1).X != 200 || p.At(2).X != 500 {
		t.Errorf("untouched obstacles moved: %+v %+v", p.At(1), p.At(2))
	}
}

func TestPoolRecycleBoundaryIsStrict(t *testing.T) {
	// Exactly at -width the trailing edge is still on the boundary.
	p := newTestPool(-80, 220, 520)

	if n := p.Recycle(); n != 0 {
		t.Fatalf("Recycle() = %d, expected 0", n)
	}
	if p.At(0).X != -80 {
		t.Errorf("obstacle at the boundary should stay, X = %v", p.At(0).X)
	}
}

func TestPoolRecycleRecomputesMaxEachTime(t *testing.T) {
	p := newTestPool(-90, -85, 100)

	if n := p.Recycle(); n != 2 {
		t.Fatalf("Recycle() = %d, expected 2", n)
	}

	// First recycle sees max=100, the second sees the first one's new position.
	if p.At(0).X != 400 {
		t.Errorf("obstacle 0: X = %v, expected 400", p.At(0).X)
	}
	if p.At(1).X != 700 {
		t.Errorf("obstacle 1: X = %v, expected 700", p.At(1).X)
	}
	if p.At(2).X != 100 {
		t.Errorf("obstacle 2 should be untouched, X = %v", p.At(2).X)
	}
}

func TestPoolRecycleKeepsIndexOrder(t *testing.T) {
	p := newTestPool(300, -100, 600)
	p.Recycle()

	// Obstacle 1 is now rightmost but keeps its index.
	if p.At(1).X != 900 {
		t.Errorf("obstacle 1: X = %v, expected 900", p.At(1).X)
	}
	if p.At(0).X != 300 || p.At(2).X != 600 {
		t.Error("recycling must not reorder obstacles")
	}
}

func TestPoolGapRange(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Obstacles
	p := NewObstaclePool(cfg, rand.New(rand.NewSource(7)))

	for i := 0; i < 1000; i++ {
		g := p.randomGap()
		if g < 100 || g >= 600 {
			t.Fatalf("gap offset %v outside [100, 600)", g)
		}
	}
}

func TestPoolSizeIsFixed(t *testing.T) {
	p := newTestPool(800, 1100, 1400)

	for i := 0; i < 1000; i++ {
		p.Advance(5)
		p.Recycle()
	}
	if p.Len() != 3 {
		t.Errorf("pool size changed to %d", p.Len())
	}
}

func TestPoolSeededIsReproducible(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Obstacles
	a := NewObstaclePool(cfg, rand.New(rand.NewSource(99)))
	b := NewObstaclePool(cfg, rand.New(rand.NewSource(99)))

	for i := 0; i < 500; i++ {
		a.Advance(5)
		b.Advance(5)
		if a.Recycle() != b.Recycle() {
			t.Fatal("recycle counts diverged")
		}
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			t.Errorf("obstacle %d diverged: %+v vs %+v", i, a.At(i), b.At(i))
		}
	}
}
