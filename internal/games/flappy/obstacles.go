package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// Rand is the randomness source for gap placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Obstacle is a pipe pair with a passable gap.
type Obstacle struct {
	X         float64 // Horizontal position (left edge)
	GapOffset float64 // Y position where the gap starts (top of gap)
}

// ObstaclePool owns a fixed number of obstacles that are recycled in place.
// Obstacles are addressed by index; recycling never reorders them.
type ObstaclePool struct {
	obstacles []Obstacle
	rng       Rand
	cfg       config.FlappyObstacles
}

// NewObstaclePool creates a pool of cfg.Count obstacles laid out from StartX.
func NewObstaclePool(cfg config.FlappyObstacles, rng Rand) *ObstaclePool {
	p := &ObstaclePool{
		obstacles: make([]Obstacle, cfg.Count),
		rng:       rng,
		cfg:       cfg,
	}
	p.Reset()
	return p
}

// Reset places obstacle i at StartX + i*Spacing with a fresh random gap.
func (p *ObstaclePool) Reset() {
	for i := range p.obstacles {
		p.obstacles[i] = Obstacle{
			X:         p.cfg.StartX + float64(i)*p.cfg.Spacing,
			GapOffset: p.randomGap(),
		}
	}
}

// Advance moves every obstacle left by speed.
func (p *ObstaclePool) Advance(speed float64) {
	for i := range p.obstacles {
		p.obstacles[i].X -= speed
	}
}

// Recycle moves every obstacle whose trailing edge has left the playfield
// to the right of the current rightmost obstacle, with a new random gap.
// Obstacles are visited in index order and the rightmost position is
// recomputed for each one, so a recycle sees earlier recycles of this call.
// Returns the number of obstacles recycled.
func (p *ObstaclePool) Recycle() int {
	recycled := 0
	for i := range p.obstacles {
		if p.obstacles[i].X >= -p.cfg.Width {
			continue
		}
		p.obstacles[i] = Obstacle{
			X:         p.maxX() + p.cfg.Spacing,
			GapOffset: p.randomGap(),
		}
		recycled++
	}
	return recycled
}

// Len returns the fixed pool size.
func (p *ObstaclePool) Len() int {
	return len(p.obstacles)
}

// At returns obstacle i.
func (p *ObstaclePool) At(i int) Obstacle {
	return p.obstacles[i]
}

// AppendTo appends a copy of every obstacle, in index order, to dst.
func (p *ObstaclePool) AppendTo(dst []Obstacle) []Obstacle {
	return append(dst, p.obstacles...)
}

// maxX returns the rightmost obstacle position.
func (p *ObstaclePool) maxX() float64 {
	m := p.obstacles[0].X
	for _, o := range p.obstacles[1:] {
		if o.X > m {
			m = o.X
		}
	}
	return m
}

// randomGap draws a gap offset uniformly from [MinGapOffset, MaxGapOffset).
func (p *ObstaclePool) randomGap() float64 {
	return float64(p.cfg.MinGapOffset + p.rng.Intn(p.cfg.MaxGapOffset-p.cfg.MinGapOffset))
}
