package flappy

import "sync/atomic"

// Snapshot is an immutable copy of everything a renderer reads.
type Snapshot struct {
	Phase     Phase
	Avatar    AvatarState
	Obstacles []Obstacle // Index order, not position order
	Score     int
	Ticks     int
}

// Snapshot copies the current state. The copy shares no memory with the game.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:     g.phase,
		Avatar:    g.body.AvatarState,
		Obstacles: g.pool.AppendTo(make([]Obstacle, 0, g.pool.Len())),
		Score:     g.score,
		Ticks:     g.ticks,
	}
}

// Publisher hands whole snapshots from the simulation goroutine to readers
// on other goroutines. A reader sees either the previous or the next tick,
// never a partially applied one.
type Publisher struct {
	latest  atomic.Pointer[Snapshot]
	version atomic.Uint64
}

// Publish stores s as the latest snapshot. s must not be modified afterwards.
func (p *Publisher) Publish(s Snapshot) {
	p.latest.Store(&s)
	p.version.Add(1)
}

// Latest returns the most recent snapshot, or false if none was published.
func (p *Publisher) Latest() (Snapshot, bool) {
	s := p.latest.Load()
	if s == nil {
		return Snapshot{}, false
	}
	return *s, true
}

// Version returns the number of snapshots published so far.
func (p *Publisher) Version() uint64 {
	return p.version.Load()
}
