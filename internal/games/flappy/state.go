package flappy

// Phase is the top-level game state.
type Phase int

const (
	PhaseStart    Phase = iota // Title screen, waiting for Confirm
	PhasePlaying               // Tick loop running
	PhaseGameOver              // Run ended, waiting for Restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Confirm starts a run from the title screen.
// Avatar, obstacles and score are reset on every start.
// Returns false if the game is not on the title screen.
func (g *Game) Confirm() bool {
	if g.phase != PhaseStart {
		return false
	}
	g.body.Reset(g.cfg.Player.StartY)
	g.pool.Reset()
	g.score = 0
	g.ticks = 0
	g.phase = PhasePlaying
	return true
}

// Impulse makes the avatar flap. Returns false unless a run is in progress.
func (g *Game) Impulse() bool {
	if g.phase != PhasePlaying {
		return false
	}
	g.body.Jump()
	return true
}

// Restart returns to the title screen after a game over.
// Returns false in any other phase.
func (g *Game) Restart() bool {
	if g.phase != PhaseGameOver {
		return false
	}
	g.phase = PhaseStart
	return true
}

// TickResult describes one simulation tick.
type TickResult struct {
	Scored  int
	Verdict Verdict
}

// Tick runs physics, moves and recycles obstacles, then checks collisions.
// A Dead verdict ends the run. Tick does nothing outside PhasePlaying.
func (g *Game) Tick() TickResult {
	if g.phase != PhasePlaying {
		return TickResult{Verdict: Alive}
	}

	g.ticks++
	g.body.Tick()
	g.pool.Advance(g.cfg.Obstacles.Speed)
	scored := g.pool.Recycle()
	g.score += scored

	g.scratch = g.pool.AppendTo(g.scratch[:0])
	verdict := g.checker.Evaluate(g.body.AvatarState, g.scratch)
	if verdict == Dead {
		g.phase = PhaseGameOver
	}

	return TickResult{Scored: scored, Verdict: verdict}
}
