// Package desktop runs the game in a native window using Ebitengine.
package desktop

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Sounder plays event sounds. *audio.Effects satisfies it.
type Sounder interface {
	Play(ev core.Event)
	SetMuted(muted bool)
}

// Options configures a window session. Every field is optional.
type Options struct {
	Store  *storage.Store      // Shared scores database
	Prefs  *storage.PrefsStore // Mute flag and local best
	Sound  Sounder             // Event sounds
	Player string              // Name saved with each run
	Logger *log.Logger
}

// Session drives one game for the window and handles everything that
// happens around a run: sounds, the mute toggle and saving results.
type Session struct {
	game    *flappy.Game
	opts    Options
	best    int
	newBest bool
	saved   bool
}

// NewSession wraps game. The best score is the higher of the local best
// and the database high score.
func NewSession(game *flappy.Game, opts Options) *Session {
	if opts.Prefs == nil {
		opts.Prefs = storage.NewPrefsStore(nil)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	opts.Player = storage.NormalizePlayer(opts.Player)

	s := &Session{
		game: game,
		opts: opts,
		best: opts.Prefs.Prefs().LocalBest,
	}

	if opts.Sound != nil {
		opts.Sound.SetMuted(opts.Prefs.Prefs().Muted)
	}
	if opts.Store != nil {
		hs, err := opts.Store.HighScore(game.ID())
		if err != nil {
			opts.Logger.Warn("could not read high score", "error", err)
		}
		s.best = max(s.best, hs)
	}
	return s
}

// Step advances the game by one frame.
func (s *Session) Step(frame core.InputFrame) core.StepResult {
	res := s.game.Step(frame)

	if res.Events.Has(core.EventStart) {
		s.saved = false
		s.newBest = false
	}
	if s.opts.Sound != nil && res.Events != 0 {
		s.opts.Sound.Play(res.Events)
	}
	if res.State.GameOver && !s.saved {
		s.finish()
	}
	return res
}

// finish records the result of the run that just ended.
func (s *Session) finish() {
	s.saved = true
	score := s.game.Score()

	if score > s.best {
		s.best = score
		s.newBest = true
	}
	if s.opts.Prefs.RecordScore(score) {
		if err := s.opts.Prefs.Save(); err != nil {
			s.opts.Logger.Warn("could not save prefs", "error", err)
		}
	}

	if s.opts.Store == nil || score <= 0 {
		return
	}
	_, err := s.opts.Store.SaveRun(storage.Run{
		GameID: s.game.ID(),
		Player: s.opts.Player,
		Score:  score,
		Ticks:  s.game.Ticks(),
	})
	if err != nil {
		s.opts.Logger.Error("could not save score", "error", err)
		return
	}
	s.opts.Logger.Info("run saved", "player", s.opts.Player, "score", score, "ticks", s.game.Ticks())
}

// ToggleMute flips and persists the mute flag. Returns the new value.
func (s *Session) ToggleMute() bool {
	muted := s.opts.Prefs.ToggleMuted()
	if s.opts.Sound != nil {
		s.opts.Sound.SetMuted(muted)
	}
	if err := s.opts.Prefs.Save(); err != nil {
		s.opts.Logger.Warn("could not save prefs", "error", err)
	}
	return muted
}

// Muted reports the mute flag.
func (s *Session) Muted() bool {
	return s.opts.Prefs.Prefs().Muted
}

// Best returns the best score known to this session.
func (s *Session) Best() int {
	return s.best
}

// NewBest reports whether the last finished run set the best score.
func (s *Session) NewBest() bool {
	return s.newBest
}

// State returns the platform-facing game state.
func (s *Session) State() core.GameState {
	return s.game.State()
}

// Snapshot returns a copy of the game state for drawing.
func (s *Session) Snapshot() flappy.Snapshot {
	return s.game.Snapshot()
}

// Config returns the game configuration.
func (s *Session) Config() config.FlappyConfig {
	return s.game.Config()
}
