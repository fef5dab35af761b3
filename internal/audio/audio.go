// Package audio plays short synthesized sound effects for game events.
// Audio is optional: if the output device cannot be opened every call
// becomes a no-op.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// SampleRate is the output sample rate.
const SampleRate = beep.SampleRate(44100)

// Effects maps game events to sounds and mixes them onto the speaker.
type Effects struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	gain        float64
}

// NewEffects creates an effects player with the given volume in [0, 1].
func NewEffects(gain float64) *Effects {
	return &Effects{
		mixer: &beep.Mixer{},
		gain:  core.ClampF(gain, 0, 1),
	}
}

// Init opens the speaker. Safe to call more than once.
func (e *Effects) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Close silences everything and detaches from the speaker.
func (e *Effects) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Clear()
	e.initialized = false
}

// Enabled reports whether sounds will actually be heard.
func (e *Effects) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initialized && !e.muted
}

// SetMuted silences or restores playback.
func (e *Effects) SetMuted(muted bool) {
	e.mu.Lock()
	e.muted = muted
	e.mu.Unlock()
}

// Muted reports the mute flag.
func (e *Effects) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Play queues the sounds for every event in ev.
func (e *Effects) Play(ev core.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized || e.muted {
		return
	}
	sounds := Sounds(ev, e.gain)
	if len(sounds) == 0 {
		return
	}

	speaker.Lock()
	e.mixer.Add(sounds...)
	speaker.Unlock()
}

// Sounds returns one streamer per event in ev. A crash replaces the
// other sounds of the same tick.
func Sounds(ev core.Event, gain float64) []beep.Streamer {
	if ev.Has(core.EventCrash) {
		return []beep.Streamer{CrashSound(SampleRate, gain)}
	}

	var out []beep.Streamer
	if ev.Has(core.EventStart) || ev.Has(core.EventJump) {
		out = append(out, FlapSound(SampleRate, gain))
	}
	if ev.Has(core.EventScore) {
		out = append(out, ScoreSound(SampleRate, gain))
	}
	return out
}
