package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// sweep is an oscillator whose frequency glides linearly from one
// value to another over its duration, with a linear fade out.
type sweep struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	phase    float64
	pos      int
	total    int
}

// NewSweep creates a tone gliding from one frequency to another.
// Use from == to for a steady tone.
func NewSweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:  from,
		to:    to,
		wave:  wave,
		rate:  rate,
		total: rate.N(d),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}

		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (s.phase - 0.5)
		}
		val *= 1 - progress

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// withVolume scales s by a linear gain in [0, 1].
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// FlapSound is a short upward chirp.
func FlapSound(rate beep.SampleRate, gain float64) beep.Streamer {
	return withVolume(NewSweep(420, 760, 70*time.Millisecond, WaveSquare, rate), gain*0.4)
}

// ScoreSound is a two-note ding.
func ScoreSound(rate beep.SampleRate, gain float64) beep.Streamer {
	return withVolume(beep.Seq(
		NewSweep(988, 988, 60*time.Millisecond, WaveSine, rate),
		NewSweep(1319, 1319, 120*time.Millisecond, WaveSine, rate),
	), gain)
}

// CrashSound is a falling buzz.
func CrashSound(rate beep.SampleRate, gain float64) beep.Streamer {
	return withVolume(NewSweep(220, 55, 350*time.Millisecond, WaveSaw, rate), gain*0.6)
}
