package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/froggit/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// tone is a fixed-length oscillator with a linear fade out. Frequency
// slides from freq to end over the tone's length.
type tone struct {
	rate     beep.SampleRate
	wave     Wave
	freq     float64
	end      float64
	phase    float64
	position int
	total    int
	noise    *rand.Rand
}

func newTone(rate beep.SampleRate, wave Wave, freq, end float64, d time.Duration) *tone {
	return &tone{
		rate:  rate,
		wave:  wave,
		freq:  freq,
		end:   end,
		total: rate.N(d),
		noise: rand.New(rand.NewSource(1)),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}
		progress := float64(t.position) / float64(t.total)

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveNoise:
			v = t.noise.Float64()*2 - 1
		}
		v *= 1 - progress

		samples[i][0] = v
		samples[i][1] = v

		freq := t.freq + (t.end-t.freq)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Stream returns the streamer for a game sound at the given rate and
// volume in [0, 1].
func Stream(s core.Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case core.SoundJump:
		// croak
		st = newTone(rate, WaveSquare, 220, 140, 90*time.Millisecond)
	case core.SoundDeath:
		// splat
		st = beep.Seq(
			newTone(rate, WaveNoise, 0, 0, 160*time.Millisecond),
			newTone(rate, WaveSine, 110, 55, 140*time.Millisecond),
		)
	case core.SoundSuccess:
		// trill
		st = beep.Seq(
			newTone(rate, WaveSine, 660, 660, 70*time.Millisecond),
			newTone(rate, WaveSine, 880, 880, 70*time.Millisecond),
			newTone(rate, WaveSine, 1320, 1320, 120*time.Millisecond),
		)
	default:
		return beep.Silence(0)
	}
	return withVolume(st, volume)
}

// Length returns the number of samples Stream produces for s.
func Length(s core.Sound, rate beep.SampleRate) int {
	switch s {
	case core.SoundJump:
		return rate.N(90 * time.Millisecond)
	case core.SoundDeath:
		return rate.N(160*time.Millisecond) + rate.N(140*time.Millisecond)
	case core.SoundSuccess:
		return 2*rate.N(70*time.Millisecond) + rate.N(120*time.Millisecond)
	default:
		return 0
	}
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	if vol > 1 {
		vol = 1
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
