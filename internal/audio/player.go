// Package audio plays the game's one-shot sounds on the system speaker.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/froggit/internal/core"
)

// SampleRate is the speaker sample rate.
const SampleRate = beep.SampleRate(44100)

// Player is a core.Sounder backed by a beep mixer. Until Init succeeds
// every Play is dropped, so a machine without audio runs silently.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	ready  bool
	played map[core.Sound]int
	logger *log.Logger
}

// NewPlayer creates a player at the given volume in [0, 1].
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		played: make(map[core.Sound]int),
		logger: logger,
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	p.logger.Debug("speaker ready", "rate", int(SampleRate))
	return nil
}

// Play queues a sound. It never blocks on the audio device.
func (p *Player) Play(s core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.played[s]++
	if !p.ready {
		return
	}
	st := Stream(s, SampleRate, p.volume)
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// Played returns how many times s was requested.
func (p *Player) Played(s core.Sound) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[s]
}

// Ready reports whether the speaker is open.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Close drops queued sounds. The speaker itself stays open for the
// life of the process.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.ready = false
}

// Mute is the sounder used when audio is off.
var Mute core.Sounder = core.Silent

// Open returns a started player, or Mute when audio is disabled or the
// speaker cannot be opened. The returned func releases the player.
func Open(enabled bool, logger *log.Logger) (core.Sounder, func()) {
	if !enabled {
		return Mute, func() {}
	}
	p := NewPlayer(0.6, logger)
	if err := p.Init(); err != nil {
		p.logger.Warn("audio disabled", "err", err)
		return Mute, func() {}
	}
	return p, p.Close
}
