// Package audio synthesizes Star Defender's sound effects with beep and plays
// them on the system speaker. Audio is optional: every method is safe to call
// when the speaker could not be initialized.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/star-defender/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player plays game sounds.
type Player struct {
	mu          sync.Mutex
	volume      float64
	muted       bool
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player. Call Initialize to open the speaker.
func NewPlayer(logger *log.Logger) *Player {
	return &Player{volume: defaultMasterVol, logger: logger}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// Start initializes the speaker and logs instead of failing; the game runs
// silently without a sound device.
func (p *Player) Start() {
	if err := p.Initialize(); err != nil && p.logger != nil {
		p.logger.Warn("audio disabled", "error", err)
	}
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// SetVolume sets the master volume, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = core.ClampF(v, 0, 1)
}

// ToggleMute flips the mute state and reports whether sound is now on.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return !p.muted
}

// Enabled reports whether sounds will actually be heard.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized && !p.muted
}

// Play starts a sound without blocking.
func (p *Player) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	if st := Effect(s, sampleRate, p.volume); st != nil {
		speaker.Play(st)
	}
}

// PlayEvents plays the sound for each distinct kind of event in a tick.
// Several hits in one tick produce a single hit sound.
func (p *Player) PlayEvents(events []core.Event) {
	var seen [4]bool
	for _, ev := range events {
		s := SoundFor(ev.Kind)
		if s == SoundNone || seen[s-1] {
			continue
		}
		seen[s-1] = true
		p.Play(s)
	}
}

// SoundFor maps a game event to its sound.
func SoundFor(kind core.EventKind) Sound {
	switch kind {
	case core.EventStart:
		return SoundStart
	case core.EventFire:
		return SoundFire
	case core.EventHit:
		return SoundHit
	case core.EventGameOver:
		return SoundGameOver
	default:
		return SoundNone
	}
}
