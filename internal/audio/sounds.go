package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Sound identifies a game sound effect.
type Sound int

const (
	SoundNone Sound = iota
	SoundStart
	SoundFire
	SoundHit
	SoundGameOver
)

// String returns the sound's name.
func (s Sound) String() string {
	switch s {
	case SoundStart:
		return "start"
	case SoundFire:
		return "fire"
	case SoundHit:
		return "hit"
	case SoundGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// Effect timings.
const (
	fireDuration     = 60 * time.Millisecond
	hitDuration      = 120 * time.Millisecond
	gameOverNote     = 180 * time.Millisecond
	startNote        = 70 * time.Millisecond
	effectAttack     = 5 * time.Millisecond
	effectRelease    = 40 * time.Millisecond
	gameOverRelease  = 120 * time.Millisecond
	defaultMasterVol = 0.5
)

// DefaultVolume is the master volume a new Player starts at.
const DefaultVolume = defaultMasterVol

// fireSound is a short high zap sweeping downward.
func fireSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(1400, 700, fireDuration, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, fireDuration, effectAttack, effectRelease, rate), 0.25)
}

// hitSound is a noise burst layered over a low thump.
func hitSound(rate beep.SampleRate) beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, hitDuration, WaveNoise, rate), hitDuration, effectAttack, hitDuration/2, rate)
	thump := NewEnvelope(NewSweep(180, 60, hitDuration, WaveSine, rate), hitDuration, effectAttack, effectRelease, rate)
	return beep.Mix(newVolume(noise, 0.35), newVolume(thump, 0.6))
}

// gameOverSound is three descending saw notes.
func gameOverSound(rate beep.SampleRate) beep.Streamer {
	notes := []float64{392.00, 311.13, 196.00}
	seq := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		osc := NewOscillator(f, gameOverNote, WaveSaw, rate)
		seq[i] = NewEnvelope(osc, gameOverNote, effectAttack, gameOverRelease, rate)
	}
	return newVolume(beep.Seq(seq...), 0.4)
}

// startSound is a rising two-note chime.
func startSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(659.25, startNote, WaveSquare, rate), startNote, effectAttack, effectRelease, rate)
	n2 := NewEnvelope(NewOscillator(987.77, startNote*2, WaveSquare, rate), startNote*2, effectAttack, effectRelease, rate)
	return newVolume(beep.Seq(n1, n2), 0.25)
}

// Effect builds a fresh streamer for the sound at the given volume (0..1).
// Returns nil for SoundNone.
func Effect(s Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundStart:
		st = startSound(rate)
	case SoundFire:
		st = fireSound(rate)
	case SoundHit:
		st = hitSound(rate)
	case SoundGameOver:
		st = gameOverSound(rate)
	default:
		return nil
	}
	return newVolume(st, volume)
}
