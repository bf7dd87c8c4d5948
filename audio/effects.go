package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/codebreaker/constants"
	"github.com/lixenwraith/codebreaker/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero volume is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func note(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

func (cfg *AudioConfig) volume(t SoundType) float64 {
	return cfg.EffectVolumes[t] * cfg.MasterVolume
}

// Sound effect generators

// CreateClickSound generates a tiny tick for a color change
func CreateClickSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := note(1200, WaveSine, constants.ClickSoundDuration, constants.ClickSoundAttack, constants.ClickSoundRelease, rate)
	return newVolume(s, cfg.volume(SoundClick))
}

// CreateRejectSound generates a noise tick followed by a short harsh buzz for a refused submit
func CreateRejectSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	tick := note(0, WaveNoise, constants.ErrorNoiseDuration, 0, constants.ErrorNoiseRelease, rate)
	buzz := note(100, WaveSaw, constants.ErrorSoundDuration, constants.ErrorSoundAttack, constants.ErrorSoundRelease, rate)
	return newVolume(beep.Seq(tick, buzz), cfg.volume(SoundReject))
}

// Pin note pitches: black high, white middle, empty low
const (
	pinFreqBlack = 1318.51 // E6
	pinFreqWhite = 987.77  // B5
	pinFreqNone  = 220.0   // A3
)

// CreatePinSound plays one note per pin of the feedback row
func CreatePinSound(cfg *AudioConfig, feedback core.Feedback) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	pins := feedback.Pins()

	notes := make([]beep.Streamer, 0, len(pins))
	for _, p := range pins {
		freq, wave := pinFreqNone, WaveSine
		switch p {
		case core.PinBlack:
			freq, wave = pinFreqBlack, WaveSquare
		case core.PinWhite:
			freq = pinFreqWhite
		}
		notes = append(notes, note(freq, wave, constants.PinSoundDuration, constants.PinSoundAttack, constants.PinSoundRelease, rate))
	}
	return newVolume(beep.Seq(notes...), cfg.volume(SoundPins))
}

// jingle plays freqs in order as equal-length notes
func jingle(cfg *AudioConfig, t SoundType, wave WaveType, freqs ...float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = note(f, wave, constants.JingleNoteDuration, constants.JingleNoteAttack, constants.JingleNoteRelease, rate)
	}
	return newVolume(beep.Seq(notes...), cfg.volume(t))
}

// CreateWinSound generates a rising C major arpeggio
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	return jingle(cfg, SoundWin, WaveSquare, 523.25, 659.25, 783.99, 1046.50)
}

// CreateLoseSound generates a falling minor line
func CreateLoseSound(cfg *AudioConfig) beep.Streamer {
	return jingle(cfg, SoundLose, WaveSaw, 392.00, 311.13, 261.63, 196.00)
}
