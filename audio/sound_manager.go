package audio

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/codebreaker/constants"
	"github.com/lixenwraith/codebreaker/core"
	"github.com/lixenwraith/codebreaker/engine"
)

// SoundManager plays short synthesized cues for round events
// It observes the game as an engine.Listener and never mutates it
type SoundManager struct {
	engine.BaseListener

	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	// sink receives finished streamers; replaced in tests
	sink func(beep.Streamer)
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
	sm.sink = sm.addToMixer
	return sm
}

// Initialize sets up the speaker; failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

func (sm *SoundManager) addToMixer(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted silences or re-enables new cues
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports whether cues are suppressed
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

func (sm *SoundManager) play(build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	sm.sink(build())
}

// PlayClick plays the color cycle tick
func (sm *SoundManager) PlayClick() {
	sm.play(func() beep.Streamer { return CreateClickSound(sm.cfg) })
}

// PlayReject plays the refused-submit buzz
func (sm *SoundManager) PlayReject() {
	sm.play(func() beep.Streamer { return CreateRejectSound(sm.cfg) })
}

// PlayPins plays one note per feedback pin
func (sm *SoundManager) PlayPins(feedback core.Feedback) {
	sm.play(func() beep.Streamer { return CreatePinSound(sm.cfg, feedback) })
}

// PlayWin plays the rising arpeggio
func (sm *SoundManager) PlayWin() {
	sm.play(func() beep.Streamer { return CreateWinSound(sm.cfg) })
}

// PlayLose plays the falling line
func (sm *SoundManager) PlayLose() {
	sm.play(func() beep.Streamer { return CreateLoseSound(sm.cfg) })
}

// engine.Listener

func (sm *SoundManager) OnCycle()  { sm.PlayClick() }
func (sm *SoundManager) OnReject() { sm.PlayReject() }

func (sm *SoundManager) OnSubmit(entry engine.HistoryEntry, _ int) {
	// A winning guess is covered by the win jingle
	if entry.Feedback.Solved() {
		return
	}
	sm.PlayPins(entry.Feedback)
}

func (sm *SoundManager) OnRoundEnd(status engine.RoundStatus, _ core.Code, _ int) {
	switch status {
	case engine.StatusWon:
		sm.PlayWin()
	case engine.StatusLost:
		sm.PlayLose()
	}
	log.Debug("round end cue", "status", status)
}
