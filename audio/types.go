package audio

import "github.com/lixenwraith/codebreaker/constants"

// SoundType represents different sound effects
type SoundType int

const (
	SoundClick  SoundType = iota // Color cycled
	SoundReject                  // Submit refused, row not ready
	SoundPins                    // Guess scored
	SoundWin                     // Code broken
	SoundLose                    // Out of attempts
	soundTypeCount
)

// AudioConfig holds playback parameters
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns enabled audio at a moderate volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundClick:  0.3,
			SoundReject: 0.6,
			SoundPins:   0.5,
			SoundWin:    0.6,
			SoundLose:   0.6,
		},
	}
}
