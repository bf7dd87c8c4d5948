package constants

import "time"

// Audio Engine Setup
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Cycle Click Timing
const (
	ClickSoundDuration = 30 * time.Millisecond
	ClickSoundAttack   = 2 * time.Millisecond
	ClickSoundRelease  = 15 * time.Millisecond
)

// Reject Buzz Timing
const (
	ErrorSoundDuration = 80 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 20 * time.Millisecond
	ErrorNoiseDuration = 15 * time.Millisecond
	ErrorNoiseRelease  = 10 * time.Millisecond
)

// Pin Chime Timing (one short note per pin after a submit)
const (
	PinSoundDuration = 90 * time.Millisecond
	PinSoundAttack   = 5 * time.Millisecond
	PinSoundRelease  = 50 * time.Millisecond
)

// Win/Lose Jingle Timing
const (
	JingleNoteDuration = 140 * time.Millisecond
	JingleNoteAttack   = 5 * time.Millisecond
	JingleNoteRelease  = 80 * time.Millisecond
)
