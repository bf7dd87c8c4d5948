package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/codebreaker/constants"
	"github.com/lixenwraith/codebreaker/core"
)

// drain counts samples until the streamer finishes, failing if it never does
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = max(peak, smp[0], -smp[0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Streamer never finished")
	return 0, 0
}

// TestOscillatorDuration verifies the oscillator stops after its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(constants.AudioSampleRate)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		n, _ := drain(t, NewOscillator(440, constants.ClickSoundDuration, wave, rate))
		if n != rate.N(constants.ClickSoundDuration) {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, rate.N(constants.ClickSoundDuration), n)
		}
	}
}

// TestEnvelopeBoundsAmplitude verifies the envelope never amplifies
func TestEnvelopeBoundsAmplitude(t *testing.T) {
	rate := beep.SampleRate(constants.AudioSampleRate)
	s := note(440, WaveSquare, constants.PinSoundDuration, constants.PinSoundAttack, constants.PinSoundRelease, rate)
	_, peak := drain(t, s)
	if peak > 1.0 {
		t.Errorf("Expected peak <= 1.0, got %f", peak)
	}
	if peak == 0 {
		t.Error("Expected audible output")
	}
}

// TestPinSoundLength verifies one note per pin position
func TestPinSoundLength(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	n, _ := drain(t, CreatePinSound(cfg, core.Feedback{Exact: 1, Partial: 2}))
	want := core.CodeLength * rate.N(constants.PinSoundDuration)
	if n != want {
		t.Errorf("Expected %d samples, got %d", want, n)
	}
}

// TestRejectSoundLength verifies the noise tick precedes the buzz
func TestRejectSoundLength(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	n, peak := drain(t, CreateRejectSound(cfg))
	want := rate.N(constants.ErrorNoiseDuration) + rate.N(constants.ErrorSoundDuration)
	if n != want {
		t.Errorf("Expected %d samples, got %d", want, n)
	}
	if peak == 0 || peak > 1.0 {
		t.Errorf("Expected audible peak <= 1.0, got %f", peak)
	}
}

// TestJingleLength verifies win and lose jingles are four notes
func TestJingleLength(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)
	want := 4 * rate.N(constants.JingleNoteDuration)

	if n, _ := drain(t, CreateWinSound(cfg)); n != want {
		t.Errorf("Win: expected %d samples, got %d", want, n)
	}
	if n, _ := drain(t, CreateLoseSound(cfg)); n != want {
		t.Errorf("Lose: expected %d samples, got %d", want, n)
	}
}

// TestZeroVolumeIsSilent verifies muted effect volumes produce no signal
func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.EffectVolumes[SoundClick] = 0

	_, peak := drain(t, CreateClickSound(cfg))
	if peak != 0 {
		t.Errorf("Expected silence, got peak %f", peak)
	}
}
