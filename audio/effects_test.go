package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-crush/constants"
)

const testRate = beep.SampleRate(constants.AudioSampleRate)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			for _, v := range buf[j] {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			require.NoError(t, s.Err())
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

func TestOscillatorWaveRanges(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, testRate)
		n, peak := drain(t, osc)

		assert.Equal(t, testRate.N(50*time.Millisecond), n, "wave %d", wave)
		assert.LessOrEqual(t, peak, 1.0, "wave %d", wave)
		assert.Greater(t, peak, 0.0, "wave %d", wave)
	}
}

func TestEnvelopeStartsSilentAndFades(t *testing.T) {
	rate := testRate
	osc := NewOscillator(0, 20*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 20*time.Millisecond, 5*time.Millisecond, 5*time.Millisecond, rate)

	buf := make([][2]float64, rate.N(20*time.Millisecond))
	n, _ := env.Stream(buf)
	require.Equal(t, len(buf), n)

	assert.Equal(t, 0.0, buf[0][0], "attack starts at zero")
	assert.InDelta(t, 1.0, buf[n/2][0], 1e-9, "sustain at full level")
	assert.Less(t, buf[n-1][0], 0.01, "release ends near zero")
}

func TestComboFrequencyClimbsAndCaps(t *testing.T) {
	assert.Equal(t, constants.MatchBaseFrequency, comboFrequency(0))
	assert.Equal(t, constants.MatchBaseFrequency, comboFrequency(1))
	assert.Greater(t, comboFrequency(2), comboFrequency(1))
	assert.Equal(t, comboFrequency(constants.MatchMaxComboPitch), comboFrequency(constants.MatchMaxComboPitch+5))
}

func TestSoundEffectsDrain(t *testing.T) {
	tests := []struct {
		name string
		s    beep.Streamer
		want int
	}{
		{"match", CreateMatchSound(3, testRate, 1), testRate.N(constants.MatchSoundDuration)},
		{"reject", CreateRejectSound(testRate, 1), testRate.N(constants.RejectSoundDuration)},
		{"win", CreateWinSound(testRate, 1), 4 * testRate.N(constants.JingleNoteDuration)},
		{"lose", CreateLoseSound(testRate, 1), 3 * testRate.N(constants.JingleNoteDuration)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, peak := drain(t, tc.s)
			assert.Equal(t, tc.want, n)
			assert.Greater(t, peak, 0.0)
		})
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, CreateRejectSound(testRate, 0))
	assert.Equal(t, 0.0, peak)
}
