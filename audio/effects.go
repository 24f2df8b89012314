package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-crush/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator
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

// NewEnvelope wraps s with an attack ramp and a release fade
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
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
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume maps a linear gain onto beep's log2 volume; 0 is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// comboFrequency climbs MatchComboSemitones per combo step, capped
func comboFrequency(combo int) float64 {
	if combo < 1 {
		combo = 1
	}
	if combo > constants.MatchMaxComboPitch {
		combo = constants.MatchMaxComboPitch
	}
	semitones := float64((combo - 1) * constants.MatchComboSemitones)
	return constants.MatchBaseFrequency * math.Pow(2, semitones/12)
}

// CreateMatchSound is a bell with an octave overtone, pitched by combo
func CreateMatchSound(combo int, rate beep.SampleRate, master float64) beep.Streamer {
	freq := comboFrequency(combo)

	fund := NewOscillator(freq, constants.MatchSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.MatchSoundDuration, constants.MatchSoundAttack, constants.MatchSoundRelease, rate)

	over := NewOscillator(freq*2, constants.MatchSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.MatchSoundDuration, constants.MatchSoundAttack, constants.MatchSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(beep.Take(rate.N(constants.MatchSoundDuration), mixed), master)
}

// CreateRejectSound is a short low saw buzz
func CreateRejectSound(rate beep.SampleRate, master float64) beep.Streamer {
	osc := NewOscillator(100.0, constants.RejectSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.RejectSoundDuration, constants.RejectSoundAttack, constants.RejectSoundRelease, rate)
	return newVolume(shaped, master*0.5)
}

// jingle plays square-wave notes back to back
func jingle(freqs []float64, rate beep.SampleRate, master float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		osc := NewOscillator(f, constants.JingleNoteDuration, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, constants.JingleNoteDuration, constants.JingleNoteAttack, constants.JingleNoteRelease, rate))
	}
	return newVolume(beep.Seq(notes...), master*0.4)
}

// CreateWinSound is a rising C major arpeggio
func CreateWinSound(rate beep.SampleRate, master float64) beep.Streamer {
	return jingle([]float64{523.25, 659.25, 783.99, 1046.50}, rate, master)
}

// CreateLoseSound is a falling minor line
func CreateLoseSound(rate beep.SampleRate, master float64) beep.Streamer {
	return jingle([]float64{392.00, 311.13, 261.63}, rate, master)
}
