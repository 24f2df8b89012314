package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-crush/constants"
)

// SoundManager owns the speaker and a mixer that every effect is added to.
// All Play methods are no-ops until Initialize succeeds, and while muted.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	master      float64
	initialized bool
	muted       bool
}

// NewSoundManager creates a sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(constants.AudioSampleRate),
		master: constants.AudioMasterVolume,
	}
}

// Initialize opens the audio device and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and closes the device
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

// SetMuted enables or disables playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute flips the mute flag and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues the effect for t; combo only affects SoundMatch
func (sm *SoundManager) Play(t SoundType, combo int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := sm.effect(t, combo)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) effect(t SoundType, combo int) beep.Streamer {
	switch t {
	case SoundMatch:
		chime := CreateMatchSound(combo, sm.rate, sm.master)
		// Passes of one cascade arrive together; space them into an arpeggio
		if combo > 1 {
			delay := time.Duration(combo-1) * constants.MatchPassSpacing
			return beep.Seq(beep.Silence(sm.rate.N(delay)), chime)
		}
		return chime
	case SoundReject:
		return CreateRejectSound(sm.rate, sm.master)
	case SoundWin:
		return CreateWinSound(sm.rate, sm.master)
	case SoundLose:
		return CreateLoseSound(sm.rate, sm.master)
	default:
		return nil
	}
}

// PlayPass chimes for one cascade pass
func (sm *SoundManager) PlayPass(combo int) { sm.Play(SoundMatch, combo) }

// PlayReject buzzes for a rolled-back swap
func (sm *SoundManager) PlayReject() { sm.Play(SoundReject, 0) }

// PlayWin plays the victory jingle
func (sm *SoundManager) PlayWin() { sm.Play(SoundWin, 0) }

// PlayLose plays the game-over jingle
func (sm *SoundManager) PlayLose() { sm.Play(SoundLose, 0) }
