package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the output sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume scales every effect
	AudioMasterVolume = 0.6
)

// Match Chime Timing
const (
	MatchSoundDuration = 180 * time.Millisecond
	MatchSoundAttack   = 5 * time.Millisecond
	MatchSoundRelease  = 120 * time.Millisecond

	// MatchBaseFrequency is the chime pitch for the first pass of a cascade (A5)
	MatchBaseFrequency = 880.0

	// MatchComboSemitones raises the chime pitch per combo step
	MatchComboSemitones = 2

	// MatchMaxComboPitch caps the combo pitch ladder
	MatchMaxComboPitch = 8

	// MatchPassSpacing delays each cascade pass chime after the previous one
	MatchPassSpacing = 150 * time.Millisecond
)

// Reject Buzz Timing
const (
	RejectSoundDuration = 90 * time.Millisecond
	RejectSoundAttack   = 5 * time.Millisecond
	RejectSoundRelease  = 30 * time.Millisecond
)

// Game End Jingle Timing
const (
	JingleNoteDuration = 140 * time.Millisecond
	JingleNoteAttack   = 5 * time.Millisecond
	JingleNoteRelease  = 80 * time.Millisecond
)
