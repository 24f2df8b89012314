package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-crush/constants"
)

func TestSoundManagerUninitializedIsSilent(t *testing.T) {
	sm := NewSoundManager()

	assert.NotPanics(t, func() {
		sm.PlayPass(1)
		sm.PlayPass(9)
		sm.PlayReject()
		sm.PlayWin()
		sm.PlayLose()
		sm.Play(soundTypeCount, 0)
		sm.Cleanup()
	})
	assert.Zero(t, sm.mixer.Len())
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager()
	assert.False(t, sm.Muted())

	assert.True(t, sm.ToggleMute())
	assert.True(t, sm.Muted())

	sm.SetMuted(false)
	assert.False(t, sm.Muted())
}

func TestEffectLookup(t *testing.T) {
	sm := NewSoundManager()
	for st := SoundMatch; st < soundTypeCount; st++ {
		assert.NotNil(t, sm.effect(st, 2), st.String())
	}
	assert.Nil(t, sm.effect(soundTypeCount, 0))
	assert.Equal(t, "unknown", soundTypeCount.String())
}

func TestMatchChimeStaggeredByCombo(t *testing.T) {
	sm := NewSoundManager()
	chime := testRate.N(constants.MatchSoundDuration)

	first, _ := drain(t, sm.effect(SoundMatch, 1))
	assert.Equal(t, chime, first)

	third, peak := drain(t, sm.effect(SoundMatch, 3))
	assert.Equal(t, testRate.N(2*constants.MatchPassSpacing)+chime, third)
	assert.Greater(t, peak, 0.0)
}
