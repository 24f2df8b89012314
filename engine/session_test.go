package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-crush/board"
	"github.com/lixenwraith/vi-crush/constants"
)

// oneSwapRows has exactly one planned match: swapping (7,2) and (7,3) makes CCC on the bottom row
var oneSwapRows = []string{
	"ABCDEFAB",
	"BCDEFABC",
	"CDEFABCD",
	"DEFABCDE",
	"EFABCDEF",
	"FABCDEFA",
	"ABCDEFAB",
	"CCDCEFAB",
}

// settledAfterOneSwap is oneSwapRows after the CCC pass with D, E, F refilled on top
var settledAfterOneSwap = []string{
	"DEFDEFAB",
	"ABCEFABC",
	"BCDFABCD",
	"CDEABCDE",
	"DEFBCDEF",
	"EFACDEFA",
	"FABDEFAB",
	"ABCDEFAB",
}

// newTestSession installs a fixed board and a scripted refill sequence
func newTestSession(t *testing.T, rows []string, refill []board.Kind, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithSource(board.NewRandSource(1, constants.TokenKinds))}, opts...)
	s := New(opts...)

	b, err := board.FromRows(rows...)
	require.NoError(t, err)
	s.board = b
	if refill != nil {
		s.source = board.NewScriptedSource(refill...)
	}
	return s
}

func kinds(letters string) []board.Kind {
	out := make([]board.Kind, len(letters))
	for i := range letters {
		out[i] = board.Kind(letters[i] - 'A')
	}
	return out
}

func TestNewGameDefaults(t *testing.T) {
	s := New(WithSource(board.NewRandSource(3, constants.TokenKinds)))

	assert.Equal(t, 0, s.Score())
	assert.Equal(t, constants.DefaultMoveBudget, s.MovesRemaining())
	assert.Equal(t, constants.DefaultTargetScore, s.Target())
	assert.Equal(t, 0, s.Combo())
	assert.Equal(t, StatePlaying, s.State())
	_, selected := s.Selected()
	assert.False(t, selected)
}

func TestNewGameBoardHasNoRuns(t *testing.T) {
	for seed := uint64(1); seed <= 100; seed++ {
		s := New(WithSource(board.NewRandSource(seed, constants.TokenKinds)))
		require.True(t, s.board.FindMatches().Empty(), "seed %d", seed)
		require.Zero(t, s.board.EmptyCount(), "seed %d", seed)
	}
}

func TestNewGameResetsFinishedSession(t *testing.T) {
	s := newTestSession(t, oneSwapRows, kinds("DEF"), WithMoveBudget(1))
	s.OnGesture(7, 2)
	s.OnGesture(7, 3)
	require.Equal(t, StateLost, s.State())

	s.OnGesture(0, 0)
	s.NewGame()

	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 1, s.MovesRemaining())
	_, selected := s.Selected()
	assert.False(t, selected)
	assert.True(t, s.board.FindMatches().Empty())
}

func TestOptionsIgnoreInvalidValues(t *testing.T) {
	s := New(
		WithSource(board.NewRandSource(5, constants.TokenKinds)),
		WithTarget(0),
		WithMoveBudget(-3),
		WithLogger(nil),
	)
	assert.Equal(t, constants.DefaultTargetScore, s.Target())
	assert.Equal(t, constants.DefaultMoveBudget, s.MovesRemaining())
	assert.NotNil(t, s.log)
}

func TestProgress(t *testing.T) {
	s := newTestSession(t, oneSwapRows, kinds("DEF"), WithTarget(60))
	assert.Equal(t, 0.0, s.Progress())

	s.OnGesture(7, 2)
	s.OnGesture(7, 3)
	assert.InDelta(t, 0.5, s.Progress(), 1e-9)

	s.score = 500
	assert.Equal(t, 1.0, s.Progress())
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestSession(t, oneSwapRows, nil)
	s.OnGesture(2, 2)

	v := s.Snapshot()
	assert.True(t, v.HasSelection)
	assert.Equal(t, board.At(2, 2), v.Selected)
	assert.Equal(t, s.CellAt(7, 0), v.Cells[7][0])
	assert.Equal(t, StatePlaying, v.State)

	v.Cells[7][0] = board.Empty
	assert.False(t, s.CellAt(7, 0).IsEmpty())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "PLAYING", StatePlaying.String())
	assert.Equal(t, "WON", StateWon.String())
	assert.Equal(t, "LOST", StateLost.String())
	assert.False(t, StatePlaying.Terminal())
	assert.True(t, StateWon.Terminal())
	assert.True(t, StateLost.Terminal())
}
