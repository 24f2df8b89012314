package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-crush/board"
)

// Outcome classifies what a gesture did
type Outcome uint8

const (
	// OutcomeIgnored: game over, no moves left, or off-board coordinate
	OutcomeIgnored Outcome = iota
	// OutcomeSelected: first cell chosen
	OutcomeSelected
	// OutcomeDeselected: the selected cell was chosen again
	OutcomeDeselected
	// OutcomeReselected: a non-adjacent cell replaced the selection
	OutcomeReselected
	// OutcomeRejected: adjacent swap produced no run and was rolled back
	OutcomeRejected
	// OutcomeCommitted: adjacent swap matched and the cascade resolved
	OutcomeCommitted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeReselected:
		return "reselected"
	case OutcomeRejected:
		return "rejected"
	case OutcomeCommitted:
		return "committed"
	default:
		return "unknown"
	}
}

// GestureResult reports the effect of one OnGesture call
type GestureResult struct {
	Outcome Outcome
	// From and To are the swapped cells for Rejected and Committed outcomes
	From, To board.Coord
	// Passes holds every cascade pass of a committed swap
	Passes []PassReport
	// Gained is the total score awarded by the gesture
	Gained int
}

// OnGesture handles a click or key press on a board cell. Illegal gestures are
// silent no-ops that leave board, score and budget untouched.
func (s *Session) OnGesture(row, col int) GestureResult {
	at := board.At(row, col)
	if s.state != StatePlaying || s.moves <= 0 || !at.InBounds() {
		return GestureResult{Outcome: OutcomeIgnored}
	}

	if !s.hasSelected {
		s.selected, s.hasSelected = at, true
		return GestureResult{Outcome: OutcomeSelected, From: at}
	}

	from := s.selected
	switch {
	case from == at:
		s.clearSelection()
		return GestureResult{Outcome: OutcomeDeselected, From: at}
	case !from.Adjacent(at):
		s.selected = at
		return GestureResult{Outcome: OutcomeReselected, From: at}
	}

	s.clearSelection()
	return s.trySwap(from, at)
}

// trySwap swaps tentatively, commits and cascades on a match, otherwise
// restores the board exactly
func (s *Session) trySwap(a, b board.Coord) GestureResult {
	s.board.Swap(a, b)
	if !s.board.HasMatch() {
		s.board.Swap(a, b)
		s.log.Debug("swap rejected", zap.Stringer("from", a), zap.Stringer("to", b))
		return GestureResult{Outcome: OutcomeRejected, From: a, To: b}
	}

	s.moves--
	s.combo = 0
	before := s.score
	passes := s.resolveAll()
	s.checkEnd()

	s.log.Debug("swap committed",
		zap.Stringer("from", a),
		zap.Stringer("to", b),
		zap.Int("passes", len(passes)),
		zap.Int("gained", s.score-before),
		zap.Int("moves", s.moves),
	)
	return GestureResult{
		Outcome: OutcomeCommitted,
		From:    a,
		To:      b,
		Passes:  passes,
		Gained:  s.score - before,
	}
}
