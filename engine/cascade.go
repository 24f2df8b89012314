package engine

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-crush/board"
	"github.com/lixenwraith/vi-crush/constants"
)

// Removal is one cell cleared by a pass and the kind it held
type Removal struct {
	board.Coord
	Kind board.Kind
}

// PassReport describes one matching round of a cascade
type PassReport struct {
	// Combo is the counter value after this pass incremented it (1 for the first pass)
	Combo int
	// Removed lists the cleared cells in row-major order
	Removed []Removal
	// Points is the score delta awarded by this pass
	Points int
	// Score is the session score after this pass
	Score int
}

// PassObserver receives every pass as it resolves. It must not call back into
// the session.
type PassObserver func(PassReport)

// passPoints is 10 per cell plus 50 for each consecutive pass after the first
func passPoints(matched, combo int) int {
	points := matched * constants.PointsPerToken
	if combo > 1 {
		points += (combo - 1) * constants.ComboBonusStep
	}
	return points
}

// resolvePass runs one remove/compact/refill round. It returns false, and
// resets the combo counter, when the board holds no run.
func (s *Session) resolvePass() (PassReport, bool) {
	matches := s.board.FindMatches()
	if matches.Empty() {
		s.combo = 0
		return PassReport{}, false
	}

	s.combo++
	points := passPoints(matches.Len(), s.combo)
	s.score += points

	coords := matches.Coords()
	removed := make([]Removal, 0, len(coords))
	for _, c := range coords {
		kind, _ := s.board.At(c).Kind()
		removed = append(removed, Removal{Coord: c, Kind: kind})
		s.board.Set(c, board.Empty)
	}

	report := PassReport{
		Combo:   s.combo,
		Removed: removed,
		Points:  points,
		Score:   s.score,
	}
	if s.observer != nil {
		s.observer(report)
	}

	// Gravity for every column before any refill
	for col := 0; col < constants.BoardSize; col++ {
		s.board.CompactColumn(col)
	}
	s.board.FillEmpty(s.source)

	s.log.Debug("cascade pass",
		zap.Int("combo", report.Combo),
		zap.Int("cleared", len(removed)),
		zap.Int("points", points),
		zap.Int("score", s.score),
	)
	return report, true
}

// resolveAll repeats passes until the board settles. Chains of any length are
// resolved before returning.
func (s *Session) resolveAll() []PassReport {
	var passes []PassReport
	for {
		report, ok := s.resolvePass()
		if !ok {
			break
		}
		passes = append(passes, report)
	}
	s.mustBeSettled()
	return passes
}

// mustBeSettled panics when a cascade leaves an empty cell or a run behind;
// that state is an engine defect, not a player error
func (s *Session) mustBeSettled() {
	if n := s.board.EmptyCount(); n > 0 {
		panic(errors.Errorf("engine: %d empty cells after cascade\n%s", n, s.board))
	}
	if m := s.board.FindMatches(); !m.Empty() {
		panic(errors.Errorf("engine: %d matched cells after cascade\n%s", m.Len(), s.board))
	}
}
