// Package engine owns a single game session: the board, move budget, score,
// combo counter and lifecycle state. All mutation goes through OnGesture and
// NewGame; every call runs to completion before returning.
package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-crush/board"
	"github.com/lixenwraith/vi-crush/constants"
)

// Session is one running game. It is not safe for concurrent use; the caller
// serializes gestures and reads.
type Session struct {
	board  *board.Board
	source board.TokenSource

	selected    board.Coord
	hasSelected bool

	score int
	moves int
	combo int
	state State

	target     int
	moveBudget int

	observer PassObserver
	log      *zap.Logger
}

// Option configures a Session at construction
type Option func(*Session)

// WithTarget sets the winning score
func WithTarget(target int) Option {
	return func(s *Session) {
		if target > 0 {
			s.target = target
		}
	}
}

// WithMoveBudget sets the committed swaps allowed per game
func WithMoveBudget(moves int) Option {
	return func(s *Session) {
		if moves > 0 {
			s.moveBudget = moves
		}
	}
}

// WithSource sets the token generator used for initialization and refill
func WithSource(src board.TokenSource) Option {
	return func(s *Session) {
		if src != nil {
			s.source = src
		}
	}
}

// WithLogger attaches a structured logger; the default discards everything
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithObserver registers a callback invoked once per cascade pass
func WithObserver(fn PassObserver) Option {
	return func(s *Session) {
		s.observer = fn
	}
}

// New creates a session and starts its first game
func New(opts ...Option) *Session {
	s := &Session{
		target:     constants.DefaultTargetScore,
		moveBudget: constants.DefaultMoveBudget,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.source == nil {
		s.source = board.NewRandSource(board.NewSeed(), constants.TokenKinds)
	}
	s.NewGame()
	return s
}

// NewGame resets counters and deals a fresh board with no runs
func (s *Session) NewGame() {
	s.score = 0
	s.moves = s.moveBudget
	s.combo = 0
	s.clearSelection()
	s.state = StatePlaying

	b := board.New()
	b.Initialize(s.source)
	s.board = b

	s.log.Debug("new game",
		zap.Int("target", s.target),
		zap.Int("moves", s.moves),
	)
}

// SetObserver replaces the per-pass callback; nil disables notifications
func (s *Session) SetObserver(fn PassObserver) {
	s.observer = fn
}

// checkEnd promotes the state after a committed move
func (s *Session) checkEnd() {
	if s.state != StatePlaying {
		return
	}
	switch {
	case s.score >= s.target:
		s.state = StateWon
	case s.moves == 0:
		s.state = StateLost
	default:
		return
	}
	s.log.Info("game over",
		zap.Stringer("state", s.state),
		zap.Int("score", s.score),
		zap.Int("moves", s.moves),
	)
}

func (s *Session) clearSelection() {
	s.selected = board.Coord{}
	s.hasSelected = false
}

// CellAt returns the cell at row, col; off-board reads return board.Empty
func (s *Session) CellAt(row, col int) board.Cell { return s.board.CellAt(row, col) }

// Selected returns the pending selection, if any
func (s *Session) Selected() (board.Coord, bool) { return s.selected, s.hasSelected }

// Score returns the accumulated score
func (s *Session) Score() int { return s.score }

// MovesRemaining returns the committed swaps left
func (s *Session) MovesRemaining() int { return s.moves }

// Target returns the winning score
func (s *Session) Target() int { return s.target }

// Combo returns the combo counter; it is zero between gestures
func (s *Session) Combo() int { return s.combo }

// State returns the lifecycle phase
func (s *Session) State() State { return s.state }

// Progress returns score/target clamped to [0, 1]
func (s *Session) Progress() float64 {
	if s.target <= 0 {
		return 1
	}
	p := float64(s.score) / float64(s.target)
	if p > 1 {
		return 1
	}
	return p
}

// View is a copy of everything a presentation layer draws
type View struct {
	Cells [constants.BoardSize][constants.BoardSize]board.Cell

	Selected     board.Coord
	HasSelection bool

	Score          int
	MovesRemaining int
	Target         int
	Combo          int
	Progress       float64
	State          State
}

// Snapshot copies the current state for rendering between gestures
func (s *Session) Snapshot() View {
	return View{
		Cells:          s.board.Grid(),
		Selected:       s.selected,
		HasSelection:   s.hasSelected,
		Score:          s.score,
		MovesRemaining: s.moves,
		Target:         s.target,
		Combo:          s.combo,
		Progress:       s.Progress(),
		State:          s.state,
	}
}
