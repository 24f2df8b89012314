package engine

import (
	"github.com/lixenwraith/vi-crush/board"
	"github.com/lixenwraith/vi-crush/constants"
)

// Hint finds a legal swap, scanning row-major and trying the right neighbour
// before the lower one. The session is not modified. ok is false when the game
// is over or no swap on the board produces a run.
func (s *Session) Hint() (a, b board.Coord, ok bool) {
	if s.state != StatePlaying || s.moves <= 0 {
		return board.Coord{}, board.Coord{}, false
	}
	return FindMove(s.board)
}

// FindMove probes every adjacent pair on a scratch copy of b
func FindMove(b *board.Board) (board.Coord, board.Coord, bool) {
	probe := b.Clone()
	for r := 0; r < constants.BoardSize; r++ {
		for c := 0; c < constants.BoardSize; c++ {
			from := board.At(r, c)
			for _, to := range [2]board.Coord{board.At(r, c+1), board.At(r+1, c)} {
				if !to.InBounds() {
					continue
				}
				probe.Swap(from, to)
				matched := probe.HasMatch()
				probe.Swap(from, to)
				if matched {
					return from, to, true
				}
			}
		}
	}
	return board.Coord{}, board.Coord{}, false
}
