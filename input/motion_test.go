package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-crush/board"
)

func TestApplyMotion(t *testing.T) {
	tests := []struct {
		name  string
		from  board.Coord
		op    MotionOp
		count int
		want  board.Coord
	}{
		{"left", board.At(3, 3), MotionLeft, 1, board.At(3, 2)},
		{"right by count", board.At(3, 3), MotionRight, 2, board.At(3, 5)},
		{"up clamps", board.At(1, 3), MotionUp, 5, board.At(0, 3)},
		{"down clamps", board.At(6, 3), MotionDown, 9, board.At(7, 3)},
		{"zero count acts as one", board.At(3, 3), MotionDown, 0, board.At(4, 3)},
		{"line start", board.At(3, 6), MotionLineStart, 1, board.At(3, 0)},
		{"line end", board.At(3, 1), MotionLineEnd, 1, board.At(3, 7)},
		{"top", board.At(5, 2), MotionTop, 1, board.At(0, 2)},
		{"bottom", board.At(2, 2), MotionBottom, 1, board.At(7, 2)},
		{"none", board.At(2, 2), MotionNone, 1, board.At(2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyMotion(tt.from, tt.op, tt.count))
		})
	}
}
