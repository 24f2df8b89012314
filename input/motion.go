package input

import (
	"github.com/lixenwraith/vi-crush/board"
	"github.com/lixenwraith/vi-crush/constants"
)

// ApplyMotion moves a cursor by count steps of op, clamped to the board
func ApplyMotion(c board.Coord, op MotionOp, count int) board.Coord {
	if count < 1 {
		count = 1
	}
	last := constants.BoardSize - 1

	switch op {
	case MotionLeft:
		c.Col -= count
	case MotionRight:
		c.Col += count
	case MotionUp:
		c.Row -= count
	case MotionDown:
		c.Row += count
	case MotionLineStart:
		c.Col = 0
	case MotionLineEnd:
		c.Col = last
	case MotionTop:
		c.Row = 0
	case MotionBottom:
		c.Row = last
	}

	c.Row = clamp(c.Row, 0, last)
	c.Col = clamp(c.Col, 0, last)
	return c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
