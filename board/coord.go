package board

import (
	"fmt"

	"github.com/lixenwraith/vi-crush/constants"
)

// Coord addresses a board cell; row 0 is the top edge
type Coord struct {
	Row, Col int
}

// At is shorthand for Coord{row, col}
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// InBounds reports whether c lies on the board
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < constants.BoardSize && c.Col >= 0 && c.Col < constants.BoardSize
}

// Adjacent reports whether c and o are at Manhattan distance exactly 1
func (c Coord) Adjacent(o Coord) bool {
	return abs(c.Row-o.Row)+abs(c.Col-o.Col) == 1
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
