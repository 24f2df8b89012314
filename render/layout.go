package render

import (
	"github.com/lixenwraith/vi-crush/board"
	"github.com/lixenwraith/vi-crush/constants"
)

// Screen layout, top to bottom:
//
//	row 0      title, mute flag
//	row 1      score, moves
//	row 2      progress bar
//	row 3      combo / status message
//	row 4..    board, CellHeight rows per board row
//	below      key help
const (
	rowTitle    = 0
	rowScore    = 1
	rowProgress = 2
	rowMessage  = 3

	boardWidth  = constants.BoardSize * constants.CellWidth
	boardHeight = constants.BoardSize * constants.CellHeight

	// glyphWidth is the painted part of a cell; the remainder is gutter
	glyphWidth = constants.CellWidth - 1
)

// MinWidth and MinHeight are the smallest screen that fits the full layout
const (
	MinWidth  = constants.BoardOriginX*2 + boardWidth
	MinHeight = constants.BoardOriginY + boardHeight + 2
)

// CellOrigin returns the top-left screen position of a board cell
func CellOrigin(c board.Coord) (x, y int) {
	return constants.BoardOriginX + c.Col*constants.CellWidth,
		constants.BoardOriginY + c.Row*constants.CellHeight
}

// HitTest maps a screen position to the board cell drawn there
// Gutters belong to the cell on their left/top so every board pixel maps somewhere
func HitTest(x, y int) (board.Coord, bool) {
	dx := x - constants.BoardOriginX
	dy := y - constants.BoardOriginY
	if dx < 0 || dy < 0 || dx >= boardWidth || dy >= boardHeight {
		return board.Coord{}, false
	}
	return board.At(dy/constants.CellHeight, dx/constants.CellWidth), true
}

func helpRow() int {
	return constants.BoardOriginY + boardHeight + 1
}
