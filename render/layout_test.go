package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-crush/board"
	"github.com/lixenwraith/vi-crush/constants"
)

func TestHitTestRoundTrip(t *testing.T) {
	for row := 0; row < constants.BoardSize; row++ {
		for col := 0; col < constants.BoardSize; col++ {
			c := board.At(row, col)
			x, y := CellOrigin(c)

			got, ok := HitTest(x, y)
			assert.True(t, ok)
			assert.Equal(t, c, got)

			// Far corner of the cell including gutter
			got, ok = HitTest(x+constants.CellWidth-1, y+constants.CellHeight-1)
			assert.True(t, ok)
			assert.Equal(t, c, got)
		}
	}
}

func TestHitTestOutsideBoard(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"left margin", constants.BoardOriginX - 1, constants.BoardOriginY},
		{"HUD", constants.BoardOriginX, constants.BoardOriginY - 1},
		{"right edge", constants.BoardOriginX + boardWidth, constants.BoardOriginY},
		{"below", constants.BoardOriginX, constants.BoardOriginY + boardHeight},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := HitTest(tt.x, tt.y)
			assert.False(t, ok)
		})
	}
}
