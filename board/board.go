// Package board holds the 8×8 token grid, its mutation primitives and the
// run detector. It knows nothing about score, moves or selection.
package board

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-crush/constants"
)

const size = constants.BoardSize

// Board is a fixed square grid of cells, indexed [row][col]
type Board struct {
	cells [size][size]Cell
}

// New returns a board with every cell empty
func New() *Board {
	return &Board{}
}

// FromRows builds a board from one string per row, top first.
// 'A'..'F' are token kinds 0..5 and '.' is an empty cell.
func FromRows(rows ...string) (*Board, error) {
	if len(rows) != size {
		return nil, errors.Errorf("board: want %d rows, got %d", size, len(rows))
	}
	b := New()
	for r, line := range rows {
		if len(line) != size {
			return nil, errors.Errorf("board: row %d has %d cells, want %d", r, len(line), size)
		}
		for c := 0; c < size; c++ {
			ch := line[c]
			switch {
			case ch == '.':
				b.cells[r][c] = Empty
			case ch >= 'A' && ch < 'A'+constants.TokenKinds:
				b.cells[r][c] = Token(Kind(ch - 'A'))
			default:
				return nil, errors.Errorf("board: invalid cell %q at %v", ch, At(r, c))
			}
		}
	}
	return b, nil
}

// MustFromRows is FromRows for fixtures known to be valid
func MustFromRows(rows ...string) *Board {
	b, err := FromRows(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

// Initialize fills the board row-major, resampling each cell until it does not
// complete a run of three with its two left or two upper neighbours.
// The resulting board contains no runs.
func (b *Board) Initialize(src TokenSource) {
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			for {
				b.cells[r][c] = Token(src.NextKind())
				if !b.completesEarlyRun(r, c) {
					break
				}
			}
		}
	}
}

// completesEarlyRun checks only already-placed neighbours (left and up)
func (b *Board) completesEarlyRun(r, c int) bool {
	cell := b.cells[r][c]
	if c >= 2 && cell.Same(b.cells[r][c-1]) && cell.Same(b.cells[r][c-2]) {
		return true
	}
	if r >= 2 && cell.Same(b.cells[r-1][c]) && cell.Same(b.cells[r-2][c]) {
		return true
	}
	return false
}

// At returns the cell at c, or Empty when c is off the board
func (b *Board) At(c Coord) Cell {
	if !c.InBounds() {
		return Empty
	}
	return b.cells[c.Row][c.Col]
}

// CellAt returns the cell at row, col, or Empty when off the board
func (b *Board) CellAt(row, col int) Cell {
	return b.At(At(row, col))
}

// Set stores cell at c; off-board coordinates are ignored
func (b *Board) Set(c Coord, cell Cell) {
	if c.InBounds() {
		b.cells[c.Row][c.Col] = cell
	}
}

// Swap exchanges two cells without any adjacency check
func (b *Board) Swap(a, o Coord) {
	b.cells[a.Row][a.Col], b.cells[o.Row][o.Col] = b.cells[o.Row][o.Col], b.cells[a.Row][a.Col]
}

// CompactColumn drops the surviving tokens of col to the bottom edge,
// keeping their vertical order, and leaves the vacated top cells empty
func (b *Board) CompactColumn(col int) {
	write := size - 1
	for r := size - 1; r >= 0; r-- {
		cell := b.cells[r][col]
		if cell.IsEmpty() {
			continue
		}
		if r != write {
			b.cells[write][col] = cell
			b.cells[r][col] = Empty
		}
		write--
	}
}

// FillEmpty assigns a fresh kind to every empty cell and returns the count.
// No run constraint applies; refills may create new matches.
func (b *Board) FillEmpty(src TokenSource) int {
	filled := 0
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if b.cells[r][c].IsEmpty() {
				b.cells[r][c] = Token(src.NextKind())
				filled++
			}
		}
	}
	return filled
}

// EmptyCount returns the number of vacant cells
func (b *Board) EmptyCount() int {
	n := 0
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if b.cells[r][c].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// Clone returns an independent copy
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// Equal reports cell-by-cell equality
func (b *Board) Equal(o *Board) bool {
	return b.cells == o.cells
}

// Grid returns a copy of the cells for read-only consumers
func (b *Board) Grid() [size][size]Cell {
	return b.cells
}

// String renders the board in FromRows notation, one row per line
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(size * (size + 1))
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			sb.WriteByte(b.cells[r][c].Letter())
		}
		if r < size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
