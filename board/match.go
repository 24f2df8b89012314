package board

import "github.com/lixenwraith/vi-crush/constants"

// Matches is the set of cells belonging to at least one run
type Matches struct {
	mask [size][size]bool
	n    int
}

func (m *Matches) add(r, c int) {
	if !m.mask[r][c] {
		m.mask[r][c] = true
		m.n++
	}
}

// Len returns the number of distinct matched cells
func (m Matches) Len() int { return m.n }

// Empty reports whether no run was found
func (m Matches) Empty() bool { return m.n == 0 }

// Contains reports whether c is part of a run
func (m Matches) Contains(c Coord) bool {
	return c.InBounds() && m.mask[c.Row][c.Col]
}

// Coords lists the matched cells in row-major order
func (m Matches) Coords() []Coord {
	out := make([]Coord, 0, m.n)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if m.mask[r][c] {
				out = append(out, At(r, c))
			}
		}
	}
	return out
}

// FindMatches scans every row and column for maximal runs of at least
// constants.MinRunLength identical tokens. Empty cells break runs.
func (b *Board) FindMatches() Matches {
	var m Matches
	for r := 0; r < size; r++ {
		start := 0
		for c := 1; c <= size; c++ {
			if c < size && b.cells[r][c].Same(b.cells[r][start]) {
				continue
			}
			if c-start >= constants.MinRunLength && !b.cells[r][start].IsEmpty() {
				for i := start; i < c; i++ {
					m.add(r, i)
				}
			}
			start = c
		}
	}
	for c := 0; c < size; c++ {
		start := 0
		for r := 1; r <= size; r++ {
			if r < size && b.cells[r][c].Same(b.cells[start][c]) {
				continue
			}
			if r-start >= constants.MinRunLength && !b.cells[start][c].IsEmpty() {
				for i := start; i < r; i++ {
					m.add(i, c)
				}
			}
			start = r
		}
	}
	return m
}

// HasMatch reports whether any run exists
func (b *Board) HasMatch() bool {
	return !b.FindMatches().Empty()
}
