package board

// Kind identifies a token type in [0, constants.TokenKinds)
type Kind uint8

// Cell is either a token of some Kind or empty.
// The zero value is an empty cell.
type Cell struct {
	kind   Kind
	filled bool
}

// Empty is the vacant cell, only observable while a cascade pass is in progress
var Empty = Cell{}

// Token returns a filled cell holding kind k
func Token(k Kind) Cell {
	return Cell{kind: k, filled: true}
}

// Kind returns the token kind and true, or false for an empty cell
func (c Cell) Kind() (Kind, bool) {
	return c.kind, c.filled
}

// IsEmpty reports whether the cell holds no token
func (c Cell) IsEmpty() bool {
	return !c.filled
}

// Same reports whether both cells hold the same token kind.
// Empty cells never match anything, including each other.
func (c Cell) Same(o Cell) bool {
	return c.filled && o.filled && c.kind == o.kind
}

// Letter returns the board notation for the cell: 'A'+kind, or '.' when empty
func (c Cell) Letter() byte {
	if !c.filled {
		return '.'
	}
	return 'A' + byte(c.kind)
}
