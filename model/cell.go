package model

import (
	"cmp"
	"slices"
)

// Cell is a row/column coordinate on the board
type Cell struct {
	Row int
	Col int
}

// Compare orders cells row-major: by row, then by column
func (c Cell) Compare(other Cell) int {
	if n := cmp.Compare(c.Row, other.Row); n != 0 {
		return n
	}
	return cmp.Compare(c.Col, other.Col)
}

// CellSet is a set of live cells
type CellSet map[Cell]struct{}

// NewCellSet builds a set from a list of cells, dropping duplicates
func NewCellSet(cells ...Cell) CellSet {
	set := make(CellSet, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}
	return set
}

// Contains reports whether the cell is in the set
func (s CellSet) Contains(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Sorted returns the members of the set in row-major order
func (s CellSet) Sorted() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	SortCells(cells)
	return cells
}

// SortCells sorts cells in place in row-major order
func SortCells(cells []Cell) {
	slices.SortFunc(cells, Cell.Compare)
}
