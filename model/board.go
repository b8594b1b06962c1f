package model

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrOutOfBounds is returned when a cell lies outside the board
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrInvalidDimensions is returned for negative board dimensions
	ErrInvalidDimensions = errors.New("invalid board dimensions")
)

// Board is an immutable snapshot of one generation: the live cells and the grid size.
// Advance returns a new Board; nothing mutates a Board after construction.
type Board struct {
	rows  int
	cols  int
	live  CellSet
	cells []Cell // live cells in row-major order
	key   string
}

// NewBoard creates a board of rows x cols with the given live cells. Duplicates are
// collapsed; any cell outside the grid fails construction.
func NewBoard(rows, cols int, cells []Cell) (*Board, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewBoard] %dx%d", rows, cols)
	}
	for _, c := range cells {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return nil, errors.Wrapf(ErrOutOfBounds, "[NewBoard] cell (%d,%d) on %dx%d board", c.Row, c.Col, rows, cols)
		}
	}
	return newBoard(rows, cols, NewCellSet(cells...)), nil
}

func newBoard(rows, cols int, live CellSet) *Board {
	b := &Board{
		rows:  rows,
		cols:  cols,
		live:  live,
		cells: live.Sorted(),
	}
	b.key = canonicalKey(b.cells)
	return b
}

// canonicalKey encodes sorted cells as "row-col " tokens
func canonicalKey(sorted []Cell) string {
	var sb strings.Builder
	for _, c := range sorted {
		sb.WriteString(strconv.Itoa(c.Row))
		sb.WriteByte('-')
		sb.WriteString(strconv.Itoa(c.Col))
		sb.WriteByte(' ')
	}
	return sb.String()
}

// Rows returns the number of grid rows
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of grid columns
func (b *Board) Cols() int { return b.cols }

// IsAlive reports whether the cell is live
func (b *Board) IsAlive(c Cell) bool {
	return b.live.Contains(c)
}

// Population returns the number of live cells
func (b *Board) Population() int {
	return len(b.cells)
}

// IsEmpty reports whether the population is extinct
func (b *Board) IsEmpty() bool {
	return len(b.cells) == 0
}

// Cells returns a copy of the live cells in row-major order
func (b *Board) Cells() []Cell {
	return append([]Cell(nil), b.cells...)
}

// Key returns the canonical key of the live set. Boards with the same live cells have
// the same key regardless of the order the cells were supplied in.
func (b *Board) Key() string {
	return b.key
}

// Advance computes the next generation
func (b *Board) Advance() *Board {
	counts := CountNeighbors(b.live, b.rows, b.cols)
	return newBoard(b.rows, b.cols, NewCellSet(NextGeneration(b.live, counts)...))
}
