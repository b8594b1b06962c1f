package model

import (
	"bufio"
	"fmt"
	"io"
)

const deadCell = '.'

// TerminalRenderer prints boards as text, one character per cell
type TerminalRenderer struct {
	Out       io.Writer
	AliveChar byte
}

// Display writes the generation header followed by the grid
func (r *TerminalRenderer) Display(generation int, b *Board) error {
	w := bufio.NewWriter(r.Out)
	fmt.Fprintf(w, "Generation: %d\n", generation)
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			if b.IsAlive(Cell{Row: row, Col: col}) {
				w.WriteByte(r.AliveChar)
			} else {
				w.WriteByte(deadCell)
			}
		}
		w.WriteByte('\n')
	}
	w.WriteString("\n\n")
	return w.Flush()
}

// Observe lets the renderer act as a simulation observer
func (r *TerminalRenderer) Observe(generation int, b *Board) error {
	return r.Display(generation, b)
}
