package model

import "github.com/sheikhrachel/glife/rules"

// neighborOffsets lists the eight grid-adjacent directions, diagonals included
var neighborOffsets = [8]Cell{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NeighborMap maps a cell to the number of live cells around it. Cells with no live
// neighbors are absent.
type NeighborMap map[Cell]int

// CountNeighbors derives the neighbor counts for every cell touching at least one live
// cell. The grid is bounded: coordinates outside [0, rows) x [0, cols) are never counted.
func CountNeighbors(live CellSet, rows, cols int) NeighborMap {
	counts := make(NeighborMap, len(live)*len(neighborOffsets))
	for c := range live {
		for _, off := range neighborOffsets {
			r, col := c.Row+off.Row, c.Col+off.Col
			if r < 0 || r >= rows || col < 0 || col >= cols {
				continue
			}
			counts[Cell{Row: r, Col: col}]++
		}
	}
	return counts
}

// NextGeneration applies the Conway rules to the neighbor counts derived from live and
// returns the surviving and newborn cells in row-major order.
func NextGeneration(live CellSet, counts NeighborMap) []Cell {
	next := rules.NextGeneration(counts, live.Contains)
	SortCells(next)
	return next
}
