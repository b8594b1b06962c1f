package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

/*
NextGeneration evaluates every cell present in the neighbor-count map and returns the
cells that are alive in the next generation.

Only cells with at least one live neighbor appear in counts, so a cell missing from it
dies of isolation (or stays dead). The result holds each cell once; its order is not
defined and callers that need a canonical order must sort it.
*/
func NextGeneration[C comparable](counts map[C]int, isAlive func(C) bool) []C {
	next := make([]C, 0, len(counts))
	for cell, neighbors := range counts {
		if ApplyConwayRules(neighbors, isAlive(cell)) {
			next = append(next, cell)
		}
	}
	return next
}
