// Package life implements the Conway's Game of Life generation step over a
// grid.Grid.
package life

import "github.com/Hunterosmun/conways-game/pkg/grid"

// Step returns the next generation of g. Neighbor counts are read only from
// g and the result is written into fresh storage, so every cell transitions
// synchronously. The input grid is never modified.
func Step(g *grid.Grid) *grid.Grid {
	cols := g.Cols()
	next := make([]bool, g.Len())
	for i := range next {
		x, y := i%cols, i/cols
		next[i] = Next(g.Get(x, y), Neighbors(g, x, y))
	}
	out, err := grid.FromCells(g.Rows(), cols, g.Topology(), next)
	if err != nil {
		// Shape is copied from a valid grid.
		panic(err)
	}
	return out
}

// StepN applies Step n times. For n <= 0 it returns a copy of g.
func StepN(g *grid.Grid, n int) *grid.Grid {
	if n <= 0 {
		return g.Clone()
	}
	cur := g
	for i := 0; i < n; i++ {
		cur = Step(cur)
	}
	return cur
}

// Neighbors counts the live cells in the Moore neighborhood of (x, y) using
// the grid's own topology for all eight lookups.
func Neighbors(g *grid.Grid, x, y int) int {
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Get(x+dx, y+dy) {
				neighbors++
			}
		}
	}
	return neighbors
}

// Next applies the B3/S23 rule to one cell.
func Next(alive bool, neighbors int) bool {
	switch {
	case alive && neighbors < 2:
		return false // underpopulation
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case alive && neighbors > 3:
		return false // overpopulation
	case !alive && neighbors == 3:
		return true // reproduction
	default:
		return false
	}
}
