// Package grid holds the Life board: a fixed-size, row-major slice of
// binary cells plus the edge policy used when reading neighbors.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange reports a write outside [0,cols)x[0,rows).
	ErrOutOfRange = errors.New("grid: coordinates out of range")
	// ErrInvalidDimensions reports rows or cols below one, or a cell slice
	// whose length does not match the dimensions.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")
	// ErrInvalidProbability reports a live percentage outside 0..100.
	ErrInvalidProbability = errors.New("grid: probability must be within 0..100")
)

// Grid stores cells in row-major order: cell (x, y) lives at y*cols+x.
// Rows, cols and topology never change; resizing produces a new Grid.
type Grid struct {
	rows, cols int
	topology   Topology
	cells      []bool
}

// New allocates an all-dead grid.
func New(rows, cols int, topology Topology) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Grid{rows: rows, cols: cols, topology: topology, cells: make([]bool, rows*cols)}, nil
}

// FromCells wraps cells without copying them. The grid owns the slice afterwards.
func FromCells(rows, cols int, topology Topology, cells []bool) (*Grid, error) {
	if rows < 1 || cols < 1 || len(cells) != rows*cols {
		return nil, fmt.Errorf("%w: %dx%d with %d cells", ErrInvalidDimensions, rows, cols, len(cells))
	}
	return &Grid{rows: rows, cols: cols, topology: topology, cells: cells}, nil
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Topology returns the edge policy.
func (g *Grid) Topology() Topology { return g.topology }

// Len returns rows*cols.
func (g *Grid) Len() int { return len(g.cells) }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.cols + x }

// Coords decodes a linear index back to (x, y).
func (g *Grid) Coords(i int) (int, int) { return i % g.cols, i / g.cols }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.cols + g.cols) % g.cols
	y = (y%g.rows + g.rows) % g.rows
	return x, y
}

// InBounds reports whether (x, y) addresses a stored cell without wrapping.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Get reads the cell at (x, y) under the grid's topology. Bounded grids
// report everything outside the board as dead; toroidal grids wrap.
func (g *Grid) Get(x, y int) bool {
	if g.topology == Toroidal {
		x, y = g.Wrap(x, y)
		return g.cells[g.Index(x, y)]
	}
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[g.Index(x, y)]
}

// Set writes a single cell. Coordinates are never wrapped, whatever the topology.
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, x, y, g.cols, g.rows)
	}
	g.cells[g.Index(x, y)] = alive
	return nil
}

// Toggle flips a single cell.
func (g *Grid) Toggle(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, x, y, g.cols, g.rows)
	}
	idx := g.Index(x, y)
	g.cells[idx] = !g.cells[idx]
	return nil
}

// WithDimensions returns a fresh all-dead grid. Cell data is not carried over.
func (g *Grid) WithDimensions(rows, cols int, topology Topology) (*Grid, error) {
	return New(rows, cols, topology)
}

// WithTopology returns a copy of the grid that uses a different edge policy.
func (g *Grid) WithTopology(topology Topology) *Grid {
	c := g.Clone()
	c.topology = topology
	return c
}

// Cleared returns an all-dead grid with the same shape and topology.
func (g *Grid) Cleared() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, topology: g.topology, cells: make([]bool, len(g.cells))}
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, topology: g.topology, cells: cells}
}

// Cells returns a copy of the row-major cell data.
func (g *Grid) Cells() []bool {
	out := make([]bool, len(g.cells))
	copy(out, g.cells)
	return out
}

// LiveCount returns the number of live cells.
func (g *Grid) LiveCount() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same shape, topology and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols || g.topology != other.topology {
		return false
	}
	for i, alive := range g.cells {
		if other.cells[i] != alive {
			return false
		}
	}
	return true
}
