package grid

import (
	"fmt"
	"strings"
)

const (
	liveRune = '#'
	deadRune = '.'
)

// String renders one line per row with '#' for live and '.' for dead cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.cells[g.Index(x, y)] {
				b.WriteByte(liveRune)
			} else {
				b.WriteByte(deadRune)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Parse builds a grid from the String form. Blank lines are ignored, every
// row must have the same width, and 'O', 'o', '*', '1' are also read as live.
func Parse(s string, topology Topology) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	cells := make([]bool, 0, cols*len(rows))
	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, y, len(row), cols)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case liveRune, 'O', 'o', '*', '1':
				cells = append(cells, true)
			case deadRune, '0', '_', '-':
				cells = append(cells, false)
			default:
				return nil, fmt.Errorf("grid: unexpected %q at (%d,%d)", row[x], x, y)
			}
		}
	}
	return FromCells(len(rows), cols, topology, cells)
}

// MustParse is Parse for fixtures; it panics on malformed input.
func MustParse(s string, topology Topology) *Grid {
	g, err := Parse(s, topology)
	if err != nil {
		panic(err)
	}
	return g
}
