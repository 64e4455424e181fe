package core

import "github.com/Hunterosmun/conways-game/pkg/grid"

// Size describes the dimensions of a simulation grid in cells.
type Size struct {
	W int
	H int
}

// Engine is the surface a host (GUI, terminal) uses to read the board and
// submit commands. *scheduler.Scheduler implements it.
type Engine interface {
	Dimensions() (rows, cols int)
	Topology() grid.Topology
	IsRunning() bool
	CellAt(x, y int) bool
	LiveCount() int
	Generation() uint64
	Snapshot() *grid.Grid

	Start()
	Stop()
	Step()
	StepN(n int)
	ToggleCell(x, y int) error
	Resize(rows, cols int, topology grid.Topology) error
	SetTopology(topology grid.Topology)
	Randomize(percent int) error
	RandomizeDefault() error
	Clear()
}

// SizeOf reports the engine's board as a Size.
func SizeOf(e Engine) Size {
	rows, cols := e.Dimensions()
	return Size{W: cols, H: rows}
}
