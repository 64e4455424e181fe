package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Hunterosmun/conways-game/internal/core"
	"github.com/Hunterosmun/conways-game/pkg/grid"
	"github.com/Hunterosmun/conways-game/pkg/scheduler"
)

// MinDimension is the smallest board side reachable with relative resizes.
const MinDimension = 3

// ErrUnknownCommand reports a command line the hosts do not understand.
var ErrUnknownCommand = errors.New("app: unknown command")

// Op enumerates host commands.
type Op int

const (
	OpStart Op = iota
	OpStop
	OpRunToggle
	OpStep
	OpToggleCell
	OpResize
	OpResizeBy
	OpTopology
	OpFlipTopology
	OpRandomize
	OpClear
	OpQuit
)

var opNames = map[Op]string{
	OpStart:        "start",
	OpStop:         "stop",
	OpRunToggle:    "run-toggle",
	OpStep:         "step",
	OpToggleCell:   "toggle",
	OpResize:       "resize",
	OpResizeBy:     "resize-by",
	OpTopology:     "topology",
	OpFlipTopology: "flip-topology",
	OpRandomize:    "random",
	OpClear:        "clear",
	OpQuit:         "quit",
}

// Command is one request from a host to the engine. Fields are interpreted
// per Op: N for step counts and percentages, X/Y for toggles, Rows/Cols for
// absolute or relative resizes.
type Command struct {
	Op       Op
	N        int
	X, Y     int
	Rows     int
	Cols     int
	Topology grid.Topology
	// KeepTopology resizes with the engine's current topology.
	KeepTopology bool
	// Default randomizes with the configured live percentage.
	Default bool
}

func (c Command) String() string {
	name := opNames[c.Op]
	switch c.Op {
	case OpStep:
		return fmt.Sprintf("%s %d", name, c.N)
	case OpToggleCell:
		return fmt.Sprintf("%s %d %d", name, c.X, c.Y)
	case OpResize, OpResizeBy:
		return fmt.Sprintf("%s %d %d", name, c.Rows, c.Cols)
	case OpTopology:
		return fmt.Sprintf("%s %s", name, c.Topology)
	case OpRandomize:
		if c.Default {
			return name
		}
		return fmt.Sprintf("%s %d", name, c.N)
	}
	return name
}

// StepBy is the bulk-advance command behind the +N buttons.
func StepBy(n int) Command { return Command{Op: OpStep, N: n} }

// DefaultBoard restores the 30x20 reference board.
func DefaultBoard() Command {
	return Command{Op: OpResize, Rows: scheduler.DefaultRows, Cols: scheduler.DefaultCols, KeepTopology: true}
}

// Apply runs cmd against e. OpQuit is left to the host.
func Apply(e core.Engine, cmd Command) error {
	switch cmd.Op {
	case OpStart:
		e.Start()
	case OpStop:
		e.Stop()
	case OpRunToggle:
		if e.IsRunning() {
			e.Stop()
		} else {
			e.Start()
		}
	case OpStep:
		if cmd.N == 1 {
			e.Step()
		} else {
			e.StepN(cmd.N)
		}
	case OpToggleCell:
		return e.ToggleCell(cmd.X, cmd.Y)
	case OpResize:
		topo := cmd.Topology
		if cmd.KeepTopology {
			topo = e.Topology()
		}
		return e.Resize(cmd.Rows, cmd.Cols, topo)
	case OpResizeBy:
		rows, cols := e.Dimensions()
		nr, nc := max(MinDimension, rows+cmd.Rows), max(MinDimension, cols+cmd.Cols)
		if nr == rows && nc == cols {
			return nil
		}
		return e.Resize(nr, nc, e.Topology())
	case OpTopology:
		e.SetTopology(cmd.Topology)
	case OpFlipTopology:
		e.SetTopology(e.Topology().Toggled())
	case OpRandomize:
		if cmd.Default {
			return e.RandomizeDefault()
		}
		return e.Randomize(cmd.N)
	case OpClear:
		e.Clear()
	case OpQuit:
	default:
		return fmt.Errorf("%w: op %d", ErrUnknownCommand, cmd.Op)
	}
	return nil
}

// ParseCommand reads one terminal command:
//
//	start | stop | step [n] | toggle x y | resize rows cols [topology]
//	topology bounded|toroidal | random [percent] | clear | default | quit
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}
	args := fields[1:]
	ints := func(want int) ([]int, error) {
		if len(args) < want {
			return nil, fmt.Errorf("app: %s needs %d arguments", fields[0], want)
		}
		out := make([]int, want)
		for i := 0; i < want; i++ {
			v, err := strconv.Atoi(args[i])
			if err != nil {
				return nil, fmt.Errorf("app: %s: %w", fields[0], err)
			}
			out[i] = v
		}
		return out, nil
	}

	switch fields[0] {
	case "start", "run":
		return Command{Op: OpStart}, nil
	case "stop", "pause":
		return Command{Op: OpStop}, nil
	case "step", "next":
		if len(args) == 0 {
			return StepBy(1), nil
		}
		v, err := ints(1)
		if err != nil {
			return Command{}, err
		}
		if v[0] < 0 {
			return Command{}, fmt.Errorf("app: step count must not be negative, got %d", v[0])
		}
		return StepBy(v[0]), nil
	case "toggle":
		v, err := ints(2)
		if err != nil {
			return Command{}, err
		}
		return Command{Op: OpToggleCell, X: v[0], Y: v[1]}, nil
	case "resize":
		v, err := ints(2)
		if err != nil {
			return Command{}, err
		}
		cmd := Command{Op: OpResize, Rows: v[0], Cols: v[1], KeepTopology: true}
		if len(args) > 2 {
			topo, err := grid.ParseTopology(args[2])
			if err != nil {
				return Command{}, err
			}
			cmd.Topology, cmd.KeepTopology = topo, false
		}
		return cmd, nil
	case "topology", "edges":
		if len(args) == 0 {
			return Command{Op: OpFlipTopology}, nil
		}
		topo, err := grid.ParseTopology(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Op: OpTopology, Topology: topo}, nil
	case "random", "randomize":
		if len(args) == 0 {
			return Command{Op: OpRandomize, Default: true}, nil
		}
		v, err := ints(1)
		if err != nil {
			return Command{}, err
		}
		return Command{Op: OpRandomize, N: v[0]}, nil
	case "clear":
		return Command{Op: OpClear}, nil
	case "default":
		return DefaultBoard(), nil
	case "quit", "exit", "q":
		return Command{Op: OpQuit}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
}
