// Package scheduler owns the current Life grid and advances it one
// generation per host frame while running.
//
// A Scheduler is single-threaded: hosts call every method, and fire the
// FrameRequester, from one goroutine. Commands issued between two frames are
// therefore fully applied before the next frame steps the grid.
package scheduler

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/Hunterosmun/conways-game/pkg/grid"
	"github.com/Hunterosmun/conways-game/pkg/life"
)

// Default board values used by DefaultOptions.
const (
	DefaultRows        = 30
	DefaultCols        = 20
	DefaultLivePercent = 40
)

// Options configures a Scheduler.
type Options struct {
	Rows     int
	Cols     int
	Topology grid.Topology

	// StopOnResize stops a running scheduler before Resize swaps the grid.
	StopOnResize bool

	// LivePercent is the probability used by RandomizeDefault.
	LivePercent int

	// Rand is the source for Randomize. When nil a PCG source seeded with
	// Seed is used.
	Rand *rand.Rand
	Seed int64

	Logger *slog.Logger
}

// DefaultOptions returns a 30x20 bounded board that stops on resize.
func DefaultOptions() Options {
	return Options{
		Rows:         DefaultRows,
		Cols:         DefaultCols,
		Topology:     grid.Bounded,
		StopOnResize: true,
		LivePercent:  DefaultLivePercent,
		Seed:         1,
	}
}

// Scheduler is the Running/Stopped state machine around the current grid.
type Scheduler struct {
	frames FrameRequester
	opts   Options
	rng    *rand.Rand
	logger *slog.Logger

	current    *grid.Grid
	generation uint64

	running bool
	pending FrameID
	token   uint64
}

// New builds a stopped scheduler with an all-dead grid.
func New(frames FrameRequester, opts Options) (*Scheduler, error) {
	if frames == nil {
		return nil, fmt.Errorf("scheduler: frame requester is required")
	}
	if opts.LivePercent < 0 || opts.LivePercent > 100 {
		return nil, fmt.Errorf("%w: live percent %d", grid.ErrInvalidProbability, opts.LivePercent)
	}
	current, err := grid.New(opts.Rows, opts.Cols, opts.Topology)
	if err != nil {
		return nil, err
	}
	rng := opts.Rand
	if rng == nil {
		rng = grid.NewRNG(opts.Seed)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scheduler{
		frames:  frames,
		opts:    opts,
		rng:     rng,
		logger:  logger,
		current: current,
	}, nil
}

// Dimensions returns (rows, cols) of the current grid.
func (s *Scheduler) Dimensions() (int, int) { return s.current.Rows(), s.current.Cols() }

// Topology returns the current edge policy.
func (s *Scheduler) Topology() grid.Topology { return s.current.Topology() }

// IsRunning reports whether frames are advancing the grid.
func (s *Scheduler) IsRunning() bool { return s.running }

// CellAt reads a cell with the grid's Get semantics.
func (s *Scheduler) CellAt(x, y int) bool { return s.current.Get(x, y) }

// LiveCount returns the number of live cells.
func (s *Scheduler) LiveCount() int { return s.current.LiveCount() }

// Generation returns the number of generations since the last resize or clear.
func (s *Scheduler) Generation() uint64 { return s.generation }

// Snapshot returns a copy of the current grid.
func (s *Scheduler) Snapshot() *grid.Grid { return s.current.Clone() }

// ToggleCell flips one cell. It does not affect the run state.
func (s *Scheduler) ToggleCell(x, y int) error {
	return s.current.Toggle(x, y)
}

// Step advances one generation.
func (s *Scheduler) Step() {
	s.current = life.Step(s.current)
	s.generation++
}

// StepN advances n generations and publishes only the last one.
func (s *Scheduler) StepN(n int) {
	if n <= 0 {
		return
	}
	next := s.current
	for i := 0; i < n; i++ {
		next = life.Step(next)
	}
	s.current = next
	s.generation += uint64(n)
}

// Start begins stepping once per frame. Starting twice is a no-op.
func (s *Scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.arm()
	s.logger.Debug("scheduler started", "generation", s.generation)
}

// Stop cancels the pending frame. Stopping twice is a no-op.
func (s *Scheduler) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.disarm()
	s.logger.Debug("scheduler stopped", "generation", s.generation)
}

// Resize replaces the grid with an all-dead one of the new shape.
func (s *Scheduler) Resize(rows, cols int, topology grid.Topology) error {
	next, err := s.current.WithDimensions(rows, cols, topology)
	if err != nil {
		return err
	}
	if s.opts.StopOnResize {
		s.Stop()
	}
	s.current = next
	s.generation = 0
	s.logger.Debug("grid resized", "rows", rows, "cols", cols, "topology", topology, "running", s.running)
	return nil
}

// SetTopology switches the edge policy and keeps the pattern.
func (s *Scheduler) SetTopology(topology grid.Topology) {
	if topology == s.current.Topology() {
		return
	}
	s.current = s.current.WithTopology(topology)
	s.logger.Debug("topology changed", "topology", topology)
}

// Randomize fills every cell independently with the given live percentage.
func (s *Scheduler) Randomize(percent int) error {
	next, err := s.current.Randomized(s.rng, percent)
	if err != nil {
		return err
	}
	s.current = next
	s.logger.Debug("grid randomized", "percent", percent, "live", next.LiveCount())
	return nil
}

// RandomizeDefault randomizes with Options.LivePercent.
func (s *Scheduler) RandomizeDefault() error {
	return s.Randomize(s.opts.LivePercent)
}

// Clear kills every cell and stops the scheduler.
func (s *Scheduler) Clear() {
	s.Stop()
	s.current = s.current.Cleared()
	s.generation = 0
	s.logger.Debug("grid cleared")
}

func (s *Scheduler) arm() {
	s.token++
	token := s.token
	s.pending = s.frames.RequestFrame(func() { s.tick(token) })
}

func (s *Scheduler) disarm() {
	if s.pending != 0 {
		s.frames.CancelFrame(s.pending)
		s.pending = 0
	}
	s.token++
}

// tick runs on a host frame. Frames from an earlier Start, or ones that fire
// after Stop, do nothing.
func (s *Scheduler) tick(token uint64) {
	if !s.running || token != s.token {
		return
	}
	s.pending = 0
	s.Step()
	if s.running {
		s.arm()
	}
}
