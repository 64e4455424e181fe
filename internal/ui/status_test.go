package ui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Hunterosmun/conways-game/internal/core"
	"github.com/Hunterosmun/conways-game/pkg/grid"
	"github.com/Hunterosmun/conways-game/pkg/scheduler"
)

var _ core.Engine = (*scheduler.Scheduler)(nil)

func TestStatusReflectsEngine(t *testing.T) {
	frames := scheduler.NewFrameQueue()
	opts := scheduler.DefaultOptions()
	opts.Rows, opts.Cols, opts.Topology = 4, 6, grid.Toroidal
	s, err := scheduler.New(frames, opts)
	require.NoError(t, err)

	require.Equal(t, "4x6 toroidal | stopped | gen 0 | live 0", StatusLine(Status(s)))

	require.NoError(t, s.ToggleCell(1, 1))
	require.NoError(t, s.ToggleCell(2, 1))
	s.Start()
	frames.RunFrame()

	snap := Status(s)
	require.Equal(t, "4x6 toroidal | running | gen 1 | live 0", StatusLine(snap))

	live, ok := snap.Lookup("live")
	require.True(t, ok)
	require.Equal(t, core.ParamTypeInt, live.Type)
	require.Equal(t, core.Size{W: 6, H: 4}, core.SizeOf(s))
}

func TestStatusLineMissingKeys(t *testing.T) {
	require.Equal(t, "--x-- -- | -- | gen -- | live --", StatusLine(core.ParameterSnapshot{}))
}
