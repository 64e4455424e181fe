package grid

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomizedExtremes(t *testing.T) {
	g, err := New(6, 7, Toroidal)
	require.NoError(t, err)

	none, err := g.Randomized(NewRNG(1), 0)
	require.NoError(t, err)
	if none.LiveCount() != 0 {
		t.Fatalf("0%% produced %d live cells", none.LiveCount())
	}

	all, err := g.Randomized(NewRNG(1), 100)
	require.NoError(t, err)
	if all.LiveCount() != all.Len() {
		t.Fatalf("100%% produced %d/%d live cells", all.LiveCount(), all.Len())
	}
	if all.Topology() != Toroidal {
		t.Fatal("randomize must keep topology")
	}
}

func TestRandomizedDeterministicBySeed(t *testing.T) {
	g, err := New(16, 16, Bounded)
	require.NoError(t, err)

	a, err := g.Randomized(NewRNG(99), 40)
	require.NoError(t, err)
	b, err := g.Randomized(NewRNG(99), 40)
	require.NoError(t, err)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed should produce the same board")
	}

	c, err := g.Randomized(NewRNG(100), 40)
	require.NoError(t, err)
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds should produce different boards")
	}
}

func TestRandomizedRejectsBadProbability(t *testing.T) {
	g, err := New(2, 2, Bounded)
	require.NoError(t, err)
	for _, p := range []int{-1, 101} {
		_, err := g.Randomized(NewRNG(1), p)
		require.ErrorIs(t, err, ErrInvalidProbability)
	}
}
