package grid

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		_, err := New(tc.rows, tc.cols, Bounded)
		require.ErrorIs(t, err, ErrInvalidDimensions, "rows=%d cols=%d", tc.rows, tc.cols)
	}
}

func TestGetBoundedShortCircuitsOutside(t *testing.T) {
	g, err := New(3, 4, Bounded)
	require.NoError(t, err)
	for i := range g.cells {
		g.cells[i] = true
	}

	outside := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {-1, -1}, {4, 3}, {100, -100}}
	for _, p := range outside {
		if g.Get(p[0], p[1]) {
			t.Fatalf("bounded Get(%d,%d) = true, want false", p[0], p[1])
		}
	}
	if !g.Get(3, 2) {
		t.Fatal("expected in-range cell to be live")
	}
}

func TestGetToroidalWraps(t *testing.T) {
	g, err := New(3, 4, Toroidal)
	require.NoError(t, err)
	require.NoError(t, g.Set(3, 2, true))

	for _, p := range [][2]int{{3, 2}, {-1, -1}, {7, 5}, {-5, 2}, {3, -4}} {
		if !g.Get(p[0], p[1]) {
			t.Fatalf("toroidal Get(%d,%d) = false, want wrapped hit on (3,2)", p[0], p[1])
		}
	}
	if g.Get(0, 0) {
		t.Fatal("unexpected live cell at origin")
	}
}

func TestSetIgnoresTopologyForRangeCheck(t *testing.T) {
	for _, topo := range []Topology{Bounded, Toroidal} {
		g, err := New(2, 2, topo)
		require.NoError(t, err)

		err = g.Set(2, 0, true)
		require.ErrorIs(t, err, ErrOutOfRange)
		err = g.Set(0, -1, true)
		require.ErrorIs(t, err, ErrOutOfRange)
		err = g.Toggle(-1, 0)
		require.ErrorIs(t, err, ErrOutOfRange)
		if g.LiveCount() != 0 {
			t.Fatalf("%s: failed writes must not touch storage", topo)
		}
	}
}

func TestToggleFlips(t *testing.T) {
	g, err := New(2, 3, Bounded)
	require.NoError(t, err)

	require.NoError(t, g.Toggle(2, 1))
	if !g.Get(2, 1) {
		t.Fatal("toggle should make cell live")
	}
	require.NoError(t, g.Toggle(2, 1))
	if g.Get(2, 1) {
		t.Fatal("second toggle should make cell dead")
	}
}

func TestRowMajorLayout(t *testing.T) {
	g, err := New(2, 3, Bounded)
	require.NoError(t, err)
	require.NoError(t, g.Set(1, 1, true))

	want := []bool{false, false, false, false, true, false}
	if diff := cmp.Diff(want, g.Cells()); diff != "" {
		t.Fatalf("cells mismatch (-want +got):\n%s", diff)
	}
	if x, y := g.Coords(4); x != 1 || y != 1 {
		t.Fatalf("Coords(4) = (%d,%d), want (1,1)", x, y)
	}
}

func TestWithDimensionsResetsCells(t *testing.T) {
	g := MustParse(`
		##
		##
	`, Bounded)

	resized, err := g.WithDimensions(4, 5, Toroidal)
	require.NoError(t, err)
	if resized.Rows() != 4 || resized.Cols() != 5 || resized.Topology() != Toroidal {
		t.Fatalf("unexpected shape %dx%d %s", resized.Rows(), resized.Cols(), resized.Topology())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			if resized.Get(x, y) {
				t.Fatalf("resized cell (%d,%d) should be dead", x, y)
			}
		}
	}

	_, err = g.WithDimensions(0, 5, Bounded)
	require.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestWithTopologyKeepsPatternAndCopies(t *testing.T) {
	g := MustParse(`
		#..
		.#.
	`, Bounded)

	torus := g.WithTopology(Toroidal)
	if torus.Topology() != Toroidal {
		t.Fatalf("topology = %s, want toroidal", torus.Topology())
	}
	if diff := cmp.Diff(g.Cells(), torus.Cells()); diff != "" {
		t.Fatalf("pattern changed (-old +new):\n%s", diff)
	}

	require.NoError(t, torus.Toggle(2, 1))
	if g.Get(2, 1) {
		t.Fatal("WithTopology must not alias the source cells")
	}
}

func TestCellsReturnsCopy(t *testing.T) {
	g, err := New(1, 2, Bounded)
	require.NoError(t, err)
	cells := g.Cells()
	cells[0] = true
	if g.Get(0, 0) {
		t.Fatal("mutating Cells() result must not change the grid")
	}
}

func TestFromCellsLengthMismatch(t *testing.T) {
	_, err := FromCells(2, 2, Bounded, make([]bool, 3))
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestEqual(t *testing.T) {
	a := MustParse("#.\n.#", Bounded)
	b := MustParse("#.\n.#", Bounded)
	if !a.Equal(b) {
		t.Fatal("identical grids should be equal")
	}
	if a.Equal(b.WithTopology(Toroidal)) {
		t.Fatal("topology is part of equality")
	}
	require.NoError(t, b.Toggle(1, 0))
	if a.Equal(b) {
		t.Fatal("different cells should not be equal")
	}
}
