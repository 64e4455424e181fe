package grid

import (
	"fmt"
	"math/rand/v2"
)

// NewRNG creates a deterministic PCG-backed source for the provided seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// FillBernoulli sets every cell live with probability percent/100.
// Callers validate percent; values outside 0..100 saturate.
func FillBernoulli(r *rand.Rand, cells []bool, percent int) {
	for i := range cells {
		cells[i] = r.IntN(100) < percent
	}
}

// Randomized returns a grid of the same shape and topology with each cell
// drawn independently.
func (g *Grid) Randomized(r *rand.Rand, percent int) (*Grid, error) {
	if percent < 0 || percent > 100 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidProbability, percent)
	}
	next := g.Cleared()
	FillBernoulli(r, next.cells, percent)
	return next, nil
}
