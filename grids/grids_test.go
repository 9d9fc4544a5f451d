package grids_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/consav/grids"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExpMult_InvalidInputs covers the sentinel family.
func TestExpMult_InvalidInputs(t *testing.T) {
	_, err := grids.ExpMult(5, 5, 10, 3)
	assert.ErrorIs(t, err, grids.ErrBounds, "min == max must error")
	assert.ErrorIs(t, err, grids.ErrInvalidGrid, "specific sentinel must wrap the base")

	_, err = grids.ExpMult(-1, 5, 10, 3)
	assert.ErrorIs(t, err, grids.ErrBounds, "negative min must error")

	_, err = grids.ExpMult(0, math.Inf(1), 10, 3)
	assert.ErrorIs(t, err, grids.ErrBounds, "infinite max must error")

	_, err = grids.ExpMult(0, 5, 0, 3)
	assert.ErrorIs(t, err, grids.ErrCount, "zero count must error")

	_, err = grids.ExpMult(0, 5, 10, 0)
	assert.ErrorIs(t, err, grids.ErrNesting, "nesting 0 must error")

	_, err = grids.ExpMult(0, 5, 10, 3, 7.0)
	assert.ErrorIs(t, err, grids.ErrBreakpoint, "breakpoint above max must error")
}

// TestExpMult_Shape verifies endpoints, count, and strict monotonicity.
func TestExpMult_Shape(t *testing.T) {
	g, err := grids.ExpMult(0.001, 20, 48, 3)
	require.NoError(t, err)
	require.Len(t, g, 48)

	assert.Equal(t, 0.001, g[0], "grid must start at min")
	assert.Equal(t, 20.0, g[len(g)-1], "grid must end at max")
	for i := 1; i < len(g); i++ {
		assert.Greater(t, g[i], g[i-1], "grid must be strictly increasing at %d", i)
	}
}

// TestExpMult_DenserNearMin verifies the curvature contract: spacing grows
// along the grid, and a deeper nesting concentrates more mass near min.
func TestExpMult_DenserNearMin(t *testing.T) {
	g, err := grids.ExpMult(0.001, 20, 30, 3)
	require.NoError(t, err)

	first := g[1] - g[0]
	last := g[len(g)-1] - g[len(g)-2]
	assert.Less(t, first, last, "spacing near min must be tighter than near max")

	// Deeper nesting ⇒ smaller first gap.
	shallow, err := grids.ExpMult(0.001, 20, 30, 1)
	require.NoError(t, err)
	assert.Less(t, first, shallow[1]-shallow[0], "nest=3 must be denser near min than nest=1")
}

// TestExpMult_Breakpoints verifies splice, sort and de-duplication.
func TestExpMult_Breakpoints(t *testing.T) {
	g, err := grids.ExpMult(0, 10, 5, 2, 0.5, 3.3, 0.5, 10)
	require.NoError(t, err)

	assert.Contains(t, g, 0.5, "breakpoint must be present")
	assert.Contains(t, g, 3.3, "breakpoint must be present")
	for i := 1; i < len(g); i++ {
		assert.Greater(t, g[i], g[i-1], "spliced grid must stay strictly increasing at %d", i)
	}
	// 5 base nodes + {0.5, 3.3}; the duplicate 0.5 and the endpoint 10 collapse.
	assert.Len(t, g, 7, "duplicates must collapse")
}

// TestExpMult_SingleNode verifies the n=1 degenerate case.
func TestExpMult_SingleNode(t *testing.T) {
	g, err := grids.ExpMult(0.25, 2, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25}, g)
}
