package grids

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrInvalidGrid is the base sentinel for every construction failure.
	// The specific sentinels below wrap it.
	ErrInvalidGrid = errors.New("grids: invalid grid")

	// ErrBounds rejects min >= max, a negative min, or non-finite bounds.
	// The minimum is measured above the borrowing constraint, so it must
	// be non-negative for the log transforms to be defined.
	ErrBounds = fmt.Errorf("%w: bounds must satisfy 0 <= min < max and be finite", ErrInvalidGrid)

	// ErrCount rejects a node count below one.
	ErrCount = fmt.Errorf("%w: node count must be >= 1", ErrInvalidGrid)

	// ErrNesting rejects a nesting degree below one.
	ErrNesting = fmt.Errorf("%w: nesting degree must be >= 1", ErrInvalidGrid)

	// ErrBreakpoint rejects an extra breakpoint outside [min, max] or non-finite.
	ErrBreakpoint = fmt.Errorf("%w: breakpoints must be finite and inside [min, max]", ErrInvalidGrid)
)

// ExpMult builds a strictly increasing grid of n nodes on [min, max] with
// nested-exponential spacing, then splices in the extra breakpoints.
//
// Construction:
//  1. Apply x ← ln(x+1) to both bounds, nest times.
//  2. Partition the transformed interval uniformly into n nodes.
//  3. Invert with x ← exp(x)−1, nest times.
//
// Larger nest ⇒ more nodes near min. The endpoints survive the round trip
// up to floating-point noise; extra breakpoints are inserted afterwards,
// sorted, and de-duplicated, so the returned length is n plus the number
// of distinct new breakpoints.
//
// Errors: ErrBounds, ErrCount, ErrNesting, ErrBreakpoint.
//
// Complexity: O((n+e)·log(n+e)) due to the final sort.
func ExpMult(min, max float64, n, nest int, extra ...float64) ([]float64, error) {
	// Stage 1: input sanity.
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || min < 0 || min >= max {
		return nil, ErrBounds
	}
	if n < 1 {
		return nil, ErrCount
	}
	if nest < 1 {
		return nil, ErrNesting
	}
	for _, b := range extra {
		if math.IsNaN(b) || math.IsInf(b, 0) || b < min || b > max {
			return nil, ErrBreakpoint
		}
	}

	// Stage 2: nested log transform of the bounds.
	var (
		lo = min
		hi = max
		j  int
	)
	for j = 0; j < nest; j++ {
		lo = math.Log1p(lo)
		hi = math.Log1p(hi)
	}

	// Stage 3: uniform partition, then invert the nesting.
	grid := make([]float64, n)
	if n == 1 {
		grid[0] = min
	} else {
		step := (hi - lo) / float64(n-1)
		for i := 0; i < n; i++ {
			x := lo + float64(i)*step
			for j = 0; j < nest; j++ {
				x = math.Expm1(x)
			}
			grid[i] = x
		}
		// Pin the endpoints exactly; the transform round trip can drift an ulp.
		grid[0] = min
		grid[n-1] = max
	}

	// Stage 4: splice breakpoints, sort, de-duplicate.
	if len(extra) > 0 {
		grid = append(grid, extra...)
	}
	sort.Float64s(grid)

	out := grid[:1]
	for i := 1; i < len(grid); i++ {
		if grid[i] > out[len(out)-1] {
			out = append(out, grid[i])
		}
	}

	return out, nil
}
