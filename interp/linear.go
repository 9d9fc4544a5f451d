package interp

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrLenMismatch indicates x and y differ in length.
	ErrLenMismatch = errors.New("interp: x and y must have equal length")
	// ErrTooFewKnots indicates fewer than two knots.
	ErrTooFewKnots = errors.New("interp: need at least two knots")
	// ErrNotIncreasing indicates knots are not strictly increasing.
	ErrNotIncreasing = errors.New("interp: x must be strictly increasing")
	// ErrNonFinite indicates a NaN or ±Inf knot or value.
	ErrNonFinite = errors.New("interp: NaN or Inf in knots")
)

// Options configures evaluation outside the knot range.
type Options struct {
	// LimitSlope is the slope used above the top knot, anchored there.
	// NaN (the default) reuses the top segment's slope.
	LimitSlope float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{LimitSlope: math.NaN()}
}

// Linear is a piecewise-linear interpolant over strictly increasing knots.
//
// Evaluation policy:
//   - inside [x₀, xₙ]: exact segment interpolation;
//   - below x₀: the first segment extends linearly (callers place the
//     borrowing-constraint segment first, so its slope is the right one);
//   - above xₙ: linear continuation with Options.LimitSlope, or the top
//     segment's slope when none was configured.
//
// Immutable after construction; safe for concurrent Eval.
type Linear struct {
	xs, ys     []float64
	limitSlope float64 // NaN ⇒ reuse top segment slope
}

// NewLinear copies the knots, validates them, and returns the interpolant.
//
// Errors: ErrLenMismatch, ErrTooFewKnots, ErrNotIncreasing, ErrNonFinite.
//
// Complexity: O(n).
func NewLinear(x, y []float64, opts *Options) (*Linear, error) {
	if len(x) != len(y) {
		return nil, ErrLenMismatch
	}
	if len(x) < 2 {
		return nil, ErrTooFewKnots
	}

	var (
		xs = make([]float64, len(x))
		ys = make([]float64, len(y))
		i  int
	)
	copy(xs, x)
	copy(ys, y)
	for i = 0; i < len(xs); i++ {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			return nil, ErrNonFinite
		}
		if i > 0 && xs[i] <= xs[i-1] {
			return nil, ErrNotIncreasing
		}
	}

	limit := math.NaN()
	if opts != nil {
		limit = opts.LimitSlope
	}

	return &Linear{xs: xs, ys: ys, limitSlope: limit}, nil
}

// segment returns the index i of the segment [xs[i], xs[i+1]] governing x,
// clamped to the outermost segments for out-of-range x.
func (f *Linear) segment(x float64) int {
	// First knot index with xs[j] >= x.
	j := sort.SearchFloat64s(f.xs, x)
	switch {
	case j <= 1:
		return 0
	case j >= len(f.xs):
		return len(f.xs) - 2
	default:
		return j - 1
	}
}

// Eval returns f(x).
//
// Complexity: O(log n).
func (f *Linear) Eval(x float64) float64 {
	n := len(f.xs)
	if x > f.xs[n-1] && !math.IsNaN(f.limitSlope) {
		return f.ys[n-1] + f.limitSlope*(x-f.xs[n-1])
	}

	i := f.segment(x)
	slope := (f.ys[i+1] - f.ys[i]) / (f.xs[i+1] - f.xs[i])

	return f.ys[i] + slope*(x-f.xs[i])
}

// Slope returns the derivative at x (the governing segment's slope; at an
// interior knot, the left segment's).
//
// Complexity: O(log n).
func (f *Linear) Slope(x float64) float64 {
	n := len(f.xs)
	if x > f.xs[n-1] && !math.IsNaN(f.limitSlope) {
		return f.limitSlope
	}

	i := f.segment(x)

	return (f.ys[i+1] - f.ys[i]) / (f.xs[i+1] - f.xs[i])
}

// MinX returns the lowest knot — the left edge of the defined domain.
func (f *Linear) MinX() float64 { return f.xs[0] }

// MaxX returns the highest knot.
func (f *Linear) MaxX() float64 { return f.xs[len(f.xs)-1] }
