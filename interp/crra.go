package interp

import "math"

// ValueCRRA stores a value function through its CRRA pseudo-inverse.
//
// The knots hold n(m) = ((1−ρ)·v(m))^{1/(1−ρ)} (or exp(v) for ρ=1), which
// is interpolated linearly; Eval maps back through the utility transform.
// Where the transform hits zero — the constrained lower boundary — the
// mapped value is exactly −∞ for ρ ≥ 1, pasting the analytic boundary
// behavior without any special casing at evaluation time.
type ValueCRRA struct {
	nvrs *Linear
	rho  float64
}

// NewValueCRRA builds the transformed interpolant over (m, nvrs) knots.
// rho must be positive; knot validation errors come from NewLinear.
func NewValueCRRA(m, nvrs []float64, rho float64, opts *Options) (*ValueCRRA, error) {
	f, err := NewLinear(m, nvrs, opts)
	if err != nil {
		return nil, err
	}

	return &ValueCRRA{nvrs: f, rho: rho}, nil
}

// Eval returns v(m) = u(n(m)) under CRRA utility with coefficient rho.
//
// Complexity: O(log n).
func (v *ValueCRRA) Eval(m float64) float64 {
	n := v.nvrs.Eval(m)
	if n <= 0 {
		// At or below the constrained boundary.
		if v.rho >= 1 {
			return math.Inf(-1)
		}

		return 0
	}
	if v.rho == 1 {
		return math.Log(n)
	}

	return math.Pow(n, 1-v.rho) / (1 - v.rho)
}

// MinX returns the left edge of the defined domain.
func (v *ValueCRRA) MinX() float64 { return v.nvrs.MinX() }
