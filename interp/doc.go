// Package interp provides the two interpolants the solver emits:
//
//   - Linear — piecewise-linear over strictly increasing knots, with
//     configurable slope above the top knot. Policy functions built by the
//     endogenous grid method are kinked and non-smooth, so segments are
//     kept exact rather than smoothed: the lower boundary segment carries
//     the borrowing-constraint slope, and evaluation above the grid
//     continues linearly with the asymptotic marginal propensity to
//     consume when one is supplied.
//
//   - ValueCRRA — a value function stored through its CRRA pseudo-inverse
//     ((1−ρ)·v)^{1/(1−ρ)}: the transform is close to linear in market
//     resources, so a linear interpolant of the transform is far more
//     accurate than one of v itself, and it pastes the exact boundary
//     value (−∞ for ρ>1) at the constrained kink where the transform
//     hits zero.
//
// Both types are immutable after construction and safe for concurrent
// evaluation.
package interp
