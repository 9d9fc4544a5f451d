package solver

import (
	"math"

	"github.com/katalvlaran/consav/interp"
)

// solvePeriodPF solves one perfect-foresight period in closed form — the
// EGM machinery is unnecessary because without shocks the consumption
// function is piecewise linear with at most one kink (the borrowing
// constraint).
//
// Recursions (terminal: h = 0, κ_c = 1):
//
//	hNrm    = (Γ/R)·(1 + hNrm′)             discounted future income
//	patFac  = (R·β·ℵ)^{1/ρ}/R               return patience factor
//	MPCmin  = 1/(1 + patFac/MPCmin′)        asymptotic MPC
//
// Unconstrained policy: c(m) = MPCmin·(m + hNrm). A binding artificial
// limit ā > −hNrm replaces the segment below the kink
// m* = (MPCmin·hNrm + ā)/(1 − MPCmin) with the slope-one line c = m − ā.
//
// Complexity: O(1).
func solvePeriodPF(next *PeriodSolution, pp periodParams) (*PeriodSolution, error) {
	var (
		patFac = math.Pow(pp.rfree*pp.beta*pp.liv, 1/pp.rho) / pp.rfree
		hNrm   = (pp.gro / pp.rfree) * (1 + next.HNrm)
		mpcMin = 1 / (1 + patFac/next.MPCMin)
	)

	var (
		mNrmMin = -hNrm
		binding = pp.boroCnst > -hNrm
	)
	if binding {
		mNrmMin = pp.boroCnst
	}

	// Policy knots: either the globally linear function anchored at the
	// natural minimum, or the constrained segment up to the kink. MPCmin
	// < 1 always (patFac > 0), so the kink position is well-defined.
	var (
		xs, ys []float64
		opts   = interp.Options{LimitSlope: mpcMin}
	)
	if binding {
		kink := (mpcMin*hNrm + pp.boroCnst) / (1 - mpcMin)
		xs = []float64{pp.boroCnst, kink}
		ys = []float64{0, kink - pp.boroCnst}
	} else {
		xs = []float64{-hNrm, -hNrm + 1}
		ys = []float64{0, mpcMin}
	}
	cf, err := interp.NewLinear(xs, ys, &opts)
	if err != nil {
		return nil, err
	}

	mpcMax := mpcMin
	if binding {
		mpcMax = 1
	}

	sol := &PeriodSolution{
		CFunc:    cf,
		CRRA:     pp.rho,
		MNrmMin:  mNrmMin,
		HNrm:     hNrm,
		MPCMin:   mpcMin,
		MPCMax:   mpcMax,
		BoroCnst: math.Inf(-1), // the kink is baked into the knots
		vKappa:   1 + pp.beta*pp.liv*math.Pow(pp.rfree*pp.beta*pp.liv, (1-pp.rho)/pp.rho)*next.vKappa,
	}

	// Value function: v(m) = κ·u(c(m)) along the optimal path, so the
	// pseudo-inverse is the linear κ^{1/(1−ρ)}·c(m). The multiplicative
	// form has no log-utility analogue; ρ = 1 leaves VFunc nil.
	if pp.withV && pp.rho != 1 {
		fac := math.Pow(sol.vKappa, 1/(1-pp.rho))
		vOpts := interp.Options{LimitSlope: fac * mpcMin}
		sol.VFunc, err = interp.NewValueCRRA(
			[]float64{-hNrm, -hNrm + 1},
			[]float64{0, fac * mpcMin},
			pp.rho, &vOpts)
		if err != nil {
			return nil, err
		}
	}

	return sol, nil
}
