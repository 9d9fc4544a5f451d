package solver

import (
	"math"
	"sort"

	"github.com/katalvlaran/consav/interp"
)

// solvePeriodKinked solves one period of the kinked-rate variant: the
// interest factor is RBoro below zero assets and RSave at or above. Only
// the discounting in the expectation step differs from IndShock; the
// machinery is shared through egmPolicy with a per-node rate vector.
//
// Rate roles:
//   - human wealth and the asymptotic MPC use RSave (behavior far from
//     the constraint is saving);
//   - the natural borrowing limit and the at-constraint MPC use RBoro
//     (behavior at the bottom is borrowing).
//
// Zero assets enter the grid twice — once discounted at each rate — so
// the endogenous grid brackets the policy kink at a = 0 exactly: between
// the two resulting m-knots the interpolant is the slope-one segment
// c = m, which is the true policy where the household parks at zero.
//
// Complexity: O(G·S), parallel across nodes.
func solvePeriodKinked(next *PeriodSolution, pp periodParams) (*PeriodSolution, error) {
	var (
		patSave = math.Pow(pp.rsave*pp.beta*pp.liv, 1/pp.rho) / pp.rsave
		patBoro = math.Pow(pp.rboro*pp.beta*pp.liv, 1/pp.rho) / pp.rboro
		hNrm    = (pp.gro / pp.rsave) * (1 + next.HNrm)
		mpcMin  = 1 / (1 + patSave/next.MPCMin)
	)

	var (
		permMin = pp.dist.MinPerm()
		tranMin = pp.dist.MinTran()
		natCnst = (next.MNrmMin - tranMin) * pp.gro * permMin / pp.rboro
		mNrmMin = natCnst
		binding = pp.boroCnst > natCnst
	)
	if binding {
		mNrmMin = pp.boroCnst
	}

	mpcMax := 1.0
	if !binding {
		mpcMax = 1 / (1 + math.Pow(pp.dist.WorstProb(), 1/pp.rho)*patBoro/next.MPCMax)
	}

	// Asset grid plus the doubled kink node when borrowing is feasible.
	aGrid := make([]float64, 0, len(pp.aXtra)+2)
	for _, ax := range pp.aXtra {
		aGrid = append(aGrid, natCnst+ax)
	}
	if natCnst < 0 {
		aGrid = append(aGrid, 0, 0)
		sort.Float64s(aGrid)
	}

	// Per-node rates: RBoro strictly below zero and for the first of the
	// doubled zeros, RSave from the second zero up.
	rvec := make([]float64, len(aGrid))
	seenZero := false
	for i, a := range aGrid {
		switch {
		case a < 0:
			rvec[i] = pp.rboro
		case a == 0 && !seenZero:
			rvec[i] = pp.rboro
			seenZero = true
		default:
			rvec[i] = pp.rsave
		}
	}

	ms, cs := egmPolicy(next, pp, aGrid, rvec)

	ms = append([]float64{natCnst}, ms...)
	cs = append([]float64{0}, cs...)

	// Equal rates collapse the doubled kink node into duplicate pairs;
	// drop non-increasing m-knots so the interpolant contract holds.
	var (
		mu = ms[:1]
		cu = cs[:1]
	)
	for i := 1; i < len(ms); i++ {
		if ms[i] > mu[len(mu)-1] {
			mu = append(mu, ms[i])
			cu = append(cu, cs[i])
		}
	}

	opts := interp.Options{LimitSlope: mpcMin}
	cf, err := interp.NewLinear(mu, cu, &opts)
	if err != nil {
		return nil, err
	}

	boroCap := math.Inf(-1)
	if binding {
		boroCap = pp.boroCnst
	}

	sol := &PeriodSolution{
		CFunc:    cf,
		CRRA:     pp.rho,
		MNrmMin:  mNrmMin,
		HNrm:     hNrm,
		MPCMin:   mpcMin,
		MPCMax:   mpcMax,
		BoroCnst: boroCap,
	}

	if pp.withV {
		if sol.VFunc, err = makeValueFunc(next, pp, sol, natCnst, aGrid, rvec); err != nil {
			return nil, err
		}
	}

	return sol, nil
}
