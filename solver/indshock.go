package solver

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/consav/interp"
)

// solvePeriodIndShock solves one idiosyncratic-shock period via the
// endogenous grid method. See doc.go for the algorithm outline.
//
// Complexity: O(G·S) for G grid nodes and S shock support points,
// parallel across nodes.
func solvePeriodIndShock(next *PeriodSolution, pp periodParams) (*PeriodSolution, error) {
	var (
		patFac = math.Pow(pp.rfree*pp.beta*pp.liv, 1/pp.rho) / pp.rfree
		hNrm   = (pp.gro / pp.rfree) * (1 + next.HNrm)
		mpcMin = 1 / (1 + patFac/next.MPCMin)
	)

	// Natural borrowing limit: even the worst shock pair must leave next
	// period's resources feasible.
	var (
		permMin = pp.dist.MinPerm()
		tranMin = pp.dist.MinTran()
		natCnst = (next.MNrmMin - tranMin) * pp.gro * permMin / pp.rfree
		mNrmMin = natCnst
		binding = pp.boroCnst > natCnst
	)
	if binding {
		mNrmMin = pp.boroCnst
	}

	// MPC at the constraint: 1 where the artificial limit truncates the
	// policy; otherwise bounded by the worst-case-shock recursion.
	mpcMax := 1.0
	if !binding {
		mpcMax = 1 / (1 + math.Pow(pp.dist.WorstProb(), 1/pp.rho)*patFac/next.MPCMax)
	}

	// EGM grid hangs off the natural limit; the artificial cap is applied
	// at evaluation time (Consumption), keeping the unconstrained
	// interpolant exact.
	aGrid := make([]float64, len(pp.aXtra))
	for i, ax := range pp.aXtra {
		aGrid[i] = natCnst + ax
	}

	ms, cs := egmPolicy(next, pp, aGrid, nil)

	// Prepend the exact constrained boundary: zero consumption at the
	// natural limit.
	ms = append([]float64{natCnst}, ms...)
	cs = append([]float64{0}, cs...)

	opts := interp.Options{LimitSlope: mpcMin}
	cf, err := interp.NewLinear(ms, cs, &opts)
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
		if sol.VFunc, err = makeValueFunc(next, pp, sol, natCnst, aGrid, nil); err != nil {
			return nil, err
		}
	}

	return sol, nil
}

// egmPolicy runs the endogenous-grid step over aGrid and returns the
// paired (m, c) samples, already sorted because expected marginal value
// is decreasing in assets. rvec carries per-node interest factors for the
// kinked variant; nil means the uniform pp.rfree.
//
// The per-node expectation is embarrassingly parallel: nodes are fanned
// out over an errgroup in contiguous chunks, merged by index (no shared
// mutable state beyond the disjoint output slices).
//
// Complexity: O(G·S/W) wall-clock with W workers.
func egmPolicy(next *PeriodSolution, pp periodParams, aGrid, rvec []float64) (ms, cs []float64) {
	var (
		n   = len(aGrid)
		ms2 = make([]float64, n)
		cs2 = make([]float64, n)
	)

	node := func(i int) {
		r := pp.rfree
		if rvec != nil {
			r = rvec[i]
		}
		// β·ℵ·R·E[(Γψ)^{−ρ}·u′(c′(m′))], m′ = (R/(Γψ))·a + θ.
		vp := pp.beta * pp.liv * r * pp.dist.Expect(func(psi, theta float64) float64 {
			gp := pp.gro * psi
			mNext := r/gp*aGrid[i] + theta

			return math.Pow(gp, -pp.rho) * next.MargValue(mNext)
		})
		cs2[i] = margUtilityInv(vp, pp.rho)
		ms2[i] = aGrid[i] + cs2[i]
	}

	workers := pp.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || n < 2*workers {
		for i := 0; i < n; i++ {
			node(i)
		}

		return ms2, cs2
	}

	var g errgroup.Group
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		lo, hi := lo, hi
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				node(i)
			}

			return nil
		})
	}
	_ = g.Wait() // node() cannot fail; Wait only joins the workers

	return ms2, cs2
}

// makeValueFunc constructs this period's value function:
//
//  1. end-of-period value over the asset grid,
//     w(a) = β·ℵ·E[(Γψ)^{1−ρ}·v′(m′)], stored through its pseudo-inverse
//     with the exact boundary point (natCnst, 0);
//  2. v(m) = u(c(m)) + w(m − c(m)) on the reference grid mNrmMin + aXtra,
//     again stored through the pseudo-inverse with (mNrmMin, 0) pasted.
//
// Requires next.VFunc (guaranteed: the terminal solution builds one when
// values are requested, and every period propagates it).
//
// Complexity: O(G·S).
func makeValueFunc(next *PeriodSolution, pp periodParams, sol *PeriodSolution, natCnst float64, aGrid, rvec []float64) (*interp.ValueCRRA, error) {
	var (
		n       = len(aGrid)
		aKnots  = make([]float64, 0, n+1)
		endNvrs = make([]float64, 0, n+1)
		i       int
	)
	aKnots = append(aKnots, natCnst)
	endNvrs = append(endNvrs, 0)
	for i = 0; i < n; i++ {
		r := pp.rfree
		if rvec != nil {
			r = rvec[i]
		}
		w := pp.beta * pp.liv * pp.dist.Expect(func(psi, theta float64) float64 {
			gp := pp.gro * psi
			mNext := r/gp*aGrid[i] + theta

			return math.Pow(gp, 1-pp.rho) * next.VFunc.Eval(mNext)
		})
		aKnots = append(aKnots, aGrid[i])
		endNvrs = append(endNvrs, utilityInv(w, pp.rho))
	}
	endV, err := interp.NewValueCRRA(aKnots, endNvrs, pp.rho, nil)
	if err != nil {
		return nil, err
	}

	var (
		mKnots = make([]float64, 0, len(pp.aXtra)+1)
		vNvrs  = make([]float64, 0, len(pp.aXtra)+1)
	)
	mKnots = append(mKnots, sol.MNrmMin)
	vNvrs = append(vNvrs, 0)
	for _, ax := range pp.aXtra {
		m := sol.MNrmMin + ax
		c := sol.Consumption(m)
		v := utility(c, pp.rho) + endV.Eval(m-c)
		mKnots = append(mKnots, m)
		vNvrs = append(vNvrs, utilityInv(v, pp.rho))
	}

	return interp.NewValueCRRA(mKnots, vNvrs, pp.rho, nil)
}
