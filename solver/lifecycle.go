// Package solver - unified entry point for lifecycle backward induction.
//
// Design principles:
//   - Deterministic: derived structures (shock discretizations, asset
//     grid) are rebuilt from the parameter set on every call — no caching,
//     no stale derived state.
//   - Strict sentinels: only errors from errors.go (or the grids/shocks
//     families passed through), wrapped with the failing period index.
//   - A failed period solve is structural, never transient: it aborts the
//     whole sequence immediately.
package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/consav/grids"
)

// Solve validates the parameter set, rebuilds the derived inputs, and
// runs backward induction.
//
// Cycles >= 1: one pass over Cycles·T_cycle periods against the
// "consume everything" terminal condition; the returned sequence has
// length Cycles·T_cycle, ordered forward in time (index 0 is the first
// period of life).
//
// Cycles == 0: the T_cycle-period cycle is iterated — each sweep's
// period-0 solution becomes the continuation of the next sweep's last
// period — until the max pointwise policy difference on the reference
// grid falls below Tol, or MaxIters sweeps give up (ErrNoConvergence).
// A stability precheck returns ErrNoSolution before any work runs.
//
// The returned solutions are immutable; evaluating them concurrently is
// safe.
func Solve(p Params) ([]PeriodSolution, error) {
	t, err := validateParams(p)
	if err != nil {
		return nil, err
	}

	dists, err := IncomeDistributions(p)
	if err != nil {
		return nil, err
	}
	aXtra, err := grids.ExpMult(p.AXtraMin, p.AXtraMax, p.AXtraCount, p.AXtraNest, p.AXtraExtra...)
	if err != nil {
		return nil, fmt.Errorf("solver: asset grid: %w", err)
	}

	ppFor := func(u int) periodParams {
		return periodParams{
			variant:  p.Variant,
			rho:      p.CRRA,
			beta:     p.DiscFac,
			liv:      p.LivPrb[u],
			gro:      p.PermGroFac[u],
			rfree:    p.Rfree,
			rboro:    p.RBoro,
			rsave:    p.RSave,
			boroCnst: p.BoroCnstArt,
			dist:     dists[u],
			aXtra:    aXtra,
			withV:    p.WithValueFunc,
			workers:  p.Workers,
		}
	}

	if p.Cycles == 0 {
		return solveInfinite(p, t, ppFor, aXtra)
	}

	return solveFinite(p, t, ppFor)
}

// solvePeriod routes one period to its variant solver. The variant set is
// closed; validation has already rejected anything else.
func solvePeriod(next *PeriodSolution, pp periodParams) (*PeriodSolution, error) {
	switch pp.variant {
	case PerfectForesight:
		return solvePeriodPF(next, pp)
	case IndShock:
		return solvePeriodIndShock(next, pp)
	case KinkedR:
		return solvePeriodKinked(next, pp)
	default:
		return nil, ErrUnknownVariant
	}
}

// solveFinite runs exactly one backward pass over the full horizon.
//
// Complexity: O(Cycles·T·G·S).
func solveFinite(p Params, t int, ppFor func(int) periodParams) ([]PeriodSolution, error) {
	var (
		total = p.Cycles * t
		sols  = make([]PeriodSolution, total)
		cont  = terminalSolution(p.CRRA, p.WithValueFunc)
	)
	for per := total - 1; per >= 0; per-- {
		s, err := solvePeriod(cont, ppFor(per%t))
		if err != nil {
			return nil, fmt.Errorf("solver: period %d: %w", per, err)
		}
		sols[per] = *s
		cont = s
	}

	return sols, nil
}

// solveInfinite iterates the cycle to a policy fixed point.
//
// Complexity: O(sweeps·T·G·S).
func solveInfinite(p Params, t int, ppFor func(int) periodParams, aXtra []float64) ([]PeriodSolution, error) {
	if err := checkStability(p, t); err != nil {
		return nil, err
	}

	var (
		tol      = p.Tol
		maxIters = p.MaxIters
	)
	if tol == 0 {
		tol = DefaultTol
	}
	if maxIters == 0 {
		maxIters = DefaultMaxIters
	}

	var (
		prev []*PeriodSolution
		cont = terminalSolution(p.CRRA, p.WithValueFunc)
	)
	for sweep := 1; sweep <= maxIters; sweep++ {
		cur := make([]*PeriodSolution, t)
		for u := t - 1; u >= 0; u-- {
			s, err := solvePeriod(cont, ppFor(u))
			if err != nil {
				return nil, fmt.Errorf("solver: cycle position %d: %w", u, err)
			}
			cur[u] = s
			cont = s
		}
		// cont is now cur[0]: the wrap-around continuation for the next sweep.

		if prev != nil && policyDistance(cur, prev, aXtra) < tol {
			out := make([]PeriodSolution, t)
			for u := 0; u < t; u++ {
				out[u] = *cur[u]
			}

			return out, nil
		}
		prev = cur
	}

	return nil, fmt.Errorf("%w within %d sweeps (tol %g)", ErrNoConvergence, maxIters, tol)
}

// policyDistance is the convergence metric: the max pointwise consumption
// difference across all cycle positions, sampled on each period's own
// reference grid mNrmMin + aXtra. Evaluating the previous sweep's policy
// at the new minimum is safe — interpolants extend linearly off-grid.
//
// Complexity: O(T·G·log G).
func policyDistance(cur, prev []*PeriodSolution, aXtra []float64) float64 {
	var d float64
	for u := range cur {
		for _, ax := range aXtra {
			m := cur[u].MNrmMin + ax
			if diff := math.Abs(cur[u].Consumption(m) - prev[u].Consumption(m)); diff > d {
				d = diff
			}
		}
	}

	return d
}
