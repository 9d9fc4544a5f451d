// Package solver - validation utilities shared by all variants.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - Fail fast: the first violated contract is returned, never a NaN later.
package solver

import (
	"math"
)

// validateParams verifies the full parameter set and returns the cycle
// length T on success.
//
// Contract:
//   - scalars: ρ > 0, β ∈ (0,1], rates > 0 (RBoro >= RSave for kinked),
//     shock counts >= 1, UnempPrb ∈ [0,1), IncUnemp >= 0;
//   - sequences: one shared length T >= 1, ℵ ∈ [0,1], Γ > 0, stds >= 0;
//   - horizon: Cycles >= 0, Tol/MaxIters >= 0.
//
// Grid and distribution parameters get their deep validation in the
// packages that own them (grids, shocks); their errors pass through Solve.
//
// Complexity: O(T).
func validateParams(p Params) (int, error) {
	// Stage 1: scalar sanity.
	if err := validateScalars(p); err != nil {
		return 0, err
	}

	// Stage 2: sequence shapes and ranges.
	t, err := validateSequences(p)
	if err != nil {
		return 0, err
	}

	return t, nil
}

// validateScalars checks scalar fields only.
//
// Complexity: O(1).
func validateScalars(p Params) error {
	switch p.Variant {
	case PerfectForesight, IndShock, KinkedR:
		// ok
	default:
		return ErrUnknownVariant
	}

	if math.IsNaN(p.CRRA) || math.IsInf(p.CRRA, 0) || p.CRRA <= 0 {
		return ErrCRRA
	}
	if math.IsNaN(p.DiscFac) || p.DiscFac <= 0 || p.DiscFac > 1 {
		return ErrDiscFac
	}

	if p.Variant == KinkedR {
		if badRate(p.RBoro) || badRate(p.RSave) {
			return ErrRate
		}
		if p.RBoro < p.RSave {
			return ErrKinkedRates
		}
	} else if badRate(p.Rfree) {
		return ErrRate
	}

	if p.Variant != PerfectForesight {
		// Discretization counts and the unemployment splice are re-checked
		// by shocks at construction; range-check the cheap ones here so the
		// error surfaces before any allocation.
		if p.PermShkCount < 1 || p.TranShkCount < 1 {
			return ErrSeqLength
		}
	}

	if p.Cycles < 0 {
		return ErrCycles
	}
	if p.Tol < 0 || p.MaxIters < 0 {
		return ErrTol
	}

	return nil
}

// validateSequences checks the per-cycle-position sequences and returns
// their shared length.
//
// Complexity: O(T).
func validateSequences(p Params) (int, error) {
	t := len(p.LivPrb)
	if t < 1 || len(p.PermGroFac) != t {
		return 0, ErrSeqLength
	}
	if p.Variant != PerfectForesight && (len(p.PermShkStd) != t || len(p.TranShkStd) != t) {
		return 0, ErrSeqLength
	}

	for u := 0; u < t; u++ {
		if math.IsNaN(p.LivPrb[u]) || p.LivPrb[u] < 0 || p.LivPrb[u] > 1 {
			return 0, ErrLivPrb
		}
		if math.IsNaN(p.PermGroFac[u]) || math.IsInf(p.PermGroFac[u], 0) || p.PermGroFac[u] <= 0 {
			return 0, ErrGroFac
		}
	}

	return t, nil
}

// badRate reports whether a gross interest factor is unusable.
func badRate(r float64) bool {
	return math.IsNaN(r) || math.IsInf(r, 0) || r <= 0
}

// checkStability rejects infinite-horizon parameter sets whose Bellman
// operator does not contract, before any iteration runs.
//
// Aggregated over one cycle (in logs, so T > 1 cycles compose):
//   - return patience: Π (R·β·ℵ_t)^{1/ρ}/R < 1, otherwise the asymptotic
//     MPC is zero and consumption functions never settle;
//   - finite human wealth: Π Γ_t < R^T whenever the borrowing limit is
//     the natural one — with ā = -Inf there is no constraint to stop the
//     divergence of discounted future income.
//
// The growth-side rate is RSave for the kinked variant (asymptotic
// behavior is saving).
//
// Complexity: O(T).
func checkStability(p Params, t int) error {
	r := p.Rfree
	if p.Variant == KinkedR {
		r = p.RSave
	}

	var (
		logRPF float64 // Σ log((R·β·ℵ)^{1/ρ}/R)
		logFHW float64 // Σ log(Γ/R)
		u      int
	)
	for u = 0; u < t; u++ {
		logRPF += math.Log(r*p.DiscFac*p.LivPrb[u])/p.CRRA - math.Log(r)
		logFHW += math.Log(p.PermGroFac[u]) - math.Log(r)
	}

	if logRPF >= 0 {
		return ErrNoSolution
	}
	if math.IsInf(p.BoroCnstArt, -1) && logFHW >= 0 {
		return ErrNoSolution
	}

	return nil
}
