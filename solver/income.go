package solver

import (
	"fmt"

	"github.com/katalvlaran/consav/shocks"
)

// IncomeDistributions builds the per-cycle-position discretized income
// distributions exactly as Solve does. The simulator calls this too, so
// solving and simulating always draw from the same finite support —
// recomputed fresh from the parameter set on every call, never cached.
//
// PerfectForesight yields degenerate (1, 1) joints; the other variants
// combine equiprobable lognormal marginals, with the unemployment point
// mass spliced into the transitory branch.
//
// Errors: the shocks sentinel family, wrapped with the cycle position.
//
// Complexity: O(T·N·M).
func IncomeDistributions(p Params) ([]shocks.Joint, error) {
	t := len(p.LivPrb)
	out := make([]shocks.Joint, t)

	if p.Variant == PerfectForesight {
		for u := 0; u < t; u++ {
			out[u] = shocks.DegenerateJoint()
		}

		return out, nil
	}

	for u := 0; u < t; u++ {
		perm, err := shocks.Lognormal(p.PermShkStd[u], p.PermShkCount)
		if err != nil {
			return nil, fmt.Errorf("solver: cycle position %d: %w", u, err)
		}
		tran, err := shocks.Lognormal(p.TranShkStd[u], p.TranShkCount)
		if err != nil {
			return nil, fmt.Errorf("solver: cycle position %d: %w", u, err)
		}
		tran, err = shocks.AddPointMass(tran, p.UnempPrb, p.IncUnemp)
		if err != nil {
			return nil, fmt.Errorf("solver: cycle position %d: %w", u, err)
		}
		out[u] = shocks.Join(perm, tran)
	}

	return out, nil
}
