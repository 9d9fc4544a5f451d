// Package solver computes consumption policy functions for finite- and
// infinite-horizon consumption-saving problems by backward induction with
// the endogenous grid method (EGM).
//
// 🚀 What does it solve?
//
//	A household with CRRA utility over consumption picks c each period to
//	maximize E[Σ βᵗ·(Πℵ)·u(c_t)] facing income P_t = Γ_t·ψ_t·P_{t-1} and
//	transitory shocks θ_t, a gross return R on savings, and a borrowing
//	limit ā. Normalizing by permanent income reduces the state to one
//	dimension: market resources m.
//
// Three problem variants form a closed set (selected by Variant):
//
//   - PerfectForesight — no shocks; the policy is linear and closed-form.
//   - IndShock — idiosyncratic permanent and transitory shocks; solved by
//     EGM over a post-decision asset grid.
//   - KinkedR — IndShock plus separate borrowing/saving rates, producing
//     an extra policy kink at zero assets.
//
// One backward step (EGM):
//
//  1. For each post-decision asset node a and shock pair (ψ, θ):
//     m′ = (R/(Γψ))·a + θ, then evaluate next period's marginal value.
//  2. Expected end-of-period marginal value: β·ℵ·R·E[(Γψ)^{−ρ}·u′(c′(m′))].
//  3. Invert CRRA marginal utility: c = (·)^{−1/ρ}.
//  4. Endogenous grid point: m = a + c.
//  5. Prepend the constrained boundary (mNrmMin, 0) and interpolate.
//
// Step 2 is embarrassingly parallel across grid nodes and fans out over
// an errgroup; everything else is strictly sequential in time.
//
// Orchestration:
//
//   - Cycles >= 1: one backward pass over Cycles·T_cycle periods, terminal
//     condition "consume everything".
//   - Cycles == 0: the T_cycle-period cycle is iterated to a fixed point;
//     convergence is the max pointwise policy difference on a reference
//     grid. A stability precheck rejects non-contracting parameter sets
//     (ErrNoSolution) before any iteration runs.
//
// Errors are strict sentinels (errors.go) wrapped with the failing period
// index; nothing is retried and nothing panics on user input.
//
// ⚙️ Usage:
//
//	p := solver.DefaultParams()
//	p.PermShkStd = solver.Repeat(0.1, 1)
//	sol, err := solver.Solve(p)
//	c := sol[0].Consumption(1.5)
package solver
