// Package shocks builds discrete, finite approximations of the continuous
// income-shock distributions that drive consumption-saving problems.
//
// 🚀 What does it provide?
//
//   - Lognormal: N equiprobable nodes matching a mean-one lognormal,
//     each node the exact conditional mean of its probability bin
//   - AddPointMass: splice a low-income (unemployment) point mass into a
//     transitory distribution while keeping the overall mean at one
//   - Join: independent product of a permanent and a transitory
//     discretization (probabilities multiply, atoms cross)
//
// Invariants (enforced by construction, asserted in tests):
//
//   - probabilities sum to 1
//   - E[ψ] = E[θ] = 1 (mean-one normalization)
//
// All constructors are pure functions of their inputs: no caching, no
// global state, no randomness. Invalid inputs return sentinel errors from
// the ErrInvalidDistribution family; nothing panics on user input.
//
// ⚙️ Usage:
//
//	perm, err := shocks.Lognormal(0.1, 7)
//	tran, err := shocks.Lognormal(0.1, 7)
//	tran, err = shocks.AddPointMass(tran, 0.005, 0.3) // unemployment
//	joint := shocks.Join(perm, tran)
//
// Complexity: Lognormal O(N), AddPointMass O(N), Join O(N·M).
package shocks
