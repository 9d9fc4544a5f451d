// Package simulate - 🎲 Monte Carlo forward simulation of solved policies.
//
// # What
//
// The solver produces per-period consumption policies; this package pushes
// a cross-section of agents through them. Each simulated period an agent
// draws a (ψ, θ) income shock pair from the same discretized distribution
// the solver integrated over, updates its permanent income level
// P ← Γ·ψ·P, computes normalized market resources
//
//	m = (R / (Γ·ψ))·a + θ
//
// from last period's retained assets a, consumes c = policy(m), and
// carries a = m − c forward. Mortality is simulated against the survival
// probabilities ℵ_t: an agent that fails the draw (or exhausts a finite
// lifecycle) is replaced by a newborn with freshly drawn initial assets
// and permanent income.
//
// # Determinism and replay
//
// All randomness is seeded: same seed ⇒ bit-identical panels, on any
// worker count. Each agent owns an independent SplitMix64-derived stream,
// so trajectories do not depend on scheduling. A run factors into two
// halves:
//
//	h, _   := simulate.MakeShockHistory(params, opts)   // all draws
//	panel, _ := simulate.RunWithHistory(sols, params, opts, h)
//
// Run composes the two. Replaying the same History reproduces the exact
// trajectories, which is what counterfactual experiments need: solve two
// parameterizations, push them through one shock history, and every
// difference in the panels is policy, not luck.
//
// # Output
//
// A Panel maps variable names (VarMNrm, VarCNrm, VarANrm, VarPLvl,
// VarTCycle) to agents×periods arrays. Track selects a subset; nil tracks
// everything.
//
// # Errors
//
// Construction and shape problems return wraps of ErrInvalidSim.
// Evaluating a policy below its feasible minimum returns ErrOutOfDomain
// with the agent and period: it means the simulator and solver disagree
// about the borrowing constraint, and clamping would hide the bug.
//
// # Concurrency
//
// Agents never interact, so whole trajectories are fanned out across an
// errgroup; periods stay sequential within each agent. Workers bounds the
// fan-out (0 ⇒ GOMAXPROCS, 1 ⇒ sequential).
package simulate
