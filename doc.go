// Package consav is your in-memory toolkit for solving and simulating
// consumption-saving decision problems under income uncertainty — from
// discretized shock distributions to lifecycle policy functions and
// Monte Carlo agent panels.
//
// 🚀 What is consav?
//
//	A deterministic, sentinel-error library that brings together:
//		• Shock discretization: equiprobable mean-one lognormal nodes,
//		  unemployment point masses, independent joint products
//		• Asset grids: nested-exponential spacing, dense where policy
//		  functions curve
//		• Period solvers: perfect foresight, idiosyncratic shocks and
//		  kinked borrowing/saving rates, all via the endogenous grid method
//		• Lifecycle orchestration: finite backward induction and
//		  infinite-horizon cyclical fixed-point iteration
//		• Simulation: seeded, replayable forward panels with mortality
//
// ✨ Why choose consav?
//
//   - Closed-form discipline - CRRA marginal-utility inversion, no root-finding
//   - Rock-solid guarantees - typed sentinel errors, no NaN propagation
//   - Pure numeric core - no I/O, no logging, no global state
//   - Reproducible - every random draw flows from one explicit seed
//
// Under the hood, everything is organized under five subpackages:
//
//	shocks/   — discrete approximations of income-shock distributions
//	grids/    — post-decision asset grid construction
//	interp/   — kinked piecewise-linear policy & CRRA value interpolants
//	solver/   — period solvers + lifecycle backward induction
//	simulate/ — forward Monte Carlo over solved policy functions
//
// Quick sketch of one backward-induction step:
//
//	a ──(shocks, R, Γ)──▶ m′ ──v′──▶ E[·] ──u′⁻¹──▶ c ──▶ m = a + c
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/consav
package consav
