// Package simulate: core types and the unified sentinel error set.
// All entry points MUST return these sentinels and tests MUST check them
// via errors.Is. No function panics on user-triggered error conditions.
package simulate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSim is the base sentinel for configuration and shape
	// failures. The specific sentinels below wrap it, so
	// errors.Is(err, ErrInvalidSim) matches all of them.
	ErrInvalidSim = errors.New("simulate: invalid simulation")

	// ErrAgentCount rejects a non-positive agent count.
	ErrAgentCount = fmt.Errorf("%w: agent count must be >= 1", ErrInvalidSim)

	// ErrPeriods rejects a non-positive period count.
	ErrPeriods = fmt.Errorf("%w: period count must be >= 1", ErrInvalidSim)

	// ErrInitStd rejects a negative or non-finite initial-distribution std.
	ErrInitStd = fmt.Errorf("%w: initial std must be finite and >= 0", ErrInvalidSim)

	// ErrUnknownVariable rejects a Track entry that names no panel variable.
	ErrUnknownVariable = fmt.Errorf("%w: unknown tracked variable", ErrInvalidSim)

	// ErrSolutionLength rejects a solution sequence whose length does not
	// match the parameter horizon (T_cycle for infinite, Cycles·T_cycle
	// for finite).
	ErrSolutionLength = fmt.Errorf("%w: solution length does not match horizon", ErrInvalidSim)

	// ErrHistoryShape rejects a shock history whose dimensions do not
	// match AgentCount × Periods.
	ErrHistoryShape = fmt.Errorf("%w: shock history shape mismatch", ErrInvalidSim)

	// ErrOutOfDomain reports a policy evaluation below the period's
	// feasible minimum. This is an invariant violation - the solver
	// guarantees every reachable m is feasible - so it is surfaced with
	// context instead of being clamped away.
	ErrOutOfDomain = errors.New("simulate: market resources below feasible minimum")
)

// Panel variable names. Track entries and Panel keys come from this set.
const (
	VarMNrm   = "mNrm"    // normalized market resources
	VarCNrm   = "cNrm"    // normalized consumption
	VarANrm   = "aNrm"    // normalized end-of-period assets
	VarPLvl   = "pLvl"    // permanent income level
	VarTCycle = "t_cycle" // cycle position, stored as float64
)

// allVars is the canonical tracking order.
var allVars = []string{VarMNrm, VarCNrm, VarANrm, VarPLvl, VarTCycle}

// Options configures a simulation run. The zero value of Seed selects the
// fixed default seed (deterministic, not time-based); the zero value of
// Workers selects GOMAXPROCS.
type Options struct {
	AgentCount int // cross-section size, >= 1
	Periods    int // simulated periods, >= 1

	// Seed drives every draw: shocks, mortality, initial states. Same
	// seed ⇒ bit-identical panels.
	Seed int64

	// Initial distributions: newborns draw aNrm and pLvl lognormally,
	// exp(Mean + Std·z) with z standard normal. Std == 0 degenerates to
	// the point exp(Mean).
	ANrmInitMean float64
	ANrmInitStd  float64
	PLvlInitMean float64
	PLvlInitStd  float64

	// Mortality enables survival draws against LivPrb; when false the
	// population is deterministic and agents die only by exhausting a
	// finite lifecycle.
	Mortality bool

	// Track selects the panel variables to record; nil records all of
	// VarMNrm, VarCNrm, VarANrm, VarPLvl, VarTCycle.
	Track []string

	// Workers bounds the per-agent fan-out (0 ⇒ GOMAXPROCS, 1 ⇒ sequential).
	Workers int
}

// DefaultOptions returns a standard cross-section: 1000 agents for 120
// periods, unit-lognormal initial assets, unit initial permanent income,
// mortality on, everything tracked.
func DefaultOptions() Options {
	return Options{
		AgentCount:   1000,
		Periods:      120,
		ANrmInitMean: 0,
		ANrmInitStd:  1,
		PLvlInitMean: 0,
		PLvlInitStd:  0,
		Mortality:    true,
	}
}

// Panel holds simulated trajectories keyed by variable name, each shaped
// agents × periods.
type Panel map[string][][]float64

// History is a pre-generated set of simulation draws: income shock pairs
// and survival outcomes, each shaped agents × periods. Replaying the same
// History through RunWithHistory reproduces trajectories exactly.
//
// Live[i][t] reports whether agent i survives period t; a false entry
// replaces the agent with a newborn at the start of period t+1.
type History struct {
	Perm [][]float64
	Tran [][]float64
	Live [][]bool
}
