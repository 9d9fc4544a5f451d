package simulate

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/consav/shocks"
	"github.com/katalvlaran/consav/solver"
)

// domainTol absorbs floating-point slack at the feasibility boundary;
// anything deeper below mNrmMin is a genuine invariant violation.
const domainTol = 1e-12

// Run simulates a cross-section of agents through the solved policies:
// it generates a shock history from opts.Seed and replays it. The two
// halves are exposed separately as MakeShockHistory and RunWithHistory
// for counterfactual experiments that reuse one history across solutions.
//
// Complexity: O(agents·periods·S) for S shock support points.
func Run(sols []solver.PeriodSolution, p solver.Params, opts Options) (Panel, error) {
	h, err := MakeShockHistory(p, opts)
	if err != nil {
		return nil, err
	}

	return RunWithHistory(sols, p, opts, h)
}

// MakeShockHistory pre-draws every income shock pair and survival outcome
// for an agents × periods panel. Draws come from the same discretized
// distributions the solver integrated over, via inverse-CDF sampling on
// each agent's private stream; the result depends only on the parameters,
// opts.Seed, and the panel shape.
//
// Mortality is baked into Live here: with opts.Mortality false every
// entry is true, and RunWithHistory follows Live verbatim either way.
//
// Complexity: O(agents·periods·S).
func MakeShockHistory(p solver.Params, opts Options) (*History, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if err := checkSequences(p); err != nil {
		return nil, err
	}
	dists, err := solver.IncomeDistributions(p)
	if err != nil {
		return nil, err
	}

	var (
		tCycle   = len(dists)
		lifetime = p.Cycles * tCycle // 0 ⇒ unbounded
		h        = &History{
			Perm: makeMatrix(opts.AgentCount, opts.Periods),
			Tran: makeMatrix(opts.AgentCount, opts.Periods),
			Live: make([][]bool, opts.AgentCount),
		}
	)
	for i := range h.Live {
		h.Live[i] = make([]bool, opts.Periods)
	}

	agent := func(i int) error {
		var (
			rng = agentRNG(opts.Seed, streamShocks, i)
			age int
		)
		for t := 0; t < opts.Periods; t++ {
			pos := age % tCycle
			h.Perm[i][t], h.Tran[i][t] = drawJoint(dists[pos], rng)

			live := true
			if opts.Mortality {
				live = rng.Float64() < p.LivPrb[pos]
			}
			h.Live[i][t] = live

			if !live || (lifetime > 0 && age+1 == lifetime) {
				age = 0
			} else {
				age++
			}
		}

		return nil
	}

	if err := forEachAgent(opts.AgentCount, opts.Workers, agent); err != nil {
		return nil, err
	}

	return h, nil
}

// RunWithHistory replays a pre-generated shock history through the solved
// policies. Survival follows h.Live verbatim; the only fresh randomness
// is the initial and newborn state draws, taken from per-agent streams
// disjoint from the shock streams, so two replays of the same history
// with the same seed are bit-identical.
//
// An agent whose market resources fall below the period policy's feasible
// minimum aborts the run with ErrOutOfDomain: the solver guarantees every
// reachable m is feasible, so the violation marks a solver/simulator
// disagreement that clamping would mask.
//
// Complexity: O(agents·periods·log G) for G policy knots.
func RunWithHistory(sols []solver.PeriodSolution, p solver.Params, opts Options, h *History) (Panel, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if err := checkSequences(p); err != nil {
		return nil, err
	}

	var (
		tCycle   = len(p.LivPrb)
		lifetime = p.Cycles * tCycle // 0 ⇒ unbounded
		expect   = tCycle
	)
	if p.Cycles > 0 {
		expect = lifetime
	}
	if len(sols) != expect {
		return nil, fmt.Errorf("%w: got %d periods, horizon needs %d", ErrSolutionLength, len(sols), expect)
	}
	if err := checkHistoryShape(h, opts.AgentCount, opts.Periods); err != nil {
		return nil, err
	}

	panel, err := newPanel(opts)
	if err != nil {
		return nil, err
	}
	var (
		mRows = panel[VarMNrm]
		cRows = panel[VarCNrm]
		aRows = panel[VarANrm]
		pRows = panel[VarPLvl]
		tRows = panel[VarTCycle]
	)

	agent := func(i int) error {
		var (
			rng = agentRNG(opts.Seed, streamInit, i)
			age int
		)
		aPrev, pLvl := drawInitial(rng, opts)

		for t := 0; t < opts.Periods; t++ {
			var (
				pos = age % tCycle
				idx = pos
			)
			if p.Cycles > 0 {
				idx = age
			}
			s := &sols[idx]

			// Income and resources: P ← Γψ·P, m = (R/(Γψ))·a + θ.
			gp := p.PermGroFac[pos] * h.Perm[i][t]
			m := periodRate(p, aPrev)/gp*aPrev + h.Tran[i][t]
			if m < s.MNrmMin-domainTol {
				return fmt.Errorf("%w: agent %d period %d: m=%g, feasible minimum %g",
					ErrOutOfDomain, i, t, m, s.MNrmMin)
			}
			c := s.Consumption(m)
			pLvl *= gp

			if mRows != nil {
				mRows[i][t] = m
			}
			if cRows != nil {
				cRows[i][t] = c
			}
			if aRows != nil {
				aRows[i][t] = m - c
			}
			if pRows != nil {
				pRows[i][t] = pLvl
			}
			if tRows != nil {
				tRows[i][t] = float64(pos)
			}

			if !h.Live[i][t] || (lifetime > 0 && age+1 == lifetime) {
				aPrev, pLvl = drawInitial(rng, opts)
				age = 0
			} else {
				aPrev = m - c
				age++
			}
		}

		return nil
	}

	if err := forEachAgent(opts.AgentCount, opts.Workers, agent); err != nil {
		return nil, err
	}

	return panel, nil
}

// periodRate returns the gross interest factor applied to carried assets:
// the kinked variant charges RBoro on debt and pays RSave on savings.
func periodRate(p solver.Params, aPrev float64) float64 {
	if p.Variant == solver.KinkedR {
		if aPrev < 0 {
			return p.RBoro
		}

		return p.RSave
	}

	return p.Rfree
}

// drawJoint samples one (ψ, θ) pair by inverse CDF over the joint support.
//
// Complexity: O(S).
func drawJoint(j shocks.Joint, rng *rand.Rand) (perm, tran float64) {
	var (
		u   = rng.Float64()
		cum float64
		k   int
	)
	for k = 0; k < j.Len()-1; k++ {
		cum += j.Prob[k]
		if u < cum {
			break
		}
	}

	return j.Perm[k], j.Tran[k]
}

// drawInitial samples a newborn state: lognormal assets and permanent
// income, exp(mean + std·z). Std 0 degenerates to the point exp(mean).
func drawInitial(rng *rand.Rand, opts Options) (aNrm, pLvl float64) {
	aNrm = math.Exp(opts.ANrmInitMean + opts.ANrmInitStd*rng.NormFloat64())
	pLvl = math.Exp(opts.PLvlInitMean + opts.PLvlInitStd*rng.NormFloat64())

	return aNrm, pLvl
}

// validateOptions checks the run configuration.
//
// Complexity: O(len(Track)).
func validateOptions(opts Options) error {
	if opts.AgentCount < 1 {
		return ErrAgentCount
	}
	if opts.Periods < 1 {
		return ErrPeriods
	}
	for _, std := range []float64{opts.ANrmInitStd, opts.PLvlInitStd} {
		if math.IsNaN(std) || math.IsInf(std, 0) || std < 0 {
			return ErrInitStd
		}
	}
	for _, name := range opts.Track {
		if !knownVar(name) {
			return fmt.Errorf("%w: %q", ErrUnknownVariable, name)
		}
	}

	return nil
}

// checkSequences rejects parameter sets whose per-cycle-position
// sequences disagree on T_cycle before they are indexed.
func checkSequences(p solver.Params) error {
	t := len(p.LivPrb)
	if t < 1 || len(p.PermGroFac) != t {
		return fmt.Errorf("%w: parameter sequences disagree on cycle length", ErrInvalidSim)
	}
	if p.Variant != solver.PerfectForesight && (len(p.PermShkStd) != t || len(p.TranShkStd) != t) {
		return fmt.Errorf("%w: parameter sequences disagree on cycle length", ErrInvalidSim)
	}

	return nil
}

func knownVar(name string) bool {
	for _, v := range allVars {
		if v == name {
			return true
		}
	}

	return false
}

// newPanel allocates the tracked variable matrices.
func newPanel(opts Options) (Panel, error) {
	vars := opts.Track
	if vars == nil {
		vars = allVars
	}

	panel := make(Panel, len(vars))
	for _, name := range vars {
		panel[name] = makeMatrix(opts.AgentCount, opts.Periods)
	}

	return panel, nil
}

func makeMatrix(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}

	return m
}

// checkHistoryShape verifies h is agents × periods throughout.
func checkHistoryShape(h *History, agents, periods int) error {
	if h == nil || len(h.Perm) != agents || len(h.Tran) != agents || len(h.Live) != agents {
		return ErrHistoryShape
	}
	for i := 0; i < agents; i++ {
		if len(h.Perm[i]) != periods || len(h.Tran[i]) != periods || len(h.Live[i]) != periods {
			return ErrHistoryShape
		}
	}

	return nil
}

// forEachAgent fans fn out over contiguous agent chunks. Agents are
// independent, so the only cross-goroutine state is the disjoint output
// rows each chunk owns.
func forEachAgent(n, workers int, fn func(i int) error) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || n < 2*workers {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}

		return nil
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
				if err := fn(i); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return g.Wait()
}
