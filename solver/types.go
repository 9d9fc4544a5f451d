package solver

import (
	"math"

	"github.com/katalvlaran/consav/interp"
	"github.com/katalvlaran/consav/shocks"
)

// Variant selects the problem flavor. The set is closed: dispatch is a
// switch, not subclassing, because no fourth flavor exists in this model
// family.
type Variant int

const (
	// PerfectForesight has no income risk; policies are linear closed forms.
	PerfectForesight Variant = iota
	// IndShock adds idiosyncratic permanent and transitory income shocks.
	IndShock
	// KinkedR is IndShock with distinct borrowing and saving rates.
	KinkedR
)

// Params is the immutable per-solve configuration. Sequences are indexed
// by cycle position and must share one length T_cycle; Repeat broadcasts
// scalars. Zero values of Tol/MaxIters/Workers select documented defaults.
type Params struct {
	Variant Variant

	// Preferences.
	CRRA    float64 // ρ > 0
	DiscFac float64 // β ∈ (0, 1]

	// Returns. Rfree is used by PerfectForesight and IndShock; the kinked
	// variant uses RBoro (assets < 0) and RSave (assets >= 0) instead.
	Rfree float64
	RBoro float64
	RSave float64

	// Per-cycle-position sequences, all of length T_cycle.
	LivPrb     []float64 // survival probabilities ℵ_t ∈ [0, 1]
	PermGroFac []float64 // income growth factors Γ_t > 0
	PermShkStd []float64 // lognormal std of permanent shocks, >= 0
	TranShkStd []float64 // lognormal std of transitory shocks, >= 0

	// Shock discretization.
	PermShkCount int     // nodes for ψ, >= 1
	TranShkCount int     // nodes for θ, >= 1
	UnempPrb     float64 // transitory point-mass probability ∈ [0, 1)
	IncUnemp     float64 // income replacement at the point mass, >= 0

	// Borrowing limit ā on end-of-period assets; -Inf selects the natural
	// (human-wealth-implied) limit.
	BoroCnstArt float64

	// Post-decision asset grid (above the borrowing constraint).
	AXtraMin   float64
	AXtraMax   float64
	AXtraCount int
	AXtraNest  int
	AXtraExtra []float64

	// Horizon: 0 = infinite (cyclical fixed point), >= 1 = that many
	// passes through the cycle, terminal condition "consume everything".
	Cycles int

	// Infinite-horizon convergence controls (0 ⇒ defaults).
	Tol      float64
	MaxIters int

	// WithValueFunc additionally constructs value functions.
	WithValueFunc bool

	// Workers bounds the parallel fan-out of the expectation step
	// (0 ⇒ GOMAXPROCS, 1 ⇒ sequential).
	Workers int
}

// Defaults applied when the corresponding Params field is zero.
const (
	DefaultTol      = 1e-6
	DefaultMaxIters = 500
)

// DefaultParams returns a standard infinite-horizon IndShock calibration:
// moderately risk-averse, mildly impatient, small permanent/transitory
// risk with a rare low-income state, no borrowing.
func DefaultParams() Params {
	return Params{
		Variant:      IndShock,
		CRRA:         2.0,
		DiscFac:      0.96,
		Rfree:        1.03,
		LivPrb:       []float64{0.98},
		PermGroFac:   []float64{1.01},
		PermShkStd:   []float64{0.1},
		TranShkStd:   []float64{0.1},
		PermShkCount: 7,
		TranShkCount: 7,
		UnempPrb:     0.005,
		IncUnemp:     0.3,
		BoroCnstArt:  0.0,
		AXtraMin:     0.001,
		AXtraMax:     20,
		AXtraCount:   48,
		AXtraNest:    3,
		Cycles:       0,
	}
}

// Repeat broadcasts a scalar into a length-n sequence, the convenience
// for time-invariant LivPrb/PermGroFac/shock-std settings.
func Repeat(x float64, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = x
	}

	return s
}

// PeriodSolution is one period's policy (and optional value) function
// plus the scalar metadata the next-earlier period and the simulator
// consume. Immutable once returned; safe for concurrent evaluation.
type PeriodSolution struct {
	// CFunc is the unconstrained consumption interpolant from the EGM
	// pass; Consumption applies the artificial-borrowing cap on top.
	CFunc *interp.Linear

	// VFunc is the value function, nil unless Params.WithValueFunc.
	VFunc *interp.ValueCRRA

	// CRRA is carried so marginal value can be derived via the envelope
	// condition without re-threading parameters.
	CRRA float64

	// MNrmMin is the lowest feasible normalized market resources this
	// period; policy functions are undefined below it.
	MNrmMin float64

	// HNrm is normalized human wealth (discounted expected future income).
	HNrm float64

	// MPCMin and MPCMax bound the marginal propensity to consume: the
	// asymptote as m → ∞ and the limit at the constraint, respectively.
	MPCMin float64
	MPCMax float64

	// BoroCnst is the artificial borrowing limit when it binds this
	// period; -Inf otherwise. Consumption is capped at m − BoroCnst.
	BoroCnst float64

	// vKappa carries the perfect-foresight value recursion constant.
	vKappa float64
}

// Consumption evaluates the policy function: the EGM interpolant capped
// by the binding borrowing constraint (slope-one segment c = m − ā).
//
// Complexity: O(log n).
func (s *PeriodSolution) Consumption(m float64) float64 {
	c := s.CFunc.Eval(m)
	if !math.IsInf(s.BoroCnst, -1) {
		if capped := m - s.BoroCnst; capped < c {
			c = capped
		}
	}

	return c
}

// MargValue evaluates the marginal value of market resources via the
// envelope condition v′(m) = u′(c(m)).
func (s *PeriodSolution) MargValue(m float64) float64 {
	return margUtility(s.Consumption(m), s.CRRA)
}

// Value evaluates the value function; ok is false when none was built.
func (s *PeriodSolution) Value(m float64) (v float64, ok bool) {
	if s.VFunc == nil {
		return 0, false
	}

	return s.VFunc.Eval(m), true
}

// terminalSolution is the no-bequest terminal condition: consume all
// resources. c(m) = m exactly (slope one on both tails), v(m) = u(m) via
// the identity pseudo-inverse, and unit MPCs.
func terminalSolution(rho float64, withV bool) *PeriodSolution {
	opts := interp.Options{LimitSlope: 1}
	cf, _ := interp.NewLinear([]float64{0, 1}, []float64{0, 1}, &opts)

	sol := &PeriodSolution{
		CFunc:    cf,
		CRRA:     rho,
		MNrmMin:  0,
		HNrm:     0,
		MPCMin:   1,
		MPCMax:   1,
		BoroCnst: math.Inf(-1),
		vKappa:   1,
	}
	if withV {
		sol.VFunc, _ = interp.NewValueCRRA([]float64{0, 1}, []float64{0, 1}, rho, &opts)
	}

	return sol
}

// periodParams bundles one period's primitives for the variant solvers.
type periodParams struct {
	variant             Variant
	rho, beta, liv, gro float64
	rfree               float64 // single-rate variants
	rboro, rsave        float64 // kinked variant
	boroCnst            float64 // artificial ā, may be -Inf
	dist                shocks.Joint
	aXtra               []float64
	withV               bool
	workers             int
}
