// Package shocks: core types and the unified sentinel error set.
// All constructors MUST return these sentinels and tests MUST check them
// via errors.Is. No constructor panics on user-triggered error conditions.
package shocks

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrInvalidDistribution is the base sentinel for every construction
	// failure in this package. The specific sentinels below wrap it, so
	// errors.Is(err, ErrInvalidDistribution) matches all of them.
	ErrInvalidDistribution = errors.New("shocks: invalid distribution")

	// ErrSigmaNegative rejects a negative (or NaN) lognormal standard deviation.
	ErrSigmaNegative = fmt.Errorf("%w: sigma must be finite and >= 0", ErrInvalidDistribution)

	// ErrCountTooSmall rejects a node count below one.
	ErrCountTooSmall = fmt.Errorf("%w: node count must be >= 1", ErrInvalidDistribution)

	// ErrMassProb rejects a point-mass probability outside [0,1).
	// Probability 1 is rejected too: the continuous branch would vanish and
	// the mean-one renormalization (1-p·x)/(1-p) is undefined at p=1.
	ErrMassProb = fmt.Errorf("%w: point-mass probability must be in [0,1)", ErrInvalidDistribution)

	// ErrMassValue rejects a point-mass value that makes the mean-one
	// rescale of the continuous branch non-positive (p·x >= 1) or is not
	// a finite non-negative number.
	ErrMassValue = fmt.Errorf("%w: point-mass value must be finite, >= 0, with p*value < 1", ErrInvalidDistribution)
)

// Discrete is a finite probability distribution over scalar atoms.
// Prob and Atom have equal length; Prob sums to 1.
type Discrete struct {
	Prob []float64
	Atom []float64
}

// Degenerate returns the point mass at 1.0 — the "no risk" distribution.
func Degenerate() Discrete {
	return Discrete{Prob: []float64{1}, Atom: []float64{1}}
}

// Len returns the number of atoms.
func (d Discrete) Len() int { return len(d.Atom) }

// Mean returns the probability-weighted mean Σ pᵢ·xᵢ.
//
// Complexity: O(N).
func (d Discrete) Mean() float64 { return floats.Dot(d.Prob, d.Atom) }

// Joint is a finite distribution over (permanent, transitory) shock pairs.
// The three slices share one length; Prob sums to 1.
type Joint struct {
	Prob []float64
	Perm []float64
	Tran []float64
}

// Len returns the number of (ψ, θ) support points.
func (j Joint) Len() int { return len(j.Prob) }

// Expect returns the probability-weighted expectation of f over the
// support, Σ pₖ·f(ψₖ, θₖ). It is the single expectation primitive the
// period solvers reduce over.
//
// Complexity: O(N) calls to f.
func (j Joint) Expect(f func(perm, tran float64) float64) float64 {
	var sum float64
	for k := range j.Prob {
		sum += j.Prob[k] * f(j.Perm[k], j.Tran[k])
	}

	return sum
}

// MinPerm returns the smallest permanent atom (worst-case shock).
func (j Joint) MinPerm() float64 { return floats.Min(j.Perm) }

// MinTran returns the smallest transitory atom (worst-case shock).
func (j Joint) MinTran() float64 { return floats.Min(j.Tran) }

// WorstProb returns the total probability of drawing the jointly
// worst-case realization (MinPerm together with MinTran). Used by the
// solver to bound the marginal propensity to consume at the constraint.
//
// Complexity: O(N).
func (j Joint) WorstProb() float64 {
	var (
		pMin = j.MinPerm()
		tMin = j.MinTran()
		sum  float64
	)
	for k := range j.Prob {
		if j.Perm[k] == pMin && j.Tran[k] == tMin {
			sum += j.Prob[k]
		}
	}

	return sum
}
