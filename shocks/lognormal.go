package shocks

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Lognormal approximates a mean-one lognormal with N equiprobable nodes.
//
// Construction:
//  1. The underlying normal has mu = -sigma²/2 so that E[exp(Y)] = 1.
//  2. Partition the support into N bins of probability 1/N using unit
//     normal quantiles z_i = Φ⁻¹(i/N).
//  3. Each node is the exact conditional mean over its bin:
//     x_i = N·e^{mu+sigma²/2}·(Φ(z_i − sigma) − Φ(z_{i−1} − sigma)),
//     which telescopes so the discrete mean is exactly 1. A final rescale
//     removes last-ulp floating-point drift.
//
// Degenerate inputs: sigma == 0 yields n atoms equal to 1 (still
// equiprobable), so callers keep a uniform support size.
//
// Errors: ErrSigmaNegative if sigma < 0 or NaN; ErrCountTooSmall if n < 1.
//
// Complexity: O(N) quantile/CDF evaluations.
func Lognormal(sigma float64, n int) (Discrete, error) {
	if math.IsNaN(sigma) || sigma < 0 {
		return Discrete{}, ErrSigmaNegative
	}
	if n < 1 {
		return Discrete{}, ErrCountTooSmall
	}

	var (
		prob = make([]float64, n)
		atom = make([]float64, n)
		p    = 1.0 / float64(n)
	)
	if sigma == 0 || n == 1 {
		// Point mass at 1 (replicated so len(atom)==n holds for n>1).
		for i := 0; i < n; i++ {
			prob[i] = p
			atom[i] = 1
		}

		return Discrete{Prob: prob, Atom: atom}, nil
	}

	// Stage 1: bin edges in standard-normal space.
	// cdfLo walks Φ(z_{i-1} − sigma); Φ(−∞−sigma)=0, Φ(+∞−sigma)=1.
	var (
		cdfLo = 0.0
		cdfHi float64
		mean  float64
		i     int
	)
	for i = 0; i < n; i++ {
		if i == n-1 {
			cdfHi = 1
		} else {
			cdfHi = distuv.UnitNormal.CDF(distuv.UnitNormal.Quantile(float64(i+1)/float64(n)) - sigma)
		}
		prob[i] = p
		atom[i] = float64(n) * (cdfHi - cdfLo) // e^{mu+sigma²/2} == 1 by mean-one choice of mu
		cdfLo = cdfHi
		mean += p * atom[i]
	}

	// Stage 2: exact mean-one normalization (kills floating-point drift).
	for i = 0; i < n; i++ {
		atom[i] /= mean
	}

	return Discrete{Prob: prob, Atom: atom}, nil
}

// AddPointMass splices a point mass (probability p at value x) into d,
// rescaling the continuous branch so the overall mean stays at 1:
// the surviving atoms are multiplied by (1 − p·x)/(1 − p) and their
// probabilities by (1 − p). The point mass is prepended, so callers can
// always find it at index 0 when p > 0.
//
// p == 0 returns a copy of d unchanged.
//
// Errors: ErrMassProb if p outside [0,1); ErrMassValue if x is negative,
// non-finite, or p·x >= 1 (the rescale would flip the sign of the
// employed atoms).
//
// Complexity: O(N).
func AddPointMass(d Discrete, p, x float64) (Discrete, error) {
	if math.IsNaN(p) || p < 0 || p >= 1 {
		return Discrete{}, ErrMassProb
	}
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 || p*x >= 1 {
		return Discrete{}, ErrMassValue
	}

	var (
		n    = d.Len()
		prob = make([]float64, 0, n+1)
		atom = make([]float64, 0, n+1)
	)
	if p == 0 {
		prob = append(prob, d.Prob...)
		atom = append(atom, d.Atom...)

		return Discrete{Prob: prob, Atom: atom}, nil
	}

	var (
		scale = (1 - p*x) / (1 - p) // keeps E = p·x + (1-p)·scale·E[d] at 1
		i     int
	)
	prob = append(prob, p)
	atom = append(atom, x)
	for i = 0; i < n; i++ {
		prob = append(prob, d.Prob[i]*(1-p))
		atom = append(atom, d.Atom[i]*scale)
	}

	return Discrete{Prob: prob, Atom: atom}, nil
}
