package solver

import "math"

// CRRA utility closed forms. The whole endogenous grid method rests on
// margUtilityInv: expected marginal value maps straight back to the
// consumption level, no root-finding anywhere.

// utility returns u(c) = c^{1−ρ}/(1−ρ), or ln(c) for ρ = 1.
func utility(c, rho float64) float64 {
	if rho == 1 {
		return math.Log(c)
	}

	return math.Pow(c, 1-rho) / (1 - rho)
}

// margUtility returns u′(c) = c^{−ρ}.
func margUtility(c, rho float64) float64 {
	return math.Pow(c, -rho)
}

// margUtilityInv inverts u′: given v = u′(c), returns c = v^{−1/ρ}.
// Requires v > 0, guaranteed by ρ > 0 and nonzero-probability shocks.
func margUtilityInv(v, rho float64) float64 {
	return math.Pow(v, -1/rho)
}

// utilityInv inverts u: given w = u(c), returns c = ((1−ρ)·w)^{1/(1−ρ)},
// or exp(w) for ρ = 1. Used to store value functions through their
// pseudo-inverse, which is nearly linear in market resources.
func utilityInv(w, rho float64) float64 {
	if rho == 1 {
		return math.Exp(w)
	}

	return math.Pow((1-rho)*w, 1/(1-rho))
}
