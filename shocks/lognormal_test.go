package shocks_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/consav/shocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	probTol = 1e-10 // probability mass accounting tolerance
	meanTol = 1e-8  // mean-one normalization tolerance
)

// sumProbs returns Σ pᵢ without external helpers so the test is self-contained.
func sumProbs(p []float64) float64 {
	var s float64
	for _, v := range p {
		s += v
	}
	return s
}

// TestLognormal_InvalidInputs verifies the sentinel family for bad sigma/count.
func TestLognormal_InvalidInputs(t *testing.T) {
	_, err := shocks.Lognormal(-0.1, 7)
	assert.ErrorIs(t, err, shocks.ErrSigmaNegative, "negative sigma must error")
	assert.ErrorIs(t, err, shocks.ErrInvalidDistribution, "specific sentinel must wrap the base")

	_, err = shocks.Lognormal(math.NaN(), 7)
	assert.ErrorIs(t, err, shocks.ErrSigmaNegative, "NaN sigma must error")

	_, err = shocks.Lognormal(0.1, 0)
	assert.ErrorIs(t, err, shocks.ErrCountTooSmall, "zero node count must error")
}

// TestLognormal_Moments checks the construction invariants: probabilities sum
// to one and the discrete mean is one, across a spread of sigma and N.
func TestLognormal_Moments(t *testing.T) {
	sigmas := []float64{0.01, 0.1, 0.3, 0.8}
	counts := []int{2, 3, 7, 15, 64}

	for _, sigma := range sigmas {
		for _, n := range counts {
			d, err := shocks.Lognormal(sigma, n)
			require.NoError(t, err, "sigma=%v n=%d should construct", sigma, n)
			require.Len(t, d.Atom, n, "atom count must equal request")

			assert.InDelta(t, 1.0, sumProbs(d.Prob), probTol, "probs must sum to 1 (sigma=%v n=%d)", sigma, n)
			assert.InDelta(t, 1.0, d.Mean(), meanTol, "mean must be 1 (sigma=%v n=%d)", sigma, n)
		}
	}
}

// TestLognormal_NodesIncreasing verifies nodes are strictly increasing and
// positive — equiprobable conditional means of a lognormal must be.
func TestLognormal_NodesIncreasing(t *testing.T) {
	d, err := shocks.Lognormal(0.2, 11)
	require.NoError(t, err)

	for i := 0; i < d.Len(); i++ {
		assert.Greater(t, d.Atom[i], 0.0, "node %d must be positive", i)
		if i > 0 {
			assert.Greater(t, d.Atom[i], d.Atom[i-1], "nodes must strictly increase at %d", i)
		}
	}
}

// TestLognormal_Degenerate verifies the no-risk reductions.
func TestLognormal_Degenerate(t *testing.T) {
	d, err := shocks.Lognormal(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, d.Atom, "sigma=0 n=1 is the unit point mass")
	assert.Equal(t, []float64{1}, d.Prob)

	// sigma=0 with n>1 keeps the support size but every atom is 1.
	d, err = shocks.Lognormal(0, 5)
	require.NoError(t, err)
	require.Len(t, d.Atom, 5)
	for i, a := range d.Atom {
		assert.Equal(t, 1.0, a, "atom %d must be exactly 1", i)
	}
	assert.InDelta(t, 1.0, sumProbs(d.Prob), probTol)
}

// TestAddPointMass_MeanPreserved verifies the unemployment splice keeps
// the overall mean at one and prepends the mass point.
func TestAddPointMass_MeanPreserved(t *testing.T) {
	base, err := shocks.Lognormal(0.1, 7)
	require.NoError(t, err)

	d, err := shocks.AddPointMass(base, 0.005, 0.3)
	require.NoError(t, err)

	require.Len(t, d.Atom, 8, "splice adds exactly one atom")
	assert.Equal(t, 0.3, d.Atom[0], "mass point is prepended")
	assert.Equal(t, 0.005, d.Prob[0], "mass probability is prepended")
	assert.InDelta(t, 1.0, sumProbs(d.Prob), probTol, "probs must still sum to 1")
	assert.InDelta(t, 1.0, d.Mean(), meanTol, "mean must still be 1")
}

// TestAddPointMass_ZeroProb verifies p=0 is an identity copy.
func TestAddPointMass_ZeroProb(t *testing.T) {
	base, err := shocks.Lognormal(0.1, 5)
	require.NoError(t, err)

	d, err := shocks.AddPointMass(base, 0, 0.3)
	require.NoError(t, err)
	assert.Equal(t, base.Atom, d.Atom, "p=0 must not change atoms")
	assert.Equal(t, base.Prob, d.Prob, "p=0 must not change probs")
}

// TestAddPointMass_InvalidInputs covers the sentinel paths.
func TestAddPointMass_InvalidInputs(t *testing.T) {
	base := shocks.Degenerate()

	_, err := shocks.AddPointMass(base, -0.1, 0.3)
	assert.ErrorIs(t, err, shocks.ErrMassProb, "negative probability must error")

	_, err = shocks.AddPointMass(base, 1.0, 0.3)
	assert.ErrorIs(t, err, shocks.ErrMassProb, "probability 1 must error (renormalization undefined)")

	_, err = shocks.AddPointMass(base, 0.5, -1.0)
	assert.ErrorIs(t, err, shocks.ErrMassValue, "negative value must error")

	_, err = shocks.AddPointMass(base, 0.5, 3.0)
	assert.ErrorIs(t, err, shocks.ErrMassValue, "p*value >= 1 must error")
}
