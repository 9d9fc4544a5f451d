package shocks_test

import (
	"testing"

	"github.com/katalvlaran/consav/shocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJoin_ProductStructure verifies the cross product: sizes multiply,
// probabilities multiply, and both marginal means stay at one.
func TestJoin_ProductStructure(t *testing.T) {
	perm, err := shocks.Lognormal(0.1, 3)
	require.NoError(t, err)
	tran, err := shocks.Lognormal(0.2, 4)
	require.NoError(t, err)

	j := shocks.Join(perm, tran)
	require.Equal(t, 12, j.Len(), "support size must be N*M")

	assert.InDelta(t, 1.0, sumProbs(j.Prob), probTol, "joint probs must sum to 1")
	assert.InDelta(t, 1.0, j.Expect(func(psi, _ float64) float64 { return psi }), meanTol, "E[psi] must be 1")
	assert.InDelta(t, 1.0, j.Expect(func(_, theta float64) float64 { return theta }), meanTol, "E[theta] must be 1")
	// Independence: E[psi*theta] factors into E[psi]*E[theta] = 1.
	assert.InDelta(t, 1.0, j.Expect(func(psi, theta float64) float64 { return psi * theta }), meanTol, "E[psi*theta] must be 1")
}

// TestJoint_WorstCase verifies MinPerm/MinTran/WorstProb for an
// equiprobable product with a spliced unemployment mass.
func TestJoint_WorstCase(t *testing.T) {
	perm, err := shocks.Lognormal(0.1, 3)
	require.NoError(t, err)
	tran, err := shocks.Lognormal(0.1, 3)
	require.NoError(t, err)
	tran, err = shocks.AddPointMass(tran, 0.05, 0.2)
	require.NoError(t, err)

	j := shocks.Join(perm, tran)

	assert.Equal(t, perm.Atom[0], j.MinPerm(), "worst permanent atom is the lowest node")
	assert.InDelta(t, 0.2*(1.0), j.MinTran(), 1e-12, "worst transitory atom is the unemployment income")
	// Worst pair: lowest perm node (prob 1/3) with the mass point (prob 0.05).
	assert.InDelta(t, (1.0/3.0)*0.05, j.WorstProb(), probTol, "worst-case probability multiplies marginals")
}

// TestDegenerateJoint verifies the risk-free joint support.
func TestDegenerateJoint(t *testing.T) {
	j := shocks.DegenerateJoint()
	require.Equal(t, 1, j.Len())
	assert.Equal(t, 1.0, j.Perm[0])
	assert.Equal(t, 1.0, j.Tran[0])
	assert.Equal(t, 1.0, j.Prob[0])
}
