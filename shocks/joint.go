package shocks

// Join forms the independent product of a permanent and a transitory
// discretization: every (ψᵢ, θⱼ) pair appears with probability pᵢ·qⱼ.
// Permanent atoms vary slowest, matching row-major iteration.
//
// Because both marginals are mean-one and independence holds by
// construction, the joint satisfies E[ψ] = E[θ] = E[ψθ] = 1.
//
// Complexity: O(N·M) time and space.
func Join(perm, tran Discrete) Joint {
	var (
		n    = perm.Len()
		m    = tran.Len()
		prob = make([]float64, 0, n*m)
		psi  = make([]float64, 0, n*m)
		the  = make([]float64, 0, n*m)
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			prob = append(prob, perm.Prob[i]*tran.Prob[j])
			psi = append(psi, perm.Atom[i])
			the = append(the, tran.Atom[j])
		}
	}

	return Joint{Prob: prob, Perm: psi, Tran: the}
}

// DegenerateJoint returns the risk-free joint distribution: a single
// support point (ψ, θ) = (1, 1) with probability 1. The perfect-foresight
// solver and its simulator counterpart share this value.
func DegenerateJoint() Joint {
	return Joint{Prob: []float64{1}, Perm: []float64{1}, Tran: []float64{1}}
}
