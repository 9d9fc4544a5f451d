// File: shocks/example_test.go
package shocks_test

import (
	"fmt"

	"github.com/katalvlaran/consav/shocks"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Lognormal + AddPointMass + Join
////////////////////////////////////////////////////////////////////////////////

// ExampleLognormal demonstrates the degenerate (no-risk) reduction: with
// sigma=0 the discretization collapses to the unit point mass.
func ExampleLognormal() {
	d, _ := shocks.Lognormal(0, 1)
	fmt.Printf("atoms=%v probs=%v mean=%.1f\n", d.Atom, d.Prob, d.Mean())

	// Output:
	// atoms=[1] probs=[1] mean=1.0
}

// ExampleJoin shows that joining two discretizations multiplies support
// sizes and preserves the mean-one invariant on both margins.
func ExampleJoin() {
	perm, _ := shocks.Lognormal(0.1, 3)
	tran, _ := shocks.Lognormal(0.1, 5)
	j := shocks.Join(perm, tran)

	fmt.Printf("support=%d E[psi]=%.6f E[theta]=%.6f\n",
		j.Len(),
		j.Expect(func(psi, _ float64) float64 { return psi }),
		j.Expect(func(_, theta float64) float64 { return theta }))

	// Output:
	// support=15 E[psi]=1.000000 E[theta]=1.000000
}
