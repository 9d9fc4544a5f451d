package solver_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/consav/solver"
)

// benchmarkSolve runs Solve repeatedly on a fixed parameter set.
func benchmarkSolve(b *testing.B, p solver.Params) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(p); err != nil {
			b.Fatalf("Solve: %v", err)
		}
	}
}

func BenchmarkSolve_PerfectForesight(b *testing.B) {
	p := solver.DefaultParams()
	p.Variant = solver.PerfectForesight
	p.BoroCnstArt = math.Inf(-1)
	benchmarkSolve(b, p)
}

func BenchmarkSolve_IndShock(b *testing.B) {
	benchmarkSolve(b, solver.DefaultParams())
}

func BenchmarkSolve_IndShockSerial(b *testing.B) {
	p := solver.DefaultParams()
	p.Workers = 1
	benchmarkSolve(b, p)
}

func BenchmarkSolve_KinkedR(b *testing.B) {
	p := solver.DefaultParams()
	p.Variant = solver.KinkedR
	p.Rfree = 0
	p.RBoro = 1.10
	p.RSave = 1.02
	p.BoroCnstArt = -2
	benchmarkSolve(b, p)
}

func BenchmarkSolve_FiniteLifecycle(b *testing.B) {
	p := solver.DefaultParams()
	p.LivPrb = solver.Repeat(0.98, 10)
	p.PermGroFac = solver.Repeat(1.01, 10)
	p.PermShkStd = solver.Repeat(0.1, 10)
	p.TranShkStd = solver.Repeat(0.1, 10)
	p.Cycles = 4
	benchmarkSolve(b, p)
}
