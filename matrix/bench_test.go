// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/currentflow/matrix"
)

func benchmarkRows(b *testing.B, kind matrix.SolverKind) {
	const rows, cols = 20, 20
	n := rows * cols
	l, err := matrix.NewLaplacian(n, gridConductances(rows, cols, 1), matrix.Float64)
	if err != nil {
		b.Fatal(err)
	}
	dst := make([]float64, n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inv, err := matrix.NewInverseLaplacian(kind, l, matrix.Float64)
		if err != nil {
			b.Fatal(err)
		}
		for r := 0; r < n; r++ {
			if err = inv.Row(r, dst); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkInverseRows_Full(b *testing.B) { benchmarkRows(b, matrix.SolverFull) }
func BenchmarkInverseRows_LU(b *testing.B)   { benchmarkRows(b, matrix.SolverLU) }
func BenchmarkInverseRows_CG(b *testing.B)   { benchmarkRows(b, matrix.SolverCG) }
