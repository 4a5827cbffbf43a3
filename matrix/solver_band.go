// SPDX-License-Identifier: MIT
//
// File: solver_band.go
// Role: Banded Cholesky factorization of the grounded Laplacian with per-row solves.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// bandInverse keeps the band Cholesky factor of Lg and solves Lg·x = e_r on demand.
// After a reverse Cuthill–McKee relabeling the bandwidth w is small, so the
// factor costs O(N·w) memory instead of the O(N²) of the explicit inverse.
type bandInverse struct {
	n    int
	prec Precision
	chol mat.BandCholesky
	rhs  *mat.VecDense
	x    *mat.VecDense
}

// newBandInverse copies Lg into a SymBandDense with k = min(w, N-2) and factorizes it.
//
// Complexity: Time O(N·k²), Space O(N·k).
func newBandInverse(l *Laplacian, prec Precision) (InverseLaplacian, error) {
	m := l.n - 1
	k := l.bandwidth
	if k > m-1 {
		k = m - 1
	}
	a := mat.NewSymBandDense(m, k, nil)
	for i := 1; i < l.n; i++ {
		cols, vals := l.Row(i)
		for idx, j := range cols {
			if j >= i {
				a.SetSymBand(i-1, j-1, vals[idx])
			}
		}
	}

	b := &bandInverse{
		n:    l.n,
		prec: prec,
		rhs:  mat.NewVecDense(m, nil),
		x:    mat.NewVecDense(m, nil),
	}
	if ok := b.chol.Factorize(a); !ok {
		return nil, matrixErrorf(opBand, ErrSingular)
	}

	return b, nil
}

func (b *bandInverse) Kind() SolverKind { return SolverLU }
func (b *bandInverse) N() int           { return b.n }

// Row solves Lg·x = e_{r-1} by forward and back substitution. O(N·k).
func (b *bandInverse) Row(r int, dst []float64) error {
	ground, err := checkRow(b.n, r, dst)
	if err != nil || ground {
		return err
	}
	b.rhs.SetVec(r-1, 1)
	err = b.chol.SolveVecTo(b.x, b.rhs)
	b.rhs.SetVec(r-1, 0)
	if err != nil {
		return matrixErrorf(opBand, conditionErr(err))
	}
	for j := 0; j < b.n-1; j++ {
		dst[j+1] = b.x.AtVec(j)
	}
	b.prec.roundSlice(dst)

	return nil
}
