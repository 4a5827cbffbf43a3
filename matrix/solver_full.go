// SPDX-License-Identifier: MIT
//
// File: solver_full.go
// Role: Dense explicit inverse of the grounded Laplacian (gonum Cholesky).

package matrix

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// fullInverse holds C explicitly: as a gonum SymDense in float64 mode,
// or as a row-major []float32 in float32 mode.
type fullInverse struct {
	n     int
	inv64 *mat.SymDense
	inv32 []float32
}

// newFullInverse factorizes Lg = Uᵀ·U and forms Lg⁻¹.
//
// Implementation:
//   - Stage 1: Copy the grounded Laplacian into an (N-1)×(N-1) SymDense.
//   - Stage 2: Cholesky factorization; failure means Lg is not positive definite.
//   - Stage 3: InverseTo; a gonum Condition error is reported as ErrSingular.
//   - Stage 4: In float32 mode, narrow the inverse into a float32 store.
//
// Complexity: Time O(N³), Space O(N²).
func newFullInverse(l *Laplacian, prec Precision) (InverseLaplacian, error) {
	m := l.n - 1
	a := mat.NewSymDense(m, nil)
	for i := 1; i < l.n; i++ {
		cols, vals := l.Row(i)
		for k, j := range cols {
			if j >= i {
				a.SetSym(i-1, j-1, vals[k])
			}
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(a); !ok {
		return nil, matrixErrorf(opFull, ErrSingular)
	}
	inv := mat.NewSymDense(m, nil)
	if err := chol.InverseTo(inv); err != nil {
		return nil, matrixErrorf(opFull, conditionErr(err))
	}

	f := &fullInverse{n: l.n}
	if prec == Float32 {
		f.inv32 = make([]float32, m*m)
		for i := 0; i < m; i++ {
			for j := 0; j < m; j++ {
				f.inv32[i*m+j] = float32(inv.At(i, j))
			}
		}

		return f, nil
	}
	f.inv64 = inv

	return f, nil
}

func (f *fullInverse) Kind() SolverKind { return SolverFull }
func (f *fullInverse) N() int           { return f.n }

// Row copies row r of the explicit inverse. O(N).
func (f *fullInverse) Row(r int, dst []float64) error {
	ground, err := checkRow(f.n, r, dst)
	if err != nil || ground {
		return err
	}
	m := f.n - 1
	if f.inv32 != nil {
		base := (r - 1) * m
		for j := 0; j < m; j++ {
			dst[j+1] = float64(f.inv32[base+j])
		}

		return nil
	}
	for j := 0; j < m; j++ {
		dst[j+1] = f.inv64.At(r-1, j)
	}

	return nil
}

// conditionErr maps gonum's Condition error onto ErrSingular, keeping the
// condition number in the message.
func conditionErr(err error) error {
	var cond mat.Condition
	if errors.As(err, &cond) {
		return fmt.Errorf("%w: condition number %.4e", ErrSingular, float64(cond))
	}

	return err
}
