// SPDX-License-Identifier: MIT
//
// File: solver.go
// Role: Inverse-Laplacian contract and the solver registry.

package matrix

import (
	"fmt"
	"sort"
)

// InverseLaplacian yields rows of C, the inverse of the grounded Laplacian
// embedded back into N×N with row 0 and column 0 equal to zero.
//
// C is symmetric, so Row(r) is also column r. Implementations may keep
// scratch buffers and are not safe for concurrent use.
type InverseLaplacian interface {
	// Kind reports the backend that produced this instance.
	Kind() SolverKind

	// N is the number of vertices (row length).
	N() int

	// Row writes row r of C into dst (len(dst) == N()).
	Row(r int, dst []float64) error
}

// factory builds a backend for a Laplacian with N >= 2.
type factory func(l *Laplacian, prec Precision) (InverseLaplacian, error)

var registry = map[SolverKind]factory{
	SolverFull: newFullInverse,
	SolverLU:   newBandInverse,
	SolverCG:   newCGInverse,
}

// Registered reports whether kind has a backend.
func Registered(kind SolverKind) bool {
	_, ok := registry[kind]

	return ok
}

// Solvers lists registered solver kinds in ascending name order.
func Solvers() []SolverKind {
	out := make([]SolverKind, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// NewInverseLaplacian initialises the backend named by kind for l.
//
// Implementation:
//   - Stage 1: Resolve the backend (ErrUnknownSolver) and validate prec.
//   - Stage 2: N == 1 has an empty grounded system; every row is zero.
//   - Stage 3: Delegate factorization (or preconditioner setup) to the backend.
//
// Errors:
//   - ErrUnknownSolver, ErrUnknownPrecision, ErrSingular, ErrBadShape.
func NewInverseLaplacian(kind SolverKind, l *Laplacian, prec Precision) (InverseLaplacian, error) {
	build, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, kind)
	}
	if !prec.Valid() {
		return nil, ErrUnknownPrecision
	}
	if l == nil || l.n <= 0 {
		return nil, ErrBadShape
	}
	if l.n == 1 {
		return groundOnly{kind: kind}, nil
	}

	return build(l, prec)
}

// checkRow validates the Row arguments shared by every backend and writes
// the grounded zero into dst[0]. It reports whether r is the ground row.
func checkRow(n, r int, dst []float64) (bool, error) {
	if len(dst) != n {
		return false, matrixErrorf(opRow, fmt.Errorf("%w: len(dst)=%d, N=%d", ErrDimensionMismatch, len(dst), n))
	}
	if r < 0 || r >= n {
		return false, matrixErrorf(opRow, fmt.Errorf("%w: row %d, N=%d", ErrOutOfRange, r, n))
	}
	dst[0] = 0
	if r == 0 {
		for i := range dst {
			dst[i] = 0
		}

		return true, nil
	}

	return false, nil
}

// groundOnly serves the single-vertex graph.
type groundOnly struct{ kind SolverKind }

func (g groundOnly) Kind() SolverKind { return g.kind }
func (g groundOnly) N() int           { return 1 }
func (g groundOnly) Row(r int, dst []float64) error {
	_, err := checkRow(1, r, dst)

	return err
}
