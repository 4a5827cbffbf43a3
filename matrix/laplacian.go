// SPDX-License-Identifier: MIT
//
// File: laplacian.go
// Role: Weighted graph Laplacian in CSR form over integer-labeled vertices.
// Determinism:
//   - Rows store columns in ascending order; parallel conductances are summed
//     in input order, so identical inputs give bit-identical matrices.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// Conductance is one undirected edge {U,V} with conductance C >= 0.
type Conductance struct {
	U, V int
	C    float64
}

// Laplacian is the symmetric weighted Laplacian L = D - A of an undirected
// graph on vertices 0..N-1, stored in compressed sparse row form with the
// diagonal included.
//
// The solvers work on the grounded Laplacian: L with row and column 0
// removed. Vertex 0 acts as the ground node whose potential is fixed at zero.
type Laplacian struct {
	n         int
	rowPtr    []int
	col       []int
	val       []float64
	diag      []float64
	bandwidth int
}

// NewLaplacian assembles the Laplacian of n vertices from edges.
//
// Implementation:
//   - Stage 1: Validate n > 0, every index in [0,n), every conductance finite and >= 0.
//   - Stage 2: Accumulate off-diagonal -c and diagonal +c per row; skip self-loops
//     (they carry no current) and sum parallel edges.
//   - Stage 3: Sort each row by column, merge duplicates, round through prec.
//
// Errors:
//   - ErrBadShape, ErrOutOfRange, ErrNaNInf, ErrNegativeConductance, ErrUnknownPrecision.
//
// Complexity:
//   - Time O(N + E log d_max), Space O(N + E).
func NewLaplacian(n int, edges []Conductance, prec Precision) (*Laplacian, error) {
	if n <= 0 {
		return nil, matrixErrorf(opLaplacian, fmt.Errorf("%w: n=%d", ErrBadShape, n))
	}
	if !prec.Valid() {
		return nil, matrixErrorf(opLaplacian, ErrUnknownPrecision)
	}

	type entry struct {
		j int
		v float64
	}
	rows := make([][]entry, n)
	diag := make([]float64, n)
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, matrixErrorf(opLaplacian, fmt.Errorf("%w: edge {%d,%d} with n=%d", ErrOutOfRange, e.U, e.V, n))
		}
		if math.IsNaN(e.C) || math.IsInf(e.C, 0) {
			return nil, matrixErrorf(opLaplacian, fmt.Errorf("%w: edge {%d,%d}", ErrNaNInf, e.U, e.V))
		}
		if e.C < 0 {
			return nil, matrixErrorf(opLaplacian, fmt.Errorf("%w: edge {%d,%d} c=%g", ErrNegativeConductance, e.U, e.V, e.C))
		}
		if e.U == e.V {
			continue
		}
		rows[e.U] = append(rows[e.U], entry{e.V, -e.C})
		rows[e.V] = append(rows[e.V], entry{e.U, -e.C})
		diag[e.U] += e.C
		diag[e.V] += e.C
	}

	l := &Laplacian{n: n, rowPtr: make([]int, n+1), diag: diag}
	for i := 0; i < n; i++ {
		r := rows[i]
		r = append(r, entry{i, diag[i]})
		sort.SliceStable(r, func(a, b int) bool { return r[a].j < r[b].j })
		for k := 0; k < len(r); k++ {
			j, v := r[k].j, r[k].v
			for k+1 < len(r) && r[k+1].j == j {
				k++
				v += r[k].v
			}
			l.col = append(l.col, j)
			l.val = append(l.val, prec.Round(v))
			if d := j - i; d > l.bandwidth {
				l.bandwidth = d
			}
		}
		l.rowPtr[i+1] = len(l.col)
		l.diag[i] = prec.Round(diag[i])
	}

	return l, nil
}

// N returns the number of vertices.
func (l *Laplacian) N() int { return l.n }

// Bandwidth returns max |i-j| over the stored non-zero pattern.
func (l *Laplacian) Bandwidth() int { return l.bandwidth }

// NNZ returns the number of stored entries, diagonal included.
func (l *Laplacian) NNZ() int { return len(l.val) }

// Row returns views of the column indices and values of row i.
// The slices alias internal storage and must not be modified.
func (l *Laplacian) Row(i int) ([]int, []float64) {
	lo, hi := l.rowPtr[i], l.rowPtr[i+1]

	return l.col[lo:hi], l.val[lo:hi]
}

// At returns L[i,j], or 0 for indices outside the matrix.
// Complexity: O(log d_i).
func (l *Laplacian) At(i, j int) float64 {
	if i < 0 || i >= l.n || j < 0 || j >= l.n {
		return 0
	}
	cols, vals := l.Row(i)
	k := sort.SearchInts(cols, j)
	if k < len(cols) && cols[k] == j {
		return vals[k]
	}

	return 0
}

// mulGrounded computes dst = Lg·x where Lg is L without row/col 0 and
// dst, x are indexed 0..N-2 (grounded index g ↔ vertex g+1).
func (l *Laplacian) mulGrounded(dst, x []float64) {
	var (
		cols []int
		vals []float64
		sum  float64
	)
	for i := 1; i < l.n; i++ {
		cols, vals = l.Row(i)
		sum = 0
		for k, j := range cols {
			if j == 0 {
				continue
			}
			sum += vals[k] * x[j-1]
		}
		dst[i-1] = sum
	}
}
