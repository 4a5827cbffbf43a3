// SPDX-License-Identifier: MIT
//
// File: solver_cg.go
// Role: Jacobi-preconditioned conjugate gradient on the CSR grounded Laplacian.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const (
	// cgTolerance is the relative residual ‖r‖₂/‖b‖₂ at which CG stops.
	cgTolerance = 1e-10
	// cgIterFactor bounds iterations at cgIterFactor·N.
	cgIterFactor = 10
)

// cgInverse solves one right-hand side per Row call; only O(N) scratch is kept
// besides the Laplacian itself.
type cgInverse struct {
	l       *Laplacian
	prec    Precision
	maxIter int
	invDiag []float64
	x       []float64
	r       []float64
	z       []float64
	p       []float64
	q       []float64
}

// newCGInverse builds the Jacobi preconditioner diag(Lg)⁻¹.
// A vertex with zero total conductance makes Lg singular (ErrSingular).
//
// Complexity: Time O(N), Space O(N).
func newCGInverse(l *Laplacian, prec Precision) (InverseLaplacian, error) {
	m := l.n - 1
	c := &cgInverse{
		l:       l,
		prec:    prec,
		maxIter: cgIterFactor * l.n,
		invDiag: make([]float64, m),
		x:       make([]float64, m),
		r:       make([]float64, m),
		z:       make([]float64, m),
		p:       make([]float64, m),
		q:       make([]float64, m),
	}
	for i := 1; i < l.n; i++ {
		d := l.diag[i]
		if d <= 0 {
			return nil, matrixErrorf(opCG, fmt.Errorf("%w: vertex %d has zero conductance", ErrSingular, i))
		}
		c.invDiag[i-1] = 1 / d
	}

	return c, nil
}

func (c *cgInverse) Kind() SolverKind { return SolverCG }
func (c *cgInverse) N() int           { return c.l.n }

// Row runs PCG on Lg·x = e_{r-1} starting from x = 0.
//
// Implementation:
//   - Stage 1: r = b, z = M⁻¹r, p = z.
//   - Stage 2: iterate α = (r·z)/(p·Lg p); x += αp; r -= αLg p; β = (r'·z')/(r·z); p = z' + βp,
//     until ‖r‖₂ <= tol·‖b‖₂ (‖b‖₂ = 1) or the budget runs out.
//
// Errors:
//   - ErrSingular if p·Lg p <= 0 (Lg not positive definite).
//   - ErrNotConverged if the residual is still above tolerance after 10·N iterations.
//
// Complexity: O(iters·(N + E)).
func (c *cgInverse) Row(row int, dst []float64) error {
	ground, err := checkRow(c.l.n, row, dst)
	if err != nil || ground {
		return err
	}

	for i := range c.x {
		c.x[i] = 0
		c.r[i] = 0
	}
	c.r[row-1] = 1
	floats.MulTo(c.z, c.invDiag, c.r)
	copy(c.p, c.z)
	rz := floats.Dot(c.r, c.z)

	res := 1.0
	for it := 0; it < c.maxIter && res > cgTolerance; it++ {
		c.l.mulGrounded(c.q, c.p)
		pq := floats.Dot(c.p, c.q)
		if pq <= 0 {
			return matrixErrorf(opCG, fmt.Errorf("%w: row %d, iteration %d", ErrSingular, row, it))
		}
		alpha := rz / pq
		floats.AddScaled(c.x, alpha, c.p)
		floats.AddScaled(c.r, -alpha, c.q)
		res = floats.Norm(c.r, 2)

		floats.MulTo(c.z, c.invDiag, c.r)
		rzNext := floats.Dot(c.r, c.z)
		floats.Scale(rzNext/rz, c.p)
		floats.Add(c.p, c.z)
		rz = rzNext
	}
	if res > cgTolerance {
		return matrixErrorf(opCG, fmt.Errorf("%w: row %d, residual %.3e after %d iterations",
			ErrNotConverged, row, res, c.maxIter))
	}

	copy(dst[1:], c.x)
	c.prec.roundSlice(dst)

	return nil
}
