// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Algorithms return these sentinels (optionally wrapped with an
// operation tag via matrixErrorf) and tests check them via errors.Is.
// No routine panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
var (
	// ErrBadShape is returned when a requested dimension is invalid (n <= 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a vertex or row index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a destination buffer of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf conductance.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeConductance signals a conductance below zero.
	ErrNegativeConductance = errors.New("matrix: negative conductance")

	// ErrSingular is returned when the grounded Laplacian cannot be factorized
	// or is numerically singular (condition number above gonum's tolerance).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotConverged is returned when the iterative solver exhausts its
	// iteration budget before reaching the requested tolerance.
	ErrNotConverged = errors.New("matrix: iterative solver did not converge")

	// ErrUnknownSolver is returned for a SolverKind with no registered backend.
	ErrUnknownSolver = errors.New("matrix: unknown solver")

	// ErrUnknownPrecision is returned for an unsupported Precision value.
	ErrUnknownPrecision = errors.New("matrix: unknown precision")
)

// Operation tags used to prefix wrapped errors.
const (
	opLaplacian = "Laplacian"
	opFull      = "FullInverse"
	opBand      = "BandInverse"
	opCG        = "CGInverse"
	opRow       = "InverseLaplacian.Row"
)

// matrixErrorf prefixes err with an operation tag. err must be non-nil;
// the result still matches the sentinel via errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
