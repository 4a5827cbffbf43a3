// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// SolverKind selects the inverse-Laplacian backend.
type SolverKind string

const (
	// SolverFull inverts the grounded Laplacian once (dense Cholesky) and
	// reads rows from the explicit inverse. O(N³) time, O(N²) memory.
	SolverFull SolverKind = "full"

	// SolverLU factorizes the banded grounded Laplacian once and performs
	// one pair of triangular solves per requested row. O(N·w²) factorization,
	// O(N·w) per row, O(N·w) memory, where w is the bandwidth.
	SolverLU SolverKind = "lu"

	// SolverCG runs Jacobi-preconditioned conjugate gradient per requested row
	// on a CSR Laplacian. O(E) memory.
	SolverCG SolverKind = "cg"
)

// ParseSolverKind maps a case-insensitive name onto a SolverKind.
// Names without a registered backend yield ErrUnknownSolver.
func ParseSolverKind(s string) (SolverKind, error) {
	k := SolverKind(strings.ToLower(strings.TrimSpace(s)))
	if !Registered(k) {
		return "", fmt.Errorf("%w: %q", ErrUnknownSolver, s)
	}

	return k, nil
}

// Precision is the floating-point width used for Laplacian entries and
// solver outputs.
type Precision int

const (
	// Float64 keeps every value in double precision (default).
	Float64 Precision = iota
	// Float32 rounds Laplacian entries and solution rows through float32.
	Float32
)

// Valid reports whether p is a supported precision.
func (p Precision) Valid() bool { return p == Float64 || p == Float32 }

// String implements fmt.Stringer.
func (p Precision) String() string {
	switch p {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	default:
		return fmt.Sprintf("Precision(%d)", int(p))
	}
}

// ParsePrecision maps "float64"/"f64"/"64" and "float32"/"f32"/"32" onto a Precision.
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "float64", "f64", "64", "":
		return Float64, nil
	case "float32", "f32", "32":
		return Float32, nil
	default:
		return Float64, fmt.Errorf("%w: %q", ErrUnknownPrecision, s)
	}
}

// Round rounds x through the precision's width.
func (p Precision) Round(x float64) float64 {
	if p == Float32 {
		return float64(float32(x))
	}

	return x
}

// roundSlice applies Round to every element of xs in place.
func (p Precision) roundSlice(xs []float64) {
	if p != Float32 {
		return
	}
	for i, x := range xs {
		xs[i] = float64(float32(x))
	}
}
