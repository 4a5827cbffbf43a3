// SPDX-License-Identifier: MIT

package ordering

import "errors"

// Sentinel errors for ordering and relabeling.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("ordering: graph is nil")

	// ErrNotPermutation indicates an Ordering that is not a bijection onto
	// the graph's vertex set (missing, unknown or repeated IDs).
	ErrNotPermutation = errors.New("ordering: ordering is not a permutation of the vertex set")

	// ErrWeight wraps a failure reported by the WeightFunc.
	ErrWeight = errors.New("ordering: edge weight rejected")
)
