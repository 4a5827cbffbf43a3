// SPDX-License-Identifier: MIT

// Package ordering relabels a core.Graph onto integers 0..N-1.
//
// Two pieces live here:
//
//   - Reverse Cuthill–McKee (RCM): a bandwidth-reducing vertex order. For each
//     connected component a pseudo-peripheral start vertex is located by
//     repeated BFS, then vertices are enqueued level by level with children
//     sorted by ascending degree; the concatenated order is reversed.
//   - Relabel: builds Indexed, a read-only integer copy of the graph under an
//     Ordering, with a deduplicated undirected edge list sorted by (U,V) and
//     CSR adjacency. Edge conductances are resolved by a caller-supplied
//     WeightFunc.
//
// The ordering is a performance device only: the Laplacian of Indexed has
// bandwidth Bandwidth(h), which the banded solver exploits. Numerical results
// computed on Indexed do not depend on which bijection was used.
//
// Determinism
//
//	Components are visited in ascending order of their smallest vertex ID,
//	ties among equal degrees break by vertex ID, and core.Graph enumerations
//	are sorted, so the same graph always yields the same Ordering.
//
// Complexity
//
//	PseudoPeripheralVertex: O(k·(V+E)) for k BFS sweeps (k is small in practice).
//	CuthillMcKee:           O(V log V + E log d_max) plus the peripheral search.
//	Relabel:                O(V + E log E).
package ordering
