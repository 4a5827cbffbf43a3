// SPDX-License-Identifier: MIT

// Package flowmatrix streams the rows of the current-flow matrix of an
// integer-labeled graph.
//
// For an edge (u,v) with conductance c, the flow row is
//
//	row[i] = c · (C[u,i] - C[v,i])
//
// where C is the inverse of the Laplacian grounded at vertex 0 (package
// matrix). Read as potentials, row[i] is the current through (u,v) when a
// unit current enters at i and leaves at the ground.
//
// RowIterator yields one row per edge, edges in ascending (u,v) order. Rows
// of C are produced lazily and cached in a circular buffer of width
// bandwidth+1 (row r lives in slot r mod width), so after a reverse
// Cuthill–McKee relabeling each row of C is solved about once while memory
// stays at O(N·bandwidth).
//
// The iterator is single-pass and not safe for concurrent use. The slice
// returned by Row is reused by the next call to Next.
package flowmatrix
