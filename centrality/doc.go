// SPDX-License-Identifier: MIT

// Package centrality computes current-flow (random-walk) betweenness for the
// vertices and edges of an undirected, connected core.Graph.
//
// The graph is read as an electrical network: every edge is a resistor whose
// conductance comes from a weight key. For each edge (s,t) of the graph a unit
// current is injected at s and withdrawn at t; the resulting potentials (one
// flow row per edge, see package flowmatrix) are folded into per-vertex or
// per-edge scores with a rank trick. Sorting the row by descending potential
// turns the pairwise sum over all source/sink pairs into an O(N log N) pass:
//
//	node:  b[s] += (i - pos[i])·row[i]      b[t] += (N - i - 1 - pos[i])·row[i]
//	edge:  b[e] += (i + 1 - pos[i])·row[i] + (N - i - pos[i])·row[i]
//
// where pos is the 0-based (node) or 1-based (edge) descending rank of vertex i.
// Node scores are finalized as (b[v] - v)·2/nb, edge scores as b[e]/nb, with
// nb = (N-1)(N-2) when normalized and 2 otherwise.
//
// Pipeline:
//
//	validate → ordering.ReverseCuthillMcKee → ordering.Relabel → flowmatrix.RowIterator → accumulate
//
// Reordering only narrows the Laplacian bandwidth for the lu solver and the
// row cache; it does not change the results.
//
// Tie-break policy: vertices with equal potential are ranked by a stable
// ascending sort that is then reversed, so the larger index ranks first.
// Equal potentials contribute identical products, so ties never change a score.
//
// Options:
//
//	WithNormalized(bool)            default true
//	WithWeightKey(string)           default "weight"; "" forces unit conductances
//	WithPrecision(matrix.Precision) default matrix.Float64
//	WithSolver(matrix.SolverKind)   default matrix.SolverLU
//	WithLogger(logrus.FieldLogger)  default discards output
//
// Errors (checked in this order, before any solve):
//
//	ErrOptionViolation         – invalid option value
//	ErrMissingDependency       – no backend registered for the solver
//	ErrGraphNil                – nil graph
//	ErrUnsupportedGraph        – directed graph, directed edge or multigraph
//	ErrEmptyGraph              – no vertices
//	ErrDisconnected            – more than one connected component
//	ErrDegenerateNormalization – normalized with fewer than 3 vertices
//	ErrInvalidWeight           – NaN, ±Inf or negative conductance
//
// Solver failures (matrix.ErrSingular, matrix.ErrNotConverged) are returned wrapped.
package centrality
