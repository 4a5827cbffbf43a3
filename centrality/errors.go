// SPDX-License-Identifier: MIT

package centrality

import "errors"

// Sentinel errors. Match with errors.Is; returned errors carry context via %w.
var (
	// ErrGraphNil is returned for a nil *core.Graph.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrEmptyGraph is returned for a graph without vertices.
	ErrEmptyGraph = errors.New("centrality: graph has no vertices")

	// ErrUnsupportedGraph is returned for directed graphs, graphs holding any
	// directed edge, and multigraphs.
	ErrUnsupportedGraph = errors.New("centrality: unsupported graph")

	// ErrDisconnected is returned when the graph has more than one connected component.
	ErrDisconnected = errors.New("centrality: graph is not connected")

	// ErrMissingDependency is returned when no linear-algebra backend is
	// registered for the selected solver.
	ErrMissingDependency = errors.New("centrality: solver backend unavailable")

	// ErrDegenerateNormalization is returned when normalization is requested
	// on fewer than three vertices, where (N-1)(N-2) is zero.
	ErrDegenerateNormalization = errors.New("centrality: normalization needs at least 3 vertices")

	// ErrInvalidWeight is returned when a conductance resolves to NaN, ±Inf or a negative value.
	ErrInvalidWeight = errors.New("centrality: invalid conductance")

	// ErrOptionViolation is returned when an Option carries an invalid value.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")
)
