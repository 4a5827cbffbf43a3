// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus the component and
// eccentricity queries built on it.
//
// Current-flow centrality uses this package twice: connectivity validation
// (IsConnected, Components) and the reverse Cuthill–McKee ordering, whose
// pseudo-peripheral search needs Eccentricity and whose level expansion
// needs WithNeighborOrder to enqueue children by ascending degree.
//
// Edge weights are ignored: depth counts edges, so weighted graphs are
// traversed like their unweighted skeleton.
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs and the walker enqueues them in that
//	order (or the order imposed by WithNeighborOrder), so the visit
//	sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) per traversal
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithNeighborOrder(func(curr string, nbrs []string) { /* stable reorder */ }),
//	)
//
//	comps, err := bfs.Components(g)
//	ok, err := bfs.IsConnected(g)
//	ecc, farthest, err := bfs.Eccentricity(g, "start")
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
