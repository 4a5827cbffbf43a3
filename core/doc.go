// Package core provides the thread-safe in-memory Graph consumed by the
// current-flow centrality pipeline (ordering → matrix → flowmatrix → centrality).
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected). Centrality rejects directed graphs,
//     but the model keeps the flag so callers get a precise error instead of a silent mirror.
//   - Global vs. per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64 conductances.
//   - Named numeric edge attributes (WithEdgeAttr) so one graph can carry several
//     conductance schemes, selected later by a weight key.
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//	Vertices() sorted lexicographically, Edges() sorted by Edge.ID,
//	NeighborIDs() unique and sorted. Higher layers (reverse Cuthill–McKee,
//	Laplacian assembly) rely on these orders for reproducible results.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(E)
//
//	// Edge lifecycle
//	AddEdge(from,to string, weight float64, opts ...EdgeOption) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error    // O(1)
//	HasEdge(from,to string) bool       // O(1)
//	GetEdge(edgeID string) (*Edge, error)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)    // O(d·log d)
//	NeighborIDs(id string) ([]string, error) // O(d·log d), unique, sorted
//	Vertices() []string                      // O(V·log V)
//	Edges() []*Edge                          // O(E·log E)
//	Degree(id string) (int, error)           // O(d)
//
//	// Cloning & views
//	CloneEmpty() *Graph
//	Clone() *Graph
//	InducedSubgraph(g, keep) *Graph
//
// Errors:
//
//	ErrEmptyVertexID        – zero-length vertex ID
//	ErrVertexNotFound       – missing vertex
//	ErrEdgeNotFound         – missing edge
//	ErrBadWeight            – non-zero weight on unweighted graph, or NaN/±Inf weight
//	ErrLoopNotAllowed       – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed  – parallel edge when multi-edges disabled
//	ErrMixedEdgesNotAllowed – per-edge direction override without mixed-mode
package core
