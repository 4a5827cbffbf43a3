// Package currentflow computes current-flow (random-walk) betweenness
// centrality of connected undirected graphs, for vertices and for edges.
//
// Every edge is a resistor whose conductance is its weight. For each
// source/sink pair (s,t) a unit current enters at s and leaves at t; the
// score of a vertex or edge is the current passing through it, averaged
// over all pairs. The computation never enumerates pairs: it ranks the rows
// of the flow matrix B·C, where C is the grounded inverse Laplacian.
//
// Packages:
//
//	core/        thread-safe Graph, Vertex and Edge primitives
//	bfs/         breadth-first traversal, components, eccentricity
//	ordering/    reverse Cuthill–McKee ordering and dense relabeling
//	matrix/      sparse Laplacian and inverse-Laplacian row solvers (full, lu, cg)
//	flowmatrix/  lazy per-edge rows of the flow matrix
//	centrality/  CurrentFlowBetweenness and EdgeCurrentFlowBetweenness
//	builder/     deterministic and seeded graph families for tests and benchmarks
//	graphio/     edge-list, TOML and YAML codecs, Neo4j loader, gonum adapters
//	cmd/cfbc     command-line front end
//
// Quick example:
//
//	A───B
//	│   │
//	C───D
//
//	g := core.NewGraph()
//	_, _ = g.AddEdge("A", "B", 0)
//	_, _ = g.AddEdge("B", "D", 0)
//	_, _ = g.AddEdge("D", "C", 0)
//	_, _ = g.AddEdge("C", "A", 0)
//	scores, err := centrality.CurrentFlowBetweenness(g)
//	// every vertex of the 4-cycle scores 1/3
//
//	go get github.com/katalvlaran/currentflow
package currentflow
