// SPDX-License-Identifier: MIT

// Package builder generates deterministic graph fixtures for tests,
// benchmarks and the cfbc generate command.
//
// A fixture is one or more Constructors applied by BuildGraph to a fresh
// core.Graph:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithWeighted()},
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(0.5, 2)},
//	    builder.RandomConnected(50, 0.05),
//	)
//
// Components:
//
//   - Topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid,
//     RandomSparse, RandomConnected; ByName resolves them from a string.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn ("A"…"Z"),
//     ExcelColumnIDFn ("A"…"Z","AA",…), SymbolNumberIDFn(prefix).
//   - Conductance generators (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn. WithWeightFn drives Edge.Weight on weighted graphs;
//     WithAttrFn adds named attributes to every edge, selectable later through
//     a centrality weight key.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Option constructors panic on meaningless input; Constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource) wrapped with the method name.
//   - On directed graphs every edge is added in both directions.
package builder
