// SPDX-License-Identifier: MIT

// Package graphio loads and stores undirected core.Graph values.
//
// Sources:
//
//	edgelist  one edge per line "u v [w] [key=value ...]", '#' comments,
//	          a lone token declares an isolated vertex
//	toml      weighted = true / vertices = [...] / [[edges]] from, to, weight, attrs
//	yaml      the same Document shape as toml
//	neo4j     a Cypher read over a Querier (LoadNeo4j)
//	gonum     any gonum graph.Undirected (FromGonum), and back (ToGonum)
//
// All file formats go through Document, so a graph read as edgelist and
// written as yaml round-trips its vertices, weights and attributes. A
// document is weighted when any edge carries a weight or when it says so;
// edges without a weight then default to 1. Parallel edges are rejected
// (core.ErrMultiEdgeNotAllowed) except in Neo4j, where parallel
// relationships are merged by summing their conductances.
//
// Errors are wrapped with github.com/pkg/errors and carry the source
// position where one exists; match them with errors.Is against ErrSyntax,
// ErrUnknownFormat or the core sentinels.
package graphio
