// SPDX-License-Identifier: MIT
// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/currentflow/core"
)

// BenchmarkAddEdge_Unweighted measures adding edges in the default configuration.
func BenchmarkAddEdge_Unweighted(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("Root", fmt.Sprintf("N%d", i), 0)
	}
}

// BenchmarkAddEdge_WithAttrs measures adding weighted edges carrying one attribute.
func BenchmarkAddEdge_WithAttrs(b *testing.B) {
	g := core.NewGraph(core.WithWeighted())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("Root", fmt.Sprintf("N%d", i), float64(i%7+1), core.WithEdgeAttr("capacity", 2))
	}
}

// BenchmarkNeighborIDs measures neighbor enumeration on a 1000-leaf star.
func BenchmarkNeighborIDs(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 1000; i++ {
		_, _ = g.AddEdge("Center", fmt.Sprintf("Node%d", i), 0)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.NeighborIDs("Center")
	}
}

// BenchmarkClone measures cloning a 1000-edge weighted graph.
func BenchmarkClone(b *testing.B) {
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < 1000; i++ {
		_, _ = g.AddEdge("A", fmt.Sprintf("V%d", i), float64(i+1))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
