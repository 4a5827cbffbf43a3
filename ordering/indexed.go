// SPDX-License-Identifier: MIT
//
// File: indexed.go
// Role: Integer relabeling of a core.Graph under an Ordering.

package ordering

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/currentflow/core"
)

// IndexedEdge is an undirected edge between labels U < V with its conductance.
type IndexedEdge struct {
	U, V   int
	Weight float64
}

// WeightFunc resolves the conductance of an edge. Returning an error aborts Relabel.
type WeightFunc func(e *core.Edge) (float64, error)

// UnitWeight assigns conductance 1 to every edge.
func UnitWeight(*core.Edge) (float64, error) { return 1, nil }

// Indexed is a read-only integer copy of an undirected graph.
//
// Vertices are 0..N-1 with Labels[i] naming the original vertex. Edges holds
// one entry per adjacent pair, U < V, sorted ascending by (U,V); parallel
// edges are merged by summing conductances and self-loops are dropped.
type Indexed struct {
	Labels Ordering
	Edges  []IndexedEdge

	index  map[string]int
	adjPtr []int
	adj    []int
}

// N returns the vertex count.
func (h *Indexed) N() int { return len(h.Labels) }

// Label returns the original ID of vertex i.
func (h *Indexed) Label(i int) string { return h.Labels[i] }

// IndexOf returns the label of the original vertex id.
func (h *Indexed) IndexOf(id string) (int, bool) {
	i, ok := h.index[id]

	return i, ok
}

// Neighbors returns the ascending neighbor labels of i. The slice aliases
// internal storage and must not be modified.
func (h *Indexed) Neighbors(i int) []int { return h.adj[h.adjPtr[i]:h.adjPtr[i+1]] }

// Relabel builds the Indexed copy of g under ord.
//
// Implementation:
//   - Stage 1: Check ord is a permutation of g.Vertices() (ErrNotPermutation).
//   - Stage 2: For every edge in g.Edges() order: skip loops, resolve the
//     conductance via weight, map endpoints to labels and normalise U < V.
//   - Stage 3: Sort by (U,V), merge duplicates, build CSR adjacency.
//
// Edge direction is ignored; callers that must reject directed graphs do so
// before relabeling.
//
// Errors:
//   - ErrGraphNil, ErrNotPermutation, ErrWeight (wrapping the WeightFunc error).
func Relabel(g *core.Graph, ord Ordering, weight WeightFunc) (*Indexed, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if weight == nil {
		weight = UnitWeight
	}
	n := g.VertexCount()
	if len(ord) != n {
		return nil, fmt.Errorf("Relabel: %w: %d labels for %d vertices", ErrNotPermutation, len(ord), n)
	}
	index := ord.Index()
	if len(index) != n {
		return nil, fmt.Errorf("Relabel: %w: repeated IDs", ErrNotPermutation)
	}
	for _, id := range ord {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("Relabel: %w: unknown vertex %q", ErrNotPermutation, id)
		}
	}

	edges := make([]IndexedEdge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		w, err := weight(e)
		if err != nil {
			return nil, fmt.Errorf("Relabel: %w: edge %s (%s–%s): %w", ErrWeight, e.ID, e.From, e.To, err)
		}
		u, v := index[e.From], index[e.To]
		if u > v {
			u, v = v, u
		}
		edges = append(edges, IndexedEdge{U: u, V: v, Weight: w})
	}
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}

		return edges[i].V < edges[j].V
	})
	merged := edges[:0]
	for _, e := range edges {
		if k := len(merged) - 1; k >= 0 && merged[k].U == e.U && merged[k].V == e.V {
			merged[k].Weight += e.Weight
			continue
		}
		merged = append(merged, e)
	}

	h := &Indexed{Labels: append(Ordering(nil), ord...), Edges: merged, index: index}
	h.buildAdjacency()

	return h, nil
}

// buildAdjacency fills the CSR arrays from Edges.
func (h *Indexed) buildAdjacency() {
	n := h.N()
	count := make([]int, n+1)
	for _, e := range h.Edges {
		count[e.U+1]++
		count[e.V+1]++
	}
	for i := 0; i < n; i++ {
		count[i+1] += count[i]
	}
	h.adjPtr = append([]int(nil), count...)
	h.adj = make([]int, count[n])
	fill := count[:n]
	for _, e := range h.Edges {
		h.adj[fill[e.U]] = e.V
		fill[e.U]++
		h.adj[fill[e.V]] = e.U
		fill[e.V]++
	}
	for i := 0; i < n; i++ {
		sort.Ints(h.adj[h.adjPtr[i]:h.adjPtr[i+1]])
	}
}

// Bandwidth returns max(V-U) over the edges of h, 0 for an edgeless graph.
func Bandwidth(h *Indexed) int {
	bw := 0
	for _, e := range h.Edges {
		if d := e.V - e.U; d > bw {
			bw = d
		}
	}

	return bw
}
