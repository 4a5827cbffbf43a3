// SPDX-License-Identifier: MIT
//
// File: gonum.go
// Role: Adapters between core.Graph and gonum graph.Undirected.

package graphio

import (
	"math"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/currentflow/core"
)

// FromGonum copies g into a core.Graph with decimal vertex IDs.
// When g implements graph.Weighted, edge weights become Edge.Weight.
//
// Complexity: O(V + E).
func FromGonum(g graph.Undirected) (*core.Graph, error) {
	wg, weighted := g.(graph.Weighted)
	d := &Document{Weighted: weighted}

	nodes := graph.NodesOf(g.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	for _, n := range nodes {
		d.Vertices = append(d.Vertices, strconv.FormatInt(n.ID(), 10))
	}
	for _, n := range nodes {
		uid := n.ID()
		for _, m := range graph.NodesOf(g.From(uid)) {
			vid := m.ID()
			if vid <= uid {
				continue
			}
			rec := EdgeRecord{From: strconv.FormatInt(uid, 10), To: strconv.FormatInt(vid, 10)}
			if weighted {
				w, _ := wg.Weight(uid, vid)
				rec.Weight = &w
			}
			d.Edges = append(d.Edges, rec)
		}
	}

	return d.Graph()
}

// ToGonum copies g into a gonum weighted undirected graph. Vertex i of
// g.Vertices() becomes node i; the returned slice maps node IDs back.
// Unweighted graphs get weight 1 on every edge; self-loops are dropped.
//
// Errors: ErrUnsupportedGraph for directed graphs, core.ErrMultiEdgeNotAllowed
// for multigraphs holding parallel edges.
func ToGonum(g *core.Graph) (*simple.WeightedUndirectedGraph, []string, error) {
	if g.Directed() || g.HasDirectedEdges() {
		return nil, nil, ErrUnsupportedGraph
	}
	ids := g.Vertices()
	index := make(map[string]int64, len(ids))
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i, id := range ids {
		index[id] = int64(i)
		out.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		u, v := index[e.From], index[e.To]
		if out.HasEdgeBetween(u, v) {
			return nil, nil, errors.Wrapf(core.ErrMultiEdgeNotAllowed, "edge %s (%s–%s)", e.ID, e.From, e.To)
		}
		w := 1.0
		if g.Weighted() {
			w = e.Weight
		}
		out.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(u), T: simple.Node(v), W: w})
	}

	return out, ids, nil
}
