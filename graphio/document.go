// SPDX-License-Identifier: MIT
//
// File: document.go
// Role: Format-neutral graph document shared by the toml and yaml codecs.

package graphio

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/currentflow/core"
)

// Document is the serialised form of an undirected graph.
type Document struct {
	// Weighted forces a weighted graph even when no edge carries a weight.
	Weighted bool `toml:"weighted,omitempty" yaml:"weighted,omitempty" json:"weighted,omitempty"`

	// Vertices lists vertex IDs; endpoints of Edges are added implicitly.
	Vertices []string `toml:"vertices,omitempty" yaml:"vertices,omitempty" json:"vertices,omitempty"`

	// Edges lists undirected edges.
	Edges []EdgeRecord `toml:"edges,omitempty" yaml:"edges,omitempty" json:"edges,omitempty"`
}

// EdgeRecord is one undirected edge of a Document.
type EdgeRecord struct {
	From   string             `toml:"from" yaml:"from" json:"from"`
	To     string             `toml:"to" yaml:"to" json:"to"`
	Weight *float64           `toml:"weight,omitempty" yaml:"weight,omitempty" json:"weight,omitempty"`
	Attrs  map[string]float64 `toml:"attrs,omitempty" yaml:"attrs,omitempty" json:"attrs,omitempty"`
}

// Graph builds a fresh undirected core.Graph from d.
//
// Implementation:
//   - Stage 1: Weighted if d.Weighted or any edge has a weight.
//   - Stage 2: Add Vertices in order, then Edges in order; missing weights are 1.
//
// Errors: core errors (empty ID, multi-edge, NaN/Inf) wrapped with the edge position.
func (d *Document) Graph() (*core.Graph, error) {
	weighted := d.Weighted
	for _, e := range d.Edges {
		if e.Weight != nil {
			weighted = true
			break
		}
	}
	opts := []core.GraphOption{core.WithLoops()}
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)

	for i, id := range d.Vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, errors.Wrapf(err, "vertex %d", i)
		}
	}
	for i, e := range d.Edges {
		var w float64
		if weighted {
			w = 1
			if e.Weight != nil {
				w = *e.Weight
			}
		}
		keys := make([]string, 0, len(e.Attrs))
		for k := range e.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		eopts := make([]core.EdgeOption, 0, len(keys))
		for _, k := range keys {
			eopts = append(eopts, core.WithEdgeAttr(k, e.Attrs[k]))
		}
		if _, err := g.AddEdge(e.From, e.To, w, eopts...); err != nil {
			return nil, errors.Wrapf(err, "edge %d (%s–%s)", i, e.From, e.To)
		}
	}

	return g, nil
}

// NewDocument captures g as a Document. Vertices lists only vertices
// without incident edges; edges follow g.Edges() order.
//
// Errors: ErrUnsupportedGraph for directed graphs or directed edges.
func NewDocument(g *core.Graph) (*Document, error) {
	if g.Directed() || g.HasDirectedEdges() {
		return nil, ErrUnsupportedGraph
	}
	d := &Document{Weighted: g.Weighted()}
	touched := make(map[string]bool, g.VertexCount())
	for _, e := range g.Edges() {
		rec := EdgeRecord{From: e.From, To: e.To}
		if d.Weighted {
			w := e.Weight
			rec.Weight = &w
		}
		if len(e.Attrs) > 0 {
			rec.Attrs = make(map[string]float64, len(e.Attrs))
			for k, v := range e.Attrs {
				rec.Attrs[k] = v
			}
		}
		d.Edges = append(d.Edges, rec)
		touched[e.From], touched[e.To] = true, true
	}
	for _, id := range g.Vertices() {
		if !touched[id] {
			d.Vertices = append(d.Vertices, id)
		}
	}

	return d, nil
}
