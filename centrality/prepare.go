// SPDX-License-Identifier: MIT
//
// File: prepare.go
// Role: Validation, conductance lookup and relabeling shared by the node and edge passes.

package centrality

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/currentflow/bfs"
	"github.com/katalvlaran/currentflow/core"
	"github.com/katalvlaran/currentflow/flowmatrix"
	"github.com/katalvlaran/currentflow/matrix"
	"github.com/katalvlaran/currentflow/ordering"
)

// run is one validated computation: the relabeled graph plus its options.
type run struct {
	h    *ordering.Indexed
	opts Options
	log  logrus.FieldLogger
}

// prepare validates g and opts and builds the relabeled graph.
//
// Implementation:
//   - Stage 1: Options, solver registry, graph shape, connectivity, N vs normalization.
//   - Stage 2: Reverse Cuthill–McKee ordering.
//   - Stage 3: Relabel with the conductance lookup of opts.WeightKey.
//
// The caller's graph is only read.
func prepare(op string, g *core.Graph, opts []Option) (*run, error) {
	o := resolve(opts)
	if o.err != nil {
		return nil, fmt.Errorf("%s: %w", op, o.err)
	}
	if !matrix.Registered(o.Solver) {
		return nil, fmt.Errorf("%s: %w: %q: %w", op, ErrMissingDependency, o.Solver, matrix.ErrUnknownSolver)
	}
	if g == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrGraphNil)
	}
	if g.Directed() {
		return nil, fmt.Errorf("%s: %w: directed graph", op, ErrUnsupportedGraph)
	}
	if g.HasDirectedEdges() {
		return nil, fmt.Errorf("%s: %w: graph holds directed edges", op, ErrUnsupportedGraph)
	}
	if g.Multigraph() {
		return nil, fmt.Errorf("%s: %w: multigraph", op, ErrUnsupportedGraph)
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyGraph)
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(comps) > 1 {
		return nil, fmt.Errorf("%s: %w: %d components", op, ErrDisconnected, len(comps))
	}
	if o.Normalized && n < 3 {
		return nil, fmt.Errorf("%s: %w: N=%d", op, ErrDegenerateNormalization, n)
	}

	ord, err := ordering.ReverseCuthillMcKee(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	h, err := ordering.Relabel(g, ord, conductance(o.WeightKey, g.Weighted()))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log := o.Logger.WithFields(logrus.Fields{"op": op, "solver": o.Solver})
	log.WithFields(logrus.Fields{
		"vertices":   h.N(),
		"edges":      len(h.Edges),
		"bandwidth":  ordering.Bandwidth(h),
		"normalized": o.Normalized,
		"weightKey":  o.WeightKey,
	}).Debug("graph relabeled")

	return &run{h: h, opts: o, log: log}, nil
}

// rows opens the flow-row iterator over the relabeled graph.
func (r *run) rows() (*flowmatrix.RowIterator, error) {
	return flowmatrix.NewRowIterator(r.h, flowmatrix.Config{
		Solver:    r.opts.Solver,
		Precision: r.opts.Precision,
		Logger:    r.log,
	})
}

// nb is the normalization denominator.
func (r *run) nb() float64 {
	n := float64(r.h.N())
	if r.opts.Normalized {
		return (n - 1) * (n - 2)
	}

	return 2
}

// conductance resolves the per-edge conductance for key.
func conductance(key string, weighted bool) ordering.WeightFunc {
	return func(e *core.Edge) (float64, error) {
		c := 1.0
		switch {
		case key == "":
		case key == DefaultWeightKey:
			if weighted {
				c = e.Weight
			}
		default:
			if v, ok := e.Attr(key); ok {
				c = v
			}
		}
		if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
			return 0, fmt.Errorf("%w: %s=%g", ErrInvalidWeight, key, c)
		}

		return c, nil
	}
}
