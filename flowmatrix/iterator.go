// SPDX-License-Identifier: MIT
//
// File: iterator.go
// Role: RowIterator over (flow row, edge) pairs with a circular cache of inverse-Laplacian rows.

package flowmatrix

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/currentflow/matrix"
	"github.com/katalvlaran/currentflow/ordering"
)

// Sentinel errors.
var (
	// ErrEmptyGraph is returned for an Indexed graph without vertices.
	ErrEmptyGraph = errors.New("flowmatrix: graph has no vertices")

	// ErrNilGraph is returned for a nil Indexed graph.
	ErrNilGraph = errors.New("flowmatrix: graph is nil")
)

// Config selects the inverse-Laplacian backend and numeric width.
// The zero value means lu solver, float64 precision and no logging.
type Config struct {
	Solver    matrix.SolverKind
	Precision matrix.Precision
	Logger    logrus.FieldLogger
}

// RowIterator yields (row, edge) pairs for every edge of an Indexed graph.
//
//	it, err := flowmatrix.NewRowIterator(h, cfg)
//	for it.Next() {
//	    row, e := it.Row(), it.Edge()
//	}
//	if err := it.Err(); err != nil { ... }
type RowIterator struct {
	h    *ordering.Indexed
	inv  matrix.InverseLaplacian
	prec matrix.Precision
	log  logrus.FieldLogger

	width int
	cache [][]float64
	tag   []int // row of C held by each slot, -1 when empty

	pos    int // index of the next edge
	row    []float64
	edge   ordering.IndexedEdge
	err    error
	solves int
}

// NewRowIterator assembles the Laplacian of h and initialises the solver.
//
// Implementation:
//   - Stage 1: Validate h and cfg (defaults: lu, float64, discarding logger).
//   - Stage 2: Build matrix.Laplacian from h.Edges rounded through cfg.Precision.
//   - Stage 3: matrix.NewInverseLaplacian (factorization happens here for full/lu).
//   - Stage 4: Allocate a circular cache of bandwidth+1 rows.
//
// Errors:
//   - ErrNilGraph, ErrEmptyGraph.
//   - matrix.ErrUnknownSolver, matrix.ErrUnknownPrecision, matrix.ErrSingular and
//     Laplacian assembly errors, wrapped.
func NewRowIterator(h *ordering.Indexed, cfg Config) (*RowIterator, error) {
	if h == nil {
		return nil, ErrNilGraph
	}
	n := h.N()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if cfg.Solver == "" {
		cfg.Solver = matrix.SolverLU
	}
	log := cfg.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	conds := make([]matrix.Conductance, len(h.Edges))
	for i, e := range h.Edges {
		conds[i] = matrix.Conductance{U: e.U, V: e.V, C: e.Weight}
	}
	lap, err := matrix.NewLaplacian(n, conds, cfg.Precision)
	if err != nil {
		return nil, fmt.Errorf("NewRowIterator: %w", err)
	}
	inv, err := matrix.NewInverseLaplacian(cfg.Solver, lap, cfg.Precision)
	if err != nil {
		return nil, fmt.Errorf("NewRowIterator: %w", err)
	}

	width := ordering.Bandwidth(h) + 1
	it := &RowIterator{
		h:     h,
		inv:   inv,
		prec:  cfg.Precision,
		log:   log,
		width: width,
		cache: make([][]float64, width),
		tag:   make([]int, width),
		row:   make([]float64, n),
	}
	for i := range it.cache {
		it.cache[i] = make([]float64, n)
		it.tag[i] = -1
	}

	log.WithFields(logrus.Fields{
		"vertices":  n,
		"edges":     len(h.Edges),
		"bandwidth": width - 1,
		"nnz":       lap.NNZ(),
		"solver":    cfg.Solver,
		"precision": cfg.Precision.String(),
	}).Debug("flow matrix initialised")

	return it, nil
}

// Len returns the total number of rows the iterator yields (one per edge).
func (it *RowIterator) Len() int { return len(it.h.Edges) }

// Next advances to the next edge and computes its flow row. It returns
// false when the edges are exhausted or an error occurred (see Err).
func (it *RowIterator) Next() bool {
	if it.err != nil || it.pos >= len(it.h.Edges) {
		return false
	}
	e := it.h.Edges[it.pos]
	cu, err := it.inverseRow(e.U)
	if err != nil {
		it.err = err
		return false
	}
	cv, err := it.inverseRow(e.V)
	if err != nil {
		it.err = err
		return false
	}
	c := it.prec.Round(e.Weight)
	for i := range it.row {
		it.row[i] = it.prec.Round(c * (cu[i] - cv[i]))
	}
	it.edge = e
	it.pos++
	if it.pos == len(it.h.Edges) {
		it.log.WithFields(logrus.Fields{"rows": it.pos, "solves": it.solves}).Debug("flow matrix exhausted")
	}

	return true
}

// Row returns the current flow row. Valid until the next call to Next.
func (it *RowIterator) Row() []float64 { return it.row }

// Edge returns the edge of the current row.
func (it *RowIterator) Edge() ordering.IndexedEdge { return it.edge }

// Index returns the position of the current edge in h.Edges.
func (it *RowIterator) Index() int { return it.pos - 1 }

// Err returns the first error encountered by Next.
func (it *RowIterator) Err() error { return it.err }

// Solves reports how many rows of C have been computed so far.
func (it *RowIterator) Solves() int { return it.solves }

// inverseRow returns row r of C, solving it when slot r%width holds another row.
func (it *RowIterator) inverseRow(r int) ([]float64, error) {
	slot := r % it.width
	if it.tag[slot] == r {
		return it.cache[slot], nil
	}
	if err := it.inv.Row(r, it.cache[slot]); err != nil {
		it.tag[slot] = -1
		return nil, fmt.Errorf("flowmatrix: row %d: %w", r, err)
	}
	it.tag[slot] = r
	it.solves++

	return it.cache[slot], nil
}
