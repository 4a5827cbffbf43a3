// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: Breadth-first walker over core.Graph (orders, depths, parents).
// Determinism:
//   - Neighbors are expanded in core.NeighborIDs order (lex asc) unless
//     WithNeighborOrder supplies another stable order.

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/currentflow/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state for a single traversal.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	head    int
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID.
//
// Edge weights play no role: depth counts edges. Directed edges are only
// followed From→To; undirected edges in both directions. Self-loops are
// harmless (the vertex is already visited).
//
// Errors:
//   - ErrGraphNil, ErrStartVertexNotFound for invalid input.
//   - ErrOptionViolation for bad options.
//   - ErrNeighbors (wrapped) when the graph fails to enumerate neighbors.
//   - context errors and wrapped OnVisit errors.
//
// Complexity: O(V + E) plus the cost of the optional neighbor ordering.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for w.head < len(w.queue) {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[w.head]
		w.head++
		w.opts.OnDequeue(item.id, item.depth)

		w.res.Order = append(w.res.Order, item.id)
		if item.depth > w.res.MaxDepth {
			w.res.MaxDepth = item.depth
		}
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues the unvisited, unfiltered neighbors of item in the configured order.
func (w *walker) expand(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}

	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}

	fresh := neighbors[:0]
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		fresh = append(fresh, nbr)
	}
	if w.opts.NeighborOrder != nil {
		w.opts.NeighborOrder(item.id, fresh)
	}
	for _, nbr := range fresh {
		w.enqueue(nbr, next, item.id)
	}

	return nil
}
