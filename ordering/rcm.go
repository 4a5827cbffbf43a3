// SPDX-License-Identifier: MIT
//
// File: rcm.go
// Role: Pseudo-peripheral vertex search and (reverse) Cuthill–McKee ordering.

package ordering

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/currentflow/bfs"
	"github.com/katalvlaran/currentflow/core"
)

// Ordering lists vertex IDs by their new integer label: Ordering[i] is the
// vertex that becomes i.
type Ordering []string

// Index returns the inverse map ID → label.
func (o Ordering) Index() map[string]int {
	idx := make(map[string]int, len(o))
	for i, id := range o {
		idx[id] = i
	}

	return idx
}

// Reverse returns a new Ordering with labels flipped (i ↔ N-1-i).
func (o Ordering) Reverse() Ordering {
	out := make(Ordering, len(o))
	for i, id := range o {
		out[len(o)-1-i] = id
	}

	return out
}

// degrees snapshots core.Graph.Degree for every vertex.
func degrees(g *core.Graph) (map[string]int, error) {
	ids := g.Vertices()
	deg := make(map[string]int, len(ids))
	for _, id := range ids {
		d, err := g.Degree(id)
		if err != nil {
			return nil, err
		}
		deg[id] = d
	}

	return deg, nil
}

// PseudoPeripheralVertex returns a vertex of (nearly) maximal eccentricity
// inside the component of start.
//
// Implementation:
//   - Stage 1: v = start, best = 0.
//   - Stage 2: BFS from v; if its eccentricity does not exceed best, stop.
//   - Stage 3: best = eccentricity; v = the farthest vertex of minimum degree
//     (ties: smallest ID); repeat Stage 2.
//
// Errors:
//   - ErrGraphNil, bfs.ErrStartVertexNotFound.
func PseudoPeripheralVertex(g *core.Graph, start string) (string, error) {
	if g == nil {
		return "", ErrGraphNil
	}
	deg, err := degrees(g)
	if err != nil {
		return "", err
	}

	return pseudoPeripheral(g, start, deg)
}

func pseudoPeripheral(g *core.Graph, start string, deg map[string]int) (string, error) {
	v, best := start, 0
	for {
		ecc, far, err := bfs.Eccentricity(g, v)
		if err != nil {
			return "", fmt.Errorf("PseudoPeripheralVertex: %w", err)
		}
		if ecc <= best {
			return v, nil
		}
		best = ecc
		next := far[0]
		for _, u := range far[1:] {
			if deg[u] < deg[next] {
				next = u
			}
		}
		v = next
	}
}

// CuthillMcKee returns the Cuthill–McKee ordering of g.
//
// Components are processed in order of their smallest vertex ID. Inside a
// component the traversal starts at PseudoPeripheralVertex(g, smallest) and
// enqueues each vertex's unvisited neighbors by ascending degree, ties by ID.
//
// Errors:
//   - ErrGraphNil, plus propagated bfs errors.
//
// Complexity: see package doc.
func CuthillMcKee(g *core.Graph) (Ordering, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	deg, err := degrees(g)
	if err != nil {
		return nil, err
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("CuthillMcKee: %w", err)
	}

	byDegree := bfs.WithNeighborOrder(func(_ string, nbrs []string) {
		// nbrs arrive sorted by ID, so a stable sort keeps ID as the tie-break
		sort.SliceStable(nbrs, func(i, j int) bool { return deg[nbrs[i]] < deg[nbrs[j]] })
	})

	out := make(Ordering, 0, len(deg))
	for _, comp := range comps {
		start, err := pseudoPeripheral(g, comp[0], deg)
		if err != nil {
			return nil, err
		}
		res, err := bfs.BFS(g, start, byDegree)
		if err != nil {
			return nil, fmt.Errorf("CuthillMcKee: %w", err)
		}
		out = append(out, res.Order...)
	}

	return out, nil
}

// ReverseCuthillMcKee returns CuthillMcKee(g) reversed, which typically
// yields a smaller profile for Cholesky-type factorizations.
func ReverseCuthillMcKee(g *core.Graph) (Ordering, error) {
	cm, err := CuthillMcKee(g)
	if err != nil {
		return nil, err
	}

	return cm.Reverse(), nil
}
