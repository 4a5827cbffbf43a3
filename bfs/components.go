// SPDX-License-Identifier: MIT

package bfs

import (
	"sort"

	"github.com/katalvlaran/currentflow/core"
)

// Components partitions the vertices of g into connected components.
//
// Each component is listed in BFS order from its lexicographically smallest
// vertex, and components are ordered by that smallest vertex. Edge direction
// is honored as BFS honors it, so on graphs with directed edges the result
// describes forward reachability rather than weak connectivity.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v, WithFilterNeighbor(func(_, nbr string) bool { return !seen[nbr] }))
		if err != nil {
			return nil, err
		}
		for _, id := range res.Order {
			seen[id] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}

// IsConnected reports whether every vertex of g is reachable from the
// smallest vertex ID. The empty graph is reported as not connected.
//
// Complexity: O(V + E).
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	ids := g.Vertices()
	if len(ids) == 0 {
		return false, nil
	}
	res, err := BFS(g, ids[0])
	if err != nil {
		return false, err
	}

	return len(res.Order) == len(ids), nil
}

// Eccentricity returns the largest BFS depth reached from v together with the
// vertices found at that depth (lex asc).
//
// Complexity: O(V + E).
func Eccentricity(g *core.Graph, v string) (int, []string, error) {
	res, err := BFS(g, v)
	if err != nil {
		return 0, nil, err
	}
	var far []string
	for _, id := range res.Order {
		if res.Depth[id] == res.MaxDepth {
			far = append(far, id)
		}
	}

	sort.Strings(far)

	return res.MaxDepth, far, nil
}
