// SPDX-License-Identifier: MIT

package centrality_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/currentflow/builder"
	"github.com/katalvlaran/currentflow/centrality"
)

// On a tree every s–t current follows the unique path, so current-flow
// betweenness equals shortest-path betweenness. gonum counts ordered pairs.
func TestTreesMatchShortestPathBetweenness(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 4, 5} {
		g := build(t, nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomConnected(30, 0))
		require.Equal(t, 29, g.EdgeCount())

		ug := simple.NewUndirectedGraph()
		for _, id := range g.Vertices() {
			ug.AddNode(simple.Node(atoi(t, id)))
		}
		for _, e := range g.Edges() {
			ug.SetEdge(simple.Edge{F: simple.Node(atoi(t, e.From)), T: simple.Node(atoi(t, e.To))})
		}

		nb := nodes(t, g, centrality.WithNormalized(false))
		sp := network.Betweenness(ug)
		for _, id := range g.Vertices() {
			assert.InDelta(t, sp[int64(atoi(t, id))]/2, nb[id], 1e-8, "seed %d vertex %s", seed, id)
		}

		eb := edges(t, g, centrality.WithNormalized(false))
		spe := network.EdgeBetweenness(ug)
		for _, e := range g.Edges() {
			u, v := int64(atoi(t, e.From)), int64(atoi(t, e.To))
			if v < u {
				u, v = v, u
			}
			got, ok := centrality.Lookup(eb, e.From, e.To)
			require.True(t, ok)
			assert.InDelta(t, spe[[2]int64{u, v}]/4, got, 1e-8, "seed %d edge %s–%s", seed, e.From, e.To)
		}
	}
}

func atoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	require.NoError(t, err)

	return n
}
