// SPDX-License-Identifier: MIT
package flowmatrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/currentflow/core"
	"github.com/katalvlaran/currentflow/flowmatrix"
	"github.com/katalvlaran/currentflow/matrix"
	"github.com/katalvlaran/currentflow/ordering"
)

func byWeight(e *core.Edge) (float64, error) { return e.Weight, nil }

// indexed relabels g in lexicographic vertex order.
func indexed(t *testing.T, g *core.Graph, w ordering.WeightFunc) *ordering.Indexed {
	t.Helper()
	h, err := ordering.Relabel(g, g.Vertices(), w)
	require.NoError(t, err)

	return h
}

func TestRowIterator_Path3(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("b", "c", 0)
	h := indexed(t, g, nil)

	want := [][]float64{{0, -1, -1}, {0, 0, -1}}
	for _, kind := range matrix.Solvers() {
		t.Run(string(kind), func(t *testing.T) {
			it, err := flowmatrix.NewRowIterator(h, flowmatrix.Config{Solver: kind})
			require.NoError(t, err)
			assert.Equal(t, 2, it.Len())

			var rows [][]float64
			var edges []ordering.IndexedEdge
			for it.Next() {
				rows = append(rows, append([]float64(nil), it.Row()...))
				edges = append(edges, it.Edge())
				assert.Equal(t, len(edges)-1, it.Index())
			}
			require.NoError(t, it.Err())
			require.Len(t, rows, 2)
			for k := range want {
				assert.InDeltaSlice(t, want[k], rows[k], 1e-12)
			}
			assert.Equal(t, []ordering.IndexedEdge{{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 1}}, edges)
			assert.Equal(t, 3, it.Solves())
			assert.False(t, it.Next(), "exhausted iterator stays exhausted")
		})
	}
}

func TestRowIterator_KirchhoffCurrentLaw(t *testing.T) {
	rnd := rand.New(rand.NewSource(17))
	g := core.NewGraph(core.WithWeighted())
	const n = 14
	for i := 1; i < n; i++ {
		_, err := g.AddEdge(fmt.Sprintf("v%02d", rnd.Intn(i)), fmt.Sprintf("v%02d", i), 0.25+rnd.Float64())
		require.NoError(t, err)
	}
	for k := 0; k < 10; k++ {
		u, v := rnd.Intn(n), rnd.Intn(n)
		if u == v || g.HasEdge(fmt.Sprintf("v%02d", u), fmt.Sprintf("v%02d", v)) {
			continue
		}
		_, err := g.AddEdge(fmt.Sprintf("v%02d", u), fmt.Sprintf("v%02d", v), 0.25+rnd.Float64())
		require.NoError(t, err)
	}
	rcm, err := ordering.ReverseCuthillMcKee(g)
	require.NoError(t, err)
	h, err := ordering.Relabel(g, rcm, byWeight)
	require.NoError(t, err)

	for _, kind := range matrix.Solvers() {
		it, err := flowmatrix.NewRowIterator(h, flowmatrix.Config{Solver: kind})
		require.NoError(t, err)

		// outflow[k][i]: net current leaving k when a unit enters at i and exits at 0
		outflow := make([][]float64, n)
		for k := range outflow {
			outflow[k] = make([]float64, n)
		}
		for it.Next() {
			e, row := it.Edge(), it.Row()
			for i, x := range row {
				outflow[e.U][i] += x
				outflow[e.V][i] -= x
			}
		}
		require.NoError(t, it.Err())

		for k := 1; k < n; k++ {
			for i := 0; i < n; i++ {
				want := 0.0
				if i == k {
					want = 1
				}
				assert.InDelta(t, want, outflow[k][i], 1e-8, "%s: vertex %d, source %d", kind, k, i)
			}
		}
	}
}

func TestRowIterator_LogsInitialisation(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 0)
	h := indexed(t, g, nil)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	it, err := flowmatrix.NewRowIterator(h, flowmatrix.Config{Solver: matrix.SolverFull, Logger: logger})
	require.NoError(t, err)
	for it.Next() {
	}
	require.NoError(t, it.Err())

	require.Len(t, hook.AllEntries(), 2)
	first := hook.AllEntries()[0]
	assert.Equal(t, "flow matrix initialised", first.Message)
	assert.Equal(t, matrix.SolverFull, first.Data["solver"])
	assert.Equal(t, 1, first.Data["bandwidth"])
	assert.Equal(t, "flow matrix exhausted", hook.LastEntry().Message)
}

func TestRowIterator_Errors(t *testing.T) {
	_, err := flowmatrix.NewRowIterator(nil, flowmatrix.Config{})
	assert.ErrorIs(t, err, flowmatrix.ErrNilGraph)

	empty := indexed(t, core.NewGraph(), nil)
	_, err = flowmatrix.NewRowIterator(empty, flowmatrix.Config{})
	assert.ErrorIs(t, err, flowmatrix.ErrEmptyGraph)

	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("b", "c", 0)
	h := indexed(t, g, byWeight)
	_, err = flowmatrix.NewRowIterator(h, flowmatrix.Config{Solver: "umfpack"})
	assert.ErrorIs(t, err, matrix.ErrUnknownSolver)
	_, err = flowmatrix.NewRowIterator(h, flowmatrix.Config{})
	assert.ErrorIs(t, err, matrix.ErrSingular)
}
