// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/currentflow/bfs"
	"github.com/katalvlaran/currentflow/builder"
	"github.com/katalvlaran/currentflow/core"
)

func build(t *testing.T, gopts []core.GraphOption, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(gopts, bopts, cons...)
	require.NoError(t, err)

	return g
}

func TestTopologies_Counts(t *testing.T) {
	tests := []struct {
		name         string
		ctor         builder.Constructor
		wantV, wantE int
	}{
		{"Path(4)", builder.Path(4), 4, 3},
		{"Cycle(5)", builder.Cycle(5), 5, 5},
		{"Star(5)", builder.Star(5), 5, 4},
		{"Wheel(6)", builder.Wheel(6), 6, 10},
		{"Complete(5)", builder.Complete(5), 5, 10},
		{"CompleteBipartite(2,3)", builder.CompleteBipartite(2, 3), 5, 6},
		{"Grid(3,4)", builder.Grid(3, 4), 12, 17},
		{"RandomSparse(6,1)", builder.RandomSparse(6, 1), 6, 15},
		{"RandomSparse(6,0)", builder.RandomSparse(6, 0), 6, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, nil, nil, tc.ctor)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
		})
	}
}

func TestTopologies_Shape(t *testing.T) {
	g := build(t, nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(3))
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("C", "B"))
	assert.False(t, g.HasEdge("A", "C"))

	star := build(t, nil, nil, builder.Star(4))
	deg, err := star.Degree(builder.CenterVertexID)
	require.NoError(t, err)
	assert.Equal(t, 3, deg)

	grid := build(t, nil, nil, builder.Grid(2, 2))
	assert.True(t, grid.HasEdge("0,0", "0,1"))
	assert.True(t, grid.HasEdge("0,0", "1,0"))
	assert.False(t, grid.HasEdge("0,0", "1,1"))

	bip := build(t, nil, []builder.BuilderOption{builder.WithPartitionPrefix("u", "")}, builder.CompleteBipartite(1, 2))
	assert.Equal(t, []string{"R0", "R1", "u0"}, bip.Vertices())
}

func TestWeightsAndAttributes(t *testing.T) {
	g := build(t,
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithConstantWeight(2.5), builder.WithAttrFn("cap", builder.ConstantWeightFn(4))},
		builder.Cycle(3),
	)
	for _, e := range g.Edges() {
		assert.Equal(t, 2.5, e.Weight)
		v, ok := e.Attr("cap")
		assert.True(t, ok)
		assert.Equal(t, 4.0, v)
	}

	// unweighted graphs keep Weight at zero but still receive attributes
	u := build(t, nil, []builder.BuilderOption{builder.WithAttrFn("cap", builder.ConstantWeightFn(3))}, builder.Path(2))
	e := u.Edges()[0]
	assert.Zero(t, e.Weight)
	v, ok := e.Attr("cap")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)
}

func TestDirectedAddsBothWays(t *testing.T) {
	g := build(t, []core.GraphOption{core.WithDirected(true)}, nil, builder.Path(3))
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("1", "0"))
}

func TestRandomConnected(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 3)}
	g1 := build(t, []core.GraphOption{core.WithWeighted()}, opts, builder.RandomConnected(40, 0.05))
	ok, err := bfs.IsConnected(g1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, g1.EdgeCount(), 39)

	g2 := build(t, []core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 3)},
		builder.RandomConnected(40, 0.05))
	require.Equal(t, g1.EdgeCount(), g2.EdgeCount())
	e1, e2 := g1.Edges(), g2.Edges()
	for i := range e1 {
		assert.Equal(t, e1[i].From, e2[i].From)
		assert.Equal(t, e1[i].To, e2[i].To)
		assert.Equal(t, e1[i].Weight, e2[i].Weight)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"path too small", builder.Path(1), builder.ErrTooFewVertices},
		{"cycle too small", builder.Cycle(2), builder.ErrTooFewVertices},
		{"wheel too small", builder.Wheel(3), builder.ErrTooFewVertices},
		{"grid zero", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"bad probability", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"needs rng", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"connected needs rng", builder.RandomConnected(4, 0), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestByName(t *testing.T) {
	for _, m := range builder.Methods() {
		ctor, err := builder.ByName(m, 4, 1)
		require.NoError(t, err, m)
		require.NotNil(t, ctor, m)
	}
	ctor, err := builder.ByName("grid", 3, 0)
	require.NoError(t, err)
	g := build(t, nil, nil, ctor)
	assert.Equal(t, 9, g.VertexCount())

	_, err = builder.ByName("hexagram", 3, 0)
	assert.ErrorIs(t, err, builder.ErrUnknownMethod)
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Equal(t, "v7", builder.SymbolNumberIDFn("v")(7))
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.UniformWeightFn(2, 1) })
}
