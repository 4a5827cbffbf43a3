// SPDX-License-Identifier: MIT

package graphio_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/currentflow/builder"
	"github.com/katalvlaran/currentflow/core"
	"github.com/katalvlaran/currentflow/graphio"
)

func edgeByEnds(t *testing.T, g *core.Graph, u, v string) *core.Edge {
	t.Helper()
	for _, e := range g.Edges() {
		if (e.From == u && e.To == v) || (e.From == v && e.To == u) {
			return e
		}
	}
	t.Fatalf("edge %s–%s not found", u, v)

	return nil
}

func TestDecodeEdgeList(t *testing.T) {
	src := `# demo network
a b
b c 2.5   # trailing comment
c d 1 cap=3
e

`
	g, err := graphio.Read(strings.NewReader(src), graphio.FormatEdgeList)
	require.NoError(t, err)

	assert.True(t, g.Weighted())
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 1.0, edgeByEnds(t, g, "a", "b").Weight)
	assert.Equal(t, 2.5, edgeByEnds(t, g, "b", "c").Weight)
	capacity, ok := edgeByEnds(t, g, "c", "d").Attr("cap")
	assert.True(t, ok)
	assert.Equal(t, 3.0, capacity)

	unweighted, err := graphio.Read(strings.NewReader("x y\ny z\n"), graphio.FormatEdgeList)
	require.NoError(t, err)
	assert.False(t, unweighted.Weighted())
}

func TestDecodeEdgeList_Errors(t *testing.T) {
	tests := map[string]string{
		"bad weight":      "a b heavy\n",
		"bad attribute":   "a b cap=x\n",
		"empty attr key":  "a b =1\n",
		"two weights":     "a b 1 2\n",
		"weight after kv": "a b cap=1 2\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := graphio.DecodeEdgeList(strings.NewReader(src))
			assert.ErrorIs(t, err, graphio.ErrSyntax)
			assert.Contains(t, err.Error(), "line 1")
		})
	}

	_, err := graphio.Read(strings.NewReader("a b\nb a\n"), graphio.FormatEdgeList)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestDecodeTOML(t *testing.T) {
	src := `
vertices = ["lonely"]

[[edges]]
from = "a"
to = "b"
weight = 0.5

[[edges]]
from = "b"
to = "c"
attrs = { cap = 4.0 }
`
	g, err := graphio.Read(strings.NewReader(src), graphio.FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "lonely"}, g.Vertices())
	assert.Equal(t, 0.5, edgeByEnds(t, g, "a", "b").Weight)
	assert.Equal(t, 1.0, edgeByEnds(t, g, "b", "c").Weight)
	v, _ := edgeByEnds(t, g, "b", "c").Attr("cap")
	assert.Equal(t, 4.0, v)

	_, err = graphio.Read(strings.NewReader("[[edges]\n"), graphio.FormatTOML)
	assert.ErrorIs(t, err, graphio.ErrSyntax)
}

func TestDecodeYAML(t *testing.T) {
	src := `
weighted: true
edges:
  - {from: a, to: b}
  - {from: b, to: c, weight: 3}
`
	g, err := graphio.Read(strings.NewReader(src), graphio.FormatYAML)
	require.NoError(t, err)
	assert.True(t, g.Weighted())
	assert.Equal(t, 1.0, edgeByEnds(t, g, "a", "b").Weight)
	assert.Equal(t, 3.0, edgeByEnds(t, g, "b", "c").Weight)

	empty, err := graphio.Read(strings.NewReader(""), graphio.FormatYAML)
	require.NoError(t, err)
	assert.Zero(t, empty.VertexCount())

	_, err = graphio.Read(strings.NewReader("edges: {from: [\n"), graphio.FormatYAML)
	assert.ErrorIs(t, err, graphio.ErrSyntax)
}

func TestWriteThenRead(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(5), builder.WithUniformWeight(1, 2), builder.WithAttrFn("cap", builder.ConstantWeightFn(7))},
		builder.RandomConnected(8, 0.3),
	)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("isolated"))

	for _, f := range graphio.Formats() {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, graphio.Write(&buf, g, f))
			back, err := graphio.Read(&buf, f)
			require.NoError(t, err)

			assert.Equal(t, g.Vertices(), back.Vertices())
			require.Equal(t, g.EdgeCount(), back.EdgeCount())
			for _, e := range g.Edges() {
				b := edgeByEnds(t, back, e.From, e.To)
				assert.Equal(t, e.Weight, b.Weight)
				assert.Equal(t, e.Attrs, b.Attrs)
			}
		})
	}

	_, err = graphio.NewDocument(core.NewGraph(core.WithDirected(true)))
	assert.ErrorIs(t, err, graphio.ErrUnsupportedGraph)
}

func TestFormats(t *testing.T) {
	assert.Equal(t, graphio.FormatTOML, graphio.FormatFromPath("net.toml"))
	assert.Equal(t, graphio.FormatYAML, graphio.FormatFromPath("net.YML"))
	assert.Equal(t, graphio.FormatEdgeList, graphio.FormatFromPath("net.csv"))
	assert.Equal(t, graphio.FormatEdgeList, graphio.FormatFromPath("net"))

	f, err := graphio.ParseFormat(" YAML ")
	require.NoError(t, err)
	assert.Equal(t, graphio.FormatYAML, f)
	_, err = graphio.ParseFormat("graphml")
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
	_, err = graphio.Decode(strings.NewReader(""), "graphml")
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ring.yaml")
	require.NoError(t, os.WriteFile(path, []byte("edges:\n  - {from: a, to: b}\n  - {from: b, to: c}\n  - {from: c, to: a}\n"), 0o600))

	g, err := graphio.LoadFile(path, "")
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())

	_, err = graphio.LoadFile(filepath.Join(dir, "missing.txt"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("a b c\n"), 0o600))
	_, err = graphio.LoadFile(bad, graphio.FormatEdgeList)
	assert.ErrorIs(t, err, graphio.ErrSyntax)
	assert.Contains(t, err.Error(), "bad.txt")
}

// fakeQuerier answers the vertex and relationship statements from memory.
type fakeQuerier struct {
	nodes, rels []graphio.Record
	statements  []string
	params      map[string]any
}

func (f *fakeQuerier) ExecuteRead(_ context.Context, cypher string, params map[string]any) ([]graphio.Record, error) {
	f.statements = append(f.statements, cypher)
	f.params = params
	if strings.Contains(cypher, "->") {
		return f.rels, nil
	}

	return f.nodes, nil
}

func TestLoadNeo4j(t *testing.T) {
	q := &fakeQuerier{
		nodes: []graphio.Record{{"id": "acc-1"}, {"id": "acc-2"}, {"id": "acc-3"}, {"id": int64(4)}},
		rels: []graphio.Record{
			{"from": "acc-1", "to": "acc-2", "weight": 1.5},
			{"from": "acc-2", "to": "acc-1", "weight": int64(2)},
			{"from": "acc-2", "to": "acc-3", "weight": nil},
			{"from": "acc-3", "to": "acc-3", "weight": 9.0},
		},
	}
	g, err := graphio.LoadNeo4j(context.Background(), q, graphio.Neo4jQuery{
		Label: "Account", Relationship: "TRANSFER", WeightProperty: "amount",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"4", "acc-1", "acc-2", "acc-3"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 3.5, edgeByEnds(t, g, "acc-1", "acc-2").Weight)
	assert.Equal(t, 1.0, edgeByEnds(t, g, "acc-2", "acc-3").Weight)

	require.Len(t, q.statements, 2)
	assert.Contains(t, q.statements[0], "MATCH (n:`Account`)")
	assert.Contains(t, q.statements[1], "[r:`TRANSFER`]")
	assert.Equal(t, "id", q.params["idProp"])
	assert.Equal(t, "amount", q.params["weightProp"])
}

func TestLoadNeo4j_Errors(t *testing.T) {
	_, err := graphio.LoadNeo4j(context.Background(), &fakeQuerier{}, graphio.Neo4jQuery{Label: "Bad Label"})
	assert.ErrorIs(t, err, graphio.ErrSyntax)

	q := &fakeQuerier{rels: []graphio.Record{{"from": "a", "to": "b", "weight": "heavy"}}}
	_, err = graphio.LoadNeo4j(context.Background(), q, graphio.Neo4jQuery{WeightProperty: "w"})
	assert.ErrorIs(t, err, graphio.ErrSyntax)

	_, err = graphio.NewNeo4jQuerier(context.Background(), graphio.Neo4jOptions{})
	assert.ErrorIs(t, err, graphio.ErrMissingURI)
}

func TestGonumAdapters(t *testing.T) {
	wg := simple.NewWeightedUndirectedGraph(0, 0)
	wg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 2})
	wg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(1), T: simple.Node(2), W: 0.5})
	wg.AddNode(simple.Node(7))

	g, err := graphio.FromGonum(wg)
	require.NoError(t, err)
	assert.True(t, g.Weighted())
	assert.Equal(t, []string{"0", "1", "2", "7"}, g.Vertices())
	assert.Equal(t, 2.0, edgeByEnds(t, g, "0", "1").Weight)

	ug := simple.NewUndirectedGraph()
	ug.SetEdge(simple.Edge{F: simple.Node(3), T: simple.Node(4)})
	u, err := graphio.FromGonum(ug)
	require.NoError(t, err)
	assert.False(t, u.Weighted())
	assert.True(t, u.HasEdge("4", "3"))

	back, ids, err := graphio.ToGonum(g)
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), ids)
	w, ok := back.Weight(1, 2)
	assert.True(t, ok)
	assert.Equal(t, 0.5, w)
	assert.Equal(t, 4, back.Nodes().Len())

	_, _, err = graphio.ToGonum(core.NewGraph(core.WithDirected(true)))
	assert.ErrorIs(t, err, graphio.ErrUnsupportedGraph)
}
