// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/currentflow/centrality"
	"github.com/katalvlaran/currentflow/internal/config"
)

func TestRankNodes(t *testing.T) {
	got := rankNodes(map[string]float64{"d": 0, "b": 2, "a": 0, "c": 2}, 0)
	assert.Equal(t, []nodeScore{{"b", 2}, {"c", 2}, {"a", 0}, {"d", 0}}, got)

	assert.Len(t, rankNodes(map[string]float64{"a": 1, "b": 2}, 1), 1)
	assert.Len(t, rankNodes(map[string]float64{"a": 1, "b": 2}, 5), 2)
	assert.Empty(t, rankNodes(nil, 0))
}

func TestRankEdges_Canonical(t *testing.T) {
	got := rankEdges(map[centrality.EdgeKey]float64{
		{From: "c", To: "b"}: 1,
		{From: "a", To: "b"}: 1,
		{From: "d", To: "c"}: 3,
	}, 0)
	assert.Equal(t, []edgeScore{{"c", "d", 3}, {"a", "b", 1}, {"b", "c", 1}}, got)
}

func TestRender_JSONOmitsEmptySection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, config.OutputJSON, report{Nodes: []nodeScore{{"a", 0.25}}}))
	assert.JSONEq(t, `{"nodes":[{"vertex":"a","score":0.25}]}`, buf.String())
}

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, config.OutputTable, report{
		Nodes: []nodeScore{{"hub", 1}},
		Edges: []edgeScore{{"hub", "leaf", 0.5}},
	}))
	out := buf.String()
	assert.Contains(t, out, "hub")
	assert.Contains(t, out, "leaf")
	assert.Contains(t, out, "1.000000")
	assert.Contains(t, out, "0.500000")
}

func TestInitLog(t *testing.T) {
	var buf bytes.Buffer
	l, err := initLog(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)
	l.WithField("k", 1).Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	l, err = initLog(config.LogConfig{Level: "debug", Format: "color"}, &buf)
	require.NoError(t, err)
	assert.True(t, l.Formatter.(*logrus.TextFormatter).ForceColors)

	_, err = initLog(config.LogConfig{Level: "loud", Format: "text"}, &buf)
	assert.Error(t, err)
	_, err = initLog(config.LogConfig{Level: "info", Format: "xml"}, &buf)
	assert.Error(t, err)
}

func TestRank_NearTiesOrderByID(t *testing.T) {
	// equal in exact arithmetic, apart in the last bits
	hi, lo := 2.0, 2.0-4e-15
	for _, m := range []map[string]float64{
		{"a": 0, "b": hi, "c": lo, "d": 0},
		{"a": 0, "b": lo, "c": hi, "d": 0},
	} {
		got := rankNodes(m, 0)
		assert.Equal(t, []string{"b", "c", "a", "d"},
			[]string{got[0].Vertex, got[1].Vertex, got[2].Vertex, got[3].Vertex})
	}

	x, y := 0.5, 0.5+1e-16
	for _, m := range []map[centrality.EdgeKey]float64{
		{{From: "b", To: "a"}: x, {From: "d", To: "c"}: y, {From: "c", To: "b"}: 2.0 / 3},
		{{From: "a", To: "b"}: y, {From: "c", To: "d"}: x, {From: "b", To: "c"}: 2.0 / 3},
	} {
		got := rankEdges(m, 0)
		require.Len(t, got, 3)
		assert.Equal(t, [][2]string{{"b", "c"}, {"a", "b"}, {"c", "d"}},
			[][2]string{{got[0].From, got[0].To}, {got[1].From, got[1].To}, {got[2].From, got[2].To}})
	}

	// distinct scores still sort by value
	got := rankNodes(map[string]float64{"a": 1, "z": 1.001}, 0)
	assert.Equal(t, "z", got[0].Vertex)
}

func TestTied(t *testing.T) {
	assert.True(t, tied(2, 2-4e-15))
	assert.True(t, tied(0, 1e-12))
	assert.True(t, tied(1e6, 1e6+1e-4))
	assert.False(t, tied(1, 1+1e-6))
	assert.False(t, tied(0, 1e-6))
}
