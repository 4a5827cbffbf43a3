// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/currentflow/centrality"
	"github.com/katalvlaran/currentflow/internal/config"
)

type nodeScore struct {
	Vertex string  `json:"vertex"`
	Score  float64 `json:"score"`
}

type edgeScore struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Score float64 `json:"score"`
}

// report is the printed result of one command.
type report struct {
	Nodes []nodeScore `json:"nodes,omitempty"`
	Edges []edgeScore `json:"edges,omitempty"`
}

// tieTolerance is the relative distance under which two scores print in ID order.
const tieTolerance = 1e-9

// tied reports whether a and b are equal up to solver round-off.
func tied(a, b float64) bool {
	return math.Abs(a-b) <= tieTolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// rankNodes orders scores descending, breaking ties by vertex ID, and keeps
// the first top entries when top > 0.
func rankNodes(m map[string]float64, top int) []nodeScore {
	out := make([]nodeScore, 0, len(m))
	for id, s := range m {
		out = append(out, nodeScore{Vertex: id, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if !tied(out[i].Score, out[j].Score) {
			return out[i].Score > out[j].Score
		}
		return out[i].Vertex < out[j].Vertex
	})
	if top > 0 && top < len(out) {
		out = out[:top]
	}

	return out
}

// rankEdges is rankNodes for edges; endpoints are printed in canonical order.
func rankEdges(m map[centrality.EdgeKey]float64, top int) []edgeScore {
	out := make([]edgeScore, 0, len(m))
	for k, s := range m {
		k = k.Canonical()
		out = append(out, edgeScore{From: k.From, To: k.To, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if !tied(out[i].Score, out[j].Score) {
			return out[i].Score > out[j].Score
		}
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	if top > 0 && top < len(out) {
		out = out[:top]
	}

	return out
}

func render(w io.Writer, mode string, r report) error {
	if mode == config.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	if r.Nodes != nil {
		table := tablewriter.NewWriter(w)
		table.Header("Vertex", "Betweenness")
		for _, s := range r.Nodes {
			if err := table.Append([]string{s.Vertex, formatScore(s.Score)}); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	if r.Edges != nil {
		if r.Nodes != nil {
			fmt.Fprintln(w)
		}
		table := tablewriter.NewWriter(w)
		table.Header("From", "To", "Betweenness")
		for _, s := range r.Edges {
			if err := table.Append([]string{s.From, s.To, formatScore(s.Score)}); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	return nil
}

func formatScore(x float64) string { return strconv.FormatFloat(x, 'f', 6, 64) }
