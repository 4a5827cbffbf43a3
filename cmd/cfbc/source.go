// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/currentflow/bfs"
	"github.com/katalvlaran/currentflow/core"
	"github.com/katalvlaran/currentflow/graphio"
)

// stdinPath selects standard input as the graph source.
const stdinPath = "-"

// loadGraph reads the input graph from Neo4j when a URI is configured and
// from the file named by args[0] otherwise.
func (a *app) loadGraph(cmd *cobra.Command, args []string) (*core.Graph, error) {
	var (
		g   *core.Graph
		err error
	)
	switch {
	case a.cfg.Neo4j.URI != "":
		if len(args) > 0 {
			return nil, fmt.Errorf("both a file %q and a Neo4j URI were given", args[0])
		}
		g, err = a.loadNeo4j(cmd)
	case len(args) == 0:
		return nil, fmt.Errorf("missing input: pass a file, %q for stdin, or --neo4j-uri", stdinPath)
	case args[0] == stdinPath:
		f, ferr := a.format(graphio.FormatEdgeList)
		if ferr != nil {
			return nil, ferr
		}
		g, err = graphio.Read(cmd.InOrStdin(), f)
	default:
		// an empty format lets LoadFile infer it from the extension
		f, ferr := a.format("")
		if ferr != nil {
			return nil, ferr
		}
		g, err = graphio.LoadFile(args[0], f)
	}
	if err != nil {
		return nil, err
	}

	a.log.WithFields(logrus.Fields{
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
	}).Info("graph loaded")

	if a.cfg.LargestComponent {
		return a.largestComponent(g)
	}

	return g, nil
}

// format returns the configured --format, or fallback when none is set.
func (a *app) format(fallback graphio.Format) (graphio.Format, error) {
	if a.cfg.Format == "" {
		return fallback, nil
	}

	return graphio.ParseFormat(a.cfg.Format)
}

func (a *app) loadNeo4j(cmd *cobra.Command) (*core.Graph, error) {
	ctx := cmd.Context()
	nc := a.cfg.Neo4j
	q, err := graphio.NewNeo4jQuerier(ctx, graphio.Neo4jOptions{
		URI:      nc.URI,
		Database: nc.Database,
		Username: nc.Username,
		Password: nc.Password,
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := q.Close(ctx); cerr != nil {
			a.log.WithField("err", cerr).Warn("closing neo4j driver")
		}
	}()

	return graphio.LoadNeo4j(ctx, q, graphio.Neo4jQuery{
		Label:          nc.Label,
		Relationship:   nc.Relationship,
		IDProperty:     nc.IDProperty,
		WeightProperty: nc.WeightProperty,
	})
}

// largestComponent returns the subgraph induced by the component with the
// most vertices; the earliest such component wins ties. A connected graph
// is returned unchanged.
func (a *app) largestComponent(g *core.Graph) (*core.Graph, error) {
	comps, err := bfs.Components(g)
	if err != nil {
		return nil, err
	}
	if len(comps) <= 1 {
		return g, nil
	}

	best := 0
	for i, c := range comps {
		if len(c) > len(comps[best]) {
			best = i
		}
	}
	keep := make(map[string]bool, len(comps[best]))
	for _, id := range comps[best] {
		keep[id] = true
	}
	a.log.WithFields(logrus.Fields{
		"components": len(comps),
		"kept":       len(keep),
		"dropped":    g.VertexCount() - len(keep),
	}).Info("keeping largest component")

	return core.InducedSubgraph(g, keep), nil
}
