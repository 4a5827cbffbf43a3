// SPDX-License-Identifier: MIT

package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/currentflow/centrality"
	"github.com/katalvlaran/currentflow/matrix"
)

func newNodesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "nodes [file|-]",
		Short: "Score every vertex",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.compute(cmd, args, true, false)
		},
	}
}

func newEdgesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edges [file|-]",
		Short: "Score every edge",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.compute(cmd, args, false, true)
		},
	}
}

func newAllCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all [file|-]",
		Short: "Score vertices and edges concurrently",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.compute(cmd, args, true, true)
		},
	}
}

// compute loads the graph once and runs the requested passes, each on its
// own goroutine.
func (a *app) compute(cmd *cobra.Command, args []string, nodes, edges bool) error {
	g, err := a.loadGraph(cmd, args)
	if err != nil {
		return err
	}

	var (
		rep report
		eg  errgroup.Group
	)
	if nodes {
		opts, err := a.options(a.log.WithField("pass", "nodes"))
		if err != nil {
			return err
		}
		eg.Go(func() error {
			scores, err := centrality.CurrentFlowBetweenness(g, opts...)
			if err != nil {
				return err
			}
			rep.Nodes = rankNodes(scores, a.cfg.Top)

			return nil
		})
	}
	if edges {
		opts, err := a.options(a.log.WithField("pass", "edges"))
		if err != nil {
			return err
		}
		eg.Go(func() error {
			scores, err := centrality.EdgeCurrentFlowBetweenness(g, opts...)
			if err != nil {
				return err
			}
			rep.Edges = rankEdges(scores, a.cfg.Top)

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), a.cfg.Output, rep)
}

// options translates the resolved configuration into centrality options.
func (a *app) options(log logrus.FieldLogger) ([]centrality.Option, error) {
	solver, err := matrix.ParseSolverKind(a.cfg.Solver)
	if err != nil {
		return nil, err
	}
	prec, err := matrix.ParsePrecision(a.cfg.Precision)
	if err != nil {
		return nil, err
	}

	return []centrality.Option{
		centrality.WithNormalized(a.cfg.Normalized),
		centrality.WithWeightKey(a.cfg.WeightKey),
		centrality.WithSolver(solver),
		centrality.WithPrecision(prec),
		centrality.WithLogger(log),
	}, nil
}
