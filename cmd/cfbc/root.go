// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/currentflow/internal/config"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log *logrus.Logger
}

// newRootCmd assembles the command tree around v. Each invocation owns its
// viper instance so tests can run commands side by side.
func newRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{v: v}

	root := &cobra.Command{
		Use:           "cfbc",
		Short:         "Current-flow betweenness centrality for undirected graphs",
		Long:          "cfbc ranks the vertices and edges of a connected undirected graph by the electrical current they carry, averaged over all source/sink pairs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .cfbc.yaml in . or $HOME)")
	pf.String("format", "", "input/output format: edgelist, toml or yaml (default: by extension)")
	pf.Bool("normalized", true, "divide scores by (n-1)(n-2)")
	pf.String("weight-key", "weight", "edge conductance key; empty treats every edge as 1")
	pf.String("solver", "lu", "inverse Laplacian backend: full, lu or cg")
	pf.String("precision", "float64", "floating point width: float64 or float32")
	pf.StringP("output", "o", config.OutputTable, "output mode: table or json")
	pf.Int("top", 0, "print only the N highest scores (0 prints all)")
	pf.Bool("largest-component", false, "score the largest connected component of a disconnected graph")
	pf.String("log-level", "warn", "logging level")
	pf.String("log-format", "text", "logging format: text, json or color")
	pf.String("neo4j-uri", "", "load the graph from Neo4j instead of a file")
	pf.String("neo4j-database", "", "Neo4j database name")
	pf.String("neo4j-username", "", "Neo4j user")
	pf.String("neo4j-password", "", "Neo4j password")
	pf.String("neo4j-label", "", "node label to load (default: all nodes)")
	pf.String("neo4j-relationship", "", "relationship type to load (default: all)")
	pf.String("neo4j-id-property", "id", "node property holding the vertex ID")
	pf.String("neo4j-weight-property", "", "relationship property holding the conductance")

	bindFlags(v, pf, map[string]string{
		"format":                "format",
		"normalized":            "normalized",
		"weight_key":            "weight-key",
		"solver":                "solver",
		"precision":             "precision",
		"output":                "output",
		"top":                   "top",
		"largest_component":     "largest-component",
		"log.level":             "log-level",
		"log.format":            "log-format",
		"neo4j.uri":             "neo4j-uri",
		"neo4j.database":        "neo4j-database",
		"neo4j.username":        "neo4j-username",
		"neo4j.password":        "neo4j-password",
		"neo4j.label":           "neo4j-label",
		"neo4j.relationship":    "neo4j-relationship",
		"neo4j.id_property":     "neo4j-id-property",
		"neo4j.weight_property": "neo4j-weight-property",
	})

	root.AddCommand(
		newNodesCmd(a),
		newEdgesCmd(a),
		newAllCmd(a),
		newGenerateCmd(a),
	)

	return root
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		// only fails on a nil flag
		_ = v.BindPFlag(key, fs.Lookup(name))
	}
}

// init reads the config file and environment, then configures logging.
func (a *app) init(cmd *cobra.Command) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return err
		}
	} else {
		a.v.SetConfigName(".cfbc")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		// no config file is fine; defaults apply
		_ = a.v.ReadInConfig()
	}
	a.v.SetEnvPrefix(config.EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = initLog(cfg.Log, cmd.ErrOrStderr())

	return err
}
