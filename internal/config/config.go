// SPDX-License-Identifier: MIT

// Package config resolves cfbc settings from defaults, a config file,
// CFBC_* environment variables and command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/katalvlaran/currentflow/graphio"
	"github.com/katalvlaran/currentflow/matrix"
)

// EnvPrefix prefixes environment overrides, e.g. CFBC_SOLVER=cg.
const EnvPrefix = "CFBC"

// Output modes.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// LogConfig configures handling of log events.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Neo4jConfig selects a Neo4j source instead of a file.
type Neo4jConfig struct {
	URI            string `mapstructure:"uri"`
	Database       string `mapstructure:"database"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	Label          string `mapstructure:"label"`
	Relationship   string `mapstructure:"relationship"`
	IDProperty     string `mapstructure:"id_property"`
	WeightProperty string `mapstructure:"weight_property"`
}

// Config holds the runtime configuration of one cfbc invocation.
type Config struct {
	Format           string      `mapstructure:"format"`
	Normalized       bool        `mapstructure:"normalized"`
	WeightKey        string      `mapstructure:"weight_key"`
	Solver           string      `mapstructure:"solver"`
	Precision        string      `mapstructure:"precision"`
	Output           string      `mapstructure:"output"`
	Top              int         `mapstructure:"top"`
	LargestComponent bool        `mapstructure:"largest_component"`
	Log              LogConfig   `mapstructure:"log"`
	Neo4j            Neo4jConfig `mapstructure:"neo4j"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("format", "")
	v.SetDefault("normalized", true)
	v.SetDefault("weight_key", "weight")
	v.SetDefault("solver", string(matrix.SolverLU))
	v.SetDefault("precision", matrix.Float64.String())
	v.SetDefault("output", OutputTable)
	v.SetDefault("top", 0)
	v.SetDefault("largest_component", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("neo4j.id_property", "id")
}

// Load applies the defaults, unmarshals v and validates the result.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if c.Format != "" {
		if _, err := graphio.ParseFormat(c.Format); err != nil {
			return fmt.Errorf("config: format: %w", err)
		}
	}
	if _, err := matrix.ParseSolverKind(c.Solver); err != nil {
		return fmt.Errorf("config: solver: %w", err)
	}
	if _, err := matrix.ParsePrecision(c.Precision); err != nil {
		return fmt.Errorf("config: precision: %w", err)
	}
	switch strings.ToLower(c.Output) {
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("config: output %q: want %s or %s", c.Output, OutputTable, OutputJSON)
	}
	if c.Top < 0 {
		return fmt.Errorf("config: top must be >= 0, got %d", c.Top)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	switch c.Log.Format {
	case "text", "json", "color":
	default:
		return fmt.Errorf("config: log format %q: want text, json or color", c.Log.Format)
	}

	return nil
}
