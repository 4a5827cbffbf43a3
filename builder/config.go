// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// attrSpec attaches a named edge attribute drawn from fn.
type attrSpec struct {
	key string
	fn  WeightFn
}

// builderConfig is the resolved, immutable configuration of one BuildGraph call.
type builderConfig struct {
	// idFn maps a vertex index to its ID.
	idFn IDFn
	// rng drives stochastic choices; nil means no randomness.
	rng *rand.Rand
	// weightFn draws Edge.Weight; used only on weighted graphs.
	weightFn WeightFn
	// attrs are drawn for every edge, in registration order.
	attrs []attrSpec
	// bipartite side prefixes
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig applies opts over the defaults (decimal IDs, no RNG,
// constant weight 1). Last option wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
