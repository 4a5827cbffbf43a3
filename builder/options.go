// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options. Option constructors panic on meaningless
// inputs (programmer errors); constructors themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the Edge.Weight generator used on weighted graphs. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithAttrFn attaches attribute key to every edge, drawn from fn.
// Unlike Edge.Weight, attributes are set on unweighted graphs too.
// Panics on an empty key or a nil fn.
func WithAttrFn(key string, fn WeightFn) BuilderOption {
	if key == "" || fn == nil {
		panic("builder: WithAttrFn(empty key or nil fn)")
	}

	return func(c *builderConfig) { c.attrs = append(c.attrs, attrSpec{key: key, fn: fn}) }
}

// WithPartitionPrefix sets the bipartite side labels; empty values keep the defaults.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) { c.leftPrefix, c.rightPrefix = left, right }
}
