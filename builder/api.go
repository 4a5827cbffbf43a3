// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: BuildGraph orchestrator, the Constructor type and name-based lookup.

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/currentflow/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with gopts, resolves the builder
// configuration from bopts and applies all constructors in order.
// Constructor errors are wrapped with "BuildGraph: %w"; no cleanup is attempted.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Methods lists the names accepted by ByName, in display order.
func Methods() []string {
	return []string{MethodPath, MethodCycle, MethodStar, MethodWheel, MethodComplete,
		MethodCompleteBipartite, MethodGrid, MethodRandomSparse, MethodRandomConnected}
}

// ByName resolves a case-insensitive method name into a Constructor.
// size is the vertex count (the side length for Grid and CompleteBipartite);
// p is the edge probability of the random families and is ignored otherwise.
//
// Errors: ErrUnknownMethod.
func ByName(method string, size int, p float64) (Constructor, error) {
	switch strings.ToLower(method) {
	case strings.ToLower(MethodPath):
		return Path(size), nil
	case strings.ToLower(MethodCycle):
		return Cycle(size), nil
	case strings.ToLower(MethodStar):
		return Star(size), nil
	case strings.ToLower(MethodWheel):
		return Wheel(size), nil
	case strings.ToLower(MethodComplete):
		return Complete(size), nil
	case strings.ToLower(MethodCompleteBipartite):
		return CompleteBipartite(size, size), nil
	case strings.ToLower(MethodGrid):
		return Grid(size, size), nil
	case strings.ToLower(MethodRandomSparse):
		return RandomSparse(size, p), nil
	case strings.ToLower(MethodRandomConnected):
		return RandomConnected(size, p), nil
	}

	return nil, fmt.Errorf("ByName: %q: %w", method, ErrUnknownMethod)
}

// addEdge inserts u–v with the configured weight and attributes.
// On directed graphs the reverse edge is added too.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v string) error {
	var w float64
	if g.Weighted() {
		w = cfg.weightFn(cfg.rng)
	}
	var opts []core.EdgeOption
	for _, a := range cfg.attrs {
		opts = append(opts, core.WithEdgeAttr(a.key, a.fn(cfg.rng)))
	}
	if _, err := g.AddEdge(u, v, w, opts...); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	if g.Directed() {
		if _, err := g.AddEdge(v, u, w, opts...); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, v, u, w, err)
		}
	}

	return nil
}

// addVertices inserts cfg.idFn(0..n-1) and returns the IDs.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}
