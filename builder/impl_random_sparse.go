// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/currentflow/core"
)

// RandomSparse builds an Erdős–Rényi G(n,p) graph: each pair i<j is joined
// with probability p. Requires WithSeed/WithRand unless p is 0 or 1.
// The result may be disconnected.
// Complexity: O(n²) draws.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkRandom(MethodRandomSparse, n, p, cfg); err != nil {
			return err
		}
		ids, err := addVertices(MethodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}

		return addRandomPairs(MethodRandomSparse, g, cfg, ids, p, nil)
	}
}

// RandomConnected builds a connected random graph: a random recursive tree
// (vertex i joins a uniformly drawn vertex j < i) plus every other pair with
// probability p. Always requires WithSeed/WithRand when n > 1.
// Complexity: O(n²) draws.
func RandomConnected(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkRandom(MethodRandomConnected, n, p, cfg); err != nil {
			return err
		}
		if n > 1 && cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomConnected, ErrNeedRandSource)
		}
		ids, err := addVertices(MethodRandomConnected, g, cfg, n)
		if err != nil {
			return err
		}
		tree := make(map[[2]int]bool, n)
		for i := 1; i < n; i++ {
			j := cfg.rng.Intn(i)
			tree[[2]int{j, i}] = true
			if err = addEdge(MethodRandomConnected, g, cfg, ids[j], ids[i]); err != nil {
				return err
			}
		}

		return addRandomPairs(MethodRandomConnected, g, cfg, ids, p, tree)
	}
}

func checkRandom(method string, n int, p float64, cfg builderConfig) error {
	if n < MinRandomNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, MinRandomNodes, ErrTooFewVertices)
	}
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > MinProbability && p < MaxProbability {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

// addRandomPairs joins each pair i<j not in skip with probability p.
func addRandomPairs(method string, g *core.Graph, cfg builderConfig, ids []string, p float64, skip map[[2]int]bool) error {
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if skip[[2]int{i, j}] {
				continue
			}
			var hit bool
			switch {
			case p == MaxProbability:
				hit = true
			case p > MinProbability:
				hit = cfg.rng.Float64() < p
			}
			if !hit {
				continue
			}
			if err := addEdge(method, g, cfg, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}
