// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/currentflow/core"
)

// CompleteBipartite builds K_{n1,n2} with sides leftPrefix+i and rightPrefix+j
// (n1, n2 ≥ 1). The ID scheme option does not apply.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ 1): %w",
				MethodCompleteBipartite, n1, n2, ErrTooFewVertices)
		}
		left := make([]string, n1)
		for i := range left {
			left[i] = cfg.leftPrefix + strconv.Itoa(i)
			if err := g.AddVertex(left[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodCompleteBipartite, left[i], err)
			}
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = cfg.rightPrefix + strconv.Itoa(j)
			if err := g.AddVertex(right[j]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodCompleteBipartite, right[j], err)
			}
		}
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(MethodCompleteBipartite, g, cfg, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
