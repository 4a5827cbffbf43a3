// SPDX-License-Identifier: MIT
// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/currentflow/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	const num = 200
	var wg sync.WaitGroup
	errs := make(chan error, num)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id), float64(id+1))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.NeighborIDs("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentAddRemoveEdge mixes AddEdge and RemoveEdge calls
// to verify no races or panics occur under concurrent modification.
func TestConcurrentAddRemoveEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	require.NoError(t, g.AddVertex("Base"))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = g.AddEdge("Base", fmt.Sprintf("V%d", id), float64(id))
		}(i)
		go func() {
			defer wg.Done()
			for _, e := range g.Edges() {
				_ = g.RemoveEdge(e.ID)
			}
		}()
	}
	wg.Wait()
	require.True(t, g.HasVertex("Base"))
}

// TestConcurrentReadersAndClone validates concurrent reads, degree queries,
// induced subgraphs and clones do not race with each other.
func TestConcurrentReadersAndClone(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < 50; i++ {
		_, err := g.AddEdge("A", fmt.Sprintf("L%02d", i), float64(i+1))
		require.NoError(t, err)
	}
	keep := map[string]bool{"A": true, "L00": true}

	const readers, cloners = 50, 20
	var wg sync.WaitGroup
	degrees := make(chan int, readers)
	wg.Add(readers + cloners)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			d, _ := g.Degree("A")
			degrees <- d
		}()
	}
	for i := 0; i < cloners; i++ {
		go func() {
			defer wg.Done()
			_ = g.Clone()
			_ = core.InducedSubgraph(g, keep)
		}()
	}
	wg.Wait()
	close(degrees)
	for d := range degrees {
		require.Equal(t, 50, d)
	}
}
