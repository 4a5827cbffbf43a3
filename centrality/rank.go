// SPDX-License-Identifier: MIT

package centrality

import "sort"

// ranker computes descending ranks of a flow row with reusable buffers.
type ranker struct {
	idx []int
	pos []int
	row []float64
}

func newRanker(n int) *ranker {
	return &ranker{idx: make([]int, n), pos: make([]int, n)}
}

func (r *ranker) Len() int           { return len(r.idx) }
func (r *ranker) Less(i, j int) bool { return r.row[r.idx[i]] < r.row[r.idx[j]] }
func (r *ranker) Swap(i, j int)      { r.idx[i], r.idx[j] = r.idx[j], r.idx[i] }

// rank fills pos[i] with the rank of vertex i when row is sorted descending,
// starting at base (0 for the node pass, 1 for the edge pass). Equal values
// keep their stable ascending order before reversal, so the larger index ranks first.
//
// Complexity: O(N log N).
func (r *ranker) rank(row []float64, base int) []int {
	for i := range r.idx {
		r.idx[i] = i
	}
	r.row = row
	sort.Stable(r)
	r.row = nil
	last := len(r.idx) - 1
	for k, v := range r.idx {
		r.pos[v] = last - k + base
	}

	return r.pos
}
