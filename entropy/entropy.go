// Package entropy implements spec §4.4: the per-node entropy field,
// the sum of an out-side and an in-side term, both normalized by the
// same combined stake total oil[c] = totalOutStake[c] + totalInStake[c].
//
// This shared-normalizer choice is intentional (spec §9 open question):
// it centers both sides on the node being measured rather than giving
// each side its own marginal, so the two terms are not independent
// Shannon entropies of a single distribution — replicated here exactly
// as specified; light and karma downstream are unaffected either way.
package entropy

import (
	"math"

	"github.com/katalvlaran/cyberank/graph"
	"github.com/katalvlaran/cyberank/internal/parallel"
)

// Compute returns entropy[c] for every node in ds, given the stake
// totals from the stake package, data-parallel over nodes.
//
// Edge cases (spec §4.4):
//   - oil[c] == 0 (no in or out edges, or only zero-stake authors on
//     them): entropy 0.
//   - an edge whose author has stake 0 contributes 0 (log2(0) guarded).
func Compute(ds *graph.Dataset, totalOut, totalIn []uint64, workers int) []float64 {
	n := ds.NumNodes()
	h := make([]float64, n)

	parallel.For(n, workers, func(c int) {
		oil := float64(totalOut[c]) + float64(totalIn[c])
		if oil == 0 {
			h[c] = 0
			return
		}

		start, count := ds.OutSlice(c)
		hOut := sideEntropy(ds, start, count, ds.OutAuthor, oil)

		start, count = ds.InSlice(c)
		hIn := sideEntropy(ds, start, count, ds.InAuthor, oil)

		h[c] = hOut + hIn
	})

	return h
}

// sideEntropy computes -Σ p·log2(p) over one side's slice, where
// p = stake[author(e)] / oil. Terms with p == 0 (zero-stake author)
// contribute 0; log2(0) is never evaluated.
func sideEntropy(ds *graph.Dataset, start, count uint64, author func(uint64) uint64, oil float64) float64 {
	var h float64
	for e := start; e < start+count; e++ {
		p := float64(ds.Stake(author(e))) / oil
		if p == 0 {
			continue
		}
		h -= p * math.Log2(p)
	}
	return h
}
