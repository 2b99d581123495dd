// Package weight implements spec §4.5: the local edge weight
// w[e] = stake[outAuthor[e]] / oil[c] for every outbound edge e of
// source node c, where oil[c] is the same combined in+out stake
// normalizer the entropy stage uses. These weights feed only the karma
// stage (§4.8); the rank solver uses the independently-computed
// compressed inbound weights of the compress package.
package weight

import (
	"github.com/katalvlaran/cyberank/graph"
	"github.com/katalvlaran/cyberank/internal/parallel"
)

// Compute returns w[e] for every edge e in ds's outbound view,
// data-parallel over source nodes (one worker per node owns the whole
// contiguous edge range, so writes into w never race).
func Compute(ds *graph.Dataset, totalOut, totalIn []uint64, workers int) []float64 {
	w := make([]float64, ds.NumEdges())

	parallel.For(ds.NumNodes(), workers, func(c int) {
		oil := float64(totalOut[c]) + float64(totalIn[c])
		if oil == 0 {
			return // every author touching c has stake 0: w[e] stays 0
		}
		start, count := ds.OutSlice(c)
		for e := start; e < start+count; e++ {
			w[e] = float64(ds.Stake(ds.OutAuthor(e))) / oil
		}
	})

	return w
}
