// File: stake.go
// Role: spec §4.2 per-node stake aggregation over the outbound and
// inbound CSR views.
package stake

import (
	"github.com/katalvlaran/cyberank/graph"
	"github.com/katalvlaran/cyberank/internal/parallel"
)

// Totals holds the two per-node aggregates consumed by every later
// stage: TotalOut[c] feeds stationary/compress/weight, TotalIn[c] feeds
// stationary/entropy.
type Totals struct {
	TotalOut []uint64
	TotalIn  []uint64
}

// Aggregate computes TotalOut and TotalIn for every node in ds,
// data-parallel over nodes with up to workers goroutines. The same
// kernel body (sum stake[author(e)] over a slice) runs once for the
// outbound view and once for the inbound view. The caller's stake
// bound (U·max(stake) < 2⁶⁴, spec §4.2) guarantees the 64-bit
// accumulation below never overflows.
func Aggregate(ds *graph.Dataset, workers int) Totals {
	n := ds.NumNodes()
	t := Totals{
		TotalOut: make([]uint64, n),
		TotalIn:  make([]uint64, n),
	}

	parallel.For(n, workers, func(c int) {
		start, count := ds.OutSlice(c)
		t.TotalOut[c] = sumAuthors(ds, start, count, ds.OutAuthor)
	})
	parallel.For(n, workers, func(c int) {
		start, count := ds.InSlice(c)
		t.TotalIn[c] = sumAuthors(ds, start, count, ds.InAuthor)
	})

	return t
}

// sumAuthors sums stake[author(e)] for raw edge indices in
// [start, start+count), where author resolves an edge index to its
// author's user index. One worker iterates the whole slice serially.
func sumAuthors(ds *graph.Dataset, start, count uint64, author func(uint64) uint64) uint64 {
	var total uint64
	for e := start; e < start+count; e++ {
		total += ds.Stake(author(e))
	}
	return total
}
