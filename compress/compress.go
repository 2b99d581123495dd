// Package compress implements spec §4.6: coalescing the raw inbound
// multigraph (possibly many authors linking the same source to the
// same target) into one weighted CompressedInLink per (target, source)
// pair, suitable for a single-matrix power iteration.
//
// The algorithm exploits invariant 3.2 (inbound edges sorted by source
// within each target's slice): a run of equal-source edges is a
// contiguous range, so run detection is a single linear scan rather
// than a sort or a hash-based grouping — the same count→allocate→fill
// discipline lvlath/matrix's dense builders use for multi-pass
// construction.
package compress

import (
	"github.com/katalvlaran/cyberank/graph"
	"github.com/katalvlaran/cyberank/internal/parallel"
	"github.com/katalvlaran/cyberank/prefixsum"
)

// Link is a CompressedInLink: for a given (implicit) target node, the
// aggregated contribution of all raw inbound edges sharing FromIndex,
// normalized by the source's total outbound stake.
type Link struct {
	FromIndex uint64
	Weight    float64
}

// View is the compressed inbound adjacency: compStart[c]/compCount[c]
// index into Links the same way the raw CSR views index into edges.
type View struct {
	Start []uint64
	Count []uint32
	Links []Link
}

// Slice returns node c's compressed inbound entries.
func (v View) Slice(c int) []Link {
	start := v.Start[c]
	count := uint64(v.Count[c])
	return v.Links[start : start+count]
}

// Build runs the three-pass compression of spec §4.6: a data-parallel
// count pass, a host prefix sum, and a data-parallel emit pass.
// totalOut is the per-node total outbound stake from the stake package,
// indexed by source node — weight(k) = σ / totalOut[source(k)].
func Build(ds *graph.Dataset, totalOut []uint64, workers int) View {
	n := ds.NumNodes()

	// Pass 1: count distinct source-runs per target node.
	compCount := make([]uint32, n)
	parallel.For(n, workers, func(c int) {
		compCount[c] = uint32(countRuns(ds, c))
	})

	// Pass 2: host prefix sum sizes the compressed buffer.
	compStart, total := prefixsum.Sum(compCount)
	links := make([]Link, total)

	// Pass 3: emit one aggregated Link per run.
	parallel.For(n, workers, func(c int) {
		emitRuns(ds, c, totalOut, links[compStart[c]:compStart[c]+uint64(compCount[c])])
	})

	return View{Start: compStart, Count: compCount, Links: links}
}

// countRuns counts the number of distinct-source runs in node c's raw
// inbound slice (spec §4.6 step 1): inCount==0 → 0, and a new run
// starts whenever inSource[j] != inSource[j-1] or at the slice start.
func countRuns(ds *graph.Dataset, c int) int {
	start, count := ds.InSlice(c)
	if count == 0 {
		return 0
	}
	runs := 1
	for j := start + 1; j < start+count; j++ {
		if ds.InSource(j) != ds.InSource(j-1) {
			runs++
		}
	}
	return runs
}

// emitRuns walks node c's raw inbound slice a second time, aggregating
// each run of equal-source edges into the next slot of out (step 3).
func emitRuns(ds *graph.Dataset, c int, totalOut []uint64, out []Link) {
	start, count := ds.InSlice(c)
	if count == 0 {
		return
	}

	k := 0
	runStart := start
	flush := func(runEnd uint64) {
		source := ds.InSource(runStart)
		var sigma uint64
		for j := runStart; j < runEnd; j++ {
			sigma += ds.Stake(ds.InAuthor(j))
		}
		var w float64
		if totalOut[source] != 0 {
			w = float64(sigma) / float64(totalOut[source])
		}
		out[k] = Link{FromIndex: source, Weight: w}
		k++
	}

	for j := start + 1; j < start+count; j++ {
		if ds.InSource(j) != ds.InSource(j-1) {
			flush(j)
			runStart = j
		}
	}
	flush(start + count)
}
