// Package prefixsum implements the host-driven exclusive prefix sum of
// spec §4.1: given per-node link counts, produce CSR start offsets and
// the total edge count. It is deliberately sequential — the dependence
// chain between successive offsets does not amortize across goroutines
// for the node counts this engine targets, so a single pass over a
// single core is both simplest and fastest.
package prefixsum

// Sum computes the exclusive prefix sum of counts: start[0] = 0 and
// start[c] = start[c-1] + counts[c-1] for c > 0. The accumulator is
// 64-bit; the caller guarantees the running total fits (spec §4.1).
//
// Returns the prefix-sum slice and the grand total Σcounts.
func Sum(counts []uint32) (start []uint64, total uint64) {
	start = make([]uint64, len(counts))
	var running uint64
	for c, cnt := range counts {
		start[c] = running
		running += uint64(cnt)
	}
	return start, running
}
