package karma

import (
	"math"
	"sync/atomic"
	"unsafe"

	"github.com/katalvlaran/cyberank/graph"
	"github.com/katalvlaran/cyberank/internal/parallel"
	"github.com/katalvlaran/cyberank/numeric"
)

// Light computes light[c] = rank[c] * entropy[c] (spec §4.8).
func Light(rank, entropy []float64) []float64 {
	return numeric.Hadamard(rank, entropy)
}

// Accumulate scatters light[source(e)]*w[e] into karma[outAuthor[e]]
// for every outbound edge, data-parallel over source nodes. Because
// distinct nodes may share an author, the target slot is written
// concurrently; accumulation goes through a CAS loop on the bit
// pattern (addFloat64) rather than a per-user mutex.
func Accumulate(ds *graph.Dataset, light, w []float64, workers int) []float64 {
	karma := make([]float64, ds.NumUsers())

	parallel.For(ds.NumNodes(), workers, func(c int) {
		start, count := ds.OutSlice(c)
		contribution := light[c]
		if contribution == 0 {
			return
		}
		for e := start; e < start+count; e++ {
			u := ds.OutAuthor(e)
			addFloat64(&karma[u], contribution*w[e])
		}
	})

	return karma
}

// addFloat64 atomically adds delta to *addr via a compare-and-swap
// retry loop over the IEEE-754 bit pattern (float64 has no native
// atomic add).
func addFloat64(addr *float64, delta float64) {
	bits := (*uint64)(unsafe.Pointer(addr))
	for {
		old := atomic.LoadUint64(bits)
		newVal := math.Float64frombits(old) + delta
		if atomic.CompareAndSwapUint64(bits, old, math.Float64bits(newVal)) {
			return
		}
	}
}
