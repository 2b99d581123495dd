// Package stationary implements spec §4.3: the per-node stationary
// weight S[c] = α·totalInStake[c] + (1-α)·totalOutStake[c], computed as
// doubles via unsigned-to-double conversion with round-to-nearest and a
// single fused multiply-add per term.
package stationary

import (
	"math"

	"github.com/katalvlaran/cyberank/internal/parallel"
)

// Compute returns S[c] for every node, data-parallel over nodes with up
// to workers goroutines. alpha is the damping factor α ∈ (0, 1);
// callers validate that range before reaching this stage (engine's
// NumericalDegeneracy check, spec §7).
func Compute(totalOut, totalIn []uint64, alpha float64, workers int) []float64 {
	n := len(totalOut)
	s := make([]float64, n)
	beta := 1 - alpha

	parallel.For(n, workers, func(c int) {
		in := float64(totalIn[c])
		out := float64(totalOut[c])
		// math.FMA(alpha, in, beta*out): one fused product-add per
		// term, as spec.md §4.3 calls out explicitly.
		s[c] = math.FMA(alpha, in, beta*out)
	})

	return s
}
