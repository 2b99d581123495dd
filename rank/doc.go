// Package rank implements spec §4.7: the damped power-method iteration
// over the compressed inbound view, producing a stationary rank
// distribution over content nodes.
//
// Notes on implementation choices (carried from spec §4.7(a)):
//
//   - The dangling-mass correction r̃ approximates dangling-rank
//     redistribution by assuming every dangling node's rank equals the
//     uniform default r0 — an intentional simplification that makes the
//     iteration fixed rather than adaptive (no per-iteration dangling
//     recomputation). Convergence holds because the perturbation is
//     contractive under damping d < 1.
//   - The inner accumulation order is implementation-defined; tests
//     must tolerate the last-ulp non-determinism any concurrent
//     reduction introduces.
//   - Termination is guaranteed for any tolerance > 0 given d < 1.
//   - The converged vector is normalized once by its own sum so that
//     Σrank == 1 up to roundoff; the fixed-rTilde approximation above
//     does not preserve that sum across iterations on its own.
//
// State machine: INIT → ITERATING → {ITERATING, CONVERGED}. There is no
// error state; the iteration itself never fails (spec §4.7).
package rank
