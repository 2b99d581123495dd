// Package reach provides breadth-first reachability diagnostics over a
// graph.Dataset's outbound CSR view.
//
// It exists to support the damping-limit testable property (spec §8,
// property 8): "as dampingFactor → 1, with all nodes reachable, rank
// approaches the left eigenvector of the compressed transition
// matrix" — a precondition a test needs to assert before trusting that
// comparison. It plays no role in the engine's core pipeline; rank's
// own dangling definition (spec §4.7/GLOSSARY: inCount[c] == 0) is
// computed directly from the compressed view and never needs a BFS.
package reach
