// Package fixtures provides deterministic, named graph.Dataset
// constructors for the literal end-to-end scenarios of spec §8
// (S1-S4 and S6; there is no S5 constructor), the way builder/impl_letters.go and friends expose
// named, deterministic topology constructors instead of requiring
// every caller to hand-assemble a graph. Unlike the teacher's
// Constructor closures applied to a mutable core.Graph, a Dataset's
// CSR layout is fixed size and fully known up front, so each fixture
// here is a direct literal construction rather than an incremental
// builder pipeline.
package fixtures
