// Package karma implements spec §4.8: light (the elementwise product of
// rank and entropy) and per-user karma attribution.
//
// karma[u] = Σ_{e : outAuthor[e]=u} light[source(e)] · w[e], scattered
// over outbound edges. Many edges may share an author, so the
// accumulation target is written by more than one worker — the sole
// stage in the engine with that property (spec §5 shared-resource
// policy) — and therefore needs atomic accumulation. float64 has no
// native atomic add in the standard library, so Accumulate uses a
// compare-and-swap loop over the bit pattern, the same idiom
// core/methods.go uses for its atomic ID counter, generalized from an
// integer increment to a float read-add-CAS retry.
package karma
