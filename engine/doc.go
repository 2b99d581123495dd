// Package engine orchestrates the nine-stage pipeline of spec §2 over
// an already-validated graph.Dataset: stake aggregation (§4.2),
// stationary weight (§4.3, scratch only, not returned), entropy
// (§4.4), local edge weight (§4.5), inbound compression (§4.6), the
// power-method rank solver (§4.7), and light/karma (§4.8).
//
// Stage 0 (the host-driven prefix sum deriving CSR start offsets from
// caller-supplied counts) lives in graph.FromCounts, one layer below
// Run, since it is a property of how a Dataset gets built rather than
// of the numerical pipeline itself.
//
// Run stays silent by default; pass WithLogger to get per-stage
// timing and shape diagnostics via log/slog. Logging never gates
// control flow — every branch Run can take is identical with or
// without a logger attached.
package engine
