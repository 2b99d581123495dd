// Package stake implements spec §4.2: per-node aggregation of the total
// stake authoring a node's outbound (or inbound) edges.
//
// The same kernel body runs for both CSR views; only the slice/author
// accessors differ. Each node's slice is summed by exactly one worker,
// so there is no write-conflict and no need for atomics — only the
// work-distribution across nodes is concurrent.
package stake
