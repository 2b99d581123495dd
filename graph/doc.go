// Package graph defines the bipartite user→link→content dataset the
// cyberank engine ranks: users carrying an integer stake, content nodes,
// and directed cyberlinks authored by a user from a source node to a
// target node.
//
// A Dataset stores links twice, in CSR form, once keyed by source
// (outbound view) and once keyed by target (inbound view). Both views
// describe the same multiset of links. NewDataset validates array sizes,
// start offsets, index ranges, and that the inbound view is sorted by
// source within each node's slice, a precondition the compression stage
// relies on; it does not check that the two views hold the same links.
//
//	ds, err := graph.NewDataset(&graph.Spec{
//		Stakes:    stakes,
//		NumNodes:  c,
//		OutStart:  outStart, OutCount: outCount, OutTarget: outTarget, OutAuthor: outAuthor,
//		InStart:   inStart, InCount: inCount, InSource: inSource, InAuthor: inAuthor,
//	})
package graph
