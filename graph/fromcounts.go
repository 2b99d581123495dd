// File: fromcounts.go
// Role: spec §4.1/§6 stage 0 — the external interface takes per-node
// counts, not start offsets; the host-driven prefix sum that derives
// outStart/inStart from outCount/inCount is the entry point's first
// piece of work, ahead of NewDataset's validation.
package graph

import "github.com/katalvlaran/cyberank/prefixsum"

// RawCounts is the caller-supplied input shape of spec §6's external
// interface: per-node counts instead of precomputed start offsets.
type RawCounts struct {
	Stakes    []uint64
	NumNodes  int
	NumEdges  int
	OutCount  []uint32
	OutTarget []uint64
	OutAuthor []uint64
	InCount   []uint32
	InSource  []uint64
	InAuthor  []uint64
}

// FromCounts runs the host-driven exclusive prefix sum over OutCount
// and InCount (spec §4.1, stage 0) and hands the resulting Spec to
// NewDataset for validation.
func FromCounts(rc *RawCounts) (*Dataset, error) {
	if rc == nil {
		return nil, ErrNilSpec
	}

	outStart, _ := prefixsum.Sum(rc.OutCount)
	inStart, _ := prefixsum.Sum(rc.InCount)

	return NewDataset(&Spec{
		Stakes:    rc.Stakes,
		NumNodes:  rc.NumNodes,
		NumEdges:  rc.NumEdges,
		OutStart:  outStart,
		OutCount:  rc.OutCount,
		OutTarget: rc.OutTarget,
		OutAuthor: rc.OutAuthor,
		InStart:   inStart,
		InCount:   rc.InCount,
		InSource:  rc.InSource,
		InAuthor:  rc.InAuthor,
	})
}
