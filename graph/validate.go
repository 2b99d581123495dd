// File: validate.go
// Role: NewDataset constructor — validates spec §3 invariants before the
// engine ever sees the data, so that every later stage can assume a
// consistent graph.
package graph

import "fmt"

// NewDataset validates spec and, on success, wraps it in a Dataset ready
// for engine.Run. Validation order:
//
//  1. spec non-nil.
//  2. Outbound/inbound array lengths agree with NumNodes/NumEdges.
//  3. OutStart/InStart are the exclusive prefix sum of OutCount/InCount
//     and every slice stays within [0, NumEdges].
//  4. Every author/source/target index is within its domain
//     (0 ≤ author < U, 0 ≤ source,target < C).
//  5. Each node's inbound slice is sorted by source ascending
//     (invariant 3.2, required by the compress stage).
//
// Complexity: O(U + C + E).
func NewDataset(spec *Spec) (*Dataset, error) {
	if spec == nil {
		return nil, ErrNilSpec
	}

	if err := checkSizes(spec); err != nil {
		return nil, err
	}
	if err := checkPrefixSum("out", spec.OutStart, spec.OutCount, uint64(spec.NumEdges)); err != nil {
		return nil, err
	}
	if err := checkPrefixSum("in", spec.InStart, spec.InCount, uint64(spec.NumEdges)); err != nil {
		return nil, err
	}
	numUsers := uint64(len(spec.Stakes))
	numNodes := uint64(spec.NumNodes)
	if err := checkIndexRange("outAuthor", spec.OutAuthor, numUsers); err != nil {
		return nil, err
	}
	if err := checkIndexRange("outTarget", spec.OutTarget, numNodes); err != nil {
		return nil, err
	}
	if err := checkIndexRange("inAuthor", spec.InAuthor, numUsers); err != nil {
		return nil, err
	}
	if err := checkIndexRange("inSource", spec.InSource, numNodes); err != nil {
		return nil, err
	}
	if err := checkInboundSorted(spec); err != nil {
		return nil, err
	}

	return &Dataset{
		stakes:    spec.Stakes,
		numNodes:  spec.NumNodes,
		numEdges:  spec.NumEdges,
		outStart:  spec.OutStart,
		outCount:  spec.OutCount,
		outTarget: spec.OutTarget,
		outAuthor: spec.OutAuthor,
		inStart:   spec.InStart,
		inCount:   spec.InCount,
		inSource:  spec.InSource,
		inAuthor:  spec.InAuthor,
	}, nil
}

// checkSizes verifies every parallel array has the length the declared
// NumNodes/NumEdges demand.
func checkSizes(spec *Spec) error {
	if len(spec.OutStart) != spec.NumNodes || len(spec.OutCount) != spec.NumNodes {
		return fmt.Errorf("%w: outbound start/count length != NumNodes", ErrSizeMismatch)
	}
	if len(spec.InStart) != spec.NumNodes || len(spec.InCount) != spec.NumNodes {
		return fmt.Errorf("%w: inbound start/count length != NumNodes", ErrSizeMismatch)
	}
	if len(spec.OutTarget) != spec.NumEdges || len(spec.OutAuthor) != spec.NumEdges {
		return fmt.Errorf("%w: outbound edge arrays length != NumEdges", ErrSizeMismatch)
	}
	if len(spec.InSource) != spec.NumEdges || len(spec.InAuthor) != spec.NumEdges {
		return fmt.Errorf("%w: inbound edge arrays length != NumEdges", ErrSizeMismatch)
	}
	return nil
}

// checkPrefixSum verifies start is the exclusive prefix sum of count and
// that start[c]+count[c] never exceeds numEdges (invariant 3.1).
func checkPrefixSum(view string, start []uint64, count []uint32, numEdges uint64) error {
	var running uint64
	for c, cnt := range count {
		if start[c] != running {
			return fmt.Errorf("%w: %s view, node %d: start=%d want=%d", ErrBadPrefixSum, view, c, start[c], running)
		}
		running += uint64(cnt)
		if running > numEdges {
			return fmt.Errorf("%w: %s view, node %d: start+count exceeds E=%d", ErrBadPrefixSum, view, c, numEdges)
		}
	}
	return nil
}

// checkIndexRange verifies every value in idx lies in [0, domain)
// (invariant 3.3).
func checkIndexRange(name string, idx []uint64, domain uint64) error {
	for i, v := range idx {
		if v >= domain {
			return fmt.Errorf("%w: %s[%d]=%d, domain=[0,%d)", ErrIndexOutOfRange, name, i, v, domain)
		}
	}
	return nil
}

// checkInboundSorted verifies invariant 3.2: within a single target
// node's inbound slice, InSource is sorted ascending.
func checkInboundSorted(spec *Spec) error {
	for c := 0; c < spec.NumNodes; c++ {
		start, count := spec.InStart[c], uint64(spec.InCount[c])
		for i := uint64(1); i < count; i++ {
			prev := spec.InSource[start+i-1]
			cur := spec.InSource[start+i]
			if cur < prev {
				return fmt.Errorf("%w: node %d, position %d (source %d after %d)", ErrInboundUnsorted, c, i, cur, prev)
			}
		}
	}
	return nil
}
