// File: types.go
// Role: Dataset type, sentinel errors, and the dual-CSR data model from
// spec §3.
package graph

import "errors"

// Sentinel errors for dataset validation. Each is returned as-is or
// wrapped with fmt.Errorf("%w: ...", ...) for positional context.
var (
	// ErrNilSpec indicates a nil Spec was passed to NewDataset.
	ErrNilSpec = errors.New("graph: spec is nil")

	// ErrSizeMismatch indicates one of the parallel CSR arrays has a
	// length inconsistent with the declared NumNodes/NumEdges.
	ErrSizeMismatch = errors.New("graph: CSR array size mismatch")

	// ErrBadPrefixSum indicates start[c]+count[c] does not land within
	// bounds, or start is not the exclusive prefix sum of count.
	ErrBadPrefixSum = errors.New("graph: start is not a valid prefix sum of count")

	// ErrIndexOutOfRange indicates an author/source/target index is
	// outside its declared domain.
	ErrIndexOutOfRange = errors.New("graph: index out of range")

	// ErrInboundUnsorted indicates a node's inbound slice is not sorted
	// by source ascending, violating invariant 3.2.
	ErrInboundUnsorted = errors.New("graph: inbound slice not sorted by source")
)

// Spec is the caller-supplied, caller-owned description of a graph
// instance: user stakes and the dual CSR adjacency of spec §3. The
// engine borrows these slices for the duration of one Run and never
// mutates them.
type Spec struct {
	// Stakes holds one non-negative stake value per user, indexed by
	// user ID u ∈ [0, len(Stakes)).
	Stakes []uint64

	// NumNodes is C, the number of content nodes.
	NumNodes int

	// NumEdges is E, the number of cyberlinks. Both CSR views must
	// describe exactly NumEdges edges.
	NumEdges int

	// Outbound view, keyed by source node.
	OutStart  []uint64
	OutCount  []uint32
	OutTarget []uint64 // target node index per edge
	OutAuthor []uint64 // author user index per edge

	// Inbound view, keyed by target node. InSource must be sorted
	// ascending within each node's slice (invariant 3.2).
	InStart  []uint64
	InCount  []uint32
	InSource []uint64 // source node index per edge
	InAuthor []uint64 // author user index per edge
}

// Dataset is the validated, immutable view of a Spec that every engine
// stage reads from. Construct with NewDataset; there is no exported
// mutator, matching the "caller owns inputs, engine borrows them"
// lifecycle of spec §3.
type Dataset struct {
	stakes []uint64

	numNodes int
	numEdges int

	outStart  []uint64
	outCount  []uint32
	outTarget []uint64
	outAuthor []uint64

	inStart  []uint64
	inCount  []uint32
	inSource []uint64
	inAuthor []uint64
}

// NumUsers returns U, the number of distinct users (len(Stakes)).
func (d *Dataset) NumUsers() int { return len(d.stakes) }

// NumNodes returns C, the number of content nodes.
func (d *Dataset) NumNodes() int { return d.numNodes }

// NumEdges returns E, the total number of cyberlinks.
func (d *Dataset) NumEdges() int { return d.numEdges }

// Stake returns the stake of user u. Panics if u is out of range; u is
// always engine-internal and pre-validated by NewDataset.
func (d *Dataset) Stake(u uint64) uint64 { return d.stakes[u] }

// OutSlice returns the half-open raw edge-index range [start, start+count)
// of node c's outbound slice.
func (d *Dataset) OutSlice(c int) (start, count uint64) {
	return d.outStart[c], uint64(d.outCount[c])
}

// OutTarget returns the target node of outbound edge e.
func (d *Dataset) OutTarget(e uint64) uint64 { return d.outTarget[e] }

// OutAuthor returns the author user of outbound edge e.
func (d *Dataset) OutAuthor(e uint64) uint64 { return d.outAuthor[e] }

// InSlice returns the half-open raw edge-index range of node c's
// inbound slice.
func (d *Dataset) InSlice(c int) (start, count uint64) {
	return d.inStart[c], uint64(d.inCount[c])
}

// InSource returns the source node of inbound edge e.
func (d *Dataset) InSource(e uint64) uint64 { return d.inSource[e] }

// InAuthor returns the author user of inbound edge e.
func (d *Dataset) InAuthor(e uint64) uint64 { return d.inAuthor[e] }
