package graph_test

import (
	"testing"

	"github.com/katalvlaran/cyberank/graph"
	"github.com/stretchr/testify/require"
)

// ringSpec builds the two-node ring from scenario S2: a single user
// authoring 0→1 and 1→0.
func ringSpec() *graph.Spec {
	return &graph.Spec{
		Stakes:    []uint64{10},
		NumNodes:  2,
		NumEdges:  2,
		OutStart:  []uint64{0, 1},
		OutCount:  []uint32{1, 1},
		OutTarget: []uint64{1, 0},
		OutAuthor: []uint64{0, 0},
		InStart:   []uint64{0, 1},
		InCount:   []uint32{1, 1},
		InSource:  []uint64{1, 0},
		InAuthor:  []uint64{0, 0},
	}
}

func TestNewDataset_Valid(t *testing.T) {
	ds, err := graph.NewDataset(ringSpec())
	require.NoError(t, err)
	require.Equal(t, 2, ds.NumNodes())
	require.Equal(t, 2, ds.NumEdges())
	require.Equal(t, 1, ds.NumUsers())
	require.Equal(t, uint64(10), ds.Stake(0))
}

func TestNewDataset_NilSpec(t *testing.T) {
	_, err := graph.NewDataset(nil)
	require.ErrorIs(t, err, graph.ErrNilSpec)
}

func TestNewDataset_SizeMismatch(t *testing.T) {
	spec := ringSpec()
	spec.OutCount = []uint32{1}
	_, err := graph.NewDataset(spec)
	require.ErrorIs(t, err, graph.ErrSizeMismatch)
}

func TestNewDataset_BadPrefixSum(t *testing.T) {
	spec := ringSpec()
	spec.OutStart[1] = 5
	_, err := graph.NewDataset(spec)
	require.ErrorIs(t, err, graph.ErrBadPrefixSum)
}

func TestNewDataset_IndexOutOfRange(t *testing.T) {
	spec := ringSpec()
	spec.OutTarget[0] = 99
	_, err := graph.NewDataset(spec)
	require.ErrorIs(t, err, graph.ErrIndexOutOfRange)

	spec = ringSpec()
	spec.OutAuthor[0] = 5 // only one user
	_, err = graph.NewDataset(spec)
	require.ErrorIs(t, err, graph.ErrIndexOutOfRange)
}

func TestNewDataset_InboundUnsorted(t *testing.T) {
	// Two raw inbound edges at node 0 with sources [1, 0]: unsorted.
	spec := &graph.Spec{
		Stakes:    []uint64{1, 1},
		NumNodes:  2,
		NumEdges:  2,
		OutStart:  []uint64{0, 2},
		OutCount:  []uint32{2, 0},
		OutTarget: []uint64{0, 0},
		OutAuthor: []uint64{0, 1},
		InStart:   []uint64{0, 2},
		InCount:   []uint32{2, 0},
		InSource:  []uint64{1, 0},
		InAuthor:  []uint64{1, 0},
	}
	_, err := graph.NewDataset(spec)
	require.ErrorIs(t, err, graph.ErrInboundUnsorted)
}

func TestNewDataset_SingleNodeNoLinks(t *testing.T) {
	// Scenario S1: U=1, C=1, E=0.
	spec := &graph.Spec{
		Stakes:    []uint64{1},
		NumNodes:  1,
		NumEdges:  0,
		OutStart:  []uint64{0},
		OutCount:  []uint32{0},
		OutTarget: []uint64{},
		OutAuthor: []uint64{},
		InStart:   []uint64{0},
		InCount:   []uint32{0},
		InSource:  []uint64{},
		InAuthor:  []uint64{},
	}
	ds, err := graph.NewDataset(spec)
	require.NoError(t, err)
	require.Equal(t, 0, ds.NumEdges())
}
