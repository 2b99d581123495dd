package entropy_test

import (
	"testing"

	"github.com/katalvlaran/cyberank/entropy"
	"github.com/katalvlaran/cyberank/graph"
	"github.com/katalvlaran/cyberank/stake"
	"github.com/stretchr/testify/require"
)

func TestCompute_SingleNodeNoLinks(t *testing.T) {
	ds, err := graph.NewDataset(&graph.Spec{
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
	})
	require.NoError(t, err)

	totals := stake.Aggregate(ds, 1)
	h := entropy.Compute(ds, totals.TotalOut, totals.TotalIn, 1)
	require.Equal(t, []float64{0}, h)
}

func TestCompute_RingIsPointMass(t *testing.T) {
	// Scenario S2: two-node ring, single author. Each node has exactly
	// one outbound and one inbound edge from the same user: a point
	// mass distribution, entropy 0 on both sides.
	ds, err := graph.NewDataset(&graph.Spec{
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
	})
	require.NoError(t, err)

	totals := stake.Aggregate(ds, 1)
	h := entropy.Compute(ds, totals.TotalOut, totals.TotalIn, 1)
	require.InDelta(t, 0, h[0], 1e-12)
	require.InDelta(t, 0, h[1], 1e-12)
}

func TestCompute_TwoDistinctAuthorsIsPositive(t *testing.T) {
	// Node 0 has two distinct outbound targets authored by two
	// different-stake users: its out-side entropy must be positive.
	ds, err := graph.NewDataset(&graph.Spec{
		Stakes:    []uint64{1, 3},
		NumNodes:  3,
		NumEdges:  2,
		OutStart:  []uint64{0, 2, 2},
		OutCount:  []uint32{2, 0, 0},
		OutTarget: []uint64{1, 2},
		OutAuthor: []uint64{0, 1},
		InStart:   []uint64{0, 0, 1},
		InCount:   []uint32{0, 1, 1},
		InSource:  []uint64{0, 0},
		InAuthor:  []uint64{0, 1},
	})
	require.NoError(t, err)

	totals := stake.Aggregate(ds, 1)
	h := entropy.Compute(ds, totals.TotalOut, totals.TotalIn, 1)
	require.Greater(t, h[0], 0.0)
}

func TestCompute_ZeroStakeAuthorGuarded(t *testing.T) {
	ds, err := graph.NewDataset(&graph.Spec{
		Stakes:    []uint64{0, 5},
		NumNodes:  2,
		NumEdges:  2,
		OutStart:  []uint64{0, 2},
		OutCount:  []uint32{2, 0},
		OutTarget: []uint64{1, 1},
		OutAuthor: []uint64{0, 1},
		InStart:   []uint64{0, 0},
		InCount:   []uint32{0, 2},
		InSource:  []uint64{0, 0},
		InAuthor:  []uint64{0, 1},
	})
	require.NoError(t, err)

	totals := stake.Aggregate(ds, 1)
	// Must not panic/NaN despite a zero-stake author.
	h := entropy.Compute(ds, totals.TotalOut, totals.TotalIn, 1)
	for _, v := range h {
		require.False(t, v != v, "entropy must not be NaN")
	}
}
