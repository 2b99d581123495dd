package weight_test

import (
	"testing"

	"github.com/katalvlaran/cyberank/graph"
	"github.com/katalvlaran/cyberank/stake"
	"github.com/katalvlaran/cyberank/weight"
	"github.com/stretchr/testify/require"
)

func TestCompute_Basic(t *testing.T) {
	// Scenario S4 topology: two authors (stakes 3, 7) both linking 0→1.
	ds, err := graph.NewDataset(&graph.Spec{
		Stakes:    []uint64{3, 7},
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
	w := weight.Compute(ds, totals.TotalOut, totals.TotalIn, 4)

	// oil[0] = totalOut[0] + totalIn[0] = 10 + 0 = 10.
	require.InDelta(t, 3.0/10, w[0], 1e-12)
	require.InDelta(t, 7.0/10, w[1], 1e-12)
}

func TestCompute_IsolatedNodeNoPanic(t *testing.T) {
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
	w := weight.Compute(ds, totals.TotalOut, totals.TotalIn, 1)
	require.Empty(t, w)
}
