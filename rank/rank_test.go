package rank_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cyberank/compress"
	"github.com/katalvlaran/cyberank/graph"
	"github.com/katalvlaran/cyberank/rank"
	"github.com/katalvlaran/cyberank/stake"
	"github.com/stretchr/testify/require"
)

// ringDataset builds scenario S2: two nodes, a single mutual link
// authored by one user, stake 10.
func ringDataset(t *testing.T) *graph.Dataset {
	t.Helper()
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
	return ds
}

// starDataset builds a two-edge variant of scenario S3: a hub node (1)
// with two dangling spokes (0 and 2) feeding it, each edge authored by
// the same user with stake 10.
func starDataset(t *testing.T) *graph.Dataset {
	t.Helper()
	ds, err := graph.NewDataset(&graph.Spec{
		Stakes:    []uint64{10},
		NumNodes:  3,
		NumEdges:  2,
		OutStart:  []uint64{0, 1, 1},
		OutCount:  []uint32{1, 0, 1},
		OutTarget: []uint64{1, 1},
		OutAuthor: []uint64{0, 0},
		InStart:   []uint64{0, 0, 2},
		InCount:   []uint32{0, 2, 0},
		InSource:  []uint64{0, 2},
		InAuthor:  []uint64{0, 0},
	})
	require.NoError(t, err)
	return ds
}

// singleNodeDataset builds scenario S1: one isolated node, no links.
func singleNodeDataset(t *testing.T) *graph.Dataset {
	t.Helper()
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
	return ds
}

func compressedView(t *testing.T, ds *graph.Dataset) compress.View {
	t.Helper()
	totals := stake.Aggregate(ds, 1)
	return compress.Build(ds, totals.TotalOut, 1)
}

func TestSolve_SingleNodeNoLinks(t *testing.T) {
	ds := singleNodeDataset(t)
	view := compressedView(t, ds)

	result, err := rank.Solve(ds.NumNodes(), view,
		rank.WithDampingFactor(0.5),
		rank.WithTolerance(1e-9),
	)
	require.NoError(t, err)
	require.Len(t, result.Rank, 1)
	require.InDelta(t, 1.0, result.Rank[0], 1e-9)
}

func TestSolve_RingConvergesToUniform(t *testing.T) {
	ds := ringDataset(t)
	view := compressedView(t, ds)

	result, err := rank.Solve(ds.NumNodes(), view,
		rank.WithDampingFactor(0.85),
		rank.WithTolerance(1e-9),
	)
	require.NoError(t, err)
	require.Equal(t, rank.StateConverged, result.State)
	require.InDelta(t, 0.5, result.Rank[0], 1e-6)
	require.InDelta(t, 0.5, result.Rank[1], 1e-6)
}

func TestSolve_StarDanglingSpokesEqualHubHigher(t *testing.T) {
	ds := starDataset(t)
	view := compressedView(t, ds)

	result, err := rank.Solve(ds.NumNodes(), view,
		rank.WithDampingFactor(0.85),
		rank.WithTolerance(1e-9),
	)
	require.NoError(t, err)
	require.Equal(t, rank.StateConverged, result.State)

	d := 0.85
	r0 := (1 - d) / 3
	rTilde := d*r0*(2.0/3) + r0
	hub := 2.7 * rTilde // fixed point: hub = d*(rTilde+rTilde) + rTilde
	z := 2*rTilde + hub
	wantSpoke := rTilde / z
	wantHub := hub / z

	require.InDelta(t, wantSpoke, result.Rank[0], 1e-9)
	require.InDelta(t, wantSpoke, result.Rank[2], 1e-9)
	require.InDelta(t, wantHub, result.Rank[1], 1e-9)
	require.InDelta(t, result.Rank[0], result.Rank[2], 1e-12)
	require.Greater(t, result.Rank[1], result.Rank[0])
}

func TestSolve_ConvergenceTightensWithTolerance(t *testing.T) {
	ds := ringDataset(t)
	view := compressedView(t, ds)

	loose, err := rank.Solve(ds.NumNodes(), view,
		rank.WithDampingFactor(0.85),
		rank.WithTolerance(1e-3),
	)
	require.NoError(t, err)

	tight, err := rank.Solve(ds.NumNodes(), view,
		rank.WithDampingFactor(0.85),
		rank.WithTolerance(1e-9),
	)
	require.NoError(t, err)

	looseErr := math.Abs(loose.Rank[0] - 0.5)
	tightErr := math.Abs(tight.Rank[0] - 0.5)

	require.Less(t, tightErr, looseErr+1e-15)
	require.Less(t, looseErr, 1e-2)
	require.Less(t, tightErr, 1e-6)
	require.GreaterOrEqual(t, tight.Iterations, loose.Iterations)
}

func TestSolve_RejectsBadDamping(t *testing.T) {
	ds := ringDataset(t)
	view := compressedView(t, ds)

	_, err := rank.Solve(ds.NumNodes(), view, rank.WithDampingFactor(1.0))
	require.ErrorIs(t, err, rank.ErrBadDamping)

	_, err = rank.Solve(ds.NumNodes(), view, rank.WithDampingFactor(0))
	require.ErrorIs(t, err, rank.ErrBadDamping)
}

func TestSolve_RejectsBadTolerance(t *testing.T) {
	ds := ringDataset(t)
	view := compressedView(t, ds)

	_, err := rank.Solve(ds.NumNodes(), view, rank.WithTolerance(0))
	require.ErrorIs(t, err, rank.ErrBadTolerance)

	_, err = rank.Solve(ds.NumNodes(), view, rank.WithTolerance(-1))
	require.ErrorIs(t, err, rank.ErrBadTolerance)
}

func TestSolve_RankSumApproximatelyOne(t *testing.T) {
	// Ring has zero dangling nodes, so the dangling-mass correction is
	// inert (rTilde == r0) and the classic PageRank mass conservation
	// holds exactly at the fixed point.
	ds := ringDataset(t)
	view := compressedView(t, ds)

	result, err := rank.Solve(ds.NumNodes(), view,
		rank.WithDampingFactor(0.85),
		rank.WithTolerance(1e-9),
	)
	require.NoError(t, err)

	var sum float64
	for _, v := range result.Rank {
		sum += v
	}
	require.InDelta(t, 1.0, sum, 1e-6)
}
