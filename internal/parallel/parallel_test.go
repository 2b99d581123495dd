package parallel_test

import (
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/cyberank/internal/parallel"
	"github.com/stretchr/testify/require"
)

func TestFor_VisitsEveryIndexOnce(t *testing.T) {
	const n = 1000
	seen := make([]int32, n)
	parallel.For(n, 8, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})
	for i, v := range seen {
		require.EqualValues(t, 1, v, "index %d visited %d times", i, v)
	}
}

func TestFor_SequentialFallback(t *testing.T) {
	var order []int
	parallel.For(5, 1, func(i int) { order = append(order, i) })
	require.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestFor_ZeroN(t *testing.T) {
	calls := 0
	parallel.For(0, 4, func(i int) { calls++ })
	require.Zero(t, calls)
}

func TestFor_MoreWorkersThanItems(t *testing.T) {
	const n = 3
	seen := make([]int32, n)
	parallel.For(n, 64, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})
	for _, v := range seen {
		require.EqualValues(t, 1, v)
	}
}
