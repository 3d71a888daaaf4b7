package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallelizeCoversEveryIndex(t *testing.T) {
	for _, items := range []int{1, 3, 17, 1000} {
		seen := make([]int32, items)
		Parallelize(items, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
		})
		for i, v := range seen {
			assert.Equal(t, int32(1), v, "items=%d index=%d", items, i)
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		items   int
		workers int
		want    []Range
	}{
		{"even", 6, 3, []Range{{0, 2}, {2, 4}, {4, 6}}},
		{"remainder goes first", 7, 3, []Range{{0, 3}, {3, 5}, {5, 7}}},
		{"more workers than items", 2, 8, []Range{{0, 1}, {1, 2}}},
		{"non-positive workers", 3, 0, []Range{{0, 3}}},
		{"no items", 0, 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.items, tt.workers))
		})
	}
}

func TestParallelizeZeroItems(t *testing.T) {
	called := false
	Parallelize(0, func(start, end int) { called = true })
	assert.False(t, called)
}

func TestParallelizeWithThreshold(t *testing.T) {
	t.Run("below threshold runs once", func(t *testing.T) {
		var calls int32
		ParallelizeWithThreshold(3, 3, func(start, end int) {
			atomic.AddInt32(&calls, 1)
			assert.Equal(t, 0, start)
			assert.Equal(t, 3, end)
		})
		assert.Equal(t, int32(1), calls)
	})

	t.Run("above threshold covers range", func(t *testing.T) {
		var total int64
		ParallelizeWithThreshold(50, 1, func(start, end int) {
			atomic.AddInt64(&total, int64(end-start))
		})
		assert.Equal(t, int64(50), total)
	})
}
