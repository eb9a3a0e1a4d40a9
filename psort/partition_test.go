package psort_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cr-marcstevens/go-parallel-algorithms/forkjoin"
	"github.com/cr-marcstevens/go-parallel-algorithms/psort"
)

// checkPartitioned verifies the partition postcondition: pred holds on
// data[:mid] and fails on data[mid:].
func checkPartitioned[T any](t *testing.T, data []T, mid int, pred func(T) bool) {
	t.Helper()
	for i, x := range data {
		if i < mid {
			require.True(t, pred(x), "position %v before split %v", i, mid)
		} else {
			require.False(t, pred(x), "position %v after split %v", i, mid)
		}
	}
}

func sortedCopy(data []int) []int {
	c := slices.Clone(data)
	slices.Sort(c)
	return c
}

func TestPartitionScenario(t *testing.T) {
	p := forkjoin.New(4)
	defer p.Close()

	// Chunksize 1 forces the parallel path for this 8-element buffer.
	data := []int{5, 3, 8, 1, 9, 2, 7, 4}
	lessThan5 := func(x int) bool { return x < 5 }

	mid := psort.Partition(data, lessThan5, p, 1)

	assert.Equal(t, 4, mid)
	assert.ElementsMatch(t, []int{3, 1, 2, 4}, data[:4])
	assert.ElementsMatch(t, []int{5, 8, 9, 7}, data[4:])
}

func TestPartitionRandom(t *testing.T) {
	p := forkjoin.New(7)
	defer p.Close()

	rnd := rand.New(rand.NewPCG(42, 0))
	for _, size := range []int{0, 1, 5, 33, 100, 1000, 4096, 10000} {
		for _, chunksize := range []int{1, 3, 16, 64} {
			for _, bound := range []int{2, 10, 1000} {
				data := make([]int, size)
				for i := range data {
					data[i] = rnd.IntN(bound)
				}
				original := sortedCopy(data)
				pivot := rnd.IntN(bound)
				pred := func(x int) bool { return x < pivot }
				want := 0
				for _, x := range data {
					if pred(x) {
						want++
					}
				}

				mid := psort.Partition(data, pred, p, chunksize)

				require.Equal(t, want, mid, "size %v chunksize %v pivot %v", size, chunksize, pivot)
				checkPartitioned(t, data, mid, pred)
				require.Equal(t, original, sortedCopy(data), "multiset changed")
			}
		}
	}
}

func TestPartitionIdempotent(t *testing.T) {
	p := forkjoin.New(7)
	defer p.Close()

	rnd := rand.New(rand.NewPCG(7, 7))
	data := make([]int, 5000)
	for i := range data {
		data[i] = rnd.IntN(100)
	}
	pred := func(x int) bool { return x < 50 }

	mid := psort.Partition(data, pred, p, 8)
	partitioned := slices.Clone(data)

	// Re-partitioning an already partitioned buffer must return the same
	// split and move nothing.
	again := psort.Partition(data, pred, p, 8)
	assert.Equal(t, mid, again)
	assert.Equal(t, partitioned, data)
}

func TestPartitionAllOneSide(t *testing.T) {
	p := forkjoin.New(7)
	defer p.Close()

	data := make([]int, 3000)
	for i := range data {
		data[i] = i
	}

	mid := psort.Partition(data, func(x int) bool { return true }, p, 4)
	assert.Equal(t, len(data), mid)

	mid = psort.Partition(data, func(x int) bool { return false }, p, 4)
	assert.Equal(t, 0, mid)
}

func TestPartitionSequentialFallback(t *testing.T) {
	p := forkjoin.New(7)
	defer p.Close()

	pred := func(x int) bool { return x%2 == 0 }
	for _, size := range []int{0, 1, 2, 17} {
		data := make([]int, size)
		for i := range data {
			data[i] = size - i
		}
		original := sortedCopy(data)

		// Far below 4 chunk-equivalents, so this is the sequential path.
		mid := psort.Partition(data, pred, p, psort.DefaultChunksize)

		checkPartitioned(t, data, mid, pred)
		assert.Equal(t, original, sortedCopy(data))
	}
}

func TestPartitionInvalidChunksize(t *testing.T) {
	p := forkjoin.New(1)
	defer p.Close()

	assert.Panics(t, func() { psort.Partition([]int{1, 2, 3}, func(int) bool { return true }, p, -1) })
}

func TestPartitionPredicatePanic(t *testing.T) {
	p := forkjoin.New(4)
	defer p.Close()

	data := make([]int, 2000)
	for i := range data {
		data[i] = i
	}
	original := sortedCopy(data)

	assert.Panics(t, func() {
		psort.Partition(data, func(x int) bool {
			if x == 1500 {
				panic("predicate failure")
			}
			return x < 1000
		}, p, 8)
	})
	// The buffer must still be a permutation of the original elements.
	assert.Equal(t, original, sortedCopy(data))
}

func TestSequentialPartition(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 3))
	for size := 0; size < 128; size++ {
		data := make([]int, size)
		for i := range data {
			data[i] = rnd.IntN(8)
		}
		original := sortedCopy(data)
		pred := func(x int) bool { return x < 4 }

		mid := psort.SequentialPartition(data, pred)

		checkPartitioned(t, data, mid, pred)
		require.Equal(t, original, sortedCopy(data))
	}
}
