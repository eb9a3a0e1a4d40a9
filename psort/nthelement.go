package psort

import (
	"cmp"
	"fmt"
	"math/rand/v2"

	"github.com/cr-marcstevens/go-parallel-algorithms/forkjoin"
)

// selectionSize is the number of randomly sampled elements whose median
// becomes the quickselect pivot.
const selectionSize = 7

// NthElement reorders data so that data[nth] is the element a full sort
// under less would place there: every element before it compares <= and
// every element after it compares >=. The order within each side is
// unspecified.
//
// The implementation is an iterative quickselect. Each round samples
// selectionSize elements through rnd, takes their median as the pivot, and
// splits the active range with Partition on the pool. A nil rnd selects the
// shared global source; passing a seeded generator makes pivot selection
// reproducible. A chunksize of 0 selects DefaultChunksize. Ranges of at most
// 4*chunksize elements are handled by SequentialNthElement.
//
// NthElement panics if nth is out of range or chunksize is negative. If less
// panics, the panic propagates and data is left in an unspecified
// permutation of its original elements.
func NthElement[T any](data []T, nth int, less func(a, b T) bool, rnd *rand.Rand, p *forkjoin.Pool, chunksize int) {
	chunksize = checkChunksize(chunksize, DefaultChunksize)
	if nth < 0 || nth >= len(data) {
		panic(fmt.Sprintf("invalid rank: %v of %v", nth, len(data)))
	}
	intn := rand.IntN
	if rnd != nil {
		intn = rnd.IntN
	}

	first, last := 0, len(data)
	for {
		dist := last - first
		if dist <= seqCutoffChunks*chunksize || dist <= 2*selectionSize {
			SequentialNthElement(data[first:last], nth-first, less)
			return
		}

		// Sample the pivot candidates to the front, order them, and park
		// their median at the end of the active range.
		for i := 0; i < selectionSize; i++ {
			j := first + intn(dist)
			data[first+i], data[j] = data[j], data[first+i]
		}
		insertionSort(data[first:first+selectionSize], less)
		pivot := last - 1
		data[first+selectionSize/2], data[pivot] = data[pivot], data[first+selectionSize/2]

		pv := data[pivot]
		mid := first + Partition(data[first:pivot], func(x T) bool { return less(x, pv) }, p, chunksize)

		// Put the pivot in its final position so the active range strictly
		// shrinks even when every remaining element compares equal.
		data[mid], data[pivot] = data[pivot], data[mid]
		switch {
		case nth == mid:
			return
		case nth < mid:
			last = mid
		default:
			first = mid + 1
		}
	}
}

// NthElementOrdered is NthElement for ordered element types, using the
// natural ascending order.
func NthElementOrdered[T cmp.Ordered](data []T, nth int, rnd *rand.Rand, p *forkjoin.Pool, chunksize int) {
	NthElement(data, nth, cmp.Less[T], rnd, p, chunksize)
}

func insertionSort[T any](data []T, less func(a, b T) bool) {
	for i := 1; i < len(data); i++ {
		for j := i; j > 0 && less(data[j], data[j-1]); j-- {
			data[j], data[j-1] = data[j-1], data[j]
		}
	}
}
