package psort

import (
	"cmp"
	"slices"

	"github.com/cr-marcstevens/go-parallel-algorithms/forkjoin"
	"github.com/cr-marcstevens/go-parallel-algorithms/interval"
)

// Sort sorts data ascending under less using a parallel merge sort: the
// slice is split into one near-equal run per worker slot, the runs are
// sorted in parallel on the pool, and pairs of adjacent runs are then merged
// with Merge round by round through a single scratch buffer. The sort is not
// stable.
//
// A chunksize of 0 selects DefaultMergeChunksize; Sort panics if chunksize
// is negative. Inputs too small for more than one worker are sorted
// sequentially.
func Sort[T any](data []T, less func(a, b T) bool, p *forkjoin.Pool, chunksize int) {
	chunksize = checkChunksize(chunksize, DefaultMergeChunksize)
	compare := func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		}
		return 0
	}

	nruns := min(p.Size()+1, len(data)/chunksize)
	if nruns <= 1 {
		slices.SortFunc(data, compare)
		return
	}

	runs := make([]span, nruns)
	p.Run(nruns, func(worker, n int) {
		begin, end := interval.Subinterval(len(data), worker, n)
		runs[worker] = span{begin, end}
		slices.SortFunc(data[begin:end], compare)
	})

	// Merge adjacent run pairs round by round, ping-ponging between data and
	// a scratch buffer. Each Merge is itself a barrier on the pool, so no
	// merge ever runs inside a worker.
	src, dst := data, make([]T, len(data))
	for len(runs) > 1 {
		next := runs[:0]
		for i := 0; i+1 < len(runs); i += 2 {
			r1, r2 := runs[i], runs[i+1]
			Merge(dst[r1.begin:r2.end], src[r1.begin:r1.end], src[r2.begin:r2.end], less, p, chunksize)
			next = append(next, span{r1.begin, r2.end})
		}
		if len(runs)%2 == 1 {
			last := runs[len(runs)-1]
			copy(dst[last.begin:last.end], src[last.begin:last.end])
			next = append(next, last)
		}
		runs = next
		src, dst = dst, src
	}
	if &src[0] != &data[0] {
		copy(data, src)
	}
}

// SortOrdered is Sort for ordered element types, using the natural ascending
// order.
func SortOrdered[T cmp.Ordered](data []T, p *forkjoin.Pool, chunksize int) {
	Sort(data, cmp.Less[T], p, chunksize)
}
