package psort

import (
	"cmp"
	"fmt"
	"sort"

	"github.com/cr-marcstevens/go-parallel-algorithms/forkjoin"
	"github.com/cr-marcstevens/go-parallel-algorithms/interval"
)

// Merge merges the sorted slices a and b into dst under less. The merge is
// stable: elements of a keep their order and precede equal elements of b.
// dst must hold at least len(a)+len(b) elements and must not overlap a or b;
// a and b must be sorted ascending under less.
//
// The longer input is split into near-equal chunks, one per worker slot, and
// binary searches on the shorter input derive the disjoint sub-range each
// worker merges against, so every worker writes a precomputed, disjoint
// destination slice without synchronization. A chunksize of 0 selects
// DefaultMergeChunksize; Merge panics if chunksize is negative. Inputs with
// fewer than 4*chunksize elements combined are handled by SequentialMerge.
func Merge[T any](dst, a, b []T, less func(a, b T) bool, p *forkjoin.Pool, chunksize int) {
	chunksize = checkChunksize(chunksize, DefaultMergeChunksize)
	if len(dst) < len(a)+len(b) {
		panic(fmt.Sprintf("merge destination too small: %v for %v+%v", len(dst), len(a), len(b)))
	}
	if len(a)+len(b) < seqCutoffChunks*chunksize {
		SequentialMerge(dst, a, b, less)
		return
	}
	if len(a) < len(b) {
		parallelMerge(dst, b, a, false, less, p, chunksize)
	} else {
		parallelMerge(dst, a, b, true, less, p, chunksize)
	}
}

// MergeOrdered is Merge for ordered element types, using the natural
// ascending order.
func MergeOrdered[T cmp.Ordered](dst, a, b []T, p *forkjoin.Pool, chunksize int) {
	Merge(dst, a, b, cmp.Less[T], p, chunksize)
}

// parallelMerge merges pri and sec into dst, with pri the (no shorter)
// primary input split across workers. priFirst records whether pri is the
// caller's first input, which decides how ties break and on which side of a
// run of equal secondary elements the chunk boundaries fall.
func parallelMerge[T any](dst, pri, sec []T, priFirst bool, less func(a, b T) bool, p *forkjoin.Pool, chunksize int) {
	nworkers := min(p.Size()+1, len(pri)/chunksize)
	if nworkers < 1 {
		nworkers = 1
	}
	p.Run(nworkers, func(worker, n int) {
		begin, end := interval.Subinterval(len(pri), worker, n)
		sbegin, send := 0, len(sec)
		if worker > 0 {
			sbegin = secondaryBoundary(sec, pri[begin], priFirst, less)
		}
		if worker < n-1 {
			send = secondaryBoundary(sec, pri[end], priFirst, less)
		}
		out := dst[begin+sbegin : end+send]
		if sbegin == send {
			copy(out, pri[begin:end])
			return
		}
		mergeRun(out, pri[begin:end], sec[sbegin:send], priFirst, less)
	})
}

// secondaryBoundary returns the position in sec where the output region of
// the primary chunk starting at value v begins. Equal secondary elements
// belong after v when the primary is the first input and before it
// otherwise, keeping the boundary consistent with the tie rule inside the
// merge bodies.
func secondaryBoundary[T any](sec []T, v T, priFirst bool, less func(a, b T) bool) int {
	if priFirst {
		return sort.Search(len(sec), func(i int) bool { return !less(sec[i], v) })
	}
	return sort.Search(len(sec), func(i int) bool { return less(v, sec[i]) })
}
