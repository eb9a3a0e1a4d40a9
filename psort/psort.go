// Package psort provides parallel order-statistics algorithms over slices:
// in-place partition, selection (nth element), merge, and sort.
//
// All algorithms share a fork-join execution model: they dispatch workers on
// a caller-supplied forkjoin.Pool, block until the final barrier, and keep no
// state between calls. The pool is shared, never owned; the slice being
// processed is the only mutable shared resource, and workers coordinate
// exclusively through atomic counters, never locks. Small inputs fall back to
// the sequential reference algorithms, so the parallel entry points are
// usable unconditionally.
package psort

import "fmt"

const (
	// DefaultChunksize is the chunk size used by Partition and NthElement
	// when the caller passes 0. A chunk is the unit of work a worker claims
	// atomically.
	DefaultChunksize = 1024

	// DefaultMergeChunksize is the minimum per-worker chunk size used by
	// Merge and Sort when the caller passes 0.
	DefaultMergeChunksize = 4096

	// seqCutoffChunks is the number of chunk-equivalents at or below which
	// the algorithms delegate to their sequential reference implementation.
	seqCutoffChunks = 4
)

func checkChunksize(chunksize, def int) int {
	switch {
	case chunksize == 0:
		return def
	case chunksize < 0:
		panic(fmt.Sprintf("invalid chunksize: %v", chunksize))
	}
	return chunksize
}
