package psort

import (
	"sort"
	"sync/atomic"

	"github.com/cr-marcstevens/go-parallel-algorithms/forkjoin"
	"github.com/cr-marcstevens/go-parallel-algorithms/internal"
)

// span is a half-open position range [begin,end) within the buffer being
// partitioned. The zero span is empty.
type span struct {
	begin, end int
}

func (s span) len() int { return s.end - s.begin }

// Partition reorders data so that every element satisfying pred precedes
// every element that does not, and returns the position of the split: pred
// holds on data[:mid] and fails on data[mid:]. The order of elements within
// each side is unspecified. The multiset of elements is preserved.
//
// Workers claim chunks of chunksize elements from both ends of the range via
// atomic frontier counters; no locks are taken. A chunksize of 0 selects
// DefaultChunksize; Partition panics if chunksize is negative. Inputs of at
// most 4*chunksize elements, or too small to justify more than two workers,
// are handled by SequentialPartition.
//
// If pred panics, the panic propagates out of Partition and data is left in
// an unspecified permutation of its original elements.
func Partition[T any](data []T, pred func(T) bool, p *forkjoin.Pool, chunksize int) int {
	chunksize = checkChunksize(chunksize, DefaultChunksize)
	dist := len(data)

	nworkers := internal.NumWorkers(dist, chunksize, p.Size())
	if nworkers <= 2 || dist <= seqCutoffChunks*chunksize {
		return SequentialPartition(data, pred)
	}

	// Leftover fragments, one pair of slots per worker: lowLeft[w] is the
	// pred-false tail of w's final low chunk, highLeft[w] the pred-true head
	// of its final high chunk.
	lowLeft := make([]span, nworkers)
	highLeft := make([]span, nworkers)

	// The frontier counters hold the begin position of the next claimable
	// chunk from each end. Workers start with one low and one high chunk
	// each, so 2*nworkers chunks are claimed up front; the used counter,
	// bounded by the total chunk count, keeps the frontiers from crossing.
	var low, high, used atomic.Int64
	low.Store(int64(nworkers * chunksize))
	high.Store(int64(dist - (nworkers+1)*chunksize))
	used.Store(int64(2 * nworkers))
	available := dist / chunksize

	p.Run(nworkers, func(worker, n int) {
		lowIt := worker * chunksize
		lowEnd := lowIt + chunksize
		highIt := dist - (worker+1)*chunksize
		highEnd := highIt + chunksize

		for {
			for ; lowIt != lowEnd; lowIt++ {
				if pred(data[lowIt]) {
					continue
				}
				for highIt != highEnd && !pred(data[highIt]) {
					highIt++
				}
				if highIt == highEnd {
					break
				}
				data[lowIt], data[highIt] = data[highIt], data[lowIt]
				highIt++
			}
			if lowIt == lowEnd {
				if int(used.Add(1))-1 < available {
					lowIt = int(low.Add(int64(chunksize))) - chunksize
					lowEnd = lowIt + chunksize
				} else {
					break
				}
			}
			if highIt == highEnd {
				if int(used.Add(1))-1 < available {
					highIt = int(high.Add(int64(-chunksize))) + chunksize
					highEnd = highIt + chunksize
				} else {
					break
				}
			}
		}

		// No chunks left to claim: resolve the unmatched remainders
		// sequentially and record them as tagged leftover fragments.
		if lowIt != lowEnd {
			m := lowIt + SequentialPartition(data[lowIt:lowEnd], pred)
			lowLeft[worker] = span{m, lowEnd}
		}
		if highIt != highEnd {
			m := highIt + SequentialPartition(data[highIt:highEnd], pred)
			highLeft[worker] = span{highIt, m}
		}
	})

	// After the barrier: [0,lowPos) holds pred-true elements except inside
	// low leftovers, [highPos+chunksize,dist) holds pred-false elements
	// except inside high leftovers. Partition the middle gap sequentially
	// for a provisional split.
	lowPos, highPos := int(low.Load()), int(high.Load())
	mid := lowPos + SequentialPartition(data[lowPos:highPos+chunksize], pred)

	sort.Slice(lowLeft, func(i, j int) bool { return lowLeft[i].begin < lowLeft[j].begin })
	sort.Slice(highLeft, func(i, j int) bool { return highLeft[i].begin < highLeft[j].begin })

	// Correct the provisional split: low leftovers are pred-false elements
	// counted into [0,mid), high leftovers pred-true elements counted out.
	realmid := mid
	for _, be := range lowLeft {
		realmid -= be.len()
	}
	for _, be := range highLeft {
		realmid += be.len()
	}

	// Sweep the sorted leftover lists against the corrected split and
	// collect the position ranges that sit on the wrong side: toswapTrue
	// holds pred-true ranges at or beyond realmid, toswapFalse pred-false
	// ranges before it.
	var toswapFalse, toswapTrue []span

	lowdone := 0
	for _, be := range lowLeft {
		if be.len() == 0 {
			continue
		}
		// [lowdone,be.begin) is pred-true, [be.begin,be.end) pred-false.
		if realmid < be.begin {
			if lowdone < be.begin {
				toswapTrue = append(toswapTrue, span{max(lowdone, realmid), be.begin})
			}
		} else if realmid > be.begin {
			toswapFalse = append(toswapFalse, span{be.begin, min(be.end, realmid)})
		}
		lowdone = be.end
	}
	// [lowdone,mid) is pred-true.
	if realmid < mid && lowdone < mid {
		toswapTrue = append(toswapTrue, span{max(lowdone, realmid), mid})
	}

	highdone := mid
	for _, be := range highLeft {
		if be.len() == 0 {
			continue
		}
		// [highdone,be.begin) is pred-false, [be.begin,be.end) pred-true.
		if highdone < realmid && highdone < be.begin {
			toswapFalse = append(toswapFalse, span{highdone, min(be.begin, realmid)})
		}
		if realmid < be.end {
			toswapTrue = append(toswapTrue, span{max(be.begin, realmid), be.end})
		}
		highdone = be.end
	}
	// [highdone,realmid) is pred-false.
	if realmid > highdone {
		toswapFalse = append(toswapFalse, span{highdone, realmid})
	}

	// Drain the two worklists pairwise. Both carry the same total length, so
	// the swap volume is exactly the number of mis-sided elements.
	for len(toswapFalse) > 0 && len(toswapTrue) > 0 {
		swf := &toswapFalse[len(toswapFalse)-1]
		swt := &toswapTrue[len(toswapTrue)-1]
		count := min(swf.len(), swt.len())
		for i := 0; i < count; i++ {
			data[swf.begin+i], data[swt.begin+i] = data[swt.begin+i], data[swf.begin+i]
		}
		swf.begin += count
		swt.begin += count
		if swf.len() == 0 {
			toswapFalse = toswapFalse[:len(toswapFalse)-1]
		}
		if swt.len() == 0 {
			toswapTrue = toswapTrue[:len(toswapTrue)-1]
		}
	}

	return realmid
}
