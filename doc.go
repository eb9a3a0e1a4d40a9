// This package provides parallel order-statistics algorithms over in-memory
// slices: in-place partition, selection (nth element), merge, and sort, all
// coordinated through a shared fork-join worker pool.
//
// It provides the following subpackages:
//
// forkjoin provides a fixed-size fork-join worker pool that executes a
// closure across a number of worker slots and blocks the caller until all
// slots have finished.
//
// interval provides utilities for dividing an index interval into near-equal
// contiguous subintervals.
//
// psort provides the parallel algorithms themselves: Partition, NthElement,
// Merge, and Sort, together with their sequential reference implementations
// used for small inputs.
package parallelalgorithms
