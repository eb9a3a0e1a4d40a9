// Package interval provides utilities for dividing an index interval into
// near-equal contiguous subintervals.
package interval

import "fmt"

// Subinterval divides the half-open interval [0,size) into n contiguous
// subintervals and returns the bounds of the i-th one, 0 <= i < n. The
// subintervals cover [0,size) exactly, without gaps or overlaps, and their
// sizes differ by at most one element.
//
// Subinterval panics if size is negative, or if i and n do not satisfy
// 0 <= i < n.
func Subinterval(size, i, n int) (begin, end int) {
	if size < 0 || i < 0 || i >= n {
		panic(fmt.Sprintf("invalid subinterval: size %v, %v of %v", size, i, n))
	}
	div, rem := size/n, size%n
	begin = i*div + min(i, rem)
	end = (i+1)*div + min(i+1, rem)
	return
}
