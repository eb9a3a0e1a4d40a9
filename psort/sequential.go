package psort

// SequentialPartition reorders data so that every element satisfying pred
// precedes every element that does not, and returns the position of the
// split. It is the reference algorithm that Partition falls back to for
// small inputs, and the engine uses it internally to resolve chunk
// fragments.
func SequentialPartition[T any](data []T, pred func(T) bool) int {
	i, j := 0, len(data)
	for {
		for i != j && pred(data[i]) {
			i++
		}
		for i != j && !pred(data[j-1]) {
			j--
		}
		if i == j {
			return i
		}
		data[i], data[j-1] = data[j-1], data[i]
		i++
		j--
	}
}

// SequentialNthElement reorders data so that data[nth] is the element a full
// sort under less would place there, with every earlier element comparing <=
// and every later element comparing >=. It is the reference algorithm that
// NthElement falls back to for small inputs.
//
// The implementation is an iterative quickselect with a median-of-three
// pivot.
func SequentialNthElement[T any](data []T, nth int, less func(a, b T) bool) {
	lo, hi := 0, len(data)-1
	for hi > lo {
		medianOfThreeToFront(data, lo, hi, less)
		j := hoarePartition(data, lo, hi, less)
		switch {
		case j == nth:
			return
		case j > nth:
			hi = j - 1
		default:
			lo = j + 1
		}
	}
}

// medianOfThreeToFront swaps the median of data[lo], data[mid], data[hi]
// into data[lo] to serve as the partitioning value.
func medianOfThreeToFront[T any](data []T, lo, hi int, less func(a, b T) bool) {
	mid := lo + (hi-lo)/2
	if less(data[mid], data[lo]) {
		data[lo], data[mid] = data[mid], data[lo]
	}
	if less(data[hi], data[mid]) {
		data[mid], data[hi] = data[hi], data[mid]
		if less(data[mid], data[lo]) {
			data[lo], data[mid] = data[mid], data[lo]
		}
	}
	data[lo], data[mid] = data[mid], data[lo]
}

// hoarePartition partitions data[lo..hi] around the value at data[lo] and
// returns its final position j, with data[lo..j-1] <= data[j] <= data[j+1..hi].
func hoarePartition[T any](data []T, lo, hi int, less func(a, b T) bool) int {
	v := data[lo]
	i, j := lo, hi+1
	for {
		for {
			i++
			if i == hi || !less(data[i], v) {
				break
			}
		}
		for {
			j--
			if j == lo || !less(v, data[j]) {
				break
			}
		}
		if i >= j {
			break
		}
		data[i], data[j] = data[j], data[i]
	}
	data[lo], data[j] = data[j], data[lo]
	return j
}

// SequentialMerge merges the sorted slices a and b into dst under less,
// preserving the order of a and placing elements of a before equal elements
// of b. It is the reference algorithm that Merge falls back to for small
// inputs. dst must hold at least len(a)+len(b) elements and must not overlap
// a or b.
func SequentialMerge[T any](dst, a, b []T, less func(a, b T) bool) {
	mergeRun(dst, a, b, true, less)
}

// mergeRun merges pri and sec into out. If priFirst, ties favor pri,
// otherwise they favor sec; Merge uses this to keep stability anchored to
// its first input regardless of which input plays the primary role.
func mergeRun[T any](out, pri, sec []T, priFirst bool, less func(a, b T) bool) {
	i, j, k := 0, 0, 0
	for i < len(pri) && j < len(sec) {
		var takePri bool
		if priFirst {
			takePri = !less(sec[j], pri[i])
		} else {
			takePri = less(pri[i], sec[j])
		}
		if takePri {
			out[k] = pri[i]
			i++
		} else {
			out[k] = sec[j]
			j++
		}
		k++
	}
	k += copy(out[k:], pri[i:])
	copy(out[k:], sec[j:])
}
