// Package bsearch provides a recursive binary search over sorted uint32 slices.
package bsearch

// Search returns the index of target in the ascending slice seq.
// The second return value is false if target is not present.
//
// If target appears more than once, the index returned is whichever one the
// bisection reaches first; it is not necessarily the lowest or highest.
//
// seq must be sorted ascending. This is not checked. On unsorted input the
// result is unspecified: Search may report a present value as absent.
func Search(seq []uint32, target uint32) (int, bool) {
	return search(seq, 0, len(seq), target)
}

// search bisects seq[lo:hi] and returns indexes in seq's coordinates.
func search(seq []uint32, lo, hi int, target uint32) (int, bool) {
	n := hi - lo
	if n == 0 {
		return 0, false
	}

	mid := lo + n/2
	switch {
	case seq[mid] == target:
		return mid, true
	case n == 1:
		return 0, false
	case seq[mid] > target:
		return search(seq, lo, mid, target)
	default:
		// The right half keeps mid, so it always shrinks by n/2 >= 1.
		return search(seq, mid, hi, target)
	}
}
