package sorting

import "golang.org/x/exp/constraints"

// MergeSort sorts s in place into non-decreasing order.
// Stable. Time O(n log n) worst case; space O(n) for the scratch buffer.
func MergeSort[T constraints.Ordered](s []T) {
	MergeSortFunc(s, func(a, b T) bool { return a < b })
}

// MergeSortFunc sorts s in place by less.
// Stable: equal-key elements keep their relative input order because the
// merge step takes from the left run on ties.
// Time O(n log n) worst case; space O(n).
func MergeSortFunc[T any](s []T, less Less[T]) {
	if len(s) < 2 {
		return
	}
	scratch := make([]T, len(s))
	mergeSort(s, scratch, less)
}

// mergeSort recursively splits s at the midpoint, sorts both halves, and
// merges them through scratch (same length as s).
func mergeSort[T any](s, scratch []T, less Less[T]) {
	if len(s) < 2 {
		return
	}
	mid := len(s) >> 1
	mergeSort(s[:mid], scratch[:mid], less)
	mergeSort(s[mid:], scratch[mid:], less)
	merge(s, scratch, mid, less)
}

// merge combines the sorted runs s[:mid] and s[mid:] into scratch, then
// copies the result back. Ties favor the left run, which is what makes the
// whole sort stable.
func merge[T any](s, scratch []T, mid int, less Less[T]) {
	i, j, k := 0, mid, 0
	for i < mid && j < len(s) {
		if less(s[j], s[i]) {
			scratch[k] = s[j]
			j++
		} else {
			scratch[k] = s[i]
			i++
		}
		k++
	}
	k += copy(scratch[k:], s[i:mid])
	copy(scratch[k:], s[j:])
	copy(s, scratch[:len(s)])
}
