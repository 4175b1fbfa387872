package sorting

import "golang.org/x/exp/constraints"

// InsertionSort sorts s in place into non-decreasing order.
// Stable. Time O(n²) worst and average case, O(n) on nearly-sorted input;
// space O(1).
func InsertionSort[T constraints.Ordered](s []T) {
	InsertionSortFunc(s, func(a, b T) bool { return a < b })
}

// InsertionSortFunc sorts s in place by less.
// Stable: an element shifts left only past strictly greater elements, so
// equal keys never swap order.
// Time O(n²); space O(1).
func InsertionSortFunc[T any](s []T, less Less[T]) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && less(key, s[j]) {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}
