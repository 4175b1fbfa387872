package sorting

import "golang.org/x/exp/constraints"

// BubbleSort sorts s in place into non-decreasing order.
// Stable. Time O(n²) worst and average case, O(n) on sorted input thanks to
// the early exit; space O(1).
func BubbleSort[T constraints.Ordered](s []T) {
	BubbleSortFunc(s, func(a, b T) bool { return a < b })
}

// BubbleSortFunc sorts s in place by less.
// Stable: adjacent elements swap only when strictly out of order.
// Time O(n²); space O(1).
func BubbleSortFunc[T any](s []T, less Less[T]) {
	for n := len(s); n > 1; {
		swapped := 0
		for i := 1; i < n; i++ {
			if less(s[i], s[i-1]) {
				s[i-1], s[i] = s[i], s[i-1]
				swapped = i
			}
		}
		// everything at and beyond the last swap is already in place
		n = swapped
	}
}
