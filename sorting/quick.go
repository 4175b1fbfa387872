package sorting

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// QuickSort sorts s in place into non-decreasing order.
// Unstable. Time O(n log n) average, O(n²) worst case (mitigated by the
// default median-of-three pivot); space O(log n) expected recursion depth.
// Returns ErrOptionViolation if an option carries an invalid value.
func QuickSort[T constraints.Ordered](s []T, opts ...Option) error {
	return QuickSortFunc(s, func(a, b T) bool { return a < b }, opts...)
}

// QuickSortFunc sorts s in place by less, applying any number of functional
// Options (pivot strategy, insertion-sort cutoff).
func QuickSortFunc[T any](s []T, less Less[T], opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	quickSort(s, less, &o)
	return nil
}

// quickSort recurses on the smaller partition and loops on the larger one,
// bounding stack depth at O(log n) even in the quadratic worst case.
func quickSort[T any](s []T, less Less[T], o *sortOptions) {
	for len(s) > o.cutoff {
		p := partition(s, less, o)
		if p < len(s)-p-1 {
			quickSort(s[:p], less, o)
			s = s[p+1:]
		} else {
			quickSort(s[p+1:], less, o)
			s = s[:p]
		}
	}
	if len(s) > 1 {
		InsertionSortFunc(s, less)
	}
}

// partition arranges s around a pivot chosen per the configured strategy and
// returns the pivot's final index (Lomuto scheme, pivot moved to the end
// first).
func partition[T any](s []T, less Less[T], o *sortOptions) int {
	last := len(s) - 1
	switch o.pivot {
	case PivotFirst:
		s[0], s[last] = s[last], s[0]
	case PivotRandom:
		r := rand.Intn(len(s))
		s[r], s[last] = s[last], s[r]
	case PivotMedianOfThree:
		medianOfThree(s, less)
	case PivotLast:
		// already in place
	}
	pivot := s[last]
	i := 0
	for j := 0; j < last; j++ {
		if less(s[j], pivot) {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[last] = s[last], s[i]
	return i
}

// medianOfThree moves the median of s[0], s[mid], s[last] into s[last] so
// partition can treat it as the pivot.
func medianOfThree[T any](s []T, less Less[T]) {
	mid, last := len(s)>>1, len(s)-1
	if less(s[mid], s[0]) {
		s[mid], s[0] = s[0], s[mid]
	}
	if less(s[last], s[0]) {
		s[last], s[0] = s[0], s[last]
	}
	if less(s[last], s[mid]) {
		s[last], s[mid] = s[mid], s[last]
	}
	// s[mid] now holds the median; park it at the end
	s[mid], s[last] = s[last], s[mid]
}
