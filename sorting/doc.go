// Package sorting implements the classical comparison sorts — merge,
// insertion, bubble, quick — plus counting sort for integer keys, all over
// plain slices.
//
// What
//
//   - Every routine produces a non-decreasing permutation of its input,
//     ordering by < for constraints.Ordered element types or by a supplied
//     less function for the *Func variants.
//   - Stable routines (merge, insertion, bubble, counting) preserve the
//     relative input order of equal-key elements; quicksort does not.
//   - All routines sort in place; merge sort allocates an O(n) scratch
//     buffer, counting sort an O(k) counter array.
//
// Why
//
//	The trade-off table these implementations follow:
//
//	  routine    worst       average     space     stable
//	  merge      O(n log n)  O(n log n)  O(n)      yes
//	  insertion  O(n²)       O(n²)       O(1)      yes
//	  bubble     O(n²)       O(n²)       O(1)      yes
//	  quick      O(n²)       O(n log n)  O(log n)  no
//	  counting   O(n+k)      O(n+k)      O(n+k)    yes
//
//	Heapsort belongs to the binheap package, since it is a heap operation
//	first and a sort second.
//
// Usage
//
//	s := []int{5, 2, 4, 6, 1, 3}
//	sorting.MergeSort(s)
//
//	// quicksort with a tuned pivot and small-slice cutoff:
//	err := sorting.QuickSort(s,
//	    sorting.WithPivot(sorting.PivotMedianOfThree),
//	    sorting.WithCutoff(12),
//	)
//
//	// custom ordering:
//	sorting.MergeSortFunc(people, func(a, b Person) bool { return a.Age < b.Age })
//
// Errors
//
//   - ErrOptionViolation  if an invalid Option is supplied (negative cutoff,
//     unknown pivot strategy, non-positive key-range cap).
//   - ErrKeyRangeTooWide  if counting sort would need more counters than the
//     configured cap allows.
package sorting
