package sorting

import (
	"errors"
	"fmt"
)

// Sentinel errors for sorting routines.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sorting: invalid option supplied")

	// ErrKeyRangeTooWide is returned by counting sort when max−min+1 keys
	// would exceed the configured counter cap.
	ErrKeyRangeTooWide = errors.New("sorting: counting sort key range too wide")
)

// Less reports whether a orders strictly before b. Elements for which
// neither Less(a, b) nor Less(b, a) holds are considered equal-keyed;
// stable routines preserve their relative input order.
type Less[T any] func(a, b T) bool

// PivotStrategy selects how quicksort picks its pivot element.
//
//   - PivotLast          — classic Lomuto choice; degrades to O(n²) on
//     already-sorted input.
//   - PivotFirst         — mirror of PivotLast.
//   - PivotMedianOfThree — median of first/middle/last; robust against
//     sorted and reverse-sorted input. The default.
//   - PivotRandom        — uniformly random index; O(n log n) expected on
//     any input, at the cost of nondeterministic element placement.
type PivotStrategy int

const (
	// PivotMedianOfThree picks the median of the first, middle and last
	// elements. The default.
	PivotMedianOfThree PivotStrategy = iota

	// PivotLast always pivots on the last element.
	PivotLast

	// PivotFirst always pivots on the first element.
	PivotFirst

	// PivotRandom pivots on a uniformly random element.
	PivotRandom
)

// DefaultCutoff is the slice length below which quicksort hands off to
// insertion sort. Small partitions sort faster without recursion.
const DefaultCutoff = 12

// DefaultMaxKeyRange caps the counter array counting sort may allocate
// (16M counters ≈ 128 MiB of int64 on 64-bit).
const DefaultMaxKeyRange = 1 << 24

// Option configures a sorting routine via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when the sort is invoked.
type Option func(*sortOptions)

type sortOptions struct {
	pivot       PivotStrategy
	cutoff      int
	maxKeyRange int
	err         error
}

func defaultOptions() sortOptions {
	return sortOptions{
		pivot:       PivotMedianOfThree,
		cutoff:      DefaultCutoff,
		maxKeyRange: DefaultMaxKeyRange,
	}
}

// WithPivot sets the quicksort pivot strategy.
func WithPivot(p PivotStrategy) Option {
	return func(o *sortOptions) {
		if p < PivotMedianOfThree || p > PivotRandom {
			o.err = fmt.Errorf("%w: unknown pivot strategy (%d)", ErrOptionViolation, p)
			return
		}
		o.pivot = p
	}
}

// WithCutoff sets the partition length below which quicksort switches to
// insertion sort.
//
//	n > 1:  hand off partitions shorter than n
//	n == 1: never hand off
//	n < 1:  invalid option → ErrOptionViolation
func WithCutoff(n int) Option {
	return func(o *sortOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: cutoff must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.cutoff = n
	}
}

// WithMaxKeyRange caps the number of counters counting sort may allocate.
// Values below 1 are invalid → ErrOptionViolation.
func WithMaxKeyRange(n int) Option {
	return func(o *sortOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max key range must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.maxKeyRange = n
	}
}
