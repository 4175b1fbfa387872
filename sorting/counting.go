package sorting

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// CountingSort sorts a slice of integers in place into non-decreasing order
// without comparisons. Stable. Time O(n+k) and space O(n+k), where k is
// max−min+1 over the input.
//
// The key span is measured in the element type's own domain, so unsigned
// values above MaxInt and spans wider than the int range are handled
// exactly rather than wrapping. Returns ErrKeyRangeTooWide when k would
// exceed the configured cap (DefaultMaxKeyRange unless overridden by
// WithMaxKeyRange), and ErrOptionViolation for invalid options. The slice
// is untouched on error.
func CountingSort[T constraints.Integer](s []T, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if len(s) < 2 {
		return nil
	}

	lo, hi := s[0], s[0]
	for _, v := range s[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	// hi−lo computed in uint64 is exact for every 64-bit-or-narrower
	// integer type: two's-complement subtraction yields the true span,
	// which always fits in 64 bits, whereas hi-lo as T (or int) can wrap.
	span := uint64(hi) - uint64(lo)
	if span >= uint64(o.maxKeyRange) {
		return fmt.Errorf("%w: key span %d, counter cap %d", ErrKeyRangeTooWide, span, o.maxKeyRange)
	}

	counts := make([]int, int(span)+1)
	for _, v := range s {
		counts[uint64(v)-uint64(lo)]++
	}
	// counts[i] becomes the number of elements with key ≤ lo+i
	for i := 1; i < len(counts); i++ {
		counts[i] += counts[i-1]
	}

	// walk the input backwards against cumulative counts: equal keys keep
	// their relative order, which is the stability guarantee
	out := make([]T, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		k := uint64(s[i]) - uint64(lo)
		counts[k]--
		out[counts[k]] = s[i]
	}
	copy(s, out)
	return nil
}

// CountingSortByKey sorts s in place by the integer key of each element.
// Stable: the placement pass walks the input backwards against cumulative
// counts, so equal keys keep their relative order.
//
// Returns ErrKeyRangeTooWide when max−min+1 keys would exceed the counter
// cap — including when the key range spans so much of the int domain that
// max−min itself would overflow.
func CountingSortByKey[T any](s []T, key func(T) int, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if len(s) < 2 {
		return nil
	}

	lo, hi := key(s[0]), key(s[0])
	for _, v := range s[1:] {
		k := key(v)
		if k < lo {
			lo = k
		}
		if k > hi {
			hi = k
		}
	}
	// unsigned subtraction gives the exact span even when hi-lo overflows int
	span := uint(hi) - uint(lo)
	if span >= uint(o.maxKeyRange) {
		return fmt.Errorf("%w: key span %d, counter cap %d", ErrKeyRangeTooWide, span, o.maxKeyRange)
	}

	counts := make([]int, int(span)+1)
	for _, v := range s {
		counts[key(v)-lo]++
	}
	// counts[i] becomes the number of elements with key ≤ lo+i
	for i := 1; i < len(counts); i++ {
		counts[i] += counts[i-1]
	}

	out := make([]T, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		k := key(s[i]) - lo
		counts[k]--
		out[counts[k]] = s[i]
	}
	copy(s, out)
	return nil
}
