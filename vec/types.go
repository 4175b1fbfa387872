package vec

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for vector operations.
var (
	// ErrIndexOutOfRange indicates an index outside the valid range.
	ErrIndexOutOfRange = errors.New("vec: index out of range")

	// ErrUnsorted is returned by BinarySearchStrict when the vector is not
	// sorted in ascending order.
	ErrUnsorted = errors.New("vec: not sorted ascending")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("vec: invalid option supplied")
)

// Vec is a growable, index-addressable sequence of ordered elements.
//
// The zero value is an empty, ready-to-use vector. Vec is not safe for
// concurrent use; callers must serialize access.
type Vec[T constraints.Ordered] struct {
	items []T
}

// Option configures vector construction via functional arguments.
// An invalid Option (e.g. negative capacity) is recorded internally and
// surfaced as ErrOptionViolation by New.
type Option func(*options)

type options struct {
	capacity int
	err      error
}

// WithCapacity pre-allocates room for n elements.
//
//	n > 0:  reserve capacity n
//	n == 0: no reservation (the default)
//	n < 0:  invalid option → ErrOptionViolation
func WithCapacity(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.capacity = n
	}
}
