package vec

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// New creates an empty Vec with the given options.
// Returns ErrOptionViolation if an option carries an invalid value.
// Complexity: O(1).
func New[T constraints.Ordered](opts ...Option) (*Vec[T], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("%w: negative capacity", o.err)
	}
	return &Vec[T]{items: make([]T, 0, o.capacity)}, nil
}

// From creates a Vec holding a copy of s. The input slice is not aliased,
// so later mutations of s do not affect the vector.
// Complexity: O(n).
func From[T constraints.Ordered](s []T) *Vec[T] {
	items := make([]T, len(s))
	copy(items, s)
	return &Vec[T]{items: items}
}

// Len returns the number of elements.
// Complexity: O(1).
func (v *Vec[T]) Len() int { return len(v.items) }

// Get returns the element at index i.
// Returns ErrIndexOutOfRange when i is outside [0, Len).
// Complexity: O(1).
func (v *Vec[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(v.items) {
		var zero T
		return zero, fmt.Errorf("%w: get %d of %d", ErrIndexOutOfRange, i, len(v.items))
	}
	return v.items[i], nil
}

// Set overwrites the element at index i.
// Returns ErrIndexOutOfRange when i is outside [0, Len).
// Complexity: O(1).
func (v *Vec[T]) Set(i int, val T) error {
	if i < 0 || i >= len(v.items) {
		return fmt.Errorf("%w: set %d of %d", ErrIndexOutOfRange, i, len(v.items))
	}
	v.items[i] = val
	return nil
}

// Append adds val after the last element.
// Complexity: O(1) amortized.
func (v *Vec[T]) Append(val T) {
	v.items = append(v.items, val)
}

// Insert places val at index i, shifting every element at positions ≥ i one
// slot to the right. i == Len appends.
// Returns ErrIndexOutOfRange when i is outside [0, Len].
// Complexity: O(n); O(1) amortized at the tail.
func (v *Vec[T]) Insert(i int, val T) error {
	if i < 0 || i > len(v.items) {
		return fmt.Errorf("%w: insert at %d of %d", ErrIndexOutOfRange, i, len(v.items))
	}
	var zero T
	v.items = append(v.items, zero)
	copy(v.items[i+1:], v.items[i:])
	v.items[i] = val
	return nil
}

// Delete removes and returns the element at index i, shifting every element
// at positions > i one slot to the left.
// Returns ErrIndexOutOfRange when i is outside [0, Len).
// Complexity: O(n); O(1) at the tail.
func (v *Vec[T]) Delete(i int) (T, error) {
	if i < 0 || i >= len(v.items) {
		var zero T
		return zero, fmt.Errorf("%w: delete %d of %d", ErrIndexOutOfRange, i, len(v.items))
	}
	out := v.items[i]
	copy(v.items[i:], v.items[i+1:])
	v.items = v.items[:len(v.items)-1]
	return out, nil
}

// Search scans the vector sequentially and returns the index of the first
// element equal to val, or (-1, false) when absent. Works on any ordering.
// Complexity: O(n).
func (v *Vec[T]) Search(val T) (int, bool) {
	for i, item := range v.items {
		if item == val {
			return i, true
		}
	}
	return -1, false
}

// BinarySearch returns the index of an element equal to val, or (-1, false)
// when absent.
//
// Precondition: the vector is sorted ascending. On unsorted content the
// result is undefined — this is a contract violation, not a detected error.
// Use BinarySearchStrict for a checked variant.
// Complexity: O(log n).
func (v *Vec[T]) BinarySearch(val T) (int, bool) {
	lo, hi := 0, len(v.items)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch {
		case v.items[mid] < val:
			lo = mid + 1
		case v.items[mid] > val:
			hi = mid
		default:
			return mid, true
		}
	}
	return -1, false
}

// BinarySearchStrict behaves like BinarySearch but first verifies the vector
// is sorted ascending, returning ErrUnsorted otherwise.
// Complexity: O(n).
func (v *Vec[T]) BinarySearchStrict(val T) (int, bool, error) {
	if !v.IsSorted() {
		return -1, false, ErrUnsorted
	}
	i, ok := v.BinarySearch(val)
	return i, ok, nil
}

// IsSorted reports whether the vector is sorted in non-decreasing order.
// Complexity: O(n).
func (v *Vec[T]) IsSorted() bool {
	for i := 1; i < len(v.items); i++ {
		if v.items[i] < v.items[i-1] {
			return false
		}
	}
	return true
}

// Items returns a copy of the contents in index order.
// Complexity: O(n).
func (v *Vec[T]) Items() []T {
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

// Raw returns the backing slice without copying. Mutations through the
// returned slice are visible to the vector; resizing it is not.
// Intended for handing the contents to in-place routines such as the
// sorting and binheap packages.
// Complexity: O(1).
func (v *Vec[T]) Raw() []T { return v.items }
