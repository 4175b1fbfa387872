package binheap

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmptyHeap is returned by Peek and Pop when the heap holds no elements.
var ErrEmptyHeap = errors.New("binheap: empty heap")

// Before reports whether a belongs nearer the root than b. With
// Before(a, b) == a > b the heap is a max-heap; with a < b, a min-heap.
type Before[T any] func(a, b T) bool

// 0-based complete-tree index arithmetic.
func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

// Heapify restores the heap property for the subtree rooted at i by sifting
// s[i] down toward the leaves.
//
// Precondition: the subtrees rooted at i's children already satisfy the heap
// property. Postcondition: so does the subtree rooted at i.
// Iterative on purpose — no call stack proportional to the tree height.
// Complexity: O(log n).
func Heapify[T any](s []T, i int, before Before[T]) {
	n := len(s)
	for {
		top := i
		if l := left(i); l < n && before(s[l], s[top]) {
			top = l
		}
		if r := right(i); r < n && before(s[r], s[top]) {
			top = r
		}
		if top == i {
			return
		}
		s[i], s[top] = s[top], s[i]
		i = top
	}
}

// Build rearranges s into a heap in place by calling Heapify for every
// internal node from ⌊n/2⌋−1 down to the root. Leaves are skipped: a
// singleton subtree trivially satisfies the heap property, and the
// descending order means every Heapify call sees valid child subtrees.
// Complexity: O(n) by amortized analysis, not O(n log n).
func Build[T any](s []T, before Before[T]) {
	for i := len(s)/2 - 1; i >= 0; i-- {
		Heapify(s, i, before)
	}
}

// IsHeap reports whether s satisfies the heap property under before,
// checked for every parent/child pair.
// Complexity: O(n).
func IsHeap[T any](s []T, before Before[T]) bool {
	for i := 1; i < len(s); i++ {
		if before(s[i], s[parent(i)]) {
			return false
		}
	}
	return true
}

// Sort sorts s in place into non-decreasing order via heapsort.
// Unstable. Complexity: O(n log n) worst case, O(1) extra space.
func Sort[T constraints.Ordered](s []T) {
	SortFunc(s, func(a, b T) bool { return a < b })
}

// SortFunc heapsorts s in place into non-decreasing order by less:
// build a max-heap, then n−1 times swap the root with the last unsorted
// element and re-heapify the shrunken prefix.
func SortFunc[T any](s []T, less func(a, b T) bool) {
	// max-heap under less: the root is the largest element
	before := func(a, b T) bool { return less(b, a) }
	Build(s, before)
	for end := len(s) - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		Heapify(s[:end], 0, before)
	}
}

// Heap is a binary heap container over a Before ordering.
//
// The zero value is unusable; construct with New, NewMax, NewMin, or
// FromSlice. Not safe for concurrent use.
type Heap[T any] struct {
	data   []T
	before Before[T]
}

// New creates an empty heap ordered by before.
// Complexity: O(1).
func New[T any](before Before[T]) *Heap[T] {
	return &Heap[T]{before: before}
}

// NewMax creates an empty max-heap: Peek and Pop yield the largest element.
func NewMax[T constraints.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a > b })
}

// NewMin creates an empty min-heap: Peek and Pop yield the smallest element.
func NewMin[T constraints.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a < b })
}

// FromSlice builds a heap over s in place — the heap takes ownership of the
// slice, and the caller must not use it afterwards.
// Complexity: O(n).
func FromSlice[T any](s []T, before Before[T]) *Heap[T] {
	Build(s, before)
	return &Heap[T]{data: s, before: before}
}

// Len returns the number of elements.
// Complexity: O(1).
func (h *Heap[T]) Len() int { return len(h.data) }

// Push inserts v, sifting it up from the last slot.
// Complexity: O(log n).
func (h *Heap[T]) Push(v T) {
	h.data = append(h.data, v)
	i := len(h.data) - 1
	for i > 0 {
		p := parent(i)
		if !h.before(h.data[i], h.data[p]) {
			return
		}
		h.data[i], h.data[p] = h.data[p], h.data[i]
		i = p
	}
}

// Peek returns the root element without removing it.
// Returns ErrEmptyHeap when empty.
// Complexity: O(1).
func (h *Heap[T]) Peek() (T, error) {
	if len(h.data) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}
	return h.data[0], nil
}

// Pop removes and returns the root element: swap root with the last
// element, shrink by one, heapify the new root.
// Returns ErrEmptyHeap when empty.
// Complexity: O(log n).
func (h *Heap[T]) Pop() (T, error) {
	n := len(h.data)
	if n == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}
	out := h.data[0]
	h.data[0] = h.data[n-1]
	var zero T
	h.data[n-1] = zero // release the reference for the GC
	h.data = h.data[:n-1]
	if len(h.data) > 0 {
		Heapify(h.data, 0, h.before)
	}
	return out, nil
}

// Items returns a copy of the underlying slice in heap order (level order,
// not sorted order).
// Complexity: O(n).
func (h *Heap[T]) Items() []T {
	out := make([]T, len(h.data))
	copy(out, h.data)
	return out
}
