// Package vec provides a generic dynamic array with index-checked access,
// shifting insertion/deletion, and sequential or binary search.
//
// What
//
//   - Vec[T] wraps a growable slice of ordered elements.
//   - Get/Set are O(1) and fail with ErrIndexOutOfRange when the index is
//     outside [0, Len) — out-of-range indices are never clamped.
//   - Insert/Delete shift every element after the target position by one
//     slot: O(n) in general, O(1) amortized at the tail (Append).
//   - Search scans sequentially in O(n) and needs only equality.
//   - BinarySearch runs in O(log n) but requires the vector be sorted
//     ascending; on unsorted input the result is undefined, not an error.
//   - BinarySearchStrict adds an explicit O(n) sortedness check and returns
//     ErrUnsorted instead of an undefined answer.
//
// Why
//
//   - Arrays are the substrate everything else here builds on: binheap
//     interprets one as a complete binary tree, and sorting reorders one.
//   - Direct indexing is the fastest read/write primitive there is; the
//     price is O(n) middle insertion and O(n) unsorted search.
//
// Complexity (n = Len)
//
//	Get/Set/Append      O(1)   (Append amortized)
//	Insert/Delete       O(n)
//	Search              O(n)
//	BinarySearch        O(log n), sorted input required
//	BinarySearchStrict  O(n)
//
// Usage
//
//	v := vec.From([]int{3, 1, 4})
//	v.Append(1)
//	if err := v.Insert(0, 5); err != nil { ... }
//	idx, ok := v.Search(4)          // sequential, any order
//	sorting.MergeSort(v.Raw())
//	idx, ok = v.BinarySearch(4)     // now valid
//
// Errors
//
//   - ErrIndexOutOfRange  if an index is outside the valid range.
//   - ErrUnsorted         from BinarySearchStrict on unsorted content.
//   - ErrOptionViolation  if an invalid Option is supplied.
package vec
