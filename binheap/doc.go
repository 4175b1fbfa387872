// Package binheap implements the array-backed binary heap: heapify, O(n)
// build, push/peek/pop, and in-place heapsort.
//
// What
//
//   - A slice interpreted as a complete binary tree: element i has children
//     at 2i+1 and 2i+2 and parent at (i−1)/2 (0-based).
//   - Heap property: every parent orders at-or-before both children under a
//     Before function, transitively down the tree. Before(a, b) == a > b
//     gives a max-heap, a < b a min-heap.
//   - Slice-level primitives (Heapify, Build, IsHeap, Sort) operate on a
//     caller-owned slice; the Heap container wraps one with Push/Peek/Pop.
//
// Why
//
//   - Repeatedly extracting the highest/lowest-priority element is the
//     heap's home turf: Peek is O(1) and Pop O(log n), which is why it is
//     the canonical priority-queue implementation.
//   - Build costs O(n), not O(n log n): sifting from the last internal node
//     ⌊n/2⌋−1 down to the root skips the leaves (singleton subtrees are
//     trivially heaps) and most sift paths are short.
//   - The weak spot: a heap cannot find an arbitrary element faster than
//     O(n) — only the root is addressable. Use bst or avl for that.
//
// Complexity (n = Len)
//
//	Heapify      O(log n)
//	Build        O(n)
//	Push/Pop     O(log n)
//	Peek         O(1)
//	Sort         O(n log n), in place, unstable
//
// Usage
//
//	// priority queue, largest first:
//	h := binheap.NewMax[int]()
//	h.Push(3)
//	h.Push(9)
//	top, _ := h.Pop() // 9
//
//	// heapsort a slice ascending:
//	binheap.Sort([]int{5, 2, 8})
//
//	// custom priority:
//	q := binheap.New(func(a, b job) bool { return a.deadline.Before(b.deadline) })
//
// Errors
//
//   - ErrEmptyHeap  from Peek/Pop on an empty heap.
package binheap
