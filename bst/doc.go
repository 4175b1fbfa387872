// Package bst implements an unbalanced binary search tree with the three
// classical traversals, hook-driven walks, and the rotation primitives that
// balancing trees build on.
//
// What
//
//   - Tree[T] keeps ordered keys under the BST invariant: every key in a
//     node's left subtree < node key < every key in its right subtree,
//     recursively.
//   - Insert descends to a null child position and attaches a leaf there.
//     Duplicates are rejected by default; WithCountedDuplicates stores a
//     per-node multiplicity instead.
//   - Delete handles the three textbook cases: leaf detach, single-child
//     splice, and two-children replacement by the in-order successor (the
//     minimum of the right subtree).
//   - Traversals: in-order yields keys ascending (tree sort), pre-order
//     supports structural cloning, post-order tears a subtree down children
//     before parent. Walk adds an OnVisit hook with depth, context
//     cancellation, and error aborts.
//   - Rotations are internal primitives, invoked by balancing logic (see
//     the avl package) and exercised directly by white-box tests; they
//     preserve the in-order key sequence exactly and panic if the required
//     child is missing, since that is a caller bug, not an input condition.
//
// Why
//
//   - O(h) search/insert/delete where h is the tree height: ~log n on
//     random input, but a sorted insertion order degenerates the tree into
//     a linked list and h becomes n. The avl package removes that failure
//     mode at the cost of rebalancing work.
//   - Unlike a heap, any key is addressable in O(h), and the full sorted
//     sequence falls out of a single in-order pass.
//
// Complexity (h = height, n = Len)
//
//	Insert/Search/Delete  O(h)   — O(log n) average, O(n) worst case
//	Min/Max               O(h)
//	Traversals/Walk       O(n)
//	Clone                 O(n)
//
// Usage
//
//	t := bst.New[int]()
//	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
//	    t.Insert(k)
//	}
//	t.Keys()                    // [1 3 4 5 7 8 9]
//	if v, ok := t.Search(4); ok { ... }
//	t.Delete(5)                 // two-children case, successor 7 moves up
//
//	err := t.Walk(ctx, bst.InOrder, func(k int, depth int) error {
//	    ...
//	    return nil // non-nil aborts the walk
//	})
//
// Errors
//
//   - ErrBadOrder    if Walk receives an unknown traversal order.
//   - ErrNilVisitor  if Walk receives a nil visit callback.
//   - Rotations panic on a missing required child (precondition violation).
package bst
