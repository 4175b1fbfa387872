// Package avl implements an AVL tree: a binary search tree augmented with a
// stored per-node height, rebalanced by rotations on every insert and
// delete so that lookups never degenerate past O(log n).
//
// What
//
//   - Every mutation first performs the standard BST insert/delete, then
//     walks back up the mutated path recomputing heights.
//   - At each ancestor the balance factor height(left) − height(right) is
//     checked; |balance| > 1 selects one of the four classic repairs:
//
//     balance > +1, left child balance ≥ 0  → single right rotation
//     balance > +1, left child balance < 0  → left-right double rotation
//     balance < −1, right child balance ≤ 0 → single left rotation
//     balance < −1, right child balance > 0 → right-left double rotation
//
//   - Rotated nodes recompute their heights from their updated children
//     before the repair continues further up the path.
//   - Invariant after every operation: |balance factor| ≤ 1 at every node.
//
// Why
//
//   - A plain BST degenerates into a linked list under sorted insertion;
//     the AVL height stays within log(n+1) ≤ h < c·log(n+2) + b with
//     c = 1/log₂(φ) ≈ 1.44 and b = c·log₂(5)/2, so search, insert, and
//     delete are O(log n) worst case, not just on average.
//   - The price is one stored height per node and O(log n) rebalancing
//     work per mutation — the textbook case of structure augmentation.
//
// Complexity (n = Len)
//
//	Insert/Search/Delete  O(log n) worst case
//	Min/Max               O(log n)
//	Height                O(1)   (stored, not recomputed)
//	Keys                  O(n)
//
// Usage
//
//	t := avl.New[int]()
//	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
//	    t.Insert(k)
//	}
//	t.Keys()    // [1 3 4 5 7 8 9]
//	t.Height()  // 3 — a plain BST could be 7 deep here
//	t.Delete(8)
//
// Duplicate keys follow the same policy surface as package bst: rejected by
// default, counted per node under WithCountedDuplicates. Queries signal
// absence with ok=false; Delete of an absent key returns false. Tree is not
// safe for concurrent use.
package avl
