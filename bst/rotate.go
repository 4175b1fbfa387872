package bst

import "golang.org/x/exp/constraints"

// Rotations restructure parent/child links without changing the in-order
// key sequence. They are invoked only by balancing logic that has already
// established the required child exists; a missing child is therefore a
// caller bug and panics rather than returning an error.

// rotateLeft makes x's right child r the new subtree root: x becomes r's
// left child and r's original left subtree becomes x's new right subtree.
// Panics if x has no right child.
// Complexity: O(1).
func rotateLeft[T constraints.Ordered](x *node[T]) *node[T] {
	r := x.right
	if r == nil {
		panic("bst: rotate-left requires a right child")
	}
	x.right = r.left
	r.left = x
	return r
}

// rotateRight is the mirror of rotateLeft: x's left child becomes the new
// subtree root. Panics if x has no left child.
// Complexity: O(1).
func rotateRight[T constraints.Ordered](x *node[T]) *node[T] {
	l := x.left
	if l == nil {
		panic("bst: rotate-right requires a left child")
	}
	x.left = l.right
	l.right = x
	return l
}

// rotateLeftRight first left-rotates x's left child, then right-rotates x.
// Used when the left subtree is right-heavy.
func rotateLeftRight[T constraints.Ordered](x *node[T]) *node[T] {
	x.left = rotateLeft(x.left)
	return rotateRight(x)
}

// rotateRightLeft first right-rotates x's right child, then left-rotates x.
// Used when the right subtree is left-heavy.
func rotateRightLeft[T constraints.Ordered](x *node[T]) *node[T] {
	x.right = rotateRight(x.right)
	return rotateLeft(x)
}
