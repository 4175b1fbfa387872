package bst

// White-box bridge: expose the rotation primitives to the test package so
// the in-order-preservation property can be checked directly, without
// widening the production API.

// RotateRootLeft left-rotates the tree's root.
func (t *Tree[T]) RotateRootLeft() { t.root = rotateLeft(t.root) }

// RotateRootRight right-rotates the tree's root.
func (t *Tree[T]) RotateRootRight() { t.root = rotateRight(t.root) }

// RotateRootLeftRight double-rotates the root (left on left child, then right).
func (t *Tree[T]) RotateRootLeftRight() { t.root = rotateLeftRight(t.root) }

// RotateRootRightLeft double-rotates the root (right on right child, then left).
func (t *Tree[T]) RotateRootRightLeft() { t.root = rotateRightLeft(t.root) }

// RootKey returns the root's key for structural assertions.
func (t *Tree[T]) RootKey() T { return t.root.key }
