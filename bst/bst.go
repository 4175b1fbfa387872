package bst

import "golang.org/x/exp/constraints"

// Len returns the number of stored keys, duplicate multiplicities included.
// Complexity: O(1).
func (t *Tree[T]) Len() int { return t.size }

// Height returns the number of levels in the tree: 0 when empty, 1 for a
// single node.
// Complexity: O(n).
func (t *Tree[T]) Height() int { return height(t.root) }

func height[T constraints.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}
	l, r := height(n.left), height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Insert adds key to the tree, descending to a null child position and
// attaching a new leaf there. Reports whether the tree changed: a duplicate
// key returns false under the default policy, true (incrementing the
// multiplicity) under WithCountedDuplicates.
// Complexity: O(h).
func (t *Tree[T]) Insert(key T) bool {
	link := &t.root
	for *link != nil {
		n := *link
		switch {
		case key < n.key:
			link = &n.left
		case key > n.key:
			link = &n.right
		default:
			if !t.counted {
				return false
			}
			n.count++
			t.size++
			return true
		}
	}
	*link = &node[T]{key: key, count: 1}
	t.size++
	return true
}

// Search descends left on smaller, right on larger, and returns the stored
// key on equality, or (zero, false) when the key is absent — absence is not
// an error.
// Complexity: O(h).
func (t *Tree[T]) Search(key T) (T, bool) {
	for n := t.root; n != nil; {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.key, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether key is present.
// Complexity: O(h).
func (t *Tree[T]) Contains(key T) bool {
	_, ok := t.Search(key)
	return ok
}

// Count returns the multiplicity of key: 0 when absent, 1 unless the tree
// counts duplicates.
// Complexity: O(h).
func (t *Tree[T]) Count(key T) int {
	for n := t.root; n != nil; {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.count
		}
	}
	return 0
}

// Min returns the smallest key, or (zero, false) on an empty tree.
// Complexity: O(h).
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.key, true
}

// Max returns the largest key, or (zero, false) on an empty tree.
// Complexity: O(h).
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key, true
}

// Delete removes one occurrence of key and reports whether the tree
// changed; deleting an absent key is a no-op returning false.
//
// Detachment follows the three textbook cases: a leaf is detached, a node
// with one child is spliced out, and a node with two children takes its
// in-order successor's key (the minimum of the right subtree), after which
// the successor node — which has no left child — is spliced from the right
// subtree.
// Complexity: O(h).
func (t *Tree[T]) Delete(key T) bool {
	link := &t.root
	for *link != nil && (*link).key != key {
		if key < (*link).key {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	n := *link
	if n == nil {
		return false
	}
	if n.count > 1 {
		n.count--
		t.size--
		return true
	}

	if n.left != nil && n.right != nil {
		// two children: splice the in-order successor, adopt its key
		succ := &n.right
		for (*succ).left != nil {
			succ = &(*succ).left
		}
		s := *succ
		n.key, n.count = s.key, s.count
		*succ = s.right
	} else if n.left != nil {
		*link = n.left
	} else {
		*link = n.right // nil for the leaf case
	}
	t.size--
	return true
}

// Keys returns all keys in ascending order, duplicates expanded — the tree
// sort of the stored multiset.
// Complexity: O(n).
func (t *Tree[T]) Keys() []T {
	keys, _ := t.Traverse(InOrder) // InOrder cannot fail validation
	return keys
}

// Clone returns a structurally identical copy of the tree, built from a
// pre-order visit so the copy shares the exact node shape, not just the key
// sequence.
// Complexity: O(n).
func (t *Tree[T]) Clone() *Tree[T] {
	out := &Tree[T]{size: t.size, counted: t.counted}
	out.root = cloneNode(t.root)
	return out
}

func cloneNode[T constraints.Ordered](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{
		key:   n.key,
		count: n.count,
		left:  cloneNode(n.left),
		right: cloneNode(n.right),
	}
}

// Clear detaches every node in post-order — children before parent, so no
// node is released while still owning live children — and resets the tree
// to empty.
// Complexity: O(n).
func (t *Tree[T]) Clear() {
	// iterative post-order teardown with an explicit stack
	type frame struct {
		n       *node[T]
		visited bool
	}
	stack := []frame{{n: t.root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		switch {
		case top.n == nil:
			stack = stack[:len(stack)-1]
		case !top.visited:
			top.visited = true
			stack = append(stack, frame{n: top.n.right}, frame{n: top.n.left})
		default:
			top.n.left, top.n.right = nil, nil
			stack = stack[:len(stack)-1]
		}
	}
	t.root = nil
	t.size = 0
}
