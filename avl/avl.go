package avl

import "golang.org/x/exp/constraints"

// node is an AVL node: a BST node augmented with its stored height
// (levels; a leaf has height 1).
type node[T constraints.Ordered] struct {
	key    T
	count  int // key multiplicity; > 1 only under counted duplicates
	height int
	left   *node[T]
	right  *node[T]
}

// Tree is a self-balancing binary search tree over ordered keys.
//
// The zero value is not usable; construct with New. Tree is not safe for
// concurrent use; callers must serialize access.
type Tree[T constraints.Ordered] struct {
	root    *node[T]
	size    int
	counted bool
}

// TreeOption configures a Tree at construction.
type TreeOption func(*treeConfig)

type treeConfig struct {
	counted bool
}

// WithCountedDuplicates makes Insert of an existing key increment a per-node
// multiplicity instead of being rejected; Delete then decrements the
// multiplicity before detaching the node.
func WithCountedDuplicates() TreeOption {
	return func(c *treeConfig) { c.counted = true }
}

// New creates an empty Tree with the given options.
// Complexity: O(1).
func New[T constraints.Ordered](opts ...TreeOption) *Tree[T] {
	var c treeConfig
	for _, opt := range opts {
		opt(&c)
	}
	return &Tree[T]{counted: c.counted}
}

// From creates a Tree holding the given keys, inserted in order. Under the
// default policy duplicate keys in s are dropped.
// Complexity: O(n log n) regardless of input order.
func From[T constraints.Ordered](s []T, opts ...TreeOption) *Tree[T] {
	t := New[T](opts...)
	for _, k := range s {
		t.Insert(k)
	}
	return t
}

// Len returns the number of stored keys, duplicate multiplicities included.
// Complexity: O(1).
func (t *Tree[T]) Len() int { return t.size }

// Height returns the number of levels in the tree: 0 when empty, 1 for a
// single node. Stored per node, so this is O(1).
func (t *Tree[T]) Height() int { return nodeHeight(t.root) }

func nodeHeight[T constraints.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// balance returns height(left) − height(right) at n.
func balance[T constraints.Ordered](n *node[T]) int {
	return nodeHeight(n.left) - nodeHeight(n.right)
}

// reheight recomputes n's stored height from its (current) children.
func reheight[T constraints.Ordered](n *node[T]) {
	l, r := nodeHeight(n.left), nodeHeight(n.right)
	if l > r {
		n.height = l + 1
	} else {
		n.height = r + 1
	}
}

// Insert adds key, rebalancing the insertion path bottom-up. Reports
// whether the tree changed: a duplicate key returns false under the default
// policy, true (incrementing the multiplicity) under WithCountedDuplicates.
// Complexity: O(log n) worst case.
func (t *Tree[T]) Insert(key T) bool {
	var changed bool
	t.root, changed = t.insert(t.root, key)
	if changed {
		t.size++
	}
	return changed
}

// insert is the recursive BST insert followed by a rebalance on the unwind.
// Recursion is deliberate here: the rebalance needs the return path, and
// the balance invariant caps the depth at O(log n).
func (t *Tree[T]) insert(n *node[T], key T) (*node[T], bool) {
	if n == nil {
		return &node[T]{key: key, count: 1, height: 1}, true
	}
	var changed bool
	switch {
	case key < n.key:
		n.left, changed = t.insert(n.left, key)
	case key > n.key:
		n.right, changed = t.insert(n.right, key)
	default:
		if !t.counted {
			return n, false
		}
		n.count++
		return n, true
	}
	if !changed {
		return n, false
	}
	return rebalance(n), true
}

// Delete removes one occurrence of key, rebalancing the deletion path
// bottom-up, and reports whether the tree changed; deleting an absent key
// is a no-op returning false.
// Complexity: O(log n) worst case.
func (t *Tree[T]) Delete(key T) bool {
	var changed bool
	t.root, changed = t.delete(t.root, key)
	if changed {
		t.size--
	}
	return changed
}

// delete performs the BST removal (leaf detach, single-child splice, or
// two-children in-order-successor replacement) and rebalances the unwind
// path.
func (t *Tree[T]) delete(n *node[T], key T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}
	var changed bool
	switch {
	case key < n.key:
		n.left, changed = t.delete(n.left, key)
	case key > n.key:
		n.right, changed = t.delete(n.right, key)
	default:
		if n.count > 1 {
			n.count--
			return n, true
		}
		switch {
		case n.left == nil:
			return n.right, true
		case n.right == nil:
			return n.left, true
		default:
			// two children: adopt the in-order successor's key, then
			// delete that successor from the right subtree
			s := n.right
			for s.left != nil {
				s = s.left
			}
			n.key, n.count = s.key, s.count
			// strip the successor node itself; its multiplicity moved up
			s.count = 1
			n.right, _ = t.delete(n.right, s.key)
			changed = true
		}
	}
	if !changed {
		return n, false
	}
	return rebalance(n), true
}

// rebalance recomputes n's height and repairs a |balance| > 1 violation
// with the appropriate single or double rotation. Returns the subtree root
// after the repair.
func rebalance[T constraints.Ordered](n *node[T]) *node[T] {
	reheight(n)
	switch b := balance(n); {
	case b > 1 && balance(n.left) >= 0:
		return rotateRight(n)
	case b > 1:
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	case b < -1 && balance(n.right) <= 0:
		return rotateLeft(n)
	case b < -1:
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}
	return n
}

// rotateLeft promotes x's right child; both rotated nodes recompute their
// heights from the updated children before the caller continues upward.
// The balancing logic guarantees the required child exists; its absence is
// a bug, hence the panic.
func rotateLeft[T constraints.Ordered](x *node[T]) *node[T] {
	r := x.right
	if r == nil {
		panic("avl: rotate-left requires a right child")
	}
	x.right = r.left
	r.left = x
	reheight(x)
	reheight(r)
	return r
}

// rotateRight is the mirror of rotateLeft.
func rotateRight[T constraints.Ordered](x *node[T]) *node[T] {
	l := x.left
	if l == nil {
		panic("avl: rotate-right requires a left child")
	}
	x.left = l.right
	l.right = x
	reheight(x)
	reheight(l)
	return l
}

// Search descends left on smaller, right on larger, and returns the stored
// key on equality, or (zero, false) when absent — absence is not an error.
// Complexity: O(log n) worst case.
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
// Complexity: O(log n).
func (t *Tree[T]) Contains(key T) bool {
	_, ok := t.Search(key)
	return ok
}

// Count returns the multiplicity of key: 0 when absent, 1 unless the tree
// counts duplicates.
// Complexity: O(log n).
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
// Complexity: O(log n).
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
// Complexity: O(log n).
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

// Keys returns all keys in ascending order, duplicates expanded. The walk
// is iterative with an explicit stack.
// Complexity: O(n).
func (t *Tree[T]) Keys() []T {
	out := make([]T, 0, t.size)
	var stack []*node[T]
	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i := 0; i < n.count; i++ {
			out = append(out, n.key)
		}
		n = n.right
	}
	return out
}
