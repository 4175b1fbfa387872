package avl

import "golang.org/x/exp/constraints"

// White-box bridge: expose the balance invariant to the test package so it
// can be asserted after every mutation, without widening the production API.

// CheckBalanced reports whether every node satisfies |balance| ≤ 1 and has
// a stored height consistent with its children.
func (t *Tree[T]) CheckBalanced() bool {
	return checkNode(t.root)
}

func checkNode[T constraints.Ordered](n *node[T]) bool {
	if n == nil {
		return true
	}
	l, r := nodeHeight(n.left), nodeHeight(n.right)
	want := l + 1
	if r > l {
		want = r + 1
	}
	if n.height != want {
		return false
	}
	if b := l - r; b < -1 || b > 1 {
		return false
	}
	return checkNode(n.left) && checkNode(n.right)
}
