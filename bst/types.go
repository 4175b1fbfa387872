package bst

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for tree walks.
var (
	// ErrBadOrder is returned by Walk for an unknown traversal order.
	ErrBadOrder = errors.New("bst: unknown traversal order")

	// ErrNilVisitor is returned by Walk when the visit callback is nil.
	ErrNilVisitor = errors.New("bst: nil visit callback")
)

// Order selects a traversal sequence for Walk and Traverse.
type Order int

const (
	// InOrder visits left subtree, node, right subtree — keys ascending.
	InOrder Order = iota

	// PreOrder visits node, left subtree, right subtree — clone order.
	PreOrder

	// PostOrder visits left subtree, right subtree, node — teardown order.
	PostOrder
)

// node is a BST node. Children are exclusively owned by their parent; there
// are no parent back-references — rotations return the new subtree root
// instead.
type node[T constraints.Ordered] struct {
	key   T
	count int // key multiplicity; > 1 only under counted duplicates
	left  *node[T]
	right *node[T]
}

// Tree is a binary search tree over ordered keys.
//
// The zero value is not usable; construct with New. Tree is not safe for
// concurrent use; callers must serialize access.
type Tree[T constraints.Ordered] struct {
	root    *node[T]
	size    int // total keys, duplicates included
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
// Complexity: O(n·h) — O(n²) worst case on sorted input; prefer avl.From
// when the input order is adversarial.
func From[T constraints.Ordered](s []T, opts ...TreeOption) *Tree[T] {
	t := New[T](opts...)
	for _, k := range s {
		t.Insert(k)
	}
	return t
}
