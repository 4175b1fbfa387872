package bst

import (
	"context"
	"fmt"

	"golang.org/x/exp/constraints"
)

// visitFrame tracks one node on the explicit traversal stack, together with
// its depth and whether its children were already expanded.
type visitFrame[T constraints.Ordered] struct {
	n        *node[T]
	depth    int
	expanded bool
}

// Walk traverses the tree in the given order, invoking visit for every key
// with its depth from the root (root = 0). Duplicate keys under
// WithCountedDuplicates are visited once per occurrence.
//
// The walk checks ctx before each visit and aborts with ctx.Err() on
// cancellation; a non-nil error from visit aborts the walk and is returned
// wrapped. The traversal is iterative — stack depth does not grow with the
// tree height.
//
// Returns ErrBadOrder for an unknown order and ErrNilVisitor for a nil
// callback.
// Complexity: O(n).
func (t *Tree[T]) Walk(ctx context.Context, order Order, visit func(key T, depth int) error) error {
	if visit == nil {
		return ErrNilVisitor
	}
	if order != InOrder && order != PreOrder && order != PostOrder {
		return fmt.Errorf("%w: %d", ErrBadOrder, order)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	stack := []visitFrame[T]{{n: t.root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.n == nil {
			continue
		}
		if !top.expanded {
			// re-push in reverse of the desired visit sequence
			switch order {
			case InOrder:
				stack = append(stack,
					visitFrame[T]{n: top.n.right, depth: top.depth + 1},
					visitFrame[T]{n: top.n, depth: top.depth, expanded: true},
					visitFrame[T]{n: top.n.left, depth: top.depth + 1},
				)
			case PreOrder:
				stack = append(stack,
					visitFrame[T]{n: top.n.right, depth: top.depth + 1},
					visitFrame[T]{n: top.n.left, depth: top.depth + 1},
					visitFrame[T]{n: top.n, depth: top.depth, expanded: true},
				)
			case PostOrder:
				stack = append(stack,
					visitFrame[T]{n: top.n, depth: top.depth, expanded: true},
					visitFrame[T]{n: top.n.right, depth: top.depth + 1},
					visitFrame[T]{n: top.n.left, depth: top.depth + 1},
				)
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		for i := 0; i < top.n.count; i++ {
			if err := visit(top.n.key, top.depth); err != nil {
				return fmt.Errorf("bst: walk aborted: %w", err)
			}
		}
	}
	return nil
}

// Traverse collects the keys of a full walk in the given order, duplicates
// expanded. Returns ErrBadOrder for an unknown order.
// Complexity: O(n).
func (t *Tree[T]) Traverse(order Order) ([]T, error) {
	out := make([]T, 0, t.size)
	err := t.Walk(context.Background(), order, func(key T, _ int) error {
		out = append(out, key)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
