// Package strata is an in-memory toolbox of the classical data structures —
// dynamic arrays, sorting, binary heaps, binary search trees and AVL trees —
// with their textbook operations and complexity guarantees.
//
// 🚀 What is strata?
//
//	A small, generic, pure-Go library that brings together:
//		• Dynamic arrays: O(1) indexed access, shifting insert/delete, sequential & binary search
//		• Sorting: merge (stable), quick (tunable pivot), insertion, bubble, counting
//		• Binary heaps: heapify, O(n) build, push/peek/pop, in-place heapsort
//		• Binary search trees: insert/search/delete, all three traversals, rotations
//		• AVL trees: height-augmented, self-balancing on every insert and delete
//
// ✨ Why choose strata?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Textbook-faithful – every operation documents its complexity
//   - Pure Go – generics over constraints.Ordered, no cgo
//   - Extensible – traversal hooks (OnVisit) and functional options everywhere
//
// Under the hood, everything is organized by structure:
//
//	vec/     — generic dynamic array with index-checked access
//	sorting/ — comparison and counting sorts over plain slices
//	binheap/ — array-backed binary heap, min or max, plus heapsort
//	bst/     — unbalanced binary search tree with hook-driven walks
//	avl/     — self-balancing BST with the four classic rotation cases
//
// Quick ASCII example:
//
//	      5              4
//	    /   \          /   \
//	   3     8   vs   2     8
//	  / \   / \      / \   / \
//	 1   4 7   9    1   3 7   9
//
//	a BST and an AVL tree holding the same keys; only the right one is
//	guaranteed to stay O(log n) deep as keys keep arriving.
//
// None of the structures lock internally: each instance belongs to one
// owner, and concurrent callers must serialize access themselves.
//
//	go get github.com/katalvlaran/strata
package strata
