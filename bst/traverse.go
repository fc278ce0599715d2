package bst

import (
	"golang.org/x/exp/constraints"
)

// Visitor callbacks may read or copy values but must not mutate the
// tree structure while a walk is running.

// InOrder visits every value in ascending sorted order: left subtree,
// node, right subtree.
func (t *Tree[T]) InOrder(fn func(v T)) {
	inOrder(t.root, fn)
}

// PreOrder visits every value root first: node, left subtree, right
// subtree.
func (t *Tree[T]) PreOrder(fn func(v T)) {
	preOrder(t.root, fn)
}

// PostOrder visits every value root last: left subtree, right subtree,
// node.
func (t *Tree[T]) PostOrder(fn func(v T)) {
	postOrder(t.root, fn)
}

// Ascend calls fn for every value in ascending order until fn returns
// false.
func (t *Tree[T]) Ascend(fn func(v T) bool) {
	for it := t.Begin(); it.Valid(); it.Next() {
		if !fn(it.Value()) {
			return
		}
	}
}

// Descend calls fn for every value in descending order until fn
// returns false.
func (t *Tree[T]) Descend(fn func(v T) bool) {
	it := t.End()
	for it.Prev(); it.Valid(); it.Prev() {
		if !fn(it.Value()) {
			return
		}
	}
}

func inOrder[T constraints.Ordered](n *node[T], fn func(v T)) {
	if n == nil {
		return
	}
	inOrder(n.left, fn)
	fn(n.value)
	inOrder(n.right, fn)
}

func preOrder[T constraints.Ordered](n *node[T], fn func(v T)) {
	if n == nil {
		return
	}
	fn(n.value)
	preOrder(n.left, fn)
	preOrder(n.right, fn)
}

func postOrder[T constraints.Ordered](n *node[T], fn func(v T)) {
	if n == nil {
		return
	}
	postOrder(n.left, fn)
	postOrder(n.right, fn)
	fn(n.value)
}
