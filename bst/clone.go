package bst

import (
	"golang.org/x/exp/constraints"
)

// Clone returns a deep structural copy of the tree. The copy shares no
// nodes with the original; mutating one never affects the other.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		root: cloneNode(t.root, nil),
		size: t.size,
	}
}

// Move transfers the node graph into a new tree in constant time and
// leaves the receiver empty.
func (t *Tree[T]) Move() *Tree[T] {
	out := &Tree[T]{root: t.root, size: t.size}
	t.root = nil
	t.size = 0
	return out
}

func cloneNode[T constraints.Ordered](n, parent *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	c := &node[T]{value: n.value, parent: parent}
	c.left = cloneNode(n.left, c)
	c.right = cloneNode(n.right, c)
	return c
}
