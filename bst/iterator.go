package bst

import (
	"golang.org/x/exp/constraints"
)

type (
	// Iterator is a bidirectional cursor over a tree in sorted order.
	// The zero node is the end sentinel: one position past the largest
	// value. Iterators are plain values and compare equal with == when
	// they reference the same node, or when both are the end sentinel of
	// the same tree.
	//
	// Any structural mutation of the tree invalidates iterators that
	// reference removed nodes; using an invalidated iterator is a caller
	// error with no safety net.
	Iterator[T constraints.Ordered] struct {
		node *node[T]
		tree *Tree[T]
	}

	// ConstIterator is the read-only form of Iterator, obtained with
	// Iterator.Const. There is no conversion back.
	ConstIterator[T constraints.Ordered] struct {
		it Iterator[T]
	}
)

// Begin returns the position of the smallest value in the tree, or the
// end position if the tree is empty.
func (t *Tree[T]) Begin() Iterator[T] {
	if t.root == nil {
		return t.End()
	}
	return Iterator[T]{node: t.root.min(), tree: t}
}

// End returns the position one past the largest value.
func (t *Tree[T]) End() Iterator[T] {
	return Iterator[T]{tree: t}
}

// CBegin returns Begin as a read-only position.
func (t *Tree[T]) CBegin() ConstIterator[T] {
	return t.Begin().Const()
}

// CEnd returns End as a read-only position.
func (t *Tree[T]) CEnd() ConstIterator[T] {
	return t.End().Const()
}

// Valid reports whether the iterator references a value, i.e. is not
// the end sentinel.
func (it Iterator[T]) Valid() bool {
	return it.node != nil
}

// Value returns the referenced value. It must not be called on the end
// sentinel.
func (it Iterator[T]) Value() T {
	return it.node.value
}

// Ref returns a pointer to the referenced value for in-place access.
// The caller must not change how the value orders relative to the rest
// of the tree. It must not be called on the end sentinel.
func (it Iterator[T]) Ref() *T {
	return &it.node.value
}

// Next advances the iterator to the in-order successor. Advancing from
// the largest value lands on the end sentinel.
func (it *Iterator[T]) Next() {
	if it.node.right != nil {
		it.node = it.node.right.min()
		return
	}
	p := it.node.parent
	for p != nil && it.node == p.right {
		it.node = p
		p = p.parent
	}
	it.node = p
}

// Prev moves the iterator to the in-order predecessor. Moving back from
// the end sentinel lands on the largest value of the tree.
func (it *Iterator[T]) Prev() {
	if it.node == nil {
		if it.tree != nil && it.tree.root != nil {
			it.node = it.tree.root.max()
		}
		return
	}
	if it.node.left != nil {
		it.node = it.node.left.max()
		return
	}
	p := it.node.parent
	for p != nil && it.node == p.left {
		it.node = p
		p = p.parent
	}
	it.node = p
}

// Const converts the iterator to its read-only form.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it: it}
}

// Valid reports whether the iterator references a value.
func (c ConstIterator[T]) Valid() bool {
	return c.it.Valid()
}

// Value returns the referenced value. It must not be called on the end
// sentinel.
func (c ConstIterator[T]) Value() T {
	return c.it.Value()
}

// Next advances the iterator to the in-order successor.
func (c *ConstIterator[T]) Next() {
	c.it.Next()
}

// Prev moves the iterator to the in-order predecessor.
func (c *ConstIterator[T]) Prev() {
	c.it.Prev()
}
