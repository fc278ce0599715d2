// Package bst implements an in-memory binary search tree for use as an
// ordered data structure.
//
// Keys are unique: inserting a value already present leaves the tree
// unchanged and reports the existing position. The tree performs no
// rebalancing, so worst-case height is linear in the number of elements.
// Write operations are not safe for concurrent mutation by multiple
// goroutines.
package bst

import (
	"golang.org/x/exp/constraints"
)

type (
	// node is an internal node of the tree. left and right hold the only
	// downward references; parent is a back-reference used for traversal
	// only and never for ownership.
	node[T constraints.Ordered] struct {
		value  T
		left   *node[T]
		right  *node[T]
		parent *node[T]
	}

	// Tree is an ordered set of values of type T. The zero value is an
	// empty tree ready to use.
	//
	// size caches the number of reachable nodes and is kept in sync by
	// every structural mutation.
	Tree[T constraints.Ordered] struct {
		root *node[T]
		size int
	}
)

// New creates a tree holding the given values, inserted in order.
// Duplicate values are ignored. New() with no arguments creates an
// empty tree.
func New[T constraints.Ordered](values ...T) *Tree[T] {
	t := &Tree[T]{}
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// Len returns the number of values currently in the tree.
func (t *Tree[T]) Len() int {
	return t.size
}

// Empty reports whether the tree holds no values.
func (t *Tree[T]) Empty() bool {
	return t.size == 0
}

// Emplace adds v to the tree. If an equivalent value is already present
// the tree is unchanged and Emplace returns its position and false;
// otherwise it returns the position of the newly inserted value and
// true. Two values a, b are equivalent when !(a < b) && !(b < a).
func (t *Tree[T]) Emplace(v T) (Iterator[T], bool) {
	if t.root == nil {
		t.root = &node[T]{value: v}
		t.size++
		return Iterator[T]{node: t.root, tree: t}, true
	}
	cur := t.root
	for {
		switch {
		case v < cur.value:
			if cur.left == nil {
				cur.left = &node[T]{value: v, parent: cur}
				t.size++
				return Iterator[T]{node: cur.left, tree: t}, true
			}
			cur = cur.left
		case cur.value < v:
			if cur.right == nil {
				cur.right = &node[T]{value: v, parent: cur}
				t.size++
				return Iterator[T]{node: cur.right, tree: t}, true
			}
			cur = cur.right
		default:
			return Iterator[T]{node: cur, tree: t}, false
		}
	}
}

// Insert adds v to the tree and returns its position. If v is already
// present the existing position is returned.
func (t *Tree[T]) Insert(v T) Iterator[T] {
	it, _ := t.Emplace(v)
	return it
}

// Erase removes the value equivalent to key from the tree and returns
// the position of its in-order successor. If key is not present the
// tree is unchanged and the end position is returned.
//
// When the removed node has two children its value is overwritten with
// the in-order successor's value and the successor node is unlinked
// instead, so positions held on the removed node observe the successor
// value rather than becoming detached.
func (t *Tree[T]) Erase(key T) Iterator[T] {
	target := t.findNode(key)
	if target == nil {
		return t.End()
	}

	// The successor position must be taken before the structure changes.
	next := Iterator[T]{node: target, tree: t}
	next.Next()

	switch {
	case target.left == nil && target.right == nil:
		*t.linkOf(target) = nil
	case target.left == nil || target.right == nil:
		child := target.left
		if child == nil {
			child = target.right
		}
		child.parent = target.parent
		*t.linkOf(target) = child
	default:
		// Two children: the successor is the leftmost node of the right
		// subtree and has no left child, so unlinking it is the
		// one-child/leaf case.
		succ := target.right.min()
		target.value = succ.value
		if succ.right != nil {
			succ.right.parent = succ.parent
		}
		*t.linkOf(succ) = succ.right
		// The target node now occupies the successor position.
		next.node = target
	}

	t.size--
	return next
}

// Clear removes all values from the tree.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// Find returns the position of the value equivalent to key, or the end
// position if key is not present.
func (t *Tree[T]) Find(key T) Iterator[T] {
	return Iterator[T]{node: t.findNode(key), tree: t}
}

// FindConst is the read-only variant of Find.
func (t *Tree[T]) FindConst(key T) ConstIterator[T] {
	return t.Find(key).Const()
}

// Contains reports whether a value equivalent to key is in the tree.
func (t *Tree[T]) Contains(key T) bool {
	return t.findNode(key) != nil
}

// Min returns the smallest value in the tree, or (zero, false) if the
// tree is empty.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.min().value, true
}

// Max returns the largest value in the tree, or (zero, false) if the
// tree is empty.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return t.root.max().value, true
}

func (t *Tree[T]) findNode(key T) *node[T] {
	cur := t.root
	for cur != nil {
		switch {
		case key < cur.value:
			cur = cur.left
		case cur.value < key:
			cur = cur.right
		default:
			return cur
		}
	}
	return nil
}

// linkOf returns the downward link holding n: the root link when n has
// no parent, otherwise the owning child slot of n's parent.
func (t *Tree[T]) linkOf(n *node[T]) **node[T] {
	if n.parent == nil {
		return &t.root
	}
	if n.parent.left == n {
		return &n.parent.left
	}
	return &n.parent.right
}

// min returns the leftmost node of the subtree rooted at n.
func (n *node[T]) min() *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the rightmost node of the subtree rooted at n.
func (n *node[T]) max() *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}
