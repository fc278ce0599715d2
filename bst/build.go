package bst

import (
	"golang.org/x/exp/constraints"
)

// Tree reconstruction from traversal pairs. Both builders derive the
// structure from position arithmetic alone, without comparison-based
// insertion: the caller is trusted to pass traversals of the same
// element set. Inconsistent pairs produce a tree that violates the
// ordering invariant; no validation is performed. Empty input or
// mismatched lengths yield an empty tree.

// NewFromPreIn builds the tree whose pre-order and in-order traversals
// are the given sequences.
func NewFromPreIn[T constraints.Ordered](preorder, inorder []T) *Tree[T] {
	t := &Tree[T]{}
	if len(preorder) == 0 || len(preorder) != len(inorder) {
		return t
	}
	pos := indexOf(inorder)
	preIdx := 0
	t.root = buildPreIn(preorder, &preIdx, pos, 0, len(inorder)-1, nil)
	t.size = len(preorder)
	return t
}

// NewFromInPost builds the tree whose in-order and post-order
// traversals are the given sequences.
func NewFromInPost[T constraints.Ordered](inorder, postorder []T) *Tree[T] {
	t := &Tree[T]{}
	if len(postorder) == 0 || len(postorder) != len(inorder) {
		return t
	}
	pos := indexOf(inorder)
	postIdx := len(postorder) - 1
	t.root = buildInPost(postorder, &postIdx, pos, 0, len(inorder)-1, nil)
	t.size = len(postorder)
	return t
}

// indexOf maps each value to its position in the in-order sequence.
func indexOf[T constraints.Ordered](inorder []T) map[T]int {
	pos := make(map[T]int, len(inorder))
	for i, v := range inorder {
		pos[v] = i
	}
	return pos
}

// buildPreIn consumes pre-order values left to right; each one is the
// root of the subtree covering inorder[inStart:inEnd+1], and its
// in-order position splits that range into the left and right subtree
// ranges.
func buildPreIn[T constraints.Ordered](preorder []T, preIdx *int, pos map[T]int, inStart, inEnd int, parent *node[T]) *node[T] {
	if inStart > inEnd {
		return nil
	}
	v := preorder[*preIdx]
	*preIdx++
	n := &node[T]{value: v, parent: parent}
	split := pos[v]
	n.left = buildPreIn(preorder, preIdx, pos, inStart, split-1, n)
	n.right = buildPreIn(preorder, preIdx, pos, split+1, inEnd, n)
	return n
}

// buildInPost consumes post-order values right to left, so the right
// subtree must be built before the left one.
func buildInPost[T constraints.Ordered](postorder []T, postIdx *int, pos map[T]int, inStart, inEnd int, parent *node[T]) *node[T] {
	if inStart > inEnd {
		return nil
	}
	v := postorder[*postIdx]
	*postIdx--
	n := &node[T]{value: v, parent: parent}
	split := pos[v]
	n.right = buildInPost(postorder, postIdx, pos, split+1, inEnd, n)
	n.left = buildInPost(postorder, postIdx, pos, inStart, split-1, n)
	return n
}
