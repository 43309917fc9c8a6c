// SPDX-License-Identifier: MIT
//
// File: tree.go
// Role: Tree construction, insertion and size/shape queries.

package bst

import (
	"cmp"
	"fmt"
)

// New creates an empty Tree ordered by less, where less(a, b) reports
// whether a ranks before b. less must be a strict weak order.
//
// New panics if less is nil.
//
// Complexity: O(len(opts)).
func New[T any](less func(a, b T) bool, opts ...Option[T]) *Tree[T] {
	if less == nil {
		panic(ErrNilComparator)
	}
	t := &Tree[T]{
		less: less,
		log:  discardLogger(),
	}
	t.equal = func(a, b T) bool { return !t.less(a, b) && !t.less(b, a) }
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// NewOrdered creates an empty Tree over a naturally ordered type using cmp.Less.
func NewOrdered[T cmp.Ordered](opts ...Option[T]) *Tree[T] {
	return New(cmp.Less[T], opts...)
}

// FromValues creates a Tree ordered by less and inserts values in the
// given order. The resulting shape depends on that order.
//
// Complexity: O(n·h), O(n²) worst case on sorted input.
func FromValues[T any](less func(a, b T) bool, values []T, opts ...Option[T]) *Tree[T] {
	t := New(less, opts...)
	for _, v := range values {
		t.Insert(v)
	}

	return t
}

// Insert adds v to the tree. Values equal to an existing value are
// placed in its right subtree; duplicates are kept.
//
// The descent is iterative, so stack usage does not grow with height.
//
// Complexity: O(h) where h is the current height.
func (t *Tree[T]) Insert(v T) {
	n := &Node[T]{value: v}
	if t.root == nil {
		t.root = n
		t.size = 1
		t.log.Debug("bst: insert", "value", v, "slot", "root")

		return
	}

	cur := t.root
	for {
		if t.less(v, cur.value) {
			if cur.left == nil {
				cur.left = n
				break
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				break
			}
			cur = cur.right
		}
	}
	n.parent = cur
	t.size++
	t.log.Debug("bst: insert", "value", v, "parent", cur.value, "size", t.size)
}

// Size returns the number of values stored. O(1).
func (t *Tree[T]) Size() int { return t.size }

// Empty reports whether the tree holds no values.
func (t *Tree[T]) Empty() bool { return t.root == nil }

// Root returns the root node, or nil for an empty tree.
// The node is only valid until the next mutating call.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// Clear drops every node.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
	t.log.Debug("bst: clear")
}

// Height returns the number of levels in the tree: 0 when empty,
// 1 for a single node. Computed level by level without recursion.
//
// Complexity: O(n) time, O(width) memory.
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return 0
	}
	h := 0
	level := []*Node[T]{t.root}
	for len(level) > 0 {
		h++
		next := make([]*Node[T], 0, 2*len(level))
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}

	return h
}

// String renders the in-order sequence, e.g. "[20 30 40 70]".
func (t *Tree[T]) String() string {
	return fmt.Sprint(t.Values(InOrder))
}
